package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Key Locals yang diisi middleware auth — HARUS seragam di semua handler.
const (
	LocUserID     = "user_id"
	LocUserRole   = "user_role"
	LocDepartment = "user_department"
)

// GetUserIDFromToken mengambil user_id hasil decode JWT dari Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id tidak ada di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: user_id bukan UUID valid")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: role tidak ada di token")
	}
	return role, nil
}

// GetDepartmentFromToken untuk gating mentor ke jurusan student.
// Boleh kosong (employer/staff tidak punya department).
func GetDepartmentFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocDepartment).(string); ok {
		return v
	}
	return ""
}
