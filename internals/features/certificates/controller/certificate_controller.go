package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	model "magangku_backend/internals/features/certificates/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type CertificateController struct {
	DB *gorm.DB
}

// GET /api/certificates — student melihat sertifikatnya sendiri;
// staff boleh filter ?student_id=...
func (h *CertificateController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	studentID := userID
	if role == constants.RoleStaff {
		if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
			}
			studentID = parsed
		}
	}

	var rows []model.CertificateModel
	if err := h.DB.Where("certificate_student_id = ?", studentID).
		Order("certificate_issued_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}
	return helper.JsonOK(c, "OK", rows)
}

// GET /api/certificates/:serial — verifikasi publik by serial
func (h *CertificateController) GetBySerial(c *fiber.Ctx) error {
	serial := strings.TrimSpace(c.Params("serial"))
	if serial == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Serial tidak valid")
	}

	var cert model.CertificateModel
	if err := h.DB.First(&cert, "certificate_serial = ?", serial).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sertifikat")
	}
	return helper.JsonOK(c, "OK", cert)
}
