// internals/features/internships/controller/internship_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	dto "magangku_backend/internals/features/internships/dto"
	model "magangku_backend/internals/features/internships/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type InternshipController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/internships
// Employer membuat lowongan; staff boleh membuat atas nama employer
// lewat field internship_employer_id (opsional).
// =========================================================
func (h *InternshipController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.InternshipCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat lowongan")
	}
	return helper.JsonCreated(c, "Lowongan berhasil dibuat", m)
}

// =========================================================
// LIST - GET /api/internships  (publik: hanya aktif & terverifikasi)
// =========================================================
func (h *InternshipController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.InternshipModel{}).
		Where("internship_is_active = TRUE AND internship_is_verified = TRUE")

	if dept := strings.TrimSpace(c.Query("department")); dept != "" {
		q = q.Where("internship_department = ?", dept)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.InternshipModel
	if err := q.Order("internship_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /api/internships/:id
// =========================================================
func (h *InternshipController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.InternshipModel
	if err := h.DB.First(&m, "internship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lowongan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "OK", m)
}

// =========================================================
// UPDATE - PUT /api/internships/:id (pemilik lowongan atau staff)
// =========================================================
func (h *InternshipController) Update(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.InternshipUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.InternshipModel
	if err := h.DB.First(&m, "internship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lowongan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if role != constants.RoleStaff && m.InternshipEmployerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pemilik lowongan yang boleh mengubah")
	}

	req.Apply(&m)
	if m.InternshipStipendMax < m.InternshipStipendMin {
		return helper.JsonError(c, fiber.StatusBadRequest, "stipend_max tidak boleh lebih kecil dari stipend_min")
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Lowongan berhasil diperbarui", m)
}

// =========================================================
// DELETE - DELETE /api/internships/:id (soft delete)
// =========================================================
func (h *InternshipController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.InternshipModel
	if err := h.DB.First(&m, "internship_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lowongan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	if role != constants.RoleStaff && m.InternshipEmployerID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya pemilik lowongan yang boleh menghapus")
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.JsonDeleted(c, "Lowongan berhasil dihapus", fiber.Map{"internship_id": id})
}

// =========================================================
// VERIFY - POST /api/internships/:id/verify (staff)
// =========================================================
func (h *InternshipController) Verify(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Model(&model.InternshipModel{}).
		Where("internship_id = ?", id).
		Update("internship_is_verified", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal verifikasi lowongan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lowongan tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Lowongan terverifikasi", fiber.Map{"internship_id": id})
}
