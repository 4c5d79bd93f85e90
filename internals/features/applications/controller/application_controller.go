// internals/features/applications/controller/application_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	dto "magangku_backend/internals/features/applications/dto"
	model "magangku_backend/internals/features/applications/model"
	"magangku_backend/internals/features/applications/service"
	internshipModel "magangku_backend/internals/features/internships/model"
	userModel "magangku_backend/internals/features/users/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type ApplicationController struct {
	DB         *gorm.DB
	Completion *service.CompletionService
}

var validate = validator.New()

// =========================================================
// APPLY - POST /api/applications (student)
// Satu lamaran non-terminal per (student, internship). Double guard:
// pre-check di dalam transaksi + partial unique index di DB.
// =========================================================
func (h *ApplicationController) Apply(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var created model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var internship internshipModel.InternshipModel
		if err := tx.First(&internship, "internship_id = ?", req.InternshipID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lowongan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lowongan")
		}
		if !internship.InternshipIsActive || !internship.InternshipIsVerified {
			return fiber.NewError(fiber.StatusBadRequest, "Lowongan sudah tidak menerima lamaran")
		}
		if internship.InternshipDeadline != nil && time.Now().After(*internship.InternshipDeadline) {
			return fiber.NewError(fiber.StatusBadRequest, "Batas waktu lamaran sudah lewat")
		}

		var cnt int64
		if err := tx.Model(&model.ApplicationModel{}).
			Where(`application_student_id = ?
				AND application_internship_id = ?
				AND application_status NOT IN ?`,
				studentID, req.InternshipID,
				[]string{model.StatusMentorRejected, model.StatusNotOffered, model.StatusCompleted}).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek lamaran aktif")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict, "Masih ada lamaran aktif untuk lowongan ini")
		}

		created = model.ApplicationModel{
			ApplicationStudentID:    studentID,
			ApplicationInternshipID: req.InternshipID,
			ApplicationStatus:       model.StatusApplied,
		}
		if err := tx.Create(&created).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "uq_applications_active_per_pair") ||
				strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Masih ada lamaran aktif untuk lowongan ini")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lamaran")
		}

		if err := service.SeedTrackingSteps(tx, created.ApplicationID, studentID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal seed tracking steps")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Lamaran berhasil dikirim", created)
}

// =========================================================
// LIST - GET /api/applications (scope per role)
// =========================================================
func (h *ApplicationController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := h.DB.Model(&model.ApplicationModel{})

	switch role {
	case constants.RoleStudent:
		q = q.Where("application_student_id = ?", userID)
	case constants.RoleMentor:
		dept := helperAuth.GetDepartmentFromToken(c)
		if dept == "" {
			return helper.JsonError(c, fiber.StatusForbidden, "Mentor tanpa department tidak bisa melihat lamaran")
		}
		q = q.Where(`application_student_id IN (SELECT id FROM users WHERE department = ?)`, dept)
	case constants.RoleEmployer:
		q = q.Where(`application_internship_id IN
			(SELECT internship_id FROM internships WHERE internship_employer_id = ?)`, userID)
	case constants.RoleStaff:
		// staff melihat semua
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenali")
	}

	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		if !service.IsValidStatus(st) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status filter tidak dikenal")
		}
		q = q.Where("application_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.ApplicationModel
	if err := q.Order("application_applied_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET BY ID - GET /api/applications/:id (+ tracking steps)
// =========================================================
func (h *ApplicationController) GetByID(c *fiber.Ctx) error {
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

	var app model.ApplicationModel
	if err := h.DB.First(&app, "application_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := h.ensureCanView(c, role, userID, &app); err != nil {
		return err
	}

	var steps []model.ApplicationTrackingModel
	if err := h.DB.Where("tracking_application_id = ?", id).
		Order("tracking_step_order ASC").
		Find(&steps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil tracking steps")
	}

	return helper.JsonOK(c, "OK", dto.ApplicationResponse{ApplicationModel: app, TrackingSteps: steps})
}

// =========================================================
// MENTOR DECISION - POST /api/applications/:id/mentor-decision
// Mentor se-department dengan student; status {APPLIED, MENTOR_REVIEW}.
// =========================================================
func (h *ApplicationController) MentorDecision(c *fiber.Ctx) error {
	mentorID, err := helperAuth.GetUserIDFromToken(c)
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

	var req dto.MentorDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	target := model.StatusMentorApproved
	if req.Decision == "reject" {
		target = model.StatusMentorRejected
	}

	var updated *model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var app model.ApplicationModel
		if err := tx.First(&app, "application_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}

		// Gating: mentor harus se-department dengan student
		mentorDept := helperAuth.GetDepartmentFromToken(c)
		var student userModel.UserModel
		if err := tx.Select("id", "department").First(&student, "id = ?", app.ApplicationStudentID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data student")
		}
		if mentorDept == "" || student.Department == nil || *student.Department != mentorDept {
			return fiber.NewError(fiber.StatusForbidden, "Mentor hanya boleh memutuskan lamaran student di department-nya")
		}

		now := time.Now()
		var txErr error
		updated, txErr = service.AdvanceStatus(tx, id, req.ExpectedVersion, role, target, map[string]interface{}{
			"application_mentor_id":          mentorID,
			"application_mentor_approved_at": now,
		})
		if txErr != nil {
			return txErr
		}

		if err := service.CompleteStepByName(tx, id, model.StepNameMentorReview, &mentorID, req.Notes); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}
		if target == model.StatusMentorApproved {
			if err := service.CompleteStepByName(tx, id, model.StepNameMentorApproval, &mentorID, nil); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] mentor %s memutuskan lamaran %s → %s", mentorID, id, target)
	return helper.JsonUpdated(c, "Keputusan mentor tersimpan", updated)
}

// =========================================================
// COMPLETE - POST /api/applications/:id/complete
// Employer pemilik lowongan atau staff.
// =========================================================
func (h *ApplicationController) Complete(c *fiber.Ctx) error {
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

	var req dto.CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if role != constants.RoleStaff {
		if err := h.ensureEmployerOwnsApplication(userID, id); err != nil {
			return err
		}
	}

	updated, err := h.Completion.Complete(h.DB, service.CompleteParams{
		ApplicationID:   id,
		ExpectedVersion: req.ExpectedVersion,
		ActorID:         userID,
		ActorRole:       role,
		Rating:          req.PerformanceRating,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Internship selesai, sertifikat diterbitkan", updated)
}

// =========================================================
// EMPLOYER DECISION - POST /api/applications/:id/employer-decision
// Kandidat tidak dilanjutkan: status jadi NOT_OFFERED (terminal).
// =========================================================
func (h *ApplicationController) EmployerDecision(c *fiber.Ctx) error {
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

	var req dto.EmployerDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if role != constants.RoleStaff {
		if err := h.ensureEmployerOwnsApplication(userID, id); err != nil {
			return err
		}
	}

	var updated *model.ApplicationModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		updated, txErr = service.AdvanceStatus(tx, id, req.ExpectedVersion, role,
			model.StatusNotOffered, nil)
		if txErr != nil {
			return txErr
		}
		if err := service.CompleteStepByName(tx, id, model.StepNameOfferDecision, &userID, req.Notes); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] employer %s menutup lamaran %s tanpa offer", userID, id)
	return helper.JsonUpdated(c, "Keputusan employer tersimpan", updated)
}

// =========================================================
// UPDATE TRACKING STEP - PATCH /api/applications/:id/tracking/:step_id
// completed_at di-set sekarang iff status jadi COMPLETED, selain itu null.
// =========================================================
func (h *ApplicationController) UpdateTrackingStep(c *fiber.Ctx) error {
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	appID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lamaran tidak valid")
	}
	stepID, err := uuid.Parse(strings.TrimSpace(c.Params("step_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID step tidak valid")
	}

	var req dto.TrackingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var step model.ApplicationTrackingModel
	if err := h.DB.First(&step,
		"tracking_id = ? AND tracking_application_id = ?", stepID, appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tracking step tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	updates := map[string]interface{}{
		"tracking_status":   req.Status,
		"tracking_actor_id": actorID,
	}
	if req.Status == model.StepCompleted {
		updates["tracking_completed_at"] = time.Now()
	} else {
		updates["tracking_completed_at"] = nil
	}
	if req.Notes != nil {
		updates["tracking_notes"] = *req.Notes
	}

	if err := h.DB.Model(&step).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update tracking step")
	}
	return helper.JsonUpdated(c, "Tracking step diperbarui", step)
}

/* =========================================================
   Guard kepemilikan
========================================================= */

func (h *ApplicationController) ensureCanView(c *fiber.Ctx, role string, userID uuid.UUID, app *model.ApplicationModel) error {
	switch role {
	case constants.RoleStaff:
		return nil
	case constants.RoleStudent:
		if app.ApplicationStudentID == userID {
			return nil
		}
	case constants.RoleMentor:
		dept := helperAuth.GetDepartmentFromToken(c)
		var student userModel.UserModel
		if err := h.DB.Select("id", "department").First(&student, "id = ?", app.ApplicationStudentID).Error; err == nil {
			if dept != "" && student.Department != nil && *student.Department == dept {
				return nil
			}
		}
	case constants.RoleEmployer:
		var cnt int64
		h.DB.Model(&internshipModel.InternshipModel{}).
			Where("internship_id = ? AND internship_employer_id = ?", app.ApplicationInternshipID, userID).
			Count(&cnt)
		if cnt > 0 {
			return nil
		}
	}
	return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke lamaran ini")
}

func (h *ApplicationController) ensureEmployerOwnsApplication(employerID, applicationID uuid.UUID) error {
	var cnt int64
	err := h.DB.Model(&model.ApplicationModel{}).
		Joins("JOIN internships ON internships.internship_id = applications.application_internship_id").
		Where("applications.application_id = ? AND internships.internship_employer_id = ?", applicationID, employerID).
		Count(&cnt).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kepemilikan lowongan")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Hanya employer pemilik lowongan yang boleh melakukan aksi ini")
	}
	return nil
}
