// internals/features/feedback/controller/feedback_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	appModel "magangku_backend/internals/features/applications/model"
	appService "magangku_backend/internals/features/applications/service"
	dto "magangku_backend/internals/features/feedback/dto"
	model "magangku_backend/internals/features/feedback/model"
	"magangku_backend/internals/features/feedback/service"
	internshipModel "magangku_backend/internals/features/internships/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type FeedbackController struct {
	DB         *gorm.DB
	Completion *appService.CompletionService
}

var validate = validator.New()

// =========================================================
// SUBMIT - POST /api/feedback (employer pemilik / staff)
// Satu feedback per lamaran; status harus OFFERED atau COMPLETED.
// Feedback atas lamaran OFFERED sekaligus menutup internship
// (sertifikat + employability) dalam transaksi yang sama.
// =========================================================
func (h *FeedbackController) Submit(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var fb model.FeedbackModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var app appModel.ApplicationModel
		if err := tx.First(&app, "application_id = ?", req.ApplicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}

		ownsInternship := true
		if role != constants.RoleStaff {
			var cnt int64
			if err := tx.Model(&internshipModel.InternshipModel{}).
				Where("internship_id = ? AND internship_employer_id = ?", app.ApplicationInternshipID, userID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kepemilikan lowongan")
			}
			ownsInternship = cnt > 0
		}

		var existing int64
		if err := tx.Model(&model.FeedbackModel{}).
			Where("feedback_application_id = ?", req.ApplicationID).
			Count(&existing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek feedback")
		}

		if err := service.ValidateSubmission(role, ownsInternship, app.ApplicationStatus, existing > 0); err != nil {
			return err
		}

		fb = model.FeedbackModel{
			FeedbackApplicationID: req.ApplicationID,
			FeedbackEmployerID:    userID,
			FeedbackRating:        req.Rating,
			FeedbackTechnical:     req.Technical,
			FeedbackCommunication: req.Communication,
			FeedbackProfessional:  req.Professional,
			FeedbackComments:      req.Comments,
			FeedbackStrengths:     req.Strengths,
			FeedbackImprovements:  req.Improvements,
		}
		if err := tx.Create(&fb).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "uq_feedback_application") ||
				strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Feedback untuk lamaran ini sudah ada")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan feedback")
		}

		// feedback atas lamaran OFFERED langsung menutup internship
		if app.ApplicationStatus == appModel.StatusOffered {
			start, now := service.CompletionWindow(app.ApplicationStartDate, time.Now())
			if _, err := h.Completion.Complete(tx, appService.CompleteParams{
				ApplicationID:   app.ApplicationID,
				ExpectedVersion: req.ExpectedVersion,
				ActorID:         userID,
				ActorRole:       role,
				Rating:          req.Rating,
				StartDate:       start,
				EndDate:         now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Feedback tersimpan", fb)
}

// =========================================================
// GET BY APPLICATION - GET /api/feedback/:application_id
// =========================================================
func (h *FeedbackController) GetByApplication(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	appID, err := uuid.Parse(strings.TrimSpace(c.Params("application_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var app appModel.ApplicationModel
	if err := h.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}

	switch role {
	case constants.RoleStaff:
	case constants.RoleStudent:
		if app.ApplicationStudentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke feedback ini")
		}
	default:
		var cnt int64
		h.DB.Model(&internshipModel.InternshipModel{}).
			Where("internship_id = ? AND internship_employer_id = ?", app.ApplicationInternshipID, userID).
			Count(&cnt)
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak punya akses ke feedback ini")
		}
	}

	var fb model.FeedbackModel
	if err := h.DB.First(&fb, "feedback_application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Feedback belum ada untuk lamaran ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil feedback")
	}
	return helper.JsonOK(c, "OK", fb)
}
