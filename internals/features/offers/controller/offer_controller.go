// internals/features/offers/controller/offer_controller.go
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
	appModel "magangku_backend/internals/features/applications/model"
	appService "magangku_backend/internals/features/applications/service"
	internshipModel "magangku_backend/internals/features/internships/model"
	dto "magangku_backend/internals/features/offers/dto"
	model "magangku_backend/internals/features/offers/model"
	"magangku_backend/internals/features/offers/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type OfferController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// MAKE OFFER - POST /api/offers (employer/staff)
// Lamaran ikut maju ke OFFERED dalam transaksi yang sama.
// =========================================================
func (h *OfferController) MakeOffer(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MakeOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var offer model.PlacementOfferModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var app appModel.ApplicationModel
		if err := tx.First(&app, "application_id = ?", req.ApplicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}

		employerID := userID
		if role != constants.RoleStaff {
			var cnt int64
			if err := tx.Model(&internshipModel.InternshipModel{}).
				Where("internship_id = ? AND internship_employer_id = ?", app.ApplicationInternshipID, userID).
				Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kepemilikan lowongan")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusForbidden, "Hanya employer pemilik lowongan yang boleh membuat offer")
			}
		} else {
			// staff membuat offer atas nama employer pemilik lowongan
			var internship internshipModel.InternshipModel
			if err := tx.Select("internship_employer_id").
				First(&internship, "internship_id = ?", app.ApplicationInternshipID).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lowongan")
			}
			employerID = internship.InternshipEmployerID
		}

		var active int64
		if err := tx.Model(&model.PlacementOfferModel{}).
			Where("offer_application_id = ? AND offer_status IN ?",
				req.ApplicationID, []string{model.OfferDraft, model.OfferExtended, model.OfferAccepted}).
			Count(&active).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek offer aktif")
		}
		if active > 0 {
			return fiber.NewError(fiber.StatusConflict, "Sudah ada offer aktif untuk lamaran ini")
		}

		now := time.Now()
		if _, err := appService.AdvanceStatus(tx, req.ApplicationID, req.ExpectedVersion,
			role, appModel.StatusOffered, map[string]interface{}{
				"application_offer_made_at": now,
			}); err != nil {
			return err
		}

		offer = model.PlacementOfferModel{
			OfferApplicationID: req.ApplicationID,
			OfferStudentID:     app.ApplicationStudentID,
			OfferEmployerID:    employerID,
			OfferStatus:        model.OfferExtended,
			OfferType:          req.OfferType,
			OfferPosition:      req.Position,
			OfferStipend:       req.Stipend,
			OfferStartDate:     req.StartDate,
			OfferExpiresAt:     service.ResolveExpiry(req.ExpiresAt, now),
			OfferDetails:       req.Details,
		}
		if err := tx.Create(&offer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan offer")
		}

		if err := appService.CompleteStepByName(tx, req.ApplicationID,
			appModel.StepNameOfferDecision, &userID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] offer %s dibuat untuk lamaran %s", offer.OfferID, req.ApplicationID)
	return helper.JsonCreated(c, "Offer berhasil dibuat", offer)
}

// =========================================================
// RESPOND - POST /api/offers/:id/respond (student)
// Offer EXTENDED yang lewat tenggat langsung dianggap hangus (lazy expire).
// =========================================================
func (h *OfferController) Respond(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.RespondOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var offer model.PlacementOfferModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&offer, "offer_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Offer tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offer")
		}

		var app appModel.ApplicationModel
		if err := tx.First(&app, "application_id = ?", offer.OfferApplicationID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}
		if app.ApplicationStudentID != studentID {
			return fiber.NewError(fiber.StatusForbidden, "Offer ini bukan untuk Anda")
		}

		now := time.Now()
		if service.IsExpired(&offer, now) {
			tx.Model(&offer).Update("offer_status", model.OfferExpired)
			return fiber.NewError(fiber.StatusBadRequest, "Offer sudah kedaluwarsa")
		}
		if offer.OfferStatus != model.OfferExtended {
			return fiber.NewError(fiber.StatusBadRequest, "Offer sudah tidak bisa direspons")
		}

		target := model.OfferAccepted
		if req.Decision == "reject" {
			target = model.OfferRejected
		}
		updates := map[string]interface{}{
			"offer_status":       target,
			"offer_responded_at": now,
		}
		if req.Notes != nil {
			updates["offer_response_notes"] = *req.Notes
		}
		if target == model.OfferAccepted {
			updates["offer_contract_signed"] = req.ContractSigned
			if len(req.ContractDetails) > 0 {
				updates["offer_contract_details"] = req.ContractDetails
			}
		}
		if err := tx.Model(&offer).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan respons")
		}
		offer.OfferStatus = target
		offer.OfferRespondedAt = &now

		if err := appService.CompleteStepByName(tx, offer.OfferApplicationID,
			appModel.StepNameOfferResponse, &studentID, req.Notes); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}

		if target == model.OfferAccepted {
			start := offer.OfferStartDate
			stamps := map[string]interface{}{}
			if start != nil {
				stamps["application_start_date"] = *start
			}
			// versi lamaran tidak berubah sejak OFFERED kecuali ada penulis
			// lain; expected_version datang dari client yang melihat OFFERED.
			if app.ApplicationVersion != req.ExpectedVersion {
				return fiber.NewError(fiber.StatusConflict,
					"Versi lamaran sudah berubah, silakan muat ulang lalu coba lagi")
			}
			if len(stamps) > 0 {
				if err := tx.Model(&appModel.ApplicationModel{}).
					Where("application_id = ?", app.ApplicationID).
					Updates(stamps).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan tanggal mulai")
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Respons offer tersimpan", offer)
}

// =========================================================
// WITHDRAW - POST /api/offers/:id/withdraw (employer pemilik / staff)
// =========================================================
func (h *OfferController) Withdraw(c *fiber.Ctx) error {
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

	var req dto.WithdrawOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var offer model.PlacementOfferModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&offer, "offer_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Offer tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil offer")
		}

		if role != constants.RoleStaff && offer.OfferEmployerID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Hanya employer pembuat offer yang boleh menarik")
		}
		if offer.OfferStatus != model.OfferDraft && offer.OfferStatus != model.OfferExtended {
			return fiber.NewError(fiber.StatusBadRequest, "Offer sudah tidak bisa ditarik")
		}

		updates := map[string]interface{}{"offer_status": model.OfferWithdrawn}
		if req.Notes != nil {
			updates["offer_response_notes"] = *req.Notes
		}
		if err := tx.Model(&offer).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menarik offer")
		}
		offer.OfferStatus = model.OfferWithdrawn

		// Lamaran OFFERED kembali ke INTERVIEWED supaya employer bisa
		// membuat offer pengganti.
		var app appModel.ApplicationModel
		if err := tx.First(&app, "application_id = ?", offer.OfferApplicationID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}
		if app.ApplicationStatus == appModel.StatusOffered {
			if _, err := appService.AdvanceStatus(tx, app.ApplicationID, req.ExpectedVersion,
				role, appModel.StatusInterviewed, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] offer %s ditarik oleh %s", offer.OfferID, userID)
	return helper.JsonUpdated(c, "Offer ditarik", offer)
}

// =========================================================
// LIST - GET /api/offers (scope per role, filter ?application_id=)
// =========================================================
func (h *OfferController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := h.DB.Model(&model.PlacementOfferModel{})

	switch role {
	case constants.RoleStudent:
		q = q.Where(`offer_application_id IN
			(SELECT application_id FROM applications WHERE application_student_id = ?)`, userID)
	case constants.RoleEmployer:
		q = q.Where("offer_employer_id = ?", userID)
	case constants.RoleStaff:
		// staff melihat semua
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenali")
	}

	if raw := strings.TrimSpace(c.Query("application_id")); raw != "" {
		appID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "application_id tidak valid")
		}
		q = q.Where("offer_application_id = ?", appID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.PlacementOfferModel
	if err := q.Order("offer_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
