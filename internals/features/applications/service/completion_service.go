package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "magangku_backend/internals/features/applications/model"
)

// Kolaborator eksternal saat internship selesai. Implementasi default ada di
// fitur certificates; test memakai fake.
type CertificateGenerator interface {
	Generate(tx *gorm.DB, app *model.ApplicationModel, rating int) error
}

type EmployabilityRecorder interface {
	Record(tx *gorm.DB, studentID uuid.UUID, applicationID uuid.UUID, rating int) error
}

type CompletionService struct {
	Certificates  CertificateGenerator
	Employability EmployabilityRecorder
}

type CompleteParams struct {
	ApplicationID   uuid.UUID
	ExpectedVersion int
	ActorID         uuid.UUID
	ActorRole       string
	Rating          int
	StartDate       time.Time
	EndDate         time.Time
}

// Complete menutup lamaran: OFFERED → COMPLETED, stamp rating + tanggal,
// step "Internship Completion" → COMPLETED, lalu generate sertifikat dan
// update employability record — semuanya dalam SATU transaksi.
func (s *CompletionService) Complete(db *gorm.DB, p CompleteParams) (*model.ApplicationModel, error) {
	if p.Rating < 1 || p.Rating > 5 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "performance_rating harus 1-5")
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "end_date tidak boleh sebelum start_date")
	}

	var result *model.ApplicationModel
	err := db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		app, err := AdvanceStatus(tx, p.ApplicationID, p.ExpectedVersion, p.ActorRole, model.StatusCompleted, map[string]interface{}{
			"application_completion_date":    now,
			"application_performance_rating": p.Rating,
			"application_start_date":         p.StartDate,
			"application_end_date":           p.EndDate,
		})
		if err != nil {
			return err
		}

		if err := CompleteStepByName(tx, p.ApplicationID, model.StepNameCompletion, &p.ActorID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}

		if s.Certificates != nil {
			if err := s.Certificates.Generate(tx, app, p.Rating); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sertifikat")
			}
		}
		if s.Employability != nil {
			if err := s.Employability.Record(tx, app.ApplicationStudentID, app.ApplicationID, p.Rating); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal update employability record")
			}
		}

		result = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
