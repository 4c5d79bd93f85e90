package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "magangku_backend/internals/features/applications/model"
)

/* =========================================================
   AdvanceStatus: satu-satunya jalur mutasi application_status.
   Urutan gagal: role (403) → eksistensi (404) → precondition status (400)
   → versi (409).
   - role dicek terhadap tabel transitionRoles sebelum menyentuh DB
   - optimistic lock: UPDATE ... WHERE application_version = expected;
     0 rows affected = ada penulis lain → 409
   - stamps: kolom tambahan yang ikut di-set dalam UPDATE yang sama
   Dipanggil DI DALAM transaksi bersama update tracking/sub-record,
   supaya aggregate dan ledger tidak pernah belah.
========================================================= */

func AdvanceStatus(tx *gorm.DB, applicationID uuid.UUID, expectedVersion int, role string, to string, stamps map[string]interface{}) (*model.ApplicationModel, error) {
	if !IsValidStatus(to) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status tujuan tidak dikenal")
	}
	if !RoleMayTransition(role, to) {
		return nil, fiber.NewError(fiber.StatusForbidden,
			"Role "+role+" tidak boleh mengubah status ke "+to)
	}

	var app model.ApplicationModel
	if err := tx.First(&app, "application_id = ?", applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}

	if !CanTransition(app.ApplicationStatus, to) {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Transisi status tidak diizinkan dari "+app.ApplicationStatus+" ke "+to)
	}

	updates := map[string]interface{}{
		"application_status":  to,
		"application_version": expectedVersion + 1,
	}
	for k, v := range stamps {
		updates[k] = v
	}

	res := tx.Model(&model.ApplicationModel{}).
		Where("application_id = ? AND application_version = ?", applicationID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan transisi status")
	}
	if res.RowsAffected == 0 {
		return nil, fiber.NewError(fiber.StatusConflict,
			"Versi lamaran sudah berubah, silakan muat ulang lalu coba lagi")
	}

	app.ApplicationStatus = to
	app.ApplicationVersion = expectedVersion + 1
	return &app, nil
}

/* =========================================================
   Tracking ledger
========================================================= */

// SeedTrackingSteps menanam 10 step default; step pertama langsung COMPLETED.
func SeedTrackingSteps(tx *gorm.DB, applicationID uuid.UUID, actorID uuid.UUID) error {
	now := time.Now()
	rows := make([]model.ApplicationTrackingModel, 0, len(model.DefaultTrackingSteps))
	for i, name := range model.DefaultTrackingSteps {
		row := model.ApplicationTrackingModel{
			TrackingApplicationID: applicationID,
			TrackingStepName:      name,
			TrackingStepOrder:     i + 1,
			TrackingStatus:        model.StepPending,
		}
		if i == 0 {
			row.TrackingStatus = model.StepCompleted
			row.TrackingCompletedAt = &now
			actor := actorID
			row.TrackingActorID = &actor
		}
		rows = append(rows, row)
	}
	return tx.Create(&rows).Error
}

// CompleteStepByName menandai satu step COMPLETED (addressed by name).
// Step yang tidak ada dibiarkan lolos diam-diam: ledger lama mungkin
// di-seed dengan daftar step berbeda.
func CompleteStepByName(tx *gorm.DB, applicationID uuid.UUID, stepName string, actorID *uuid.UUID, notes *string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"tracking_status":       model.StepCompleted,
		"tracking_completed_at": now,
	}
	if actorID != nil {
		updates["tracking_actor_id"] = *actorID
	}
	if notes != nil {
		updates["tracking_notes"] = *notes
	}
	return tx.Model(&model.ApplicationTrackingModel{}).
		Where("tracking_application_id = ? AND tracking_step_name = ?", applicationID, stepName).
		Updates(updates).Error
}
