// internals/features/feedback/service/feedback_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"magangku_backend/internals/constants"
	appModel "magangku_backend/internals/features/applications/model"
)

// ValidateSubmission memutuskan boleh-tidaknya feedback disimpan.
// Urutan gagal: kepemilikan (403) → status lamaran (400) → duplikat (409).
// Staff bebas dari cek kepemilikan.
func ValidateSubmission(role string, ownsInternship bool, appStatus string, alreadyExists bool) error {
	if role != constants.RoleStaff && !ownsInternship {
		return fiber.NewError(fiber.StatusForbidden, "Hanya employer pemilik lowongan yang boleh memberi feedback")
	}
	if appStatus != appModel.StatusOffered && appStatus != appModel.StatusCompleted {
		return fiber.NewError(fiber.StatusBadRequest,
			"Feedback hanya bisa diberikan setelah offer dibuat atau internship selesai")
	}
	if alreadyExists {
		return fiber.NewError(fiber.StatusConflict, "Feedback untuk lamaran ini sudah ada")
	}
	return nil
}

// CompletionWindow menentukan rentang tanggal saat feedback menutup
// internship. Start date offer yang masih di masa depan dipangkas ke now
// supaya penutupan tidak ditolak validasi rentang.
func CompletionWindow(appStart *time.Time, now time.Time) (time.Time, time.Time) {
	start := now
	if appStart != nil {
		start = *appStart
	}
	if start.After(now) {
		start = now
	}
	return start, now
}
