package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "magangku_backend/internals/features/applications/model"
)

type fakeCertGen struct {
	calls int
}

func (f *fakeCertGen) Generate(tx *gorm.DB, app *model.ApplicationModel, rating int) error {
	f.calls++
	return nil
}

type fakeRecorder struct {
	calls int
}

func (f *fakeRecorder) Record(tx *gorm.DB, studentID uuid.UUID, applicationID uuid.UUID, rating int) error {
	f.calls++
	return nil
}

func TestCompleteRejectsBadInput(t *testing.T) {
	gen := &fakeCertGen{}
	rec := &fakeRecorder{}
	svc := &CompletionService{Certificates: gen, Employability: rec}

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		params CompleteParams
	}{
		{"rating nol", CompleteParams{Rating: 0, StartDate: start, EndDate: end}},
		{"rating negatif", CompleteParams{Rating: -1, StartDate: start, EndDate: end}},
		{"rating di atas 5", CompleteParams{Rating: 6, StartDate: start, EndDate: end}},
		{"end sebelum start", CompleteParams{Rating: 4, StartDate: end, EndDate: start}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// input ditolak sebelum menyentuh DB, jadi nil aman di sini
			_, err := svc.Complete(nil, tc.params)
			if err == nil {
				t.Fatal("Complete harus menolak input tidak valid")
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("error bukan *fiber.Error: %T", err)
			}
			if fe.Code != fiber.StatusBadRequest {
				t.Errorf("code = %d, want %d", fe.Code, fiber.StatusBadRequest)
			}
		})
	}

	if gen.calls != 0 {
		t.Errorf("generator sertifikat terpanggil %d kali untuk input tidak valid", gen.calls)
	}
	if rec.calls != 0 {
		t.Errorf("employability recorder terpanggil %d kali untuk input tidak valid", rec.calls)
	}
}
