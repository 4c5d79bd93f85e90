package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"magangku_backend/internals/constants"
	appModel "magangku_backend/internals/features/applications/model"
)

func TestValidateSubmission(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		owns     bool
		status   string
		exists   bool
		wantCode int // 0 = lolos
	}{
		{"employer pemilik, status offered", constants.RoleEmployer, true, appModel.StatusOffered, false, 0},
		{"employer pemilik, status completed", constants.RoleEmployer, true, appModel.StatusCompleted, false, 0},
		{"staff tanpa kepemilikan", constants.RoleStaff, false, appModel.StatusOffered, false, 0},
		{"employer bukan pemilik", constants.RoleEmployer, false, appModel.StatusOffered, false, fiber.StatusForbidden},
		{"status masih applied", constants.RoleEmployer, true, appModel.StatusApplied, false, fiber.StatusBadRequest},
		{"status masih interviewed", constants.RoleEmployer, true, appModel.StatusInterviewed, false, fiber.StatusBadRequest},
		{"feedback duplikat", constants.RoleEmployer, true, appModel.StatusOffered, true, fiber.StatusConflict},
		{"duplikat oleh staff", constants.RoleStaff, false, appModel.StatusCompleted, true, fiber.StatusConflict},
		// kepemilikan dicek lebih dulu daripada status dan duplikat
		{"bukan pemilik plus status salah", constants.RoleEmployer, false, appModel.StatusApplied, true, fiber.StatusForbidden},
		// status dicek lebih dulu daripada duplikat
		{"status salah plus duplikat", constants.RoleEmployer, true, appModel.StatusApplied, true, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmission(tc.role, tc.owns, tc.status, tc.exists)
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("harus lolos, dapat error: %v", err)
				}
				return
			}
			fe, ok := err.(*fiber.Error)
			if !ok {
				t.Fatalf("harus *fiber.Error, dapat %T", err)
			}
			if fe.Code != tc.wantCode {
				t.Fatalf("kode = %d, harusnya %d", fe.Code, tc.wantCode)
			}
		})
	}
}

func TestCompletionWindow(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	t.Run("tanpa start date pakai now", func(t *testing.T) {
		start, end := CompletionWindow(nil, now)
		if !start.Equal(now) || !end.Equal(now) {
			t.Fatalf("start=%v end=%v, harusnya keduanya %v", start, end, now)
		}
	})

	t.Run("start date lampau dipakai apa adanya", func(t *testing.T) {
		past := now.AddDate(0, -1, 0)
		start, end := CompletionWindow(&past, now)
		if !start.Equal(past) {
			t.Fatalf("start = %v, harusnya %v", start, past)
		}
		if !end.Equal(now) {
			t.Fatalf("end = %v, harusnya %v", end, now)
		}
	})

	t.Run("start date masa depan dipangkas ke now", func(t *testing.T) {
		future := now.AddDate(0, 0, 14)
		start, end := CompletionWindow(&future, now)
		if !start.Equal(now) {
			t.Fatalf("start = %v, harusnya dipangkas ke %v", start, now)
		}
		if start.After(end) {
			t.Fatal("start tidak boleh setelah end")
		}
	})
}
