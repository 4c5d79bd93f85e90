package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"magangku_backend/internals/constants"
	model "magangku_backend/internals/features/applications/model"
)

// Guard di depan AdvanceStatus jalan sebelum menyentuh DB, jadi nil tx
// aman untuk kasus-kasus gagal di sini.
func TestAdvanceStatusGuards(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name     string
		role     string
		to       string
		wantCode int
	}{
		{"status asing ditolak", constants.RoleStaff, "WAITING", fiber.StatusBadRequest},
		{"student tidak boleh approve", constants.RoleStudent, model.StatusMentorApproved, fiber.StatusForbidden},
		{"mentor tidak boleh offer", constants.RoleMentor, model.StatusOffered, fiber.StatusForbidden},
		{"employer tidak boleh reject mentor", constants.RoleEmployer, model.StatusMentorRejected, fiber.StatusForbidden},
		{"role asing ditolak", "admin", model.StatusOffered, fiber.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AdvanceStatus(nil, id, 1, tc.role, tc.to, nil)
			if err == nil {
				t.Fatal("AdvanceStatus harus menolak sebelum menyentuh DB")
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
