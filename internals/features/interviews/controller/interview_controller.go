// internals/features/interviews/controller/interview_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
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
	dto "magangku_backend/internals/features/interviews/dto"
	model "magangku_backend/internals/features/interviews/model"
	"magangku_backend/internals/features/interviews/service"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type InterviewController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// AVAILABLE SLOTS - GET /api/interviews/available-slots
// ?interviewer_id=&from=&duration_minutes=
// =========================================================
func (h *InterviewController) AvailableSlots(c *fiber.Ctx) error {
	interviewerID, err := uuid.Parse(strings.TrimSpace(c.Query("interviewer_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "interviewer_id tidak valid")
	}

	from := time.Now()
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus format RFC3339")
		}
		from = parsed
	}

	durationMin := 60
	if raw := strings.TrimSpace(c.Query("duration_minutes")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 15 || n > 240 {
			return helper.JsonError(c, fiber.StatusBadRequest, "duration_minutes harus 15-240")
		}
		durationMin = n
	}

	events, err := h.loadEvents(interviewerID, from)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kalender interviewer")
	}

	slots := service.SuggestSlots(events, from, time.Duration(durationMin)*time.Minute, 10)
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format(time.RFC3339))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"interviewer_id":   interviewerID,
		"duration_minutes": durationMin,
		"available_slots":  out,
	})
}

// =========================================================
// SCHEDULE - POST /api/interviews (employer/staff)
// Cek konflik kalender interviewer dulu; EXAM/ACADEMIC menolak total (409
// plus saran slot), konflik lain ikut disertakan sebagai peringatan.
// =========================================================
func (h *InterviewController) Schedule(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.ScheduledAt.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jadwal wawancara harus di masa depan")
	}

	var app appModel.ApplicationModel
	if err := h.DB.First(&app, "application_id = ?", req.ApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}

	if role != constants.RoleStaff {
		if err := h.ensureEmployerOwnsApplication(userID, app.ApplicationInternshipID); err != nil {
			return err
		}
	}

	start := req.ScheduledAt
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	events, err := h.loadEvents(req.InterviewerID, start)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kalender interviewer")
	}
	conflict := service.CheckConflicts(events, start, end, 5)
	if conflict.Blocking {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":    fiber.StatusConflict,
			"status":  "error",
			"message": "Jadwal bentrok dengan agenda yang tidak bisa digeser",
			"data":    conflict,
		})
	}

	interview := model.InterviewScheduleModel{
		InterviewApplicationID:   app.ApplicationID,
		InterviewInterviewerID:   req.InterviewerID,
		InterviewStudentID:       app.ApplicationStudentID,
		InterviewScheduledAt:     start,
		InterviewDurationMinutes: req.DurationMinutes,
		InterviewMode:            req.Mode,
		InterviewMeetingLink:     req.MeetingLink,
		InterviewLocation:        req.Location,
		InterviewStatus:          model.InterviewScheduled,
		InterviewType:            req.InterviewType,
		InterviewNotes:           req.Notes,
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if service.IsReschedule(app.ApplicationStatus) {
			// Status sudah benar, cukup naikkan versi dan tandai jadwal
			// lama supaya tidak ada dua wawancara aktif.
			res := tx.Model(&appModel.ApplicationModel{}).
				Where("application_id = ? AND application_version = ?", app.ApplicationID, req.ExpectedVersion).
				Update("application_version", gorm.Expr("application_version + 1"))
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui lamaran")
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusConflict, "Versi lamaran sudah berubah, muat ulang dulu")
			}
			if err := tx.Model(&model.InterviewScheduleModel{}).
				Where("interview_application_id = ? AND interview_status IN ?",
					app.ApplicationID, service.OpenInterviewStatuses).
				Update("interview_status", model.InterviewRescheduled).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai wawancara lama")
			}
		} else {
			if _, err := appService.AdvanceStatus(tx, app.ApplicationID, req.ExpectedVersion,
				role, appModel.StatusInterviewScheduled, nil); err != nil {
				return err
			}
		}
		if err := tx.Create(&interview).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan jadwal wawancara")
		}
		if err := appService.CompleteStepByName(tx, app.ApplicationID,
			appModel.StepNameInterviewScheduling, &userID, nil); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
		}

		// event kalender untuk interviewer & student
		title := "Wawancara " + strings.ToLower(req.InterviewType)
		for _, uid := range []uuid.UUID{req.InterviewerID, app.ApplicationStudentID} {
			ev := model.CalendarEventModel{
				CalendarEventUserID: uid,
				CalendarEventTitle:  title,
				CalendarEventType:   model.EventInterview,
				CalendarEventStart:  start,
				CalendarEventEnd:    end,
				CalendarEventRefID:  &interview.InterviewID,
			}
			if err := tx.Create(&ev).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan event kalender")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[INFO] wawancara %s dijadwalkan untuk lamaran %s", interview.InterviewID, app.ApplicationID)
	return helper.JsonCreated(c, "Wawancara berhasil dijadwalkan", fiber.Map{
		"interview": interview,
		"conflicts": conflict.Conflicts,
	})
}

// =========================================================
// LIST - GET /api/interviews (scope per role)
// =========================================================
func (h *InterviewController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := h.DB.Model(&model.InterviewScheduleModel{})

	switch role {
	case constants.RoleStudent:
		q = q.Where("interview_student_id = ?", userID)
	case constants.RoleMentor:
		q = q.Where("interview_interviewer_id = ?", userID)
	case constants.RoleEmployer:
		q = q.Where(`interview_application_id IN
			(SELECT application_id FROM applications WHERE application_internship_id IN
				(SELECT internship_id FROM internships WHERE internship_employer_id = ?))`, userID)
	case constants.RoleStaff:
		// staff melihat semua
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak dikenali")
	}

	if st := strings.ToUpper(strings.TrimSpace(c.Query("status"))); st != "" {
		q = q.Where("interview_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []model.InterviewScheduleModel
	if err := q.Order("interview_scheduled_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =========================================================
// UPDATE STATUS - POST /api/interviews/:id/status
// COMPLETED ikut memajukan lamaran → INTERVIEWED dalam transaksi yang sama.
// =========================================================
func (h *InterviewController) UpdateStatus(c *fiber.Ctx) error {
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

	var req dto.InterviewStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Status == model.InterviewCompleted && req.ExpectedVersion < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "expected_version wajib saat menyelesaikan wawancara")
	}

	var interview model.InterviewScheduleModel
	if err := h.DB.First(&interview, "interview_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal wawancara tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if role != constants.RoleStaff && interview.InterviewInterviewerID != userID {
		var app appModel.ApplicationModel
		if err := h.DB.First(&app, "application_id = ?", interview.InterviewApplicationID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil lamaran")
		}
		if err := h.ensureEmployerOwnsApplication(userID, app.ApplicationInternshipID); err != nil {
			return err
		}
	}

	if interview.InterviewStatus == model.InterviewCompleted ||
		interview.InterviewStatus == model.InterviewCancelled {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status wawancara sudah final")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"interview_status": req.Status}
		if req.Feedback != nil {
			updates["interview_feedback"] = *req.Feedback
		}
		if req.Rating != nil {
			updates["interview_rating"] = *req.Rating
		}
		if err := tx.Model(&interview).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status wawancara")
		}

		if req.Status == model.InterviewCompleted {
			if _, err := appService.AdvanceStatus(tx, interview.InterviewApplicationID,
				req.ExpectedVersion, role, appModel.StatusInterviewed, nil); err != nil {
				return err
			}
			if err := appService.CompleteStepByName(tx, interview.InterviewApplicationID,
				appModel.StepNameInterview, &userID, req.Feedback); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal update tracking step")
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonUpdated(c, "Status wawancara diperbarui", interview)
}

/* =========================================================
   Internal
========================================================= */

// loadEvents ambil semua event user dalam horizon penjadwalan dari `from`.
func (h *InterviewController) loadEvents(userID uuid.UUID, from time.Time) ([]model.CalendarEventModel, error) {
	var events []model.CalendarEventModel
	horizon := from.Add(8 * 24 * time.Hour)
	err := h.DB.
		Where("calendar_event_user_id = ? AND calendar_event_end > ? AND calendar_event_start < ?",
			userID, from.Add(-24*time.Hour), horizon).
		Order("calendar_event_start ASC").
		Find(&events).Error
	return events, err
}

func (h *InterviewController) ensureEmployerOwnsApplication(employerID, internshipID uuid.UUID) error {
	var cnt int64
	err := h.DB.Model(&internshipModel.InternshipModel{}).
		Where("internship_id = ? AND internship_employer_id = ?", internshipID, employerID).
		Count(&cnt).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kepemilikan lowongan")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusForbidden, "Hanya employer pemilik lowongan yang boleh mengatur wawancara")
	}
	return nil
}
