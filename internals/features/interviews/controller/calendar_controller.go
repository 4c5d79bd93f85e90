// internals/features/interviews/controller/calendar_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "magangku_backend/internals/features/interviews/dto"
	model "magangku_backend/internals/features/interviews/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type CalendarController struct {
	DB *gorm.DB
}

// =========================================================
// CREATE EVENT - POST /api/calendar/events
// Student mencatat agenda sendiri (ujian, jadwal kuliah, dll).
// =========================================================
func (h *CalendarController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.EndTime.After(req.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "end_time harus setelah start_time")
	}

	ev := model.CalendarEventModel{
		CalendarEventUserID: userID,
		CalendarEventTitle:  req.EventTitle,
		CalendarEventType:   req.EventType,
		CalendarEventStart:  req.StartTime,
		CalendarEventEnd:    req.EndTime,
	}
	if err := h.DB.Create(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan event")
	}
	return helper.JsonCreated(c, "Event kalender tersimpan", ev)
}

// =========================================================
// LIST EVENTS - GET /api/calendar/events?from=&to=
// =========================================================
func (h *CalendarController) ListEvents(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	q := h.DB.Model(&model.CalendarEventModel{}).
		Where("calendar_event_user_id = ?", userID)

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus format RFC3339")
		}
		q = q.Where("calendar_event_end > ?", from)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus format RFC3339")
		}
		q = q.Where("calendar_event_start < ?", to)
	}

	var events []model.CalendarEventModel
	if err := q.Order("calendar_event_start ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil event")
	}
	return helper.JsonOK(c, "OK", events)
}

// =========================================================
// DELETE EVENT - DELETE /api/calendar/events/:id
// =========================================================
func (h *CalendarController) DeleteEvent(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id := strings.TrimSpace(c.Params("id"))
	res := h.DB.Where("calendar_event_id = ? AND calendar_event_user_id = ?", id, userID).
		Delete(&model.CalendarEventModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Event kalender dihapus", fiber.Map{"calendar_event_id": id})
}
