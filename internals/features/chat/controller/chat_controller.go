// internals/features/chat/controller/chat_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	appModel "magangku_backend/internals/features/applications/model"
	dto "magangku_backend/internals/features/chat/dto"
	model "magangku_backend/internals/features/chat/model"
	helper "magangku_backend/internals/helpers"
	helperAuth "magangku_backend/internals/helpers/auth"
)

type ChatController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// SEND - POST /api/chat/applications/:application_id/messages
// Room dibuat lazy saat pesan pertama. Hanya student pemilik lamaran,
// mentor yang ditugaskan, atau staff.
// =========================================================
func (h *ChatController) SendMessage(c *fiber.Ctx) error {
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

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var msg model.ChatMessageModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		room, err := h.resolveRoom(tx, appID, role, userID, true)
		if err != nil {
			return err
		}

		msg = model.ChatMessageModel{
			MessageRoomID:   room.RoomID,
			MessageSenderID: userID,
			MessageBody:     req.Body,
		}
		if err := tx.Create(&msg).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengirim pesan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Pesan terkirim", msg)
}

// =========================================================
// HISTORY - GET /api/chat/applications/:application_id/messages
// Mengambil seluruh riwayat dan menandai pesan lawan bicara sudah dibaca
// (bulk mark-read) dalam satu transaksi.
// =========================================================
func (h *ChatController) GetMessages(c *fiber.Ctx) error {
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

	var messages []model.ChatMessageModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		room, err := h.resolveRoom(tx, appID, role, userID, false)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.ChatMessageModel{}).
			Where("message_room_id = ? AND message_sender_id <> ? AND message_is_read = false",
				room.RoomID, userID).
			Update("message_is_read", true).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai pesan dibaca")
		}

		if err := tx.Where("message_room_id = ?", room.RoomID).
			Order("message_created_at ASC").
			Find(&messages).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pesan")
		}
		return nil
	})
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "OK", messages)
}

// =========================================================
// MY ROOMS - GET /api/chat/rooms
// =========================================================
func (h *ChatController) ListRooms(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	q := h.DB.Model(&model.ChatRoomModel{})
	switch role {
	case constants.RoleStudent:
		q = q.Where("room_student_id = ?", userID)
	case constants.RoleMentor:
		q = q.Where("room_mentor_id = ?", userID)
	case constants.RoleStaff:
		// staff melihat semua
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak punya akses chat")
	}

	var rooms []model.ChatRoomModel
	if err := q.Order("room_created_at DESC").Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil room")
	}
	return helper.JsonOK(c, "OK", rooms)
}

/* =========================================================
   Internal
========================================================= */

// resolveRoom memuat room untuk lamaran; kalau createIfMissing dan belum ada,
// room dibuat dari (student, mentor) lamaran. Mentor harus sudah ditugaskan.
func (h *ChatController) resolveRoom(tx *gorm.DB, appID uuid.UUID, role string, userID uuid.UUID, createIfMissing bool) (*model.ChatRoomModel, error) {
	var app appModel.ApplicationModel
	if err := tx.First(&app, "application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lamaran tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil lamaran")
	}
	if app.ApplicationMentorID == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Lamaran belum punya mentor, chat belum tersedia")
	}

	switch role {
	case constants.RoleStaff:
	case constants.RoleStudent:
		if app.ApplicationStudentID != userID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan peserta chat ini")
		}
	case constants.RoleMentor:
		if *app.ApplicationMentorID != userID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda bukan peserta chat ini")
		}
	default:
		return nil, fiber.NewError(fiber.StatusForbidden, "Role tidak punya akses chat")
	}

	var room model.ChatRoomModel
	err := tx.First(&room, "room_application_id = ?", appID).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil room")
	}
	if !createIfMissing {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada percakapan untuk lamaran ini")
	}

	room = model.ChatRoomModel{
		RoomApplicationID: appID,
		RoomStudentID:     app.ApplicationStudentID,
		RoomMentorID:      *app.ApplicationMentorID,
	}
	if err := tx.Create(&room).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "uq_chat_room_application") ||
			strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			// race dengan pengirim lain: ambil room yang menang
			if err2 := tx.First(&room, "room_application_id = ?", appID).Error; err2 == nil {
				return &room, nil
			}
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat room")
	}
	return &room, nil
}
