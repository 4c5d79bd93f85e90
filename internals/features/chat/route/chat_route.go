package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatController "magangku_backend/internals/features/chat/controller"
)

func ChatRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &chatController.ChatController{DB: db}

	chat := r.Group("/chat")
	chat.Get("/rooms", ctrl.ListRooms)
	chat.Post("/applications/:application_id/messages", ctrl.SendMessage)
	chat.Get("/applications/:application_id/messages", ctrl.GetMessages)
}
