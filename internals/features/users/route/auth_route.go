package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "magangku_backend/internals/features/users/controller"
	"magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := auth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
