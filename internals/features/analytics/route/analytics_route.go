package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	analyticsController "magangku_backend/internals/features/analytics/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func AnalyticsRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &analyticsController.AnalyticsController{DB: db}

	r.Get("/analytics/heatmap",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("analytics"), constants.StaffOnly...),
		ctrl.Heatmap,
	)
}
