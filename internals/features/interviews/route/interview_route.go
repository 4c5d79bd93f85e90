package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	interviewController "magangku_backend/internals/features/interviews/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func InterviewRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &interviewController.InterviewController{DB: db}
	cal := &interviewController.CalendarController{DB: db}

	interviews := r.Group("/interviews")
	interviews.Get("/available-slots", ctrl.AvailableSlots)
	interviews.Get("/", ctrl.List)
	interviews.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("penjadwalan wawancara"), constants.EmployerAndStaff...),
		ctrl.Schedule,
	)
	interviews.Post("/:id/status", ctrl.UpdateStatus)

	events := r.Group("/calendar/events")
	events.Post("/", cal.CreateEvent)
	events.Get("/", cal.ListEvents)
	events.Delete("/:id", cal.DeleteEvent)
}
