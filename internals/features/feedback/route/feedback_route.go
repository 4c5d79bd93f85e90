package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	applicationService "magangku_backend/internals/features/applications/service"
	certificateService "magangku_backend/internals/features/certificates/service"
	feedbackController "magangku_backend/internals/features/feedback/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func FeedbackRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &feedbackController.FeedbackController{
		DB: db,
		Completion: &applicationService.CompletionService{
			Certificates:  certificateService.NewGenerator(),
			Employability: certificateService.NewEmployabilityRecorder(),
		},
	}

	fb := r.Group("/feedback")
	fb.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("feedback"), constants.EmployerAndStaff...),
		ctrl.Submit,
	)
	fb.Get("/:application_id", ctrl.GetByApplication)
}
