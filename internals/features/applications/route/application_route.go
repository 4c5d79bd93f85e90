package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	applicationController "magangku_backend/internals/features/applications/controller"
	applicationService "magangku_backend/internals/features/applications/service"
	certificateService "magangku_backend/internals/features/certificates/service"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func ApplicationRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &applicationController.ApplicationController{
		DB: db,
		Completion: &applicationService.CompletionService{
			Certificates:  certificateService.NewGenerator(),
			Employability: certificateService.NewEmployabilityRecorder(),
		},
	}

	apps := r.Group("/applications")

	apps.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("lamaran"), constants.StudentOnly...),
		ctrl.Apply,
	)
	apps.Get("/", ctrl.List)
	apps.Get("/:id", ctrl.GetByID)

	apps.Post("/:id/mentor-decision",
		authMiddleware.OnlyRoles(constants.RoleErrorMentor("keputusan mentor"), constants.MentorOnly...),
		ctrl.MentorDecision,
	)
	apps.Post("/:id/employer-decision",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("keputusan employer"), constants.EmployerAndStaff...),
		ctrl.EmployerDecision,
	)
	apps.Post("/:id/complete",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("penyelesaian internship"), constants.EmployerAndStaff...),
		ctrl.Complete,
	)
	apps.Patch("/:id/tracking/:step_id",
		authMiddleware.OnlyRoles("", constants.RoleMentor, constants.RoleEmployer, constants.RoleStaff),
		ctrl.UpdateTrackingStep,
	)
}
