package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	internshipController "magangku_backend/internals/features/internships/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// Publik: list/detail/search tanpa login.
func InternshipPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &internshipController.InternshipController{DB: db}

	r.Get("/internships", ctrl.List)
	r.Get("/internships/:id", ctrl.GetByID)
	r.Get("/search", ctrl.SearchGet)
	r.Post("/search", ctrl.SearchPost)
}

// Privat: mutasi lowongan (employer/staff).
func InternshipPrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &internshipController.InternshipController{DB: db}

	group := r.Group("/internships",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("lowongan"), constants.EmployerAndStaff...),
	)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)

	r.Post("/internships/:id/verify",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("verifikasi lowongan"), constants.StaffOnly...),
		ctrl.Verify,
	)
}
