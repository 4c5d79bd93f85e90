package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	offerController "magangku_backend/internals/features/offers/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func OfferRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &offerController.OfferController{DB: db}

	offers := r.Group("/offers")
	offers.Get("/", ctrl.List)
	offers.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("pembuatan offer"), constants.EmployerAndStaff...),
		ctrl.MakeOffer,
	)
	offers.Post("/:id/respond",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("respons offer"), constants.StudentOnly...),
		ctrl.Respond,
	)
	offers.Post("/:id/withdraw",
		authMiddleware.OnlyRoles(constants.RoleErrorEmployer("penarikan offer"), constants.EmployerAndStaff...),
		ctrl.Withdraw,
	)
}
