package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "magangku_backend/internals/features/certificates/controller"
)

func CertificatePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &certificateController.CertificateController{DB: db}
	r.Get("/certificates/verify/:serial", ctrl.GetBySerial)
}

func CertificatePrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &certificateController.CertificateController{DB: db}
	r.Get("/certificates", ctrl.List)
}
