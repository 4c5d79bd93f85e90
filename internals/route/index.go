// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "magangku_backend/internals/features/analytics/route"
	applicationRoute "magangku_backend/internals/features/applications/route"
	certificateRoute "magangku_backend/internals/features/certificates/route"
	chatRoute "magangku_backend/internals/features/chat/route"
	feedbackRoute "magangku_backend/internals/features/feedback/route"
	internshipRoute "magangku_backend/internals/features/internships/route"
	interviewRoute "magangku_backend/internals/features/interviews/route"
	offerRoute "magangku_backend/internals/features/offers/route"
	authRoute "magangku_backend/internals/features/users/route"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh endpoint:
//   - /health            tanpa auth
//   - /api/auth/*        register/login (+ rate limiter per route)
//   - /api/public/*      katalog lowongan, search, verifikasi sertifikat
//   - /api/*             semua fitur lain di belakang JWT middleware
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	public := api.Group("/public")
	internshipRoute.InternshipPublicRoutes(public, db)
	certificateRoute.CertificatePublicRoutes(public, db)

	private := api.Group("", authMiddleware.AuthMiddleware(db))
	internshipRoute.InternshipPrivateRoutes(private, db)
	applicationRoute.ApplicationRoutes(private, db)
	interviewRoute.InterviewRoutes(private, db)
	offerRoute.OfferRoutes(private, db)
	feedbackRoute.FeedbackRoutes(private, db)
	chatRoute.ChatRoutes(private, db)
	analyticsRoute.AnalyticsRoutes(private, db)
	certificateRoute.CertificatePrivateRoutes(private, db)
}
