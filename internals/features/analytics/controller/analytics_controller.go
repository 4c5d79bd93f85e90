// internals/features/analytics/controller/analytics_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "magangku_backend/internals/features/analytics/dto"
	"magangku_backend/internals/features/analytics/service"
	helper "magangku_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

// =========================================================
// HEATMAP - GET /api/analytics/heatmap (staff)
// Satu query agregasi department × status; rangkuman dihitung di memori.
// =========================================================
func (h *AnalyticsController) Heatmap(c *fiber.Ctx) error {
	var cells []dto.HeatmapCell
	err := h.DB.Raw(`
		SELECT COALESCE(u.department, 'UNKNOWN') AS department,
		       a.application_status            AS status,
		       COUNT(*)                        AS total
		FROM applications a
		JOIN users u ON u.id = a.application_student_id
		GROUP BY 1, 2
		ORDER BY 1, 2`).Scan(&cells).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data analytics")
	}

	return helper.JsonOK(c, "OK", service.BuildHeatmap(cells))
}
