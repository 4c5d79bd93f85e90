// internals/features/internships/controller/search_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "magangku_backend/internals/features/internships/dto"
	model "magangku_backend/internals/features/internships/model"
	helper "magangku_backend/internals/helpers"
)

/* =========================================================
   SEARCH
   GET  /api/search?q=...&skills=a,b&department=...&stipend_min=...&sort=...
   POST /api/search  body = SearchFilter
   Filter dievaluasi sebagai SQL di tabel internships.
========================================================= */

func (h *InternshipController) SearchGet(c *fiber.Ctx) error {
	f := dto.SearchFilter{
		Q:          c.Query("q"),
		Department: c.Query("department"),
		StipendMin: c.QueryInt("stipend_min", 0),
		Sort:       c.Query("sort"),
	}
	if raw := strings.TrimSpace(c.Query("skills")); raw != "" {
		f.Skills = strings.Split(raw, ",")
	}
	return h.search(c, f)
}

func (h *InternshipController) SearchPost(c *fiber.Ctx) error {
	var f dto.SearchFilter
	if err := c.BodyParser(&f); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	return h.search(c, f)
}

func (h *InternshipController) search(c *fiber.Ctx, f dto.SearchFilter) error {
	f.Normalize()
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.InternshipModel{}).
		Where("internship_is_active = TRUE AND internship_is_verified = TRUE")

	if f.Q != "" {
		needle := "%" + f.Q + "%"
		q = q.Where(h.DB.
			Where("internship_title ILIKE ?", needle).
			Or("internship_description ILIKE ?", needle))
	}
	if len(f.Skills) > 0 {
		// overlap: minimal satu skill cocok
		q = q.Where("internship_skills && ?", pq.StringArray(f.Skills))
	}
	if f.Department != "" {
		q = q.Where("internship_department = ?", f.Department)
	}
	if f.StipendMin > 0 {
		q = q.Where("internship_stipend_max >= ?", f.StipendMin)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung hasil pencarian")
	}

	switch f.Sort {
	case "stipend_desc":
		q = q.Order("internship_stipend_max DESC")
	case "stipend_asc":
		q = q.Order("internship_stipend_min ASC")
	case "newest":
		q = q.Order("internship_created_at DESC")
	default: // relevance: match judul didahulukan
		if f.Q != "" {
			q = q.Clauses(clause.OrderBy{Expression: gorm.Expr(
				"CASE WHEN internship_title ILIKE ? THEN 0 ELSE 1 END, internship_created_at DESC", "%"+f.Q+"%",
			)})
		} else {
			q = q.Order("internship_created_at DESC")
		}
	}

	var rows []model.InternshipModel
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil pencarian")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
