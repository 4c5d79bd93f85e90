package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	internshipModel "magangku_backend/internals/features/internships/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type InternshipCreateRequest struct {
	InternshipTitle       string     `json:"internship_title" validate:"required,min=3,max=150"`
	InternshipDescription string     `json:"internship_description" validate:"required"`
	InternshipDepartment  string     `json:"internship_department" validate:"required,max=100"`
	InternshipSkills      []string   `json:"internship_skills" validate:"omitempty,dive,min=1,max=60"`
	InternshipStipendMin  int        `json:"internship_stipend_min" validate:"gte=0"`
	InternshipStipendMax  int        `json:"internship_stipend_max" validate:"gte=0,gtefield=InternshipStipendMin"`
	InternshipLocation    *string    `json:"internship_location" validate:"omitempty,max=150"`
	InternshipMode        string     `json:"internship_mode" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	InternshipDeadline    *time.Time `json:"internship_deadline"`
}

func (r *InternshipCreateRequest) Normalize() {
	r.InternshipTitle = strings.TrimSpace(r.InternshipTitle)
	r.InternshipDescription = strings.TrimSpace(r.InternshipDescription)
	r.InternshipDepartment = strings.TrimSpace(r.InternshipDepartment)
	r.InternshipMode = strings.ToUpper(strings.TrimSpace(r.InternshipMode))
	if r.InternshipMode == "" {
		r.InternshipMode = "ONSITE"
	}
	skills := make([]string, 0, len(r.InternshipSkills))
	for _, s := range r.InternshipSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, strings.ToLower(s))
		}
	}
	r.InternshipSkills = skills
}

func (r *InternshipCreateRequest) ToModel(employerID uuid.UUID) *internshipModel.InternshipModel {
	return &internshipModel.InternshipModel{
		InternshipEmployerID:  employerID,
		InternshipTitle:       r.InternshipTitle,
		InternshipDescription: r.InternshipDescription,
		InternshipDepartment:  r.InternshipDepartment,
		InternshipSkills:      pq.StringArray(r.InternshipSkills),
		InternshipStipendMin:  r.InternshipStipendMin,
		InternshipStipendMax:  r.InternshipStipendMax,
		InternshipLocation:    r.InternshipLocation,
		InternshipMode:        r.InternshipMode,
		InternshipDeadline:    r.InternshipDeadline,
	}
}

// Update pakai pointer semua: nil = tidak diubah.
type InternshipUpdateRequest struct {
	InternshipTitle       *string    `json:"internship_title" validate:"omitempty,min=3,max=150"`
	InternshipDescription *string    `json:"internship_description" validate:"omitempty"`
	InternshipDepartment  *string    `json:"internship_department" validate:"omitempty,max=100"`
	InternshipSkills      []string   `json:"internship_skills" validate:"omitempty,dive,min=1,max=60"`
	InternshipStipendMin  *int       `json:"internship_stipend_min" validate:"omitempty,gte=0"`
	InternshipStipendMax  *int       `json:"internship_stipend_max" validate:"omitempty,gte=0"`
	InternshipLocation    *string    `json:"internship_location" validate:"omitempty,max=150"`
	InternshipMode        *string    `json:"internship_mode" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	InternshipDeadline    *time.Time `json:"internship_deadline"`
	InternshipIsActive    *bool      `json:"internship_is_active"`
}

func (r *InternshipUpdateRequest) Apply(m *internshipModel.InternshipModel) {
	if r.InternshipTitle != nil {
		m.InternshipTitle = strings.TrimSpace(*r.InternshipTitle)
	}
	if r.InternshipDescription != nil {
		m.InternshipDescription = strings.TrimSpace(*r.InternshipDescription)
	}
	if r.InternshipDepartment != nil {
		m.InternshipDepartment = strings.TrimSpace(*r.InternshipDepartment)
	}
	if r.InternshipSkills != nil {
		skills := make([]string, 0, len(r.InternshipSkills))
		for _, s := range r.InternshipSkills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, strings.ToLower(s))
			}
		}
		m.InternshipSkills = pq.StringArray(skills)
	}
	if r.InternshipStipendMin != nil {
		m.InternshipStipendMin = *r.InternshipStipendMin
	}
	if r.InternshipStipendMax != nil {
		m.InternshipStipendMax = *r.InternshipStipendMax
	}
	if r.InternshipLocation != nil {
		m.InternshipLocation = r.InternshipLocation
	}
	if r.InternshipMode != nil {
		m.InternshipMode = strings.ToUpper(strings.TrimSpace(*r.InternshipMode))
	}
	if r.InternshipDeadline != nil {
		m.InternshipDeadline = r.InternshipDeadline
	}
	if r.InternshipIsActive != nil {
		m.InternshipIsActive = *r.InternshipIsActive
	}
}

/* =========================================================
   2) SEARCH FILTER
   Dipakai GET /api/search (query param) dan POST /api/search (body).
========================================================= */

type SearchFilter struct {
	Q          string   `json:"query" query:"q"`
	Skills     []string `json:"skills" query:"skills"`
	Department string   `json:"department" query:"department"`
	StipendMin int      `json:"stipend_min" query:"stipend_min"`
	Sort       string   `json:"sort" query:"sort"` // relevance|stipend_desc|stipend_asc|newest
}

func (f *SearchFilter) Normalize() {
	f.Q = strings.TrimSpace(f.Q)
	f.Department = strings.TrimSpace(f.Department)
	f.Sort = strings.ToLower(strings.TrimSpace(f.Sort))
	switch f.Sort {
	case "stipend_desc", "stipend_asc", "newest", "relevance":
	default:
		f.Sort = "relevance"
	}
	if f.StipendMin < 0 {
		f.StipendMin = 0
	}
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			skills = append(skills, s)
		}
	}
	f.Skills = skills
}
