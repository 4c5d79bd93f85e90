package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	applicationModel "magangku_backend/internals/features/applications/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type ApplyRequest struct {
	InternshipID uuid.UUID `json:"internship_id" validate:"required"`
}

// Keputusan mentor. ExpectedVersion = application_version yang terakhir
// dibaca caller (optimistic lock).
type MentorDecisionRequest struct {
	Decision        string  `json:"decision" validate:"required,oneof=approve reject"`
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
	ExpectedVersion int     `json:"expected_version" validate:"required,gte=1"`
}

func (r *MentorDecisionRequest) Normalize() {
	r.Decision = strings.ToLower(strings.TrimSpace(r.Decision))
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

// Keputusan akhir employer untuk kandidat yang tidak dilanjutkan.
type EmployerDecisionRequest struct {
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
	ExpectedVersion int     `json:"expected_version" validate:"required,gte=1"`
}

func (r *EmployerDecisionRequest) Normalize() {
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

type CompleteRequest struct {
	PerformanceRating int       `json:"performance_rating" validate:"required,gte=1,lte=5"`
	StartDate         time.Time `json:"start_date" validate:"required"`
	EndDate           time.Time `json:"end_date" validate:"required"`
	ExpectedVersion   int       `json:"expected_version" validate:"required,gte=1"`
}

type TrackingUpdateRequest struct {
	Status string  `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED SKIPPED"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

func (r *TrackingUpdateRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		if n == "" {
			r.Notes = nil
		} else {
			r.Notes = &n
		}
	}
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

type ApplicationResponse struct {
	applicationModel.ApplicationModel
	TrackingSteps []applicationModel.ApplicationTrackingModel `json:"tracking_steps,omitempty"`
}
