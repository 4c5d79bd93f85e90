package dto

import (
	"strings"

	"github.com/google/uuid"
)

type SubmitFeedbackRequest struct {
	ApplicationID   uuid.UUID `json:"application_id" validate:"required"`
	Rating          int       `json:"rating" validate:"required,gte=1,lte=5"`
	Technical       *int      `json:"technical" validate:"omitempty,gte=1,lte=5"`
	Communication   *int      `json:"communication" validate:"omitempty,gte=1,lte=5"`
	Professional    *int      `json:"professional" validate:"omitempty,gte=1,lte=5"`
	Comments        string    `json:"comments" validate:"required,min=10,max=2000"`
	Strengths       *string   `json:"strengths" validate:"omitempty,max=1000"`
	Improvements    *string   `json:"improvements" validate:"omitempty,max=1000"`
	ExpectedVersion int       `json:"expected_version" validate:"required,gte=1"`
}

func (r *SubmitFeedbackRequest) Normalize() {
	r.Comments = strings.TrimSpace(r.Comments)
	if r.Strengths != nil {
		s := strings.TrimSpace(*r.Strengths)
		if s == "" {
			r.Strengths = nil
		} else {
			r.Strengths = &s
		}
	}
	if r.Improvements != nil {
		s := strings.TrimSpace(*r.Improvements)
		if s == "" {
			r.Improvements = nil
		} else {
			r.Improvements = &s
		}
	}
}
