package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ScheduleInterviewRequest struct {
	ApplicationID   uuid.UUID `json:"application_id" validate:"required"`
	InterviewerID   uuid.UUID `json:"interviewer_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_datetime" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=15,lte=240"`
	Mode            string    `json:"mode" validate:"omitempty,oneof=ONLINE OFFLINE PHONE"`
	MeetingLink     *string   `json:"meeting_link" validate:"omitempty,url"`
	Location        *string   `json:"location" validate:"omitempty,max=200"`
	InterviewType   string    `json:"interview_type" validate:"omitempty,oneof=TECHNICAL HR MANAGER FINAL"`
	Notes           *string   `json:"notes" validate:"omitempty,max=1000"`
	ExpectedVersion int       `json:"expected_version" validate:"required,gte=1"`
}

func (r *ScheduleInterviewRequest) Normalize() {
	r.Mode = strings.ToUpper(strings.TrimSpace(r.Mode))
	if r.Mode == "" {
		r.Mode = "ONLINE"
	}
	r.InterviewType = strings.ToUpper(strings.TrimSpace(r.InterviewType))
	if r.InterviewType == "" {
		r.InterviewType = "TECHNICAL"
	}
	if r.DurationMinutes == 0 {
		r.DurationMinutes = 60
	}
}

// Update status wawancara. ExpectedVersion wajib saat status=COMPLETED
// karena aggregate lamaran ikut maju ke INTERVIEWED.
type InterviewStatusUpdateRequest struct {
	Status          string  `json:"status" validate:"required,oneof=CONFIRMED CANCELLED COMPLETED RESCHEDULED"`
	Feedback        *string `json:"feedback" validate:"omitempty,max=2000"`
	Rating          *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ExpectedVersion int     `json:"expected_version" validate:"omitempty,gte=1"`
}

func (r *InterviewStatusUpdateRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
	if r.Feedback != nil {
		f := strings.TrimSpace(*r.Feedback)
		if f == "" {
			r.Feedback = nil
		} else {
			r.Feedback = &f
		}
	}
}
