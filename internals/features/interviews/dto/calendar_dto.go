package dto

import (
	"strings"
	"time"
)

type CreateCalendarEventRequest struct {
	EventTitle string    `json:"event_title" validate:"required,min=3,max=150"`
	EventType  string    `json:"event_type" validate:"required,oneof=INTERVIEW EXAM ACADEMIC MEETING OTHER"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	Notes      *string   `json:"notes" validate:"omitempty,max=500"`
}

func (r *CreateCalendarEventRequest) Normalize() {
	r.EventTitle = strings.TrimSpace(r.EventTitle)
	r.EventType = strings.ToUpper(strings.TrimSpace(r.EventType))
}
