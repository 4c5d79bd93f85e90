package model

import (
	"time"

	"github.com/google/uuid"
)

// Jenis event kalender. EXAM & ACADEMIC bersifat blocking untuk
// penjadwalan wawancara, sisanya informasional.
const (
	EventInterview = "INTERVIEW"
	EventExam      = "EXAM"
	EventAcademic  = "ACADEMIC"
	EventMeeting   = "MEETING"
	EventOther     = "OTHER"
)

type CalendarEventModel struct {
	CalendarEventID      uuid.UUID  `gorm:"column:calendar_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"calendar_event_id"`
	CalendarEventUserID  uuid.UUID  `gorm:"column:calendar_event_user_id;type:uuid;not null;index" json:"calendar_event_user_id"`
	CalendarEventTitle   string     `gorm:"column:calendar_event_title;size:200;not null" json:"calendar_event_title"`
	CalendarEventType    string     `gorm:"column:calendar_event_type;type:varchar(15);not null;default:'OTHER'" json:"calendar_event_type"`
	CalendarEventStart   time.Time  `gorm:"column:calendar_event_start;not null" json:"calendar_event_start"`
	CalendarEventEnd     time.Time  `gorm:"column:calendar_event_end;not null" json:"calendar_event_end"`
	CalendarEventRefID   *uuid.UUID `gorm:"column:calendar_event_ref_id;type:uuid" json:"calendar_event_ref_id,omitempty"`
	CalendarEventCreated time.Time  `gorm:"column:calendar_event_created_at;autoCreateTime" json:"calendar_event_created_at"`
}

func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
