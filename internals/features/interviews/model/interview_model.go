package model

import (
	"time"

	"github.com/google/uuid"
)

// Status jadwal wawancara
const (
	InterviewScheduled   = "SCHEDULED"
	InterviewConfirmed   = "CONFIRMED"
	InterviewCancelled   = "CANCELLED"
	InterviewCompleted   = "COMPLETED"
	InterviewRescheduled = "RESCHEDULED"
)

// Jenis wawancara
const (
	InterviewTypeTechnical = "TECHNICAL"
	InterviewTypeHR        = "HR"
	InterviewTypeManager   = "MANAGER"
	InterviewTypeFinal     = "FINAL"
)

type InterviewScheduleModel struct {
	InterviewID              uuid.UUID `gorm:"column:interview_id;type:uuid;default:gen_random_uuid();primaryKey" json:"interview_id"`
	InterviewApplicationID   uuid.UUID `gorm:"column:interview_application_id;type:uuid;not null;index" json:"interview_application_id"`
	InterviewInterviewerID   uuid.UUID `gorm:"column:interview_interviewer_id;type:uuid;not null;index" json:"interview_interviewer_id"`
	InterviewStudentID       uuid.UUID `gorm:"column:interview_student_id;type:uuid;not null;index" json:"interview_student_id"`
	InterviewScheduledAt     time.Time `gorm:"column:interview_scheduled_at;not null" json:"interview_scheduled_at"`
	InterviewDurationMinutes int       `gorm:"column:interview_duration_minutes;not null;default:60" json:"interview_duration_minutes"`
	InterviewMode            string    `gorm:"column:interview_mode;type:varchar(10);not null;default:'ONLINE'" json:"interview_mode"`
	InterviewMeetingLink     *string   `gorm:"column:interview_meeting_link;size:500" json:"interview_meeting_link,omitempty"`
	InterviewLocation        *string   `gorm:"column:interview_location;size:200" json:"interview_location,omitempty"`
	InterviewStatus          string    `gorm:"column:interview_status;type:varchar(15);not null;default:'SCHEDULED'" json:"interview_status"`
	InterviewType            string    `gorm:"column:interview_type;type:varchar(15);not null;default:'TECHNICAL'" json:"interview_type"`
	InterviewNotes           *string   `gorm:"column:interview_notes;type:text" json:"interview_notes,omitempty"`
	InterviewFeedback        *string   `gorm:"column:interview_feedback;type:text" json:"interview_feedback,omitempty"`
	InterviewRating          *int      `gorm:"column:interview_rating" json:"interview_rating,omitempty"`
	InterviewCreatedAt       time.Time `gorm:"column:interview_created_at;autoCreateTime" json:"interview_created_at"`
	InterviewUpdatedAt       time.Time `gorm:"column:interview_updated_at;autoUpdateTime" json:"interview_updated_at"`
}

func (InterviewScheduleModel) TableName() string {
	return "interview_schedules"
}
