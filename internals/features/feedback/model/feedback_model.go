package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu feedback per lamaran (unique index di feedback_application_id).
type FeedbackModel struct {
	FeedbackID            uuid.UUID `gorm:"column:feedback_id;type:uuid;default:gen_random_uuid();primaryKey" json:"feedback_id"`
	FeedbackApplicationID uuid.UUID `gorm:"column:feedback_application_id;type:uuid;not null;uniqueIndex:uq_feedback_application" json:"feedback_application_id"`
	FeedbackEmployerID    uuid.UUID `gorm:"column:feedback_employer_id;type:uuid;not null;index" json:"feedback_employer_id"`
	FeedbackRating        int       `gorm:"column:feedback_rating;not null" json:"feedback_rating"`
	FeedbackTechnical     *int      `gorm:"column:feedback_technical" json:"feedback_technical,omitempty"`
	FeedbackCommunication *int      `gorm:"column:feedback_communication" json:"feedback_communication,omitempty"`
	FeedbackProfessional  *int      `gorm:"column:feedback_professional" json:"feedback_professional,omitempty"`
	FeedbackComments      string    `gorm:"column:feedback_comments;type:text;not null" json:"feedback_comments"`
	FeedbackStrengths     *string   `gorm:"column:feedback_strengths;type:text" json:"feedback_strengths,omitempty"`
	FeedbackImprovements  *string   `gorm:"column:feedback_improvements;type:text" json:"feedback_improvements,omitempty"`
	FeedbackCreatedAt     time.Time `gorm:"column:feedback_created_at;autoCreateTime" json:"feedback_created_at"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
