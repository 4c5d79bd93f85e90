package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel merepresentasikan tabel applications: satu lamaran per
// pasangan (student, internship). Status adalah ringkasan otoritatif,
// application_version adalah token optimistic-lock (naik 1 tiap transisi).
type ApplicationModel struct {
	ApplicationID                uuid.UUID  `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"application_id"`
	ApplicationStudentID         uuid.UUID  `gorm:"column:application_student_id;type:uuid;not null;index" json:"application_student_id"`
	ApplicationInternshipID      uuid.UUID  `gorm:"column:application_internship_id;type:uuid;not null;index" json:"application_internship_id"`
	ApplicationStatus            string     `gorm:"column:application_status;type:varchar(30);not null;default:'APPLIED'" json:"application_status"`
	ApplicationVersion           int        `gorm:"column:application_version;not null;default:1" json:"application_version"`
	ApplicationAppliedAt         time.Time  `gorm:"column:application_applied_at;autoCreateTime" json:"application_applied_at"`
	ApplicationMentorID          *uuid.UUID `gorm:"column:application_mentor_id;type:uuid" json:"application_mentor_id,omitempty"`
	ApplicationMentorApprovedAt  *time.Time `gorm:"column:application_mentor_approved_at" json:"application_mentor_approved_at,omitempty"`
	ApplicationOfferMadeAt       *time.Time `gorm:"column:application_offer_made_at" json:"application_offer_made_at,omitempty"`
	ApplicationStartDate         *time.Time `gorm:"column:application_start_date" json:"application_start_date,omitempty"`
	ApplicationEndDate           *time.Time `gorm:"column:application_end_date" json:"application_end_date,omitempty"`
	ApplicationCompletionDate    *time.Time `gorm:"column:application_completion_date" json:"application_completion_date,omitempty"`
	ApplicationPerformanceRating *int       `gorm:"column:application_performance_rating" json:"application_performance_rating,omitempty"`
	ApplicationCreatedAt         time.Time  `gorm:"column:application_created_at;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt         time.Time  `gorm:"column:application_updated_at;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}
