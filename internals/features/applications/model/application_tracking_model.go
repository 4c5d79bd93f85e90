package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationTrackingModel: ledger milestone per lamaran. Baris di-seed
// sekali saat lamaran dibuat, setelah itu hanya di-update in place
// (status/notes/actor/completed_at), tidak pernah dihapus.
type ApplicationTrackingModel struct {
	TrackingID            uuid.UUID  `gorm:"column:tracking_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tracking_id"`
	TrackingApplicationID uuid.UUID  `gorm:"column:tracking_application_id;type:uuid;not null;index" json:"tracking_application_id"`
	TrackingStepName      string     `gorm:"column:tracking_step_name;size:100;not null" json:"tracking_step_name"`
	TrackingStepOrder     int        `gorm:"column:tracking_step_order;not null" json:"tracking_step_order"`
	TrackingStatus        string     `gorm:"column:tracking_status;type:varchar(15);not null;default:'PENDING'" json:"tracking_status"`
	TrackingCompletedAt   *time.Time `gorm:"column:tracking_completed_at" json:"tracking_completed_at,omitempty"`
	TrackingNotes         *string    `gorm:"column:tracking_notes;type:text" json:"tracking_notes,omitempty"`
	TrackingActorID       *uuid.UUID `gorm:"column:tracking_actor_id;type:uuid" json:"tracking_actor_id,omitempty"`
	TrackingCreatedAt     time.Time  `gorm:"column:tracking_created_at;autoCreateTime" json:"tracking_created_at"`
	TrackingUpdatedAt     time.Time  `gorm:"column:tracking_updated_at;autoUpdateTime" json:"tracking_updated_at"`
}

func (ApplicationTrackingModel) TableName() string {
	return "application_tracking"
}
