package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status penawaran penempatan
const (
	OfferDraft     = "DRAFT"
	OfferExtended  = "EXTENDED"
	OfferAccepted  = "ACCEPTED"
	OfferRejected  = "REJECTED"
	OfferWithdrawn = "WITHDRAWN"
	OfferExpired   = "EXPIRED"
)

// Jenis penawaran
const (
	OfferTypeInternship = "INTERNSHIP"
	OfferTypePlacement  = "PLACEMENT"
	OfferTypeFullTime   = "FULL_TIME"
)

type PlacementOfferModel struct {
	OfferID              uuid.UUID      `gorm:"column:offer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"offer_id"`
	OfferApplicationID   uuid.UUID      `gorm:"column:offer_application_id;type:uuid;not null;index" json:"offer_application_id"`
	OfferStudentID       uuid.UUID      `gorm:"column:offer_student_id;type:uuid;not null;index" json:"offer_student_id"`
	OfferEmployerID      uuid.UUID      `gorm:"column:offer_employer_id;type:uuid;not null;index" json:"offer_employer_id"`
	OfferStatus          string         `gorm:"column:offer_status;type:varchar(15);not null;default:'EXTENDED'" json:"offer_status"`
	OfferType            string         `gorm:"column:offer_type;type:varchar(15);not null;default:'INTERNSHIP'" json:"offer_type"`
	OfferPosition        string         `gorm:"column:offer_position;size:150;not null" json:"offer_position"`
	OfferStipend         *int           `gorm:"column:offer_stipend" json:"offer_stipend,omitempty"`
	OfferStartDate       *time.Time     `gorm:"column:offer_start_date" json:"offer_start_date,omitempty"`
	OfferExpiresAt       time.Time      `gorm:"column:offer_expires_at;not null;index" json:"offer_expires_at"`
	OfferDetails         datatypes.JSON `gorm:"column:offer_details;type:jsonb" json:"offer_details,omitempty"`
	OfferRespondedAt     *time.Time     `gorm:"column:offer_responded_at" json:"offer_responded_at,omitempty"`
	OfferResponseNotes   *string        `gorm:"column:offer_response_notes;type:text" json:"offer_response_notes,omitempty"`
	OfferContractSigned  bool           `gorm:"column:offer_contract_signed;not null;default:false" json:"offer_contract_signed"`
	OfferContractDetails datatypes.JSON `gorm:"column:offer_contract_details;type:jsonb" json:"offer_contract_details,omitempty"`
	OfferCreatedAt       time.Time      `gorm:"column:offer_created_at;autoCreateTime" json:"offer_created_at"`
	OfferUpdatedAt       time.Time      `gorm:"column:offer_updated_at;autoUpdateTime" json:"offer_updated_at"`
}

func (PlacementOfferModel) TableName() string {
	return "placement_offers"
}
