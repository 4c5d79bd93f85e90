package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MakeOfferRequest struct {
	ApplicationID   uuid.UUID      `json:"application_id" validate:"required"`
	Position        string         `json:"position" validate:"required,min=3,max=150"`
	OfferType       string         `json:"offer_type" validate:"omitempty,oneof=INTERNSHIP PLACEMENT FULL_TIME"`
	Stipend         *int           `json:"stipend" validate:"omitempty,gte=0"`
	StartDate       *time.Time     `json:"start_date"`
	ExpiresAt       *time.Time     `json:"expires_at"`
	Details         datatypes.JSON `json:"details"`
	ExpectedVersion int            `json:"expected_version" validate:"required,gte=1"`
}

func (r *MakeOfferRequest) Normalize() {
	r.Position = strings.TrimSpace(r.Position)
	r.OfferType = strings.ToUpper(strings.TrimSpace(r.OfferType))
	if r.OfferType == "" {
		r.OfferType = "INTERNSHIP"
	}
}

type RespondOfferRequest struct {
	Decision        string         `json:"decision" validate:"required,oneof=accept reject"`
	Notes           *string        `json:"notes" validate:"omitempty,max=1000"`
	ContractSigned  bool           `json:"contract_signed"`
	ContractDetails datatypes.JSON `json:"contract_details"`
	ExpectedVersion int            `json:"expected_version" validate:"required,gte=1"`
}

func (r *RespondOfferRequest) Normalize() {
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

type WithdrawOfferRequest struct {
	Notes           *string `json:"notes" validate:"omitempty,max=1000"`
	ExpectedVersion int     `json:"expected_version" validate:"required,gte=1"`
}
