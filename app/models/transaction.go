package models

import (
	"errors"
	"time"
)

// Transaction is an immutable ledger entry for one representative.
// Charges increase the representative's debt, payments decrease it.
type Transaction struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	OrganizationID   string          `json:"organization_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	RepresentativeID string          `json:"representative_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date             time.Time       `json:"date" gorm:"not null;index"`
	Kind             TransactionKind `json:"kind" gorm:"not null;type:varchar(10)" validate:"required"`
	AmountUSD        float64         `json:"amount_usd" gorm:"not null;type:numeric" validate:"required,gt=0"`
	Concept          string          `json:"concept" gorm:"not null"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedBy        string          `json:"created_by" gorm:"not null;type:uuid"`
	CreatedAt        time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

// Validate checks a manually entered transaction before insert.
func (t *Transaction) Validate() error {
	if t.Kind != TransactionCharge && t.Kind != TransactionPayment {
		return errors.New("kind must be charge or payment")
	}
	if t.AmountUSD <= 0 {
		return errors.New("amount must be greater than zero")
	}
	if t.RepresentativeID == "" {
		return errors.New("representative is required")
	}
	if t.Concept == "" {
		return errors.New("concept is required")
	}
	return nil
}
