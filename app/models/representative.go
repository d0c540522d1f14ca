package models

import (
	"errors"
	"regexp"
	"time"
)

var repCodePattern = regexp.MustCompile(`^REP-\d{5}$`)

// Representative is a guardian billed for one or more passengers,
// identified by a unique human-readable code.
type Representative struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	OrganizationID string    `json:"organization_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Alias          string    `json:"alias" gorm:"not null" validate:"required"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Address        *string   `json:"address,omitempty"`
	Code           string    `json:"code" gorm:"uniqueIndex;not null;type:varchar(9)" validate:"required"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Validate checks the fields an admin can get wrong on create/update.
func (r *Representative) Validate() error {
	if r.Alias == "" {
		return errors.New("alias is required")
	}
	if !repCodePattern.MatchString(r.Code) {
		return errors.New("code must match REP-NNNNN")
	}
	return nil
}

// RepresentativeWithDebt is the denormalized admin/dashboard view of a
// representative together with its computed balance.
type RepresentativeWithDebt struct {
	Representative
	CurrentDebtUSD  float64       `json:"deuda_actual_usd"`
	PreviousDebtUSD float64       `json:"deuda_anterior_usd"`
	Passengers      []*Passenger  `json:"passengers,omitempty"`
	Transactions    []*Transaction `json:"transactions,omitempty"`
}
