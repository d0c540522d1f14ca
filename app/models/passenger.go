package models

import (
	"errors"
	"regexp"
	"time"
)

var teacherCodePattern = regexp.MustCompile(`^DOC-\d{5}$`)

// Passenger is a child (billable, linked to a representative) or a teacher
// (roster-only, organization-level) riding the transport.
type Passenger struct {
	ID               string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	OrganizationID   string        `json:"organization_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name             string        `json:"name" gorm:"not null" validate:"required"`
	Type             PassengerType `json:"type" gorm:"not null;type:varchar(10)" validate:"required"`
	RepresentativeID *string       `json:"representative_id,omitempty" gorm:"index;type:uuid"`
	WeeklyTariffUSD  *float64      `json:"weekly_tariff_usd,omitempty" gorm:"type:numeric"`
	CustomTariffUSD  *float64      `json:"custom_tariff_usd,omitempty" gorm:"type:numeric"`
	IsActive         bool          `json:"is_active" gorm:"default:true"`
	Code             *string       `json:"code,omitempty" gorm:"uniqueIndex;type:varchar(9)"`
	Notes            *string       `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// Validate checks required fields and tariff sanity on create/update.
func (p *Passenger) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	switch p.Type {
	case PassengerChild:
		if p.RepresentativeID == nil || *p.RepresentativeID == "" {
			return errors.New("a child passenger requires a representative")
		}
	case PassengerTeacher:
		if p.Code == nil || !teacherCodePattern.MatchString(*p.Code) {
			return errors.New("a teacher passenger requires a code matching DOC-NNNNN")
		}
	default:
		return errors.New("type must be child or teacher")
	}
	if p.WeeklyTariffUSD != nil && *p.WeeklyTariffUSD < 0 {
		return errors.New("weekly tariff cannot be negative")
	}
	if p.CustomTariffUSD != nil && *p.CustomTariffUSD < 0 {
		return errors.New("custom tariff cannot be negative")
	}
	return nil
}

// ResolveTariff applies the tariff precedence chain:
// custom tariff, then the passenger's own weekly tariff, then the
// organization's general tariff. A tariff explicitly set to zero wins
// over the fallbacks.
func (p *Passenger) ResolveTariff(generalTariff float64) float64 {
	if p.CustomTariffUSD != nil {
		return *p.CustomTariffUSD
	}
	if p.WeeklyTariffUSD != nil {
		return *p.WeeklyTariffUSD
	}
	return generalTariff
}
