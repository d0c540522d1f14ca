package models

import "time"

// AppConfig holds the per-organization settings. At most one row per
// organization; the weekly charge job only ever touches LastWeeklyChargeApplied.
type AppConfig struct {
	OrganizationID          string          `json:"organization_id" gorm:"primaryKey;type:uuid" validate:"required,uuid"`
	GeneralTariffUSD        float64         `json:"general_tariff_usd" gorm:"not null;type:numeric;default:0" validate:"gte=0"`
	LastWeeklyChargeApplied *time.Time      `json:"last_weekly_charge_applied,omitempty"`
	TransportName           *string         `json:"transport_name,omitempty"`
	ThemePreference         ThemePreference `json:"theme_preference" gorm:"not null;default:'system';type:varchar(20)"`
	UpdatedAt               time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	UpdatedBy               *string         `json:"updated_by,omitempty" gorm:"type:uuid"`
}
