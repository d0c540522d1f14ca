package models

import "time"

// Organization is the tenant boundary. Every representative, passenger,
// transaction and config row belongs to exactly one organization.
type Organization struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	CreatedBy string    `json:"created_by" gorm:"not null;type:uuid" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// OrganizationMember links a user to exactly one organization.
type OrganizationMember struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	OrganizationID string     `json:"organization_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	UserID         string     `json:"user_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	Role           MemberRole `json:"role" gorm:"not null;default:'admin';type:varchar(20)"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
