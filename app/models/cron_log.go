package models

import "time"

// CronLog is the persisted audit record of one weekly charge run for one
// organization. Result holds the human-readable report, ResultJSON the
// structured version of the same data.
type CronLog struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrgID       string     `json:"org_id" gorm:"not null;index;type:uuid"`
	Status      CronStatus `json:"status" gorm:"not null;index;type:varchar(10)"`
	Result      string     `json:"result" gorm:"not null"`
	ResultJSON  []byte     `json:"result_json" gorm:"type:jsonb"`
	ErrorDetail *string    `json:"error_detail,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
