package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AccountModel mirrors the 'accounts' table. Rows are provisioned by the identity service.
// Longitude and latitude are plain columns; the donor search is a box query over them.
type AccountModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Email          *string        `gorm:"type:varchar(255);uniqueIndex"`
	Phone          string         `gorm:"type:varchar(32)"`
	PushToken      string         `gorm:"type:text"`
	Role           string         `gorm:"type:varchar(16);not null;index:idx_accounts_role_blood_type"`
	City           string         `gorm:"type:varchar(100)"`
	BloodType      string         `gorm:"type:varchar(3);index:idx_accounts_role_blood_type"`
	Longitude      *float64       `gorm:"type:double precision;index:idx_accounts_lon_lat"`
	Latitude       *float64       `gorm:"type:double precision;index:idx_accounts_lon_lat"`
	LastDonationAt *time.Time     `gorm:"column:last_donation_at"`
	Badges         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
