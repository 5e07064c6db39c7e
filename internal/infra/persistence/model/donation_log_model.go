package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationLogModel mirrors the append-only 'donation_logs' table.
// A request is linked to at most one log.
type DonationLogModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DonorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	HospitalID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequestID    *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	UnitsDonated int        `gorm:"not null;default:1"`
	DonatedAt    time.Time  `gorm:"not null;index"`

	Donor    *AccountModel      `gorm:"foreignKey:DonorID"`
	Hospital *AccountModel      `gorm:"foreignKey:HospitalID"`
	Request  *BloodRequestModel `gorm:"foreignKey:RequestID"`
}

// TableName explicitly sets the table name for GORM.
func (DonationLogModel) TableName() string {
	return "donation_logs"
}

// All lists every model for auto-migration, parents first.
func All() []any {
	return []any{
		&AccountModel{},
		&BloodRequestModel{},
		&DonationLogModel{},
	}
}
