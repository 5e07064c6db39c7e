package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequestModel mirrors the 'blood_requests' table.
type BloodRequestModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RequesterID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	AcceptedBy         *uuid.UUID `gorm:"type:uuid;index"`
	BloodType          string     `gorm:"type:varchar(3);not null"`
	UnitsRequired      int        `gorm:"not null;check:units_required > 0"`
	HospitalName       string     `gorm:"type:varchar(200);not null"`
	City               string     `gorm:"type:varchar(100);not null"`
	Urgency            string     `gorm:"type:varchar(16);not null;default:'Urgent'"`
	Status             string     `gorm:"type:varchar(16);not null;default:'Pending';index:idx_blood_requests_status_created"`
	CancellationReason *string    `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"index:idx_blood_requests_status_created,sort:desc"`
	UpdatedAt          time.Time

	Requester *AccountModel `gorm:"foreignKey:RequesterID"`
	Accepter  *AccountModel `gorm:"foreignKey:AcceptedBy"`
}

// TableName explicitly sets the table name for GORM.
func (BloodRequestModel) TableName() string {
	return "blood_requests"
}
