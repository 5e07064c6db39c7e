package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationLog is an immutable record of one verified donation.
type DonationLog struct {
	ID           uuid.UUID  `json:"id"`
	DonorID      uuid.UUID  `json:"donorId"`
	HospitalID   uuid.UUID  `json:"hospitalId"`
	RequestID    *uuid.UUID `json:"requestId,omitempty"`
	UnitsDonated int        `json:"unitsDonated"`
	DonatedAt    time.Time  `json:"donationDate"`

	Donor    *AccountSummary `json:"donor,omitempty"`
	Hospital *AccountSummary `json:"hospital,omitempty"`
}
