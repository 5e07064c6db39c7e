package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Alert is the content of a donor alert for a newly created request.
type Alert struct {
	RequestID    uuid.UUID
	BloodType    BloodType
	HospitalName string
	City         string
}

// Body renders the alert text sent to each recipient.
func (a Alert) Body() string {
	return fmt.Sprintf(
		"Urgent need for %s blood at %s, %s. Can you help? Log in to your LifeFlow account to respond.",
		a.BloodType, a.HospitalName, a.City,
	)
}

// DeliveryStatus is the outcome of one send attempt.
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliverySkipped   DeliveryStatus = "skipped"
)

// DeliveryOutcome records what happened for a single recipient.
type DeliveryOutcome struct {
	RecipientID uuid.UUID
	Destination string
	Status      DeliveryStatus
	Err         error
}

// DispatchReport aggregates the outcomes of one fan-out.
type DispatchReport struct {
	Attempted int
	Delivered int
	Failed    int
	Skipped   int
	Outcomes  []DeliveryOutcome
}
