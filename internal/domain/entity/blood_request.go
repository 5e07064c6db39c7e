package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a blood request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "Pending"
	StatusInProgress RequestStatus = "In Progress"
	StatusCompleted  RequestStatus = "Completed"
	StatusCancelled  RequestStatus = "Cancelled"
)

// IsValid checks if the RequestStatus is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// Urgency distinguishes immediate needs from planned transfusions.
type Urgency string

const (
	UrgencyUrgent    Urgency = "Urgent"
	UrgencyScheduled Urgency = "Scheduled"
)

// IsValid checks if the Urgency is a known value.
func (u Urgency) IsValid() bool {
	return u == UrgencyUrgent || u == UrgencyScheduled
}

// BloodRequest is a requester's ask for units of a blood type at a hospital.
// AcceptedBy is set exactly when Status is In Progress or Completed.
type BloodRequest struct {
	ID                 uuid.UUID       `json:"id"`
	RequesterID        uuid.UUID       `json:"requesterId"`
	AcceptedBy         *uuid.UUID      `json:"acceptedBy"`
	Accepter           *AccountSummary `json:"accepter,omitempty"`
	BloodType          BloodType       `json:"bloodType"`
	UnitsRequired      int             `json:"units"`
	HospitalName       string          `json:"hospitalName"`
	City               string          `json:"city"`
	Urgency            Urgency         `json:"urgency"`
	Status             RequestStatus   `json:"status"`
	CancellationReason *string         `json:"cancellationReason"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// AcceptMode is the claim behavior chosen from the accepter's role.
type AcceptMode int

const (
	// AcceptAsDonor moves a pending request to In Progress.
	AcceptAsDonor AcceptMode = iota
	// AcceptAsHospital moves a pending request straight to Completed.
	AcceptAsHospital
)

// AcceptModeFor maps an accepter role to its accept variant. Roles other than
// hospital accept as donors.
func AcceptModeFor(role Role) AcceptMode {
	if role == RoleHospital {
		return AcceptAsHospital
	}

	return AcceptAsDonor
}

// TargetStatus is the status a pending request takes on when claimed in this mode.
func (m AcceptMode) TargetStatus() RequestStatus {
	if m == AcceptAsHospital {
		return StatusCompleted
	}

	return StatusInProgress
}

// String returns a label for logs and metrics.
func (m AcceptMode) String() string {
	if m == AcceptAsHospital {
		return "hospital"
	}

	return "donor"
}
