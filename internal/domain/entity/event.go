package entity

import "github.com/google/uuid"

// EventName identifies a lifecycle event pushed to realtime observers.
type EventName string

const (
	EventRequestCreated   EventName = "request_created"
	EventRequestAccepted  EventName = "request_accepted"
	EventRequestCancelled EventName = "request_cancelled"
	EventRequestCompleted EventName = "request_completed"
)

// String returns the string representation of the EventName.
func (e EventName) String() string {
	return string(e)
}

// RequestCompletedPayload is the slim body of a request_completed event.
type RequestCompletedPayload struct {
	ID     uuid.UUID     `json:"_id"`
	Status RequestStatus `json:"status"`
}
