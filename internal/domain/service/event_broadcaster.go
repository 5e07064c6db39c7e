package service

import (
	"context"

	"lifeflow/internal/domain/entity"
)

// EventBroadcaster defines the interface for pushing lifecycle events to every
// connected observer. Delivery is best effort and at most once per observer.
type EventBroadcaster interface {
	// Broadcast sends the event with its payload to all current observers
	Broadcast(ctx context.Context, event entity.EventName, payload any) error

	// Close disconnects observers and releases any resources held by the broadcaster
	Close() error
}
