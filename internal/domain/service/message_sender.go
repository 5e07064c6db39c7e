package service

import (
	"context"

	"lifeflow/internal/domain/entity"
)

// MessageSender defines the interface for an outbound alert transport (SMS, push, ...).
type MessageSender interface {
	// Channel names the transport for logs and metrics, e.g. "sms".
	Channel() string

	// Destination returns the address to send to for this account, or false when
	// the account has none for this transport.
	Destination(account *entity.Account) (string, bool)

	// Send delivers a single text message to a destination.
	Send(ctx context.Context, to, body string) error
}
