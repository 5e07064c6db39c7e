package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"
)

// NotificationDispatcher fans an alert out to recipients
type NotificationDispatcher interface {
	// Dispatch sends the alert to every recipient concurrently and waits for all sends.
	// Individual failures are recorded in the report; they never abort the fan-out.
	Dispatch(ctx context.Context, recipients []*entity.Account, alert entity.Alert) *entity.DispatchReport
}
