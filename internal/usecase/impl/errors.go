package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/errors"
)

// translateRequestError maps repository sentinels to user-facing errors.
func translateRequestError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrRequestNotFound):
		return domainerrors.ErrRequestNotFound
	case errors.Is(err, repository.ErrRequestNotPending):
		return domainerrors.ErrAlreadyClaimed
	case errors.Is(err, repository.ErrRequestCompleted):
		return domainerrors.ErrRequestCompleted
	case errors.Is(err, repository.ErrRequestNotAccepted):
		return domainerrors.ErrRequestNotAccepted
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound
	default:
		return asInternal(err, details)
	}
}

// asInternal keeps AppErrors as they are and hides everything else behind an opaque database error.
func asInternal(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// publishEvent broadcasts a lifecycle event. Failures are logged and never returned.
func publishEvent(ctx context.Context, logger *slog.Logger, broadcaster service.EventBroadcaster, event entity.EventName, payload any) {
	if broadcaster == nil {
		return
	}

	if err := broadcaster.Broadcast(ctx, event, payload); err != nil {
		deliverycontext.LoggerFrom(ctx, logger).Warn("Failed to broadcast event",
			slog.String("event", event.String()),
			slog.Any("error", err),
		)
	}
}
