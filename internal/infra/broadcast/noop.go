package broadcast

import (
	"context"
	"log/slog"

	"lifeflow/internal/domain/entity"
)

// noopBroadcaster is used when realtime broadcast is disabled
type noopBroadcaster struct {
	logger *slog.Logger
}

func (b *noopBroadcaster) Broadcast(_ context.Context, event entity.EventName, _ any) error {
	b.logger.Debug("[NoopBroadcast] Broadcast disabled, skipping",
		slog.String("event", event.String()),
	)

	return nil
}

func (b *noopBroadcaster) Close() error {
	return nil
}
