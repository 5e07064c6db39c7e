package broadcast

import (
	"context"
	"log/slog"

	"lifeflow/config"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/infra/metrics"

	"go.uber.org/fx"
)

// Params holds dependencies for the hub, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// Result exposes the hub for the /ws route and the broadcaster for the usecases.
// Hub is nil when broadcast is disabled.
type Result struct {
	fx.Out

	Hub         *Hub
	Broadcaster service.EventBroadcaster
}

// New builds the broadcaster from configuration and closes it on shutdown
func New(params Params) Result {
	cfg := params.Config.Broadcast
	logger := params.Logger

	if !cfg.Enabled {
		logger.Info("Broadcast disabled, using no-op broadcaster")

		return Result{Broadcaster: &noopBroadcaster{logger: logger}}
	}

	hub := NewHub(logger, params.Metrics, cfg.SendBuffer, cfg.PingInterval)
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return hub.Close()
		},
	})
	logger.Info("Using websocket broadcast hub",
		slog.Int("send_buffer", cfg.SendBuffer),
		slog.Duration("ping_interval", cfg.PingInterval),
	)

	return Result{Hub: hub, Broadcaster: hub}
}
