package main

import (
	"context"
	"log/slog"
	"os"

	"lifeflow/config"
	"lifeflow/internal/delivery"
	"lifeflow/internal/delivery/api"
	"lifeflow/internal/delivery/api/middleware"
	"lifeflow/internal/delivery/api/router/handler"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/infra/auth"
	"lifeflow/internal/infra/broadcast"
	logs "lifeflow/internal/infra/log"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/infra/notification"
	"lifeflow/internal/infra/persistence"
	"lifeflow/internal/infra/qrcode"
	"lifeflow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		persistence.NewRepositories,
		broadcast.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			notification.NewMessageSender,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeoMatcher,
			impl.NewNotificationDispatcher,
			impl.NewBadgeEngine,
			impl.NewRequestService,
			impl.NewDonationService,
			impl.NewDonorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRequestHandler,
			handler.NewDonationHandler,
			handler.NewDonorHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
