package notification

import (
	"context"
	"log/slog"

	"lifeflow/config"
	"lifeflow/internal/domain/constants"
	"lifeflow/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for MessageSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMessageSender creates a MessageSender based on configuration
func NewMessageSender(params SenderParams) (service.MessageSender, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	switch cfg.Provider {
	case constants.NotificationProviderLog:
		logger.Info("Using log sender for donor alerts")

		return NewLogSender(logger), nil

	case constants.NotificationProviderTwilio:
		if cfg.Twilio == nil {
			return nil, errors.New("twilio configuration is required for twilio provider")
		}
		logger.Info("Using Twilio SMS sender for donor alerts",
			slog.String("from", cfg.Twilio.From),
		)

		return NewTwilioSender(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, cfg.CountryCode)

	case constants.NotificationProviderFirebase:
		fb := params.Config.Firebase
		if fb == nil || fb.CredentialsPath == "" {
			return nil, errors.New("firebase credentials path is required for firebase provider")
		}
		logger.Info("Using Firebase push sender for donor alerts",
			slog.String("project_id", fb.ProjectID),
		)

		return NewFirebaseSender(params.Ctx, fb.ProjectID, fb.CredentialsPath)

	default:
		return nil, errors.Errorf("unsupported notification provider: %s", cfg.Provider)
	}
}
