package notification

import (
	"context"
	"log/slog"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/service"
)

// logSender writes alerts to the log instead of sending them. Used for local runs.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs
func NewLogSender(logger *slog.Logger) service.MessageSender {
	return &logSender{logger: logger}
}

func (s *logSender) Channel() string {
	return "log"
}

func (s *logSender) Destination(account *entity.Account) (string, bool) {
	if account == nil {
		return "", false
	}

	return account.ID.String(), true
}

func (s *logSender) Send(ctx context.Context, to, body string) error {
	deliverycontext.LoggerFrom(ctx, s.logger).Info("[LogSender] Alert",
		slog.String("to", to),
		slog.String("body", body),
	)

	return nil
}
