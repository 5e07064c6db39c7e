package impl

import (
	"context"
	"log/slog"

	"lifeflow/config"
	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type notificationDispatcher struct {
	logger  *slog.Logger
	sender  service.MessageSender
	limit   int
	metrics *metrics.Metrics
}

// NewNotificationDispatcher creates a dispatcher that sends through the given transport
func NewNotificationDispatcher(logger *slog.Logger, sender service.MessageSender, cfg *config.Config, m *metrics.Metrics) usecase.NotificationDispatcher {
	limit := 0
	if cfg != nil && cfg.Notification != nil {
		limit = cfg.Notification.Concurrency
	}

	return &notificationDispatcher{
		logger:  logger,
		sender:  sender,
		limit:   limit,
		metrics: m,
	}
}

// Dispatch sends one message per recipient and waits for every send to finish
func (d *notificationDispatcher) Dispatch(ctx context.Context, recipients []*entity.Account, alert entity.Alert) *entity.DispatchReport {
	logger := deliverycontext.LoggerFrom(ctx, d.logger)
	body := alert.Body()
	outcomes := make([]entity.DeliveryOutcome, len(recipients))

	var group errgroup.Group
	if d.limit > 0 {
		group.SetLimit(d.limit)
	}

	for i, recipient := range recipients {
		if recipient == nil {
			outcomes[i] = entity.DeliveryOutcome{Status: entity.DeliverySkipped}

			continue
		}

		to, ok := d.sender.Destination(recipient)
		if !ok {
			outcomes[i] = entity.DeliveryOutcome{RecipientID: recipient.ID, Status: entity.DeliverySkipped}

			continue
		}

		// Each task writes only its own slot and never returns an error.
		group.Go(func() error {
			outcome := entity.DeliveryOutcome{RecipientID: recipient.ID, Destination: to, Status: entity.DeliveryDelivered}
			if err := d.sender.Send(ctx, to, body); err != nil {
				outcome.Status = entity.DeliveryFailed
				outcome.Err = err
				logger.Warn("Failed to send donor alert",
					slog.String("recipient_id", recipient.ID.String()),
					slog.String("channel", d.sender.Channel()),
					slog.String("request_id", alert.RequestID.String()),
					slog.Any("error", err),
				)
			}
			outcomes[i] = outcome

			return nil
		})
	}

	_ = group.Wait()

	report := &entity.DispatchReport{Outcomes: outcomes}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case entity.DeliveryDelivered:
			report.Attempted++
			report.Delivered++
		case entity.DeliveryFailed:
			report.Attempted++
			report.Failed++
		case entity.DeliverySkipped:
			report.Skipped++
		}
		d.metrics.IncDelivery(d.sender.Channel(), string(outcome.Status))
	}

	return report
}
