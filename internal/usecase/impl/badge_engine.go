package impl

import (
	"context"
	"log/slog"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/usecase"
)

type badgeEngine struct {
	logger      *slog.Logger
	accountRepo repository.AccountRepository
	logRepo     repository.DonationLogRepository
	metrics     *metrics.Metrics
}

// NewBadgeEngine creates a milestone badge engine
func NewBadgeEngine(logger *slog.Logger, accountRepo repository.AccountRepository, logRepo repository.DonationLogRepository, m *metrics.Metrics) usecase.BadgeEngine {
	return &badgeEngine{
		logger:      logger,
		accountRepo: accountRepo,
		logRepo:     logRepo,
		metrics:     m,
	}
}

// Evaluate awards the milestone badge matching the donor's exact donation count, once
func (e *badgeEngine) Evaluate(ctx context.Context, donor *entity.Account) (entity.Badge, error) {
	count, err := e.logRepo.CountByDonor(ctx, donor.ID)
	if err != nil {
		return entity.BadgeNone, asInternal(err, "failed to count donation logs")
	}

	badge := entity.MilestoneFor(count)
	if badge == entity.BadgeNone || donor.HasBadge(badge) {
		return entity.BadgeNone, nil
	}

	added, err := e.accountRepo.AddBadge(ctx, donor.ID, badge)
	if err != nil {
		return entity.BadgeNone, asInternal(err, "failed to award badge")
	}
	if !added {
		return entity.BadgeNone, nil
	}

	donor.Badges = append(donor.Badges, badge)
	e.metrics.IncBadge(badge.String())
	deliverycontext.LoggerFrom(ctx, e.logger).Info("Badge awarded",
		slog.String("donor_id", donor.ID.String()),
		slog.String("badge", badge.String()),
		slog.Int64("donations", count),
	)

	return badge, nil
}
