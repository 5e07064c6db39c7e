package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"
)

// BadgeEngine awards milestone badges from a donor's donation count
type BadgeEngine interface {
	// Evaluate awards the badge for the donor's current count if one applies and is absent.
	// Returns the awarded badge or BadgeNone.
	Evaluate(ctx context.Context, donor *entity.Account) (entity.Badge, error)
}
