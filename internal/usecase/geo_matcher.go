package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// GeoMatcher finds accounts inside a fixed-width box around a point
type GeoMatcher interface {
	// FindNearby returns accounts of the role (and blood type, if non-empty) within the box around origin.
	FindNearby(ctx context.Context, origin orb.Point, role entity.Role, bloodType entity.BloodType) ([]*entity.Account, error)

	// FindNearbyAccount searches around an account's stored point.
	// Fails with ErrLocationUnavailable when the account has no point.
	FindNearbyAccount(ctx context.Context, originID uuid.UUID, role entity.Role, bloodType entity.BloodType) ([]*entity.Account, error)
}
