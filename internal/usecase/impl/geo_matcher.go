package impl

import (
	"context"

	"lifeflow/config"
	"lifeflow/internal/domain/constants"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/errors"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type geoMatcher struct {
	accountRepo repository.AccountRepository
	halfWidth   float64
}

// NewGeoMatcher creates a bounding-box matcher using the configured half-width in degrees
func NewGeoMatcher(accountRepo repository.AccountRepository, cfg *config.Config) usecase.GeoMatcher {
	halfWidth := constants.DefaultSearchRadiusDegrees
	if cfg != nil && cfg.Geo != nil && cfg.Geo.SearchRadiusDegrees > 0 {
		halfWidth = cfg.Geo.SearchRadiusDegrees
	}

	return &geoMatcher{
		accountRepo: accountRepo,
		halfWidth:   halfWidth,
	}
}

// SearchBound returns the axis-aligned box of the given half-width centered on origin.
// This is a degree box, not a geodesic radius: corners reach further than the edges
// and east-west coverage shrinks with latitude.
func SearchBound(origin orb.Point, halfWidth float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{origin.Lon() - halfWidth, origin.Lat() - halfWidth},
		Max: orb.Point{origin.Lon() + halfWidth, origin.Lat() + halfWidth},
	}
}

// FindNearby returns accounts of the role and blood type inside the box around origin
func (m *geoMatcher) FindNearby(ctx context.Context, origin orb.Point, role entity.Role, bloodType entity.BloodType) ([]*entity.Account, error) {
	accounts, err := m.accountRepo.FindAccountsWithinBound(ctx, repository.AccountQuery{
		Bound:     SearchBound(origin, m.halfWidth),
		Role:      role,
		BloodType: bloodType,
	})
	if err != nil {
		return nil, asInternal(err, "failed to find nearby accounts")
	}

	return accounts, nil
}

// FindNearbyAccount searches around the stored point of an account
func (m *geoMatcher) FindNearbyAccount(ctx context.Context, originID uuid.UUID, role entity.Role, bloodType entity.BloodType) ([]*entity.Account, error) {
	origin, err := m.accountRepo.FindAccountByID(ctx, originID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, asInternal(err, "failed to find origin account")
	}

	if !origin.HasLocation() {
		return nil, domainerrors.ErrLocationUnavailable
	}

	return m.FindNearby(ctx, *origin.Location, role, bloodType)
}
