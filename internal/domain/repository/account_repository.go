// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an account with the same id or email already exists.
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountQuery filters a point-in-box account search.
type AccountQuery struct {
	Bound     orb.Bound
	Role      entity.Role
	BloodType entity.BloodType // empty matches any blood type
}

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	// CreateAccount persists an account provisioned by the identity service.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account by its unique ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountsWithinBound returns accounts of the queried role whose stored point lies
	// inside the bound, edges included. Accounts without a location never match.
	FindAccountsWithinBound(ctx context.Context, query AccountQuery) ([]*entity.Account, error)

	// UpdateLocation stores a new point for the account.
	UpdateLocation(ctx context.Context, id uuid.UUID, point orb.Point) error

	// UpdateLastDonation records the time of the donor's most recent verified donation.
	UpdateLastDonation(ctx context.Context, id uuid.UUID, at time.Time) error

	// AddBadge appends the badge to the account's set if absent.
	// It reports whether the badge was newly added.
	AddBadge(ctx context.Context, id uuid.UUID, badge entity.Badge) (bool, error)
}
