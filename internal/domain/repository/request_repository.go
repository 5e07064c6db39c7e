package repository

import (
	"context"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for blood request persistence.
var (
	// ErrRequestNotFound is returned when a request is not found.
	ErrRequestNotFound = errors.New("blood request not found")
	// ErrRequestNotPending is returned when a claim finds the request already moved out of Pending.
	ErrRequestNotPending = errors.New("blood request is not pending")
	// ErrRequestCompleted is returned when a transition targets a completed request.
	ErrRequestCompleted = errors.New("blood request is completed")
	// ErrRequestNotAccepted is returned when completing a request nobody has accepted.
	ErrRequestNotAccepted = errors.New("blood request is not accepted")
)

// RequestRepository defines the interface for blood request database operations.
// Every transition is a single conditional write on one row.
type RequestRepository interface {
	// CreateRequest persists a new request. ID and timestamps are filled in on success.
	CreateRequest(ctx context.Context, request *entity.BloodRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// FindRequestsByRequester retrieves all requests raised by an account, newest first.
	FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// FindRequestsByStatus retrieves requests in a status, newest first, with the accepter summary attached.
	FindRequestsByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.BloodRequest, error)

	// FindPendingByRequesters retrieves pending requests raised by any of the accounts, newest first.
	FindPendingByRequesters(ctx context.Context, requesterIDs []uuid.UUID) ([]*entity.BloodRequest, error)

	// ClaimPending sets status and acceptedBy only if the request is still Pending.
	// Returns ErrRequestNotFound or ErrRequestNotPending when nothing was written.
	ClaimPending(ctx context.Context, id, accepterID uuid.UUID, target entity.RequestStatus) (*entity.BloodRequest, error)

	// Reopen resets a non-completed request to Pending, clears acceptedBy and stores the reason.
	// Returns ErrRequestNotFound or ErrRequestCompleted when nothing was written.
	Reopen(ctx context.Context, id uuid.UUID, reason string) (*entity.BloodRequest, error)

	// MarkCompleted moves an In Progress request to Completed, keeping its accepter.
	// Returns ErrRequestNotFound, ErrRequestCompleted or ErrRequestNotAccepted when nothing was written.
	MarkCompleted(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)
}
