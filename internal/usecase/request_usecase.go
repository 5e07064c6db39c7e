package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput is the requester-supplied content of a new blood request.
type CreateRequestInput struct {
	BloodType     entity.BloodType
	UnitsRequired int
	HospitalName  string
	City          string
	Urgency       entity.Urgency

	// Optional requester position; both must be set to update the stored location
	Longitude *float64
	Latitude  *float64
}

// RequestUsecase defines the blood request lifecycle
type RequestUsecase interface {
	// Create persists a pending request, alerts nearby matching donors and broadcasts request_created.
	// Matching and alert failures are logged and never returned.
	Create(ctx context.Context, requesterID uuid.UUID, input *CreateRequestInput) (*entity.BloodRequest, error)

	// Accept claims a pending request. Exactly one concurrent accept succeeds; the rest get ErrAlreadyClaimed.
	Accept(ctx context.Context, requestID, accepterID uuid.UUID) (*entity.BloodRequest, error)

	// Cancel returns a non-completed request to Pending, clearing the accepter and recording the reason.
	Cancel(ctx context.Context, requestID uuid.UUID, reason string) (*entity.BloodRequest, error)

	// Complete marks a request completed on behalf of a hospital account.
	Complete(ctx context.Context, callerID, requestID uuid.UUID) (*entity.BloodRequest, error)

	// ListByRequester returns the caller's own requests, newest first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error)

	// ListOpen returns every pending request, newest first.
	ListOpen(ctx context.Context) ([]*entity.BloodRequest, error)

	// ListInProgress returns every in-progress request with its accepter summary, newest first.
	ListInProgress(ctx context.Context) ([]*entity.BloodRequest, error)

	// VerificationQR renders the verification code for an accepted request.
	VerificationQR(ctx context.Context, requestID uuid.UUID) ([]byte, error)
}
