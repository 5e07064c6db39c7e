package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
)

// DonationLogSummary is a donor's log count together with the logs
type DonationLogSummary struct {
	Count int                   `json:"count"`
	Logs  []*entity.DonationLog `json:"logs"`
}

// DonorUsecase defines donor-facing views
type DonorUsecase interface {
	// DonationLogs returns the donor's logs and their count.
	DonationLogs(ctx context.Context, donorID uuid.UUID) (*DonationLogSummary, error)

	// NearbyRequests returns pending requests raised by patients near the donor, newest first.
	NearbyRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error)
}
