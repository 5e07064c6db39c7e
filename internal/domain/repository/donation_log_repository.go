package repository

import (
	"context"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
)

// DonationLogRepository defines the interface for donation log database operations.
// Logs are append-only.
type DonationLogRepository interface {
	// CreateDonationLog appends a verified donation.
	CreateDonationLog(ctx context.Context, log *entity.DonationLog) error

	// CountByDonor returns the number of logs recorded for a donor.
	CountByDonor(ctx context.Context, donorID uuid.UUID) (int64, error)

	// FindByDonor retrieves a donor's logs, newest first, with the hospital summary attached.
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.DonationLog, error)

	// FindByHospital retrieves logs verified by a hospital, newest first, with the donor summary attached.
	FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*entity.DonationLog, error)

	// FindByRequester retrieves logs tied to requests raised by an account, newest first.
	FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.DonationLog, error)
}
