package usecase

import (
	"context"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyDonationInput identifies the donation a hospital is confirming.
// Either DonorID or QRData must be provided.
type VerifyDonationInput struct {
	DonorID   uuid.UUID
	RequestID *uuid.UUID
	QRData    string
}

// VerifyDonationResult is returned to the verifying hospital
type VerifyDonationResult struct {
	Message      string              `json:"message"`
	BadgeAwarded entity.Badge        `json:"badgeAwarded,omitempty"`
	Log          *entity.DonationLog `json:"log"`
}

// DonationUsecase defines donation verification and history
type DonationUsecase interface {
	// VerifyDonation records a hospital-confirmed donation, completes the linked request and awards badges.
	VerifyDonation(ctx context.Context, hospitalID uuid.UUID, input *VerifyDonationInput) (*VerifyDonationResult, error)

	// DonorHistory returns the donor's logs, newest first.
	DonorHistory(ctx context.Context, donorID uuid.UUID) ([]*entity.DonationLog, error)

	// HospitalHistory returns the logs verified by the hospital, newest first.
	HospitalHistory(ctx context.Context, hospitalID uuid.UUID) ([]*entity.DonationLog, error)

	// PatientHistory returns the logs of donations made against the patient's requests, newest first.
	PatientHistory(ctx context.Context, patientID uuid.UUID) ([]*entity.DonationLog, error)
}
