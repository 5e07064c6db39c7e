package service

import (
	"github.com/google/uuid"
)

// VerificationCode is the pair a hospital needs to verify a donation.
type VerificationCode struct {
	RequestID uuid.UUID
	DonorID   uuid.UUID
}

// QRCodeService defines the interface for donation verification QR codes
type QRCodeService interface {
	// GenerateVerificationQR renders a PNG QR code for the request and its accepting donor
	GenerateVerificationQR(code VerificationCode) ([]byte, error)

	// ParseVerificationQR decodes the scanned QR payload
	ParseVerificationQR(qrData string) (VerificationCode, error)
}
