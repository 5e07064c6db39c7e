package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"lifeflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	verifyScheme = "lifeflow"
	verifyHost   = "verify"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodeVerification renders the payload text, e.g. lifeflow://verify?request=<id>&donor=<id>
func EncodeVerification(code service.VerificationCode) string {
	query := url.Values{}
	query.Set("request", code.RequestID.String())
	query.Set("donor", code.DonorID.String())

	return (&url.URL{Scheme: verifyScheme, Host: verifyHost, RawQuery: query.Encode()}).String()
}

// GenerateVerificationQR renders the verification payload as a PNG
func (s *qrcodeService) GenerateVerificationQR(code service.VerificationCode) ([]byte, error) {
	qrCode, err := qrcode.New(EncodeVerification(code), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVerificationQR decodes a scanned payload back into the request and donor ids
func (s *qrcodeService) ParseVerificationQR(qrData string) (service.VerificationCode, error) {
	parsed, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return service.VerificationCode{}, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if parsed.Scheme != verifyScheme || parsed.Host != verifyHost {
		return service.VerificationCode{}, fmt.Errorf("invalid QR code type: %s://%s", parsed.Scheme, parsed.Host)
	}

	query := parsed.Query()
	requestID, err := uuid.Parse(query.Get("request"))
	if err != nil {
		return service.VerificationCode{}, fmt.Errorf("failed to parse request ID: %w", err)
	}

	donorID, err := uuid.Parse(query.Get("donor"))
	if err != nil {
		return service.VerificationCode{}, fmt.Errorf("failed to parse donor ID: %w", err)
	}

	return service.VerificationCode{RequestID: requestID, DonorID: donorID}, nil
}
