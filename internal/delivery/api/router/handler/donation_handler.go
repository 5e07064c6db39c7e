package handler

import (
	"log/slog"
	"net/http"

	"lifeflow/internal/delivery/api/response"
	"lifeflow/internal/delivery/api/validator"
	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	Logger     *slog.Logger
}

// DonationHandler serves donation verification and history routes
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		logger:     params.Logger,
	}
}

// VerifyDonationRequest is the body of POST /api/hospitals/verify-donation.
// Either donorId or qrData must be present.
type VerifyDonationRequest struct {
	DonorID   string `json:"donorId" validate:"required_without=QRData,omitempty,uuid"`
	RequestID string `json:"requestId" validate:"omitempty,uuid"`
	QRData    string `json:"qrData" validate:"required_without=DonorID"`
}

// VerifyDonation handles POST /api/hospitals/verify-donation
func (h *DonationHandler) VerifyDonation(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req VerifyDonationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	input := &usecase.VerifyDonationInput{QRData: req.QRData}
	if req.DonorID != "" {
		input.DonorID = uuid.MustParse(req.DonorID)
	}
	if req.RequestID != "" {
		requestID := uuid.MustParse(req.RequestID)
		input.RequestID = &requestID
	}

	result, err := h.donationUC.VerifyDonation(c.Request().Context(), accountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetDonorHistory handles GET /api/donations/donor-history
func (h *DonationHandler) GetDonorHistory(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	logs, err := h.donationUC.DonorHistory(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// GetHospitalHistory handles GET /api/donations/hospital-history
func (h *DonationHandler) GetHospitalHistory(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	logs, err := h.donationUC.HospitalHistory(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}

// GetPatientHistory handles GET /api/donations/patient-history
func (h *DonationHandler) GetPatientHistory(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	logs, err := h.donationUC.PatientHistory(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
