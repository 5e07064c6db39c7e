package handler

import (
	"net/http"

	"lifeflow/internal/delivery/api/response"
	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DonorHandler serves the donor dashboard routes
type DonorHandler struct {
	donorUC usecase.DonorUsecase
}

// NewDonorHandler is the constructor for DonorHandler
func NewDonorHandler(donorUC usecase.DonorUsecase) *DonorHandler {
	return &DonorHandler{donorUC: donorUC}
}

// GetDonationLogs handles GET /api/donors/donation-logs
func (h *DonorHandler) GetDonationLogs(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	summary, err := h.donorUC.DonationLogs(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// GetNearbyRequests handles GET /api/donors/nearby-requests
func (h *DonorHandler) GetNearbyRequests(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requests, err := h.donorUC.NearbyRequests(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}
