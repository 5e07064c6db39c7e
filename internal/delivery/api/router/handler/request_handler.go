package handler

import (
	"log/slog"
	"net/http"

	"lifeflow/internal/delivery/api/response"
	"lifeflow/internal/delivery/api/validator"
	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves the blood request lifecycle routes
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateBloodRequest is the body of POST /api/requests
type CreateBloodRequest struct {
	BloodType     string   `json:"bloodType" validate:"required,bloodtype"`
	UnitsRequired int      `json:"units" validate:"gt=0"`
	HospitalName  string   `json:"hospitalName" validate:"required"`
	City          string   `json:"city" validate:"required"`
	Urgency       string   `json:"urgency" validate:"urgency"`
	Longitude     *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,gte=-180,lte=180"`
	Latitude      *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,gte=-90,lte=90"`
}

// CancelBloodRequest is the body of POST /api/requests/:id/cancel
type CancelBloodRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// CreateRequest handles POST /api/requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req CreateBloodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blood request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	request, err := h.requestUC.Create(c.Request().Context(), accountID, &usecase.CreateRequestInput{
		BloodType:     entity.BloodType(req.BloodType),
		UnitsRequired: req.UnitsRequired,
		HospitalName:  req.HospitalName,
		City:          req.City,
		Urgency:       entity.Urgency(req.Urgency),
		Longitude:     req.Longitude,
		Latitude:      req.Latitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// AcceptRequest handles POST /api/requests/:id/accept
func (h *RequestHandler) AcceptRequest(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	request, err := h.requestUC.Accept(c.Request().Context(), requestID, accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// CancelRequest handles POST /api/requests/:id/cancel
func (h *RequestHandler) CancelRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var req CancelBloodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	request, err := h.requestUC.Cancel(c.Request().Context(), requestID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// CompleteRequest handles POST /api/requests/:id/complete
func (h *RequestHandler) CompleteRequest(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	request, err := h.requestUC.Complete(c.Request().Context(), accountID, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request)
}

// GetMyRequests handles GET /api/requests/my-requests
func (h *RequestHandler) GetMyRequests(c echo.Context) error {
	accountID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	requests, err := h.requestUC.ListByRequester(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// GetOpenRequests handles GET /api/requests
func (h *RequestHandler) GetOpenRequests(c echo.Context) error {
	requests, err := h.requestUC.ListOpen(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// GetInProgressRequests handles GET /api/requests/inprogress
func (h *RequestHandler) GetInProgressRequests(c echo.Context) error {
	requests, err := h.requestUC.ListInProgress(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// GetVerificationQR handles GET /api/requests/:id/qr and returns a PNG
func (h *RequestHandler) GetVerificationQR(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	png, err := h.requestUC.VerificationQR(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
