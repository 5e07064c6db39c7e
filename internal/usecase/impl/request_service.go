package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/errors"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// RequestServiceParams holds dependencies for the request lifecycle, injected by Fx.
type RequestServiceParams struct {
	fx.In

	Logger      *slog.Logger
	RequestRepo repository.RequestRepository
	AccountRepo repository.AccountRepository
	GeoMatcher  usecase.GeoMatcher
	Dispatcher  usecase.NotificationDispatcher
	Broadcaster service.EventBroadcaster
	QRCodeSvc   service.QRCodeService
	Metrics     *metrics.Metrics `optional:"true"`
}

type requestService struct {
	logger      *slog.Logger
	requestRepo repository.RequestRepository
	accountRepo repository.AccountRepository
	geoMatcher  usecase.GeoMatcher
	dispatcher  usecase.NotificationDispatcher
	broadcaster service.EventBroadcaster
	qrcodeSvc   service.QRCodeService
	metrics     *metrics.Metrics
}

// NewRequestService creates the blood request lifecycle service
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		logger:      params.Logger,
		requestRepo: params.RequestRepo,
		accountRepo: params.AccountRepo,
		geoMatcher:  params.GeoMatcher,
		dispatcher:  params.Dispatcher,
		broadcaster: params.Broadcaster,
		qrcodeSvc:   params.QRCodeSvc,
		metrics:     params.Metrics,
	}
}

// Create persists a pending request, alerts matching donors nearby and broadcasts it
func (s *requestService) Create(ctx context.Context, requesterID uuid.UUID, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.findAccount(ctx, requesterID); err != nil {
		return nil, err
	}

	if input.Longitude != nil && input.Latitude != nil {
		point := orb.Point{*input.Longitude, *input.Latitude}
		if err := s.accountRepo.UpdateLocation(ctx, requesterID, point); err != nil {
			return nil, asInternal(err, "failed to update requester location")
		}
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = entity.UrgencyUrgent
	}

	request := &entity.BloodRequest{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		BloodType:     input.BloodType,
		UnitsRequired: input.UnitsRequired,
		HospitalName:  strings.TrimSpace(input.HospitalName),
		City:          strings.TrimSpace(input.City),
		Urgency:       urgency,
		Status:        entity.StatusPending,
	}

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, asInternal(err, "failed to create blood request")
	}
	s.metrics.IncTransition("created")

	s.notifyNearbyDonors(ctx, request)
	publishEvent(ctx, s.logger, s.broadcaster, entity.EventRequestCreated, request)

	return request, nil
}

// notifyNearbyDonors alerts donors of the same blood type around the requester.
// Nothing here can fail the create.
func (s *requestService) notifyNearbyDonors(ctx context.Context, request *entity.BloodRequest) {
	logger := deliverycontext.LoggerFrom(ctx, s.logger).With(
		slog.String("blood_request_id", request.ID.String()),
	)

	donors, err := s.geoMatcher.FindNearbyAccount(ctx, request.RequesterID, entity.RoleDonor, request.BloodType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrLocationUnavailable) {
			logger.Info("Requester has no stored location, skipping donor alerts")

			return
		}
		logger.Error("Failed to match nearby donors", slog.Any("error", err))

		return
	}
	s.metrics.ObserveMatchedDonors(len(donors))

	if len(donors) == 0 {
		logger.Info("No matching donors nearby")

		return
	}

	report := s.dispatcher.Dispatch(ctx, donors, entity.Alert{
		RequestID:    request.ID,
		BloodType:    request.BloodType,
		HospitalName: request.HospitalName,
		City:         request.City,
	})

	logger.Info("Donor alerts dispatched",
		slog.Int("matched", len(donors)),
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)
}

// Accept claims a pending request for the accepter with a single conditional write
func (s *requestService) Accept(ctx context.Context, requestID, accepterID uuid.UUID) (*entity.BloodRequest, error) {
	accepter, err := s.findAccount(ctx, accepterID)
	if err != nil {
		return nil, err
	}

	mode := entity.AcceptModeFor(accepter.Role)
	updated, err := s.requestRepo.ClaimPending(ctx, requestID, accepterID, mode.TargetStatus())
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotPending) {
			s.metrics.IncClaimConflict()
		}

		return nil, translateRequestError(err, "failed to accept blood request")
	}
	updated.Accepter = accepter.Summary()
	s.metrics.IncTransition("accepted_as_" + mode.String())

	publishEvent(ctx, s.logger, s.broadcaster, entity.EventRequestAccepted, updated)

	return updated, nil
}

// Cancel reopens a request that is not completed, whoever the caller is
func (s *requestService) Cancel(ctx context.Context, requestID uuid.UUID, reason string) (*entity.BloodRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cancellation reason is required")
	}

	updated, err := s.requestRepo.Reopen(ctx, requestID, reason)
	if err != nil {
		return nil, translateRequestError(err, "failed to cancel blood request")
	}
	s.metrics.IncTransition("cancelled")

	publishEvent(ctx, s.logger, s.broadcaster, entity.EventRequestCancelled, updated)

	return updated, nil
}

// Complete marks the request completed on behalf of a hospital
func (s *requestService) Complete(ctx context.Context, callerID, requestID uuid.UUID) (*entity.BloodRequest, error) {
	caller, err := s.findAccount(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != entity.RoleHospital {
		return nil, domainerrors.ErrUnauthorizedRole
	}

	updated, err := s.requestRepo.MarkCompleted(ctx, requestID)
	if err != nil {
		return nil, translateRequestError(err, "failed to complete blood request")
	}
	s.metrics.IncTransition("completed")

	publishEvent(ctx, s.logger, s.broadcaster, entity.EventRequestCompleted, entity.RequestCompletedPayload{
		ID:     updated.ID,
		Status: updated.Status,
	})

	return updated, nil
}

// ListByRequester returns the requester's own requests, newest first
func (s *requestService) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.FindRequestsByRequester(ctx, requesterID)
	if err != nil {
		return nil, asInternal(err, "failed to list requester's blood requests")
	}

	return requests, nil
}

// ListOpen returns all pending requests, newest first
func (s *requestService) ListOpen(ctx context.Context) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.FindRequestsByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, asInternal(err, "failed to list open blood requests")
	}

	return requests, nil
}

// ListInProgress returns all in-progress requests with their accepter, newest first
func (s *requestService) ListInProgress(ctx context.Context) ([]*entity.BloodRequest, error) {
	requests, err := s.requestRepo.FindRequestsByStatus(ctx, entity.StatusInProgress)
	if err != nil {
		return nil, asInternal(err, "failed to list in-progress blood requests")
	}

	return requests, nil
}

// VerificationQR renders the code a hospital scans to verify the accepting donor
func (s *requestService) VerificationQR(ctx context.Context, requestID uuid.UUID) ([]byte, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, translateRequestError(err, "failed to find blood request")
	}

	if request.AcceptedBy == nil {
		return nil, domainerrors.ErrRequestNotAccepted
	}

	png, err := s.qrcodeSvc.GenerateVerificationQR(service.VerificationCode{
		RequestID: request.ID,
		DonorID:   *request.AcceptedBy,
	})
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return png, nil
}

func (s *requestService) findAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, asInternal(err, "failed to find account")
	}

	return account, nil
}

func validateCreateInput(input *usecase.CreateRequestInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	var problems []string
	if !input.BloodType.IsValid() {
		problems = append(problems, "bloodType must be one of A+, A-, B+, B-, AB+, AB-, O+, O-")
	}
	if input.UnitsRequired <= 0 {
		problems = append(problems, "units must be a positive integer")
	}
	if strings.TrimSpace(input.HospitalName) == "" {
		problems = append(problems, "hospitalName is required")
	}
	if strings.TrimSpace(input.City) == "" {
		problems = append(problems, "city is required")
	}
	if input.Urgency != "" && !input.Urgency.IsValid() {
		problems = append(problems, "urgency must be Urgent or Scheduled")
	}
	if (input.Longitude == nil) != (input.Latitude == nil) {
		problems = append(problems, "longitude and latitude must be provided together")
	}
	if input.Longitude != nil && input.Latitude != nil && !validCoordinates(*input.Longitude, *input.Latitude) {
		problems = append(problems, "longitude must be within [-180, 180] and latitude within [-90, 90]")
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

func validCoordinates(lon, lat float64) bool {
	if math.IsNaN(lon) || math.IsNaN(lat) {
		return false
	}

	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
