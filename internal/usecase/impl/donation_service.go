package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/constants"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/errors"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// DonationServiceParams holds dependencies for donation verification, injected by Fx.
type DonationServiceParams struct {
	fx.In

	Logger      *slog.Logger
	AccountRepo repository.AccountRepository
	RequestRepo repository.RequestRepository
	LogRepo     repository.DonationLogRepository
	Requests    usecase.RequestUsecase
	Badges      usecase.BadgeEngine
	QRCodeSvc   service.QRCodeService
	Metrics     *metrics.Metrics `optional:"true"`
}

type donationService struct {
	logger      *slog.Logger
	accountRepo repository.AccountRepository
	requestRepo repository.RequestRepository
	logRepo     repository.DonationLogRepository
	requests    usecase.RequestUsecase
	badges      usecase.BadgeEngine
	qrcodeSvc   service.QRCodeService
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewDonationService creates the donation verification service
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		logger:      params.Logger,
		accountRepo: params.AccountRepo,
		requestRepo: params.RequestRepo,
		logRepo:     params.LogRepo,
		requests:    params.Requests,
		badges:      params.Badges,
		qrcodeSvc:   params.QRCodeSvc,
		metrics:     params.Metrics,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// VerifyDonation records a donation confirmed by a hospital
func (s *donationService) VerifyDonation(ctx context.Context, hospitalID uuid.UUID, input *usecase.VerifyDonationInput) (*usecase.VerifyDonationResult, error) {
	logger := deliverycontext.LoggerFrom(ctx, s.logger)

	if err := s.requireHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	donorID, requestID, err := s.resolveVerification(input)
	if err != nil {
		return nil, err
	}

	donor, err := s.accountRepo.FindAccountByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, asInternal(err, "failed to find donor")
	}
	if donor.Role != entity.RoleDonor {
		return nil, domainerrors.ErrDonorNotFound
	}

	// Completing first rejects a second verification of the same request,
	// so each request produces at most one log.
	if requestID != nil {
		if err := s.checkAccepter(ctx, *requestID, donor.ID); err != nil {
			return nil, err
		}
		if _, err := s.requests.Complete(ctx, hospitalID, *requestID); err != nil {
			return nil, err
		}
	}

	donatedAt := s.now()
	if err := s.accountRepo.UpdateLastDonation(ctx, donor.ID, donatedAt); err != nil {
		return nil, asInternal(err, "failed to update last donation date")
	}
	donor.LastDonationAt = &donatedAt

	donationLog := &entity.DonationLog{
		ID:           uuid.New(),
		DonorID:      donor.ID,
		HospitalID:   hospitalID,
		RequestID:    requestID,
		UnitsDonated: constants.DefaultUnitsDonated,
		DonatedAt:    donatedAt,
	}
	if err := s.logRepo.CreateDonationLog(ctx, donationLog); err != nil {
		return nil, asInternal(err, "failed to create donation log")
	}
	s.metrics.IncDonationVerified()

	// The donation is already recorded; a badge failure is reported but not returned.
	badge, err := s.badges.Evaluate(ctx, donor)
	if err != nil {
		logger.Error("Failed to evaluate badges",
			slog.String("donor_id", donor.ID.String()),
			slog.Any("error", err),
		)
	}

	logger.Info("Donation verified",
		slog.String("donor_id", donor.ID.String()),
		slog.String("hospital_id", hospitalID.String()),
		slog.String("badge", badge.String()),
	)

	return &usecase.VerifyDonationResult{
		Message:      constants.VerifiedDonationMessage,
		BadgeAwarded: badge,
		Log:          donationLog,
	}, nil
}

// resolveVerification picks the donor and request either from the scanned code or the explicit ids
func (s *donationService) resolveVerification(input *usecase.VerifyDonationInput) (uuid.UUID, *uuid.UUID, error) {
	if input == nil {
		return uuid.Nil, nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	if input.QRData != "" {
		code, err := s.qrcodeSvc.ParseVerificationQR(input.QRData)
		if err != nil {
			return uuid.Nil, nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
		}
		requestID := code.RequestID

		return code.DonorID, &requestID, nil
	}

	if input.DonorID == uuid.Nil {
		return uuid.Nil, nil, domainerrors.ErrValidationFailed.WithDetails("donorId is required")
	}

	return input.DonorID, input.RequestID, nil
}

// checkAccepter makes sure the donor being verified is the one who accepted the request
func (s *donationService) checkAccepter(ctx context.Context, requestID, donorID uuid.UUID) error {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return translateRequestError(err, "failed to find blood request")
	}

	switch {
	case request.Status == entity.StatusCompleted:
		return domainerrors.ErrRequestCompleted
	case request.AcceptedBy == nil:
		return domainerrors.ErrRequestNotAccepted
	case *request.AcceptedBy != donorID:
		return domainerrors.ErrDonorNotAccepter
	}

	return nil
}

// DonorHistory returns a donor's donations, newest first
func (s *donationService) DonorHistory(ctx context.Context, donorID uuid.UUID) ([]*entity.DonationLog, error) {
	logs, err := s.logRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, asInternal(err, "failed to fetch donor history")
	}

	return logs, nil
}

// HospitalHistory returns donations verified by a hospital, newest first
func (s *donationService) HospitalHistory(ctx context.Context, hospitalID uuid.UUID) ([]*entity.DonationLog, error) {
	if err := s.requireHospital(ctx, hospitalID); err != nil {
		return nil, err
	}

	logs, err := s.logRepo.FindByHospital(ctx, hospitalID)
	if err != nil {
		return nil, asInternal(err, "failed to fetch hospital history")
	}

	return logs, nil
}

// PatientHistory returns donations made against a patient's requests, newest first
func (s *donationService) PatientHistory(ctx context.Context, patientID uuid.UUID) ([]*entity.DonationLog, error) {
	logs, err := s.logRepo.FindByRequester(ctx, patientID)
	if err != nil {
		return nil, asInternal(err, "failed to fetch patient history")
	}

	return logs, nil
}

// requireHospital rejects callers that are missing or not hospitals with the same 403
func (s *donationService) requireHospital(ctx context.Context, id uuid.UUID) error {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrUnauthorizedRole
		}

		return asInternal(err, "failed to find hospital")
	}

	if account.Role != entity.RoleHospital {
		return domainerrors.ErrUnauthorizedRole
	}

	return nil
}
