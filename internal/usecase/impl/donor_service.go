package impl

import (
	"context"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
)

type donorService struct {
	requestRepo repository.RequestRepository
	logRepo     repository.DonationLogRepository
	geoMatcher  usecase.GeoMatcher
}

// NewDonorService creates the donor-facing view service
func NewDonorService(requestRepo repository.RequestRepository, logRepo repository.DonationLogRepository, geoMatcher usecase.GeoMatcher) usecase.DonorUsecase {
	return &donorService{
		requestRepo: requestRepo,
		logRepo:     logRepo,
		geoMatcher:  geoMatcher,
	}
}

// DonationLogs returns the donor's logs with their count
func (s *donorService) DonationLogs(ctx context.Context, donorID uuid.UUID) (*usecase.DonationLogSummary, error) {
	logs, err := s.logRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, asInternal(err, "failed to fetch donation logs")
	}

	return &usecase.DonationLogSummary{
		Count: len(logs),
		Logs:  logs,
	}, nil
}

// NearbyRequests returns pending requests raised by patients inside the donor's search box
func (s *donorService) NearbyRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error) {
	patients, err := s.geoMatcher.FindNearbyAccount(ctx, donorID, entity.RolePatient, "")
	if err != nil {
		return nil, err
	}

	if len(patients) == 0 {
		return []*entity.BloodRequest{}, nil
	}

	patientIDs := make([]uuid.UUID, 0, len(patients))
	for _, patient := range patients {
		patientIDs = append(patientIDs, patient.ID)
	}

	requests, err := s.requestRepo.FindPendingByRequesters(ctx, patientIDs)
	if err != nil {
		return nil, asInternal(err, "failed to fetch nearby requests")
	}

	return requests, nil
}
