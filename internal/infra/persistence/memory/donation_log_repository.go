package memory

import (
	"context"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"

	"github.com/google/uuid"
)

type donationLogRepository struct {
	store *Store
}

// NewDonationLogRepository creates a donation log repository over the store.
func NewDonationLogRepository(store *Store) repository.DonationLogRepository {
	return &donationLogRepository{store: store}
}

// CreateDonationLog appends a verified donation.
func (repo *donationLogRepository) CreateDonationLog(_ context.Context, log *entity.DonationLog) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.DonatedAt.IsZero() {
		log.DonatedAt = s.now()
	}
	s.logs = append(s.logs, cloneLog(log))

	return nil
}

// CountByDonor returns the number of logs recorded for a donor.
func (repo *donationLogRepository) CountByDonor(_ context.Context, donorID uuid.UUID) (int64, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, l := range s.logs {
		if l.DonorID == donorID {
			count++
		}
	}

	return count, nil
}

// FindByDonor retrieves a donor's logs, newest first.
func (repo *donationLogRepository) FindByDonor(_ context.Context, donorID uuid.UUID) ([]*entity.DonationLog, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestLogsLocked(func(l *entity.DonationLog) bool {
		return l.DonorID == donorID
	}), nil
}

// FindByHospital retrieves logs verified by a hospital, newest first.
func (repo *donationLogRepository) FindByHospital(_ context.Context, hospitalID uuid.UUID) ([]*entity.DonationLog, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestLogsLocked(func(l *entity.DonationLog) bool {
		return l.HospitalID == hospitalID
	}), nil
}

// FindByRequester retrieves logs tied to requests raised by the account, newest first.
func (repo *donationLogRepository) FindByRequester(_ context.Context, requesterID uuid.UUID) ([]*entity.DonationLog, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestLogsLocked(func(l *entity.DonationLog) bool {
		if l.RequestID == nil {
			return false
		}
		request, ok := s.requests[*l.RequestID]

		return ok && request.RequesterID == requesterID
	}), nil
}
