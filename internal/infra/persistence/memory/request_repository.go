package memory

import (
	"context"
	"slices"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"

	"github.com/google/uuid"
)

type requestRepository struct {
	store *Store
}

// NewRequestRepository creates a blood request repository over the store.
func NewRequestRepository(store *Store) repository.RequestRepository {
	return &requestRepository{store: store}
}

// CreateRequest persists a new request.
func (repo *requestRepository) CreateRequest(_ context.Context, request *entity.BloodRequest) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := s.now()
	request.CreatedAt = now
	request.UpdatedAt = now

	s.requests[request.ID] = cloneRequest(request)
	s.requestOrder = append(s.requestOrder, request.ID)

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *requestRepository) FindRequestByID(_ context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}

	return s.requestViewLocked(request), nil
}

// FindRequestsByRequester retrieves the requester's requests, newest first.
func (repo *requestRepository) FindRequestsByRequester(_ context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestRequestsLocked(func(r *entity.BloodRequest) bool {
		return r.RequesterID == requesterID
	}), nil
}

// FindRequestsByStatus retrieves requests in the status, newest first.
func (repo *requestRepository) FindRequestsByStatus(_ context.Context, status entity.RequestStatus) ([]*entity.BloodRequest, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestRequestsLocked(func(r *entity.BloodRequest) bool {
		return r.Status == status
	}), nil
}

// FindPendingByRequesters retrieves pending requests of any of the requesters, newest first.
func (repo *requestRepository) FindPendingByRequesters(_ context.Context, requesterIDs []uuid.UUID) ([]*entity.BloodRequest, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.newestRequestsLocked(func(r *entity.BloodRequest) bool {
		return r.Status == entity.StatusPending && slices.Contains(requesterIDs, r.RequesterID)
	}), nil
}

// ClaimPending sets the target status and accepter only while the request is Pending.
func (repo *requestRepository) ClaimPending(_ context.Context, id, accepterID uuid.UUID, target entity.RequestStatus) (*entity.BloodRequest, error) {
	return repo.transition(id, func(r *entity.BloodRequest) error {
		if r.Status != entity.StatusPending {
			return repository.ErrRequestNotPending
		}
		accepter := accepterID
		r.Status = target
		r.AcceptedBy = &accepter

		return nil
	})
}

// Reopen resets a non-completed request to Pending with the cancellation reason.
func (repo *requestRepository) Reopen(_ context.Context, id uuid.UUID, reason string) (*entity.BloodRequest, error) {
	return repo.transition(id, func(r *entity.BloodRequest) error {
		if r.Status == entity.StatusCompleted {
			return repository.ErrRequestCompleted
		}
		r.Status = entity.StatusPending
		r.AcceptedBy = nil
		r.CancellationReason = &reason

		return nil
	})
}

// MarkCompleted moves an In Progress request to Completed.
func (repo *requestRepository) MarkCompleted(_ context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	return repo.transition(id, func(r *entity.BloodRequest) error {
		if r.Status != entity.StatusInProgress || r.AcceptedBy == nil {
			return completeConflict(r.Status)
		}
		r.Status = entity.StatusCompleted

		return nil
	})
}

// transition applies a guarded mutation under the write lock; the guard and the write are one step.
func (repo *requestRepository) transition(id uuid.UUID, apply func(*entity.BloodRequest) error) (*entity.BloodRequest, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}

	if err := apply(request); err != nil {
		return nil, err
	}
	request.UpdatedAt = s.now()

	return s.requestViewLocked(request), nil
}

func completeConflict(status entity.RequestStatus) error {
	if status == entity.StatusCompleted {
		return repository.ErrRequestCompleted
	}

	return repository.ErrRequestNotAccepted
}
