package postgres

import (
	"context"

	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new request.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.BloodRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID with the accepter attached.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var requestM model.BloodRequestModel

	if err := repo.withAccepter(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindRequestsByRequester retrieves all requests raised by an account, newest first.
func (repo *requestRepository) FindRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	return repo.findMany(ctx, "failed to find blood requests by requester",
		"requester_id = ?", requesterID)
}

// FindRequestsByStatus retrieves requests in a status, newest first.
func (repo *requestRepository) FindRequestsByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.BloodRequest, error) {
	return repo.findMany(ctx, "failed to find blood requests by status",
		"status = ?", string(status))
}

// FindPendingByRequesters retrieves pending requests raised by any of the accounts, newest first.
func (repo *requestRepository) FindPendingByRequesters(ctx context.Context, requesterIDs []uuid.UUID) ([]*entity.BloodRequest, error) {
	if len(requesterIDs) == 0 {
		return []*entity.BloodRequest{}, nil
	}

	return repo.findMany(ctx, "failed to find pending blood requests",
		"status = ? AND requester_id IN ?", string(entity.StatusPending), requesterIDs)
}

// ClaimPending is a conditional UPDATE on status = Pending; the row lock makes one claimant win.
func (repo *requestRepository) ClaimPending(ctx context.Context, id, accepterID uuid.UUID, target entity.RequestStatus) (*entity.BloodRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":      string(target),
			"accepted_by": accepterID,
		})

	return repo.afterTransition(ctx, id, result, func(*entity.BloodRequest) error {
		return repository.ErrRequestNotPending
	}, "failed to claim blood request")
}

// Reopen resets a non-completed request to Pending and stores the reason.
func (repo *requestRepository) Reopen(ctx context.Context, id uuid.UUID, reason string) (*entity.BloodRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ? AND status <> ?", id, string(entity.StatusCompleted)).
		Updates(map[string]any{
			"status":              string(entity.StatusPending),
			"accepted_by":         nil,
			"cancellation_reason": reason,
		})

	return repo.afterTransition(ctx, id, result, func(*entity.BloodRequest) error {
		return repository.ErrRequestCompleted
	}, "failed to reopen blood request")
}

// MarkCompleted moves an In Progress request to Completed. Only accepted requests are In Progress,
// so the accepter is always kept.
func (repo *requestRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ? AND status = ? AND accepted_by IS NOT NULL", id, string(entity.StatusInProgress)).
		Update("status", string(entity.StatusCompleted))

	return repo.afterTransition(ctx, id, result, func(current *entity.BloodRequest) error {
		if current.Status == entity.StatusCompleted {
			return repository.ErrRequestCompleted
		}

		return repository.ErrRequestNotAccepted
	}, "failed to complete blood request")
}

// afterTransition reloads the row on success. When no row matched the guard it tells a
// missing request apart from one in the wrong state, which conflict names.
func (repo *requestRepository) afterTransition(ctx context.Context, id uuid.UUID, result *gorm.DB, conflict func(*entity.BloodRequest) error, msg string) (*entity.BloodRequest, error) {
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, msg)
	}

	request, err := repo.FindRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		return nil, conflict(request)
	}

	return request, nil
}

func (repo *requestRepository) findMany(ctx context.Context, msg string, query string, args ...any) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.withAccepter(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	requests := make([]*entity.BloodRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

func (repo *requestRepository) withAccepter(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Accepter", selectSummary)
}

// selectSummary narrows a preloaded account to the columns of entity.AccountSummary.
func selectSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func summaryOf(data *model.AccountModel) *entity.AccountSummary {
	if data == nil {
		return nil
	}

	return &entity.AccountSummary{ID: data.ID, Name: data.Name}
}

func toRequestDomain(data *model.BloodRequestModel) *entity.BloodRequest {
	return &entity.BloodRequest{
		ID:                 data.ID,
		RequesterID:        data.RequesterID,
		AcceptedBy:         data.AcceptedBy,
		Accepter:           summaryOf(data.Accepter),
		BloodType:          entity.BloodType(data.BloodType),
		UnitsRequired:      data.UnitsRequired,
		HospitalName:       data.HospitalName,
		City:               data.City,
		Urgency:            entity.Urgency(data.Urgency),
		Status:             entity.RequestStatus(data.Status),
		CancellationReason: data.CancellationReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromRequestDomain(data *entity.BloodRequest) *model.BloodRequestModel {
	return &model.BloodRequestModel{
		ID:                 data.ID,
		RequesterID:        data.RequesterID,
		AcceptedBy:         data.AcceptedBy,
		BloodType:          string(data.BloodType),
		UnitsRequired:      data.UnitsRequired,
		HospitalName:       data.HospitalName,
		City:               data.City,
		Urgency:            string(data.Urgency),
		Status:             string(data.Status),
		CancellationReason: data.CancellationReason,
	}
}
