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

// donationLogRepository implements the repository.DonationLogRepository interface.
type donationLogRepository struct {
	db *gorm.DB
}

// NewDonationLogRepository is the constructor for donationLogRepository.
func NewDonationLogRepository(db *gorm.DB) repository.DonationLogRepository {
	return &donationLogRepository{
		db: db,
	}
}

// CreateDonationLog appends a verified donation.
func (repo *donationLogRepository) CreateDonationLog(ctx context.Context, log *entity.DonationLog) error {
	logM := fromDonationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation log")
	}

	log.ID = logM.ID
	log.DonatedAt = logM.DonatedAt

	return nil
}

// CountByDonor returns the number of logs recorded for a donor.
func (repo *donationLogRepository) CountByDonor(ctx context.Context, donorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationLogModel{}).
		Where("donor_id = ?", donorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donation logs")
	}

	return count, nil
}

// FindByDonor retrieves a donor's logs with the hospital attached.
func (repo *donationLogRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.DonationLog, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Hospital", selectSummary).
		Where("donor_id = ?", donorID)

	return repo.findMany(tx, "failed to find donation logs by donor")
}

// FindByHospital retrieves logs verified by a hospital with the donor attached.
func (repo *donationLogRepository) FindByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*entity.DonationLog, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Donor", selectSummary).
		Where("hospital_id = ?", hospitalID)

	return repo.findMany(tx, "failed to find donation logs by hospital")
}

// FindByRequester retrieves logs tied to requests raised by an account.
func (repo *donationLogRepository) FindByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.DonationLog, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Donor", selectSummary).
		Preload("Hospital", selectSummary).
		Joins("JOIN blood_requests ON blood_requests.id = donation_logs.request_id").
		Where("blood_requests.requester_id = ?", requesterID)

	return repo.findMany(tx, "failed to find donation logs by requester")
}

func (repo *donationLogRepository) findMany(tx *gorm.DB, msg string) ([]*entity.DonationLog, error) {
	var logModels []*model.DonationLogModel

	if err := tx.Order("donation_logs.donated_at DESC").Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, msg)
	}

	logs := make([]*entity.DonationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDonationLogDomain(logM))
	}

	return logs, nil
}

func toDonationLogDomain(data *model.DonationLogModel) *entity.DonationLog {
	return &entity.DonationLog{
		ID:           data.ID,
		DonorID:      data.DonorID,
		HospitalID:   data.HospitalID,
		RequestID:    data.RequestID,
		UnitsDonated: data.UnitsDonated,
		DonatedAt:    data.DonatedAt,
		Donor:        summaryOf(data.Donor),
		Hospital:     summaryOf(data.Hospital),
	}
}

func fromDonationLogDomain(data *entity.DonationLog) *model.DonationLogModel {
	return &model.DonationLogModel{
		ID:           data.ID,
		DonorID:      data.DonorID,
		HospitalID:   data.HospitalID,
		RequestID:    data.RequestID,
		UnitsDonated: data.UnitsDonated,
		DonatedAt:    data.DonatedAt,
	}
}
