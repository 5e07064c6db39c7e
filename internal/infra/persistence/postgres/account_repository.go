// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// CreateAccount persists an account provisioned by the identity service.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindAccountByID retrieves an account by its unique ID.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// FindAccountsWithinBound runs an inclusive box query over the longitude and latitude columns.
func (repo *accountRepository) FindAccountsWithinBound(ctx context.Context, query repository.AccountQuery) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	tx := repo.db.WithContext(ctx).
		Where("role = ?", string(query.Role)).
		Where("longitude BETWEEN ? AND ?", query.Bound.Min.Lon(), query.Bound.Max.Lon()).
		Where("latitude BETWEEN ? AND ?", query.Bound.Min.Lat(), query.Bound.Max.Lat())
	if query.BloodType != "" {
		tx = tx.Where("blood_type = ?", string(query.BloodType))
	}

	if err := tx.Order("created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts within bound")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// UpdateLocation stores a new point for the account.
func (repo *accountRepository) UpdateLocation(ctx context.Context, id uuid.UUID, point orb.Point) error {
	return repo.update(ctx, id, map[string]any{
		"longitude": point.Lon(),
		"latitude":  point.Lat(),
	}, "failed to update account location")
}

// UpdateLastDonation records the donor's most recent verified donation.
func (repo *accountRepository) UpdateLastDonation(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"last_donation_at": at,
	}, "failed to update last donation")
}

// AddBadge appends the badge in one statement guarded by NOT ANY, so concurrent awards stay single.
func (repo *accountRepository) AddBadge(ctx context.Context, id uuid.UUID, badge entity.Badge) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND NOT (? = ANY(badges))", id, string(badge)).
		Update("badges", gorm.Expr("array_append(badges, ?)", string(badge)))
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to add badge")
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	// Nothing written: either the badge is already held or the account is missing.
	if _, err := repo.FindAccountByID(ctx, id); err != nil {
		return false, err
	}

	return false, nil
}

func (repo *accountRepository) update(ctx context.Context, id uuid.UUID, fields map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(data *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:             data.ID,
		Name:           data.Name,
		Phone:          data.Phone,
		PushToken:      data.PushToken,
		Role:           entity.Role(data.Role),
		City:           data.City,
		BloodType:      entity.BloodType(data.BloodType),
		LastDonationAt: data.LastDonationAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.Email != nil {
		account.Email = *data.Email
	}
	if data.Longitude != nil && data.Latitude != nil {
		account.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}
	for _, badge := range data.Badges {
		account.Badges = append(account.Badges, entity.Badge(badge))
	}

	return account
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	accountM := &model.AccountModel{
		ID:             data.ID,
		Name:           data.Name,
		Phone:          data.Phone,
		PushToken:      data.PushToken,
		Role:           string(data.Role),
		City:           data.City,
		BloodType:      string(data.BloodType),
		LastDonationAt: data.LastDonationAt,
		Badges:         pq.StringArray{},
	}
	if data.Email != "" {
		email := data.Email
		accountM.Email = &email
	}
	if data.Location != nil {
		lon, lat := data.Location.Lon(), data.Location.Lat()
		accountM.Longitude = &lon
		accountM.Latitude = &lat
	}
	for _, badge := range data.Badges {
		accountM.Badges = append(accountM.Badges, string(badge))
	}

	return accountM
}
