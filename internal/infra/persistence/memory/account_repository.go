package memory

import (
	"context"
	"time"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository creates an account repository over the store.
func NewAccountRepository(store *Store) repository.AccountRepository {
	return &accountRepository{store: store}
}

// CreateAccount persists an account, assigning an ID when missing.
func (repo *accountRepository) CreateAccount(_ context.Context, account *entity.Account) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if _, exists := s.accounts[account.ID]; exists {
		return repository.ErrDuplicateAccount
	}
	if account.Email != "" {
		for _, existing := range s.accounts {
			if existing.Email == account.Email {
				return repository.ErrDuplicateAccount
			}
		}
	}

	now := s.now()
	account.CreatedAt = now
	account.UpdatedAt = now
	s.accounts[account.ID] = cloneAccount(account)

	return nil
}

// FindAccountByID retrieves an account by its unique ID.
func (repo *accountRepository) FindAccountByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return cloneAccount(account), nil
}

// FindAccountsWithinBound returns accounts whose point lies inside the bound, edges included.
func (repo *accountRepository) FindAccountsWithinBound(_ context.Context, query repository.AccountQuery) ([]*entity.Account, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.Account, 0)
	for _, account := range s.accounts {
		if account.Role != query.Role || !account.HasLocation() {
			continue
		}
		if query.BloodType != "" && account.BloodType != query.BloodType {
			continue
		}
		if !query.Bound.Contains(*account.Location) {
			continue
		}
		result = append(result, cloneAccount(account))
	}

	return result, nil
}

// UpdateLocation stores a new point for the account.
func (repo *accountRepository) UpdateLocation(_ context.Context, id uuid.UUID, point orb.Point) error {
	return repo.update(id, func(account *entity.Account) {
		account.Location = &point
	})
}

// UpdateLastDonation records the donor's most recent donation time.
func (repo *accountRepository) UpdateLastDonation(_ context.Context, id uuid.UUID, at time.Time) error {
	return repo.update(id, func(account *entity.Account) {
		account.LastDonationAt = &at
	})
}

// AddBadge appends the badge if the account does not hold it yet.
func (repo *accountRepository) AddBadge(_ context.Context, id uuid.UUID, badge entity.Badge) (bool, error) {
	added := false
	err := repo.update(id, func(account *entity.Account) {
		if account.HasBadge(badge) {
			return
		}
		account.Badges = append(account.Badges, badge)
		added = true
	})

	return added, err
}

func (repo *accountRepository) update(id uuid.UUID, mutate func(*entity.Account)) error {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}

	mutate(account)
	account.UpdatedAt = s.now()

	return nil
}
