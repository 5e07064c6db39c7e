package memory

import (
	"context"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/errors"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/paulmach/orb"
)

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Email     string   `yaml:"email"`
	Phone     string   `yaml:"phone"`
	PushToken string   `yaml:"pushToken"`
	Role      string   `yaml:"role"`
	City      string   `yaml:"city"`
	BloodType string   `yaml:"bloodType"`
	Longitude *float64 `yaml:"longitude"`
	Latitude  *float64 `yaml:"latitude"`
	Badges    []string `yaml:"badges"`
}

// LoadSeedFile reads accounts from a YAML seed file.
func LoadSeedFile(path string) ([]*entity.Account, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var seed seedFile
	if err := k.UnmarshalWithConf("", &seed, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal seed file %s", path)
	}

	accounts := make([]*entity.Account, 0, len(seed.Accounts))
	for i, raw := range seed.Accounts {
		account, err := raw.toAccount()
		if err != nil {
			return nil, errors.Wrapf(err, "seed account %d", i)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (raw seedAccount) toAccount() (*entity.Account, error) {
	role, ok := entity.ParseRole(raw.Role)
	if !ok {
		return nil, errors.Errorf("unknown role %q", raw.Role)
	}

	account := &entity.Account{
		Name:      raw.Name,
		Email:     raw.Email,
		Phone:     raw.Phone,
		PushToken: raw.PushToken,
		Role:      role,
		City:      raw.City,
		BloodType: entity.BloodType(raw.BloodType),
	}

	if raw.ID != "" {
		id, err := uuid.Parse(raw.ID)
		if err != nil {
			return nil, errors.Wrap(err, "parse id")
		}
		account.ID = id
	}

	if raw.Longitude != nil && raw.Latitude != nil {
		account.Location = &orb.Point{*raw.Longitude, *raw.Latitude}
	}

	for _, badge := range raw.Badges {
		account.Badges = append(account.Badges, entity.Badge(badge))
	}

	return account, nil
}

// Seed inserts accounts through the repository, skipping ones that already exist.
func Seed(ctx context.Context, repo repository.AccountRepository, accounts []*entity.Account) (int, error) {
	inserted := 0
	for _, account := range accounts {
		err := repo.CreateAccount(ctx, account)
		if errors.Is(err, repository.ErrDuplicateAccount) {
			continue
		}
		if err != nil {
			return inserted, errors.Wrapf(err, "seed account %s", account.ID)
		}
		inserted++
	}

	return inserted, nil
}
