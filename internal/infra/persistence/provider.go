// Package persistence selects the storage backend for the domain repositories.
package persistence

import (
	"context"
	"log/slog"

	"lifeflow/config"
	"lifeflow/internal/domain/constants"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/errors"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/infra/persistence/memory"
	"lifeflow/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// Repositories is the set of repositories exposed to the usecase layer
type Repositories struct {
	fx.Out

	Accounts     repository.AccountRepository
	Requests     repository.RequestRepository
	DonationLogs repository.DonationLogRepository
}

// NewRepositories builds the repositories for the configured storage driver
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	switch cfg.Driver {
	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for postgres storage")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
			Metrics:   params.Metrics,
		})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL storage")

		return Repositories{
			Accounts:     postgres.NewAccountRepository(db),
			Requests:     postgres.NewRequestRepository(db),
			DonationLogs: postgres.NewDonationLogRepository(db),
		}, nil

	case constants.StorageDriverMemory:
		store := memory.NewStore()
		accounts := memory.NewAccountRepository(store)

		if cfg.SeedFile != "" {
			seed, err := memory.LoadSeedFile(cfg.SeedFile)
			if err != nil {
				return Repositories{}, err
			}

			added, err := memory.Seed(params.Ctx, accounts, seed)
			if err != nil {
				return Repositories{}, err
			}
			logger.Info("Seeded memory store", slog.Int("accounts", added), slog.String("file", cfg.SeedFile))
		}
		logger.Info("Using in-memory storage")

		return Repositories{
			Accounts:     accounts,
			Requests:     memory.NewRequestRepository(store),
			DonationLogs: memory.NewDonationLogRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
