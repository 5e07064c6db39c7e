package postgres

import (
	"context"
	"log/slog"

	"lifeflow/config"
	"lifeflow/internal/domain/lifecycle"
	"lifeflow/internal/errors"
	"lifeflow/internal/infra/metrics"
	"lifeflow/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the lifeflow database, checks it on start and closes it on stop.
// The pool stats are exported on the metrics registry when one is provided.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Lifecycle writes are single conditional statements; they need no wrapping transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	params.Metrics.RegisterDB(sqlDB, params.Config.Postgres.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			return migrate(ctx, db, params.Config.Storage, params.Logger)
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, storage *config.StorageConfig, logger *slog.Logger) error {
	if storage == nil || !storage.AutoMigrate {
		return nil
	}

	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}
	logger.Info("PostgreSQL schema migrated", slog.Int("tables", len(model.All())))

	return nil
}
