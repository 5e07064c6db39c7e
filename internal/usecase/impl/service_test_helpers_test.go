package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lifeflow/config"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/infra/persistence/memory"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Geo:          &config.GeoConfig{SearchRadiusDegrees: 0.18},
		Notification: &config.NotificationConfig{Concurrency: 4},
	}
}

// memoryRepos backs a service with the in-memory store so that guards and races are real.
type memoryRepos struct {
	accounts repository.AccountRepository
	requests repository.RequestRepository
	logs     repository.DonationLogRepository
}

func newMemoryRepos() *memoryRepos {
	store := memory.NewStore()

	return &memoryRepos{
		accounts: memory.NewAccountRepository(store),
		requests: memory.NewRequestRepository(store),
		logs:     memory.NewDonationLogRepository(store),
	}
}

func (r *memoryRepos) createAccount(t *testing.T, role entity.Role, bloodType entity.BloodType, location *orb.Point) *entity.Account {
	t.Helper()

	account := &entity.Account{
		Name:      string(role),
		Phone:     "9800000000",
		Role:      role,
		BloodType: bloodType,
		Location:  location,
	}
	require.NoError(t, r.accounts.CreateAccount(context.Background(), account))

	return account
}

func point(lon, lat float64) *orb.Point {
	return &orb.Point{lon, lat}
}
