package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos() (*Store, repository.AccountRepository, repository.RequestRepository, repository.DonationLogRepository) {
	store := NewStore()

	return store, NewAccountRepository(store), NewRequestRepository(store), NewDonationLogRepository(store)
}

func createDonorAt(t *testing.T, repo repository.AccountRepository, lon, lat float64, bloodType entity.BloodType) *entity.Account {
	t.Helper()

	account := &entity.Account{
		Name:      "donor",
		Role:      entity.RoleDonor,
		BloodType: bloodType,
		Location:  &orb.Point{lon, lat},
	}
	require.NoError(t, repo.CreateAccount(context.Background(), account))

	return account
}

func TestAccountRepository_FindAccountsWithinBound_EdgesInclusive(t *testing.T) {
	_, accounts, _, _ := newTestRepos()
	ctx := context.Background()

	onEdge := createDonorAt(t, accounts, 1.0, 0.5, entity.BloodTypeOPositive)
	onCorner := createDonorAt(t, accounts, 1.0, 1.0, entity.BloodTypeOPositive)
	createDonorAt(t, accounts, 1.0000001, 0.5, entity.BloodTypeOPositive)
	createDonorAt(t, accounts, 0.5, 0.5, entity.BloodTypeBNegative)
	require.NoError(t, accounts.CreateAccount(ctx, &entity.Account{Role: entity.RoleDonor, BloodType: entity.BloodTypeOPositive}))

	found, err := accounts.FindAccountsWithinBound(ctx, repository.AccountQuery{
		Bound:     orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
		Role:      entity.RoleDonor,
		BloodType: entity.BloodTypeOPositive,
	})
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(found))
	for _, a := range found {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{onEdge.ID, onCorner.ID}, ids)
}

func TestAccountRepository_AddBadge_Idempotent(t *testing.T) {
	_, accounts, _, _ := newTestRepos()
	ctx := context.Background()
	donor := createDonorAt(t, accounts, 0, 0, entity.BloodTypeAPositive)

	added, err := accounts.AddBadge(ctx, donor.ID, entity.BadgeFirstDonation)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = accounts.AddBadge(ctx, donor.ID, entity.BadgeFirstDonation)
	require.NoError(t, err)
	assert.False(t, added)

	stored, err := accounts.FindAccountByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Badge{entity.BadgeFirstDonation}, stored.Badges)

	_, err = accounts.AddBadge(ctx, uuid.New(), entity.BadgeBloodHero)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	_, accounts, _, _ := newTestRepos()
	ctx := context.Background()
	donor := createDonorAt(t, accounts, 10, 10, entity.BloodTypeAPositive)

	first, err := accounts.FindAccountByID(ctx, donor.ID)
	require.NoError(t, err)
	first.Location[0] = 99
	first.Badges = append(first.Badges, entity.BadgeBloodHero)

	second, err := accounts.FindAccountByID(ctx, donor.ID)
	require.NoError(t, err)
	assert.InDelta(t, 10, second.Location.Lon(), 0)
	assert.Empty(t, second.Badges)
}

func TestRequestRepository_ClaimPending_SingleWinner(t *testing.T) {
	_, _, requests, _ := newTestRepos()
	ctx := context.Background()

	request := &entity.BloodRequest{RequesterID: uuid.New(), BloodType: entity.BloodTypeOPositive, Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, request))

	const contenders = 50
	var (
		wg        sync.WaitGroup
		winners   atomic.Int32
		conflicts atomic.Int32
		start     = make(chan struct{})
	)

	for range contenders {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := requests.ClaimPending(ctx, request.ID, uuid.New(), entity.StatusInProgress)
			switch {
			case err == nil:
				winners.Add(1)
			case assert.ErrorIs(t, err, repository.ErrRequestNotPending):
				conflicts.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(contenders-1), conflicts.Load())
}

func TestRequestRepository_Transitions(t *testing.T) {
	_, _, requests, _ := newTestRepos()
	ctx := context.Background()
	accepter := uuid.New()

	request := &entity.BloodRequest{RequesterID: uuid.New(), Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, request))

	claimed, err := requests.ClaimPending(ctx, request.ID, accepter, entity.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, claimed.Status)
	require.NotNil(t, claimed.AcceptedBy)
	assert.Equal(t, accepter, *claimed.AcceptedBy)

	reopened, err := requests.Reopen(ctx, request.ID, "donor unavailable")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, reopened.Status)
	assert.Nil(t, reopened.AcceptedBy)
	require.NotNil(t, reopened.CancellationReason)
	assert.Equal(t, "donor unavailable", *reopened.CancellationReason)

	_, err = requests.MarkCompleted(ctx, request.ID)
	assert.ErrorIs(t, err, repository.ErrRequestNotAccepted)

	_, err = requests.ClaimPending(ctx, request.ID, accepter, entity.StatusInProgress)
	require.NoError(t, err)

	completed, err := requests.MarkCompleted(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)
	require.NotNil(t, completed.AcceptedBy)
	assert.Equal(t, accepter, *completed.AcceptedBy)

	_, err = requests.MarkCompleted(ctx, request.ID)
	assert.ErrorIs(t, err, repository.ErrRequestCompleted)

	_, err = requests.Reopen(ctx, request.ID, "too late")
	assert.ErrorIs(t, err, repository.ErrRequestCompleted)

	_, err = requests.ClaimPending(ctx, uuid.New(), accepter, entity.StatusInProgress)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestRequestRepository_MarkCompleted_RequiresAccepter(t *testing.T) {
	_, _, requests, _ := newTestRepos()
	ctx := context.Background()

	pending := &entity.BloodRequest{RequesterID: uuid.New(), Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, pending))

	_, err := requests.MarkCompleted(ctx, pending.ID)
	assert.ErrorIs(t, err, repository.ErrRequestNotAccepted)

	stored, err := requests.FindRequestByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Nil(t, stored.AcceptedBy)

	hospital := uuid.New()
	byHospital := &entity.BloodRequest{RequesterID: uuid.New(), Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, byHospital))
	_, err = requests.ClaimPending(ctx, byHospital.ID, hospital, entity.StatusCompleted)
	require.NoError(t, err)

	_, err = requests.MarkCompleted(ctx, byHospital.ID)
	assert.ErrorIs(t, err, repository.ErrRequestCompleted)

	_, err = requests.MarkCompleted(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestRequestRepository_ListsNewestFirst(t *testing.T) {
	store, _, requests, _ := newTestRepos()
	ctx := context.Background()
	requester := uuid.New()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Minute)
	}

	var created []uuid.UUID
	for range 3 {
		r := &entity.BloodRequest{RequesterID: requester, Status: entity.StatusPending}
		require.NoError(t, requests.CreateRequest(ctx, r))
		created = append(created, r.ID)
	}

	list, err := requests.FindRequestsByRequester(ctx, requester)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, created[2], list[0].ID)
	assert.Equal(t, created[1], list[1].ID)
	assert.Equal(t, created[0], list[2].ID)

	pending, err := requests.FindPendingByRequesters(ctx, []uuid.UUID{requester})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestRequestRepository_InProgressCarriesAccepter(t *testing.T) {
	_, accounts, requests, _ := newTestRepos()
	ctx := context.Background()

	donor := createDonorAt(t, accounts, 0, 0, entity.BloodTypeOPositive)
	request := &entity.BloodRequest{RequesterID: uuid.New(), Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, request))
	_, err := requests.ClaimPending(ctx, request.ID, donor.ID, entity.StatusInProgress)
	require.NoError(t, err)

	list, err := requests.FindRequestsByStatus(ctx, entity.StatusInProgress)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Accepter)
	assert.Equal(t, donor.ID, list[0].Accepter.ID)
	assert.Equal(t, donor.Name, list[0].Accepter.Name)
}

func TestDonationLogRepository_CountAndHistories(t *testing.T) {
	_, accounts, requests, logs := newTestRepos()
	ctx := context.Background()

	donor := createDonorAt(t, accounts, 0, 0, entity.BloodTypeOPositive)
	hospitalID := uuid.New()
	patientID := uuid.New()

	request := &entity.BloodRequest{RequesterID: patientID, Status: entity.StatusPending}
	require.NoError(t, requests.CreateRequest(ctx, request))

	require.NoError(t, logs.CreateDonationLog(ctx, &entity.DonationLog{DonorID: donor.ID, HospitalID: hospitalID, RequestID: &request.ID, UnitsDonated: 1}))
	require.NoError(t, logs.CreateDonationLog(ctx, &entity.DonationLog{DonorID: donor.ID, HospitalID: hospitalID, UnitsDonated: 1}))

	count, err := logs.CountByDonor(ctx, donor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	byHospital, err := logs.FindByHospital(ctx, hospitalID)
	require.NoError(t, err)
	assert.Len(t, byHospital, 2)
	require.NotNil(t, byHospital[0].Donor)
	assert.Equal(t, donor.Name, byHospital[0].Donor.Name)

	byPatient, err := logs.FindByRequester(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, byPatient, 1)
	assert.Equal(t, request.ID, *byPatient[0].RequestID)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `accounts:
  - id: 0b6f4c1e-3d51-4c52-9a43-1b1f0e1a0003
    name: Ravi
    role: donor
    bloodType: O+
    phone: "9000000003"
    longitude: 73.88
    latitude: 18.51
    badges: ["First Donation"]
  - name: Ruby Hall
    role: Hospital
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	accounts, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, uuid.MustParse("0b6f4c1e-3d51-4c52-9a43-1b1f0e1a0003"), accounts[0].ID)
	assert.Equal(t, entity.BloodTypeOPositive, accounts[0].BloodType)
	require.NotNil(t, accounts[0].Location)
	assert.InDelta(t, 73.88, accounts[0].Location.Lon(), 1e-9)
	assert.Equal(t, []entity.Badge{entity.BadgeFirstDonation}, accounts[0].Badges)
	assert.Equal(t, entity.RoleHospital, accounts[1].Role)
	assert.Nil(t, accounts[1].Location)

	repo := NewAccountRepository(NewStore())
	inserted, err := Seed(context.Background(), repo, accounts)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = Seed(context.Background(), repo, accounts)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestLoadSeedFile_UnknownRole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts:\n  - name: x\n    role: merchant\n"), 0o600))

	_, err := LoadSeedFile(path)
	assert.ErrorContains(t, err, "unknown role")
}
