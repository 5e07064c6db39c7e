package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"lifeflow/config"
	"lifeflow/internal/domain/entity"
	mockSvc "lifeflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func phoneDestination(account *entity.Account) (string, bool) {
	return account.Phone, account.Phone != ""
}

func TestNotificationDispatcher_Dispatch_FailureIsIsolated(t *testing.T) {
	sender := mockSvc.NewMockMessageSender(t)
	dispatcher := NewNotificationDispatcher(newTestLogger(), sender, newTestConfig(), nil)
	ctx := context.Background()

	ok1 := &entity.Account{ID: uuid.New(), Phone: "111"}
	bad := &entity.Account{ID: uuid.New(), Phone: "222"}
	ok2 := &entity.Account{ID: uuid.New(), Phone: "333"}
	noPhone := &entity.Account{ID: uuid.New()}

	alert := entity.Alert{RequestID: uuid.New(), BloodType: "O+", HospitalName: "General", City: "Pune"}

	sender.EXPECT().Channel().Return("sms").Maybe()
	sender.EXPECT().Destination(mock.Anything).RunAndReturn(phoneDestination)
	sender.EXPECT().Send(ctx, "111", alert.Body()).Return(nil).Once()
	sender.EXPECT().Send(ctx, "222", alert.Body()).Return(errors.New("carrier rejected")).Once()
	sender.EXPECT().Send(ctx, "333", alert.Body()).Return(nil).Once()

	report := dispatcher.Dispatch(ctx, []*entity.Account{ok1, bad, nil, ok2, noPhone}, alert)

	assert.Equal(t, 3, report.Attempted)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, report.Outcomes, 5)

	assert.Equal(t, entity.DeliveryDelivered, report.Outcomes[0].Status)
	assert.Equal(t, entity.DeliveryFailed, report.Outcomes[1].Status)
	assert.EqualError(t, report.Outcomes[1].Err, "carrier rejected")
	assert.Equal(t, bad.ID, report.Outcomes[1].RecipientID)
	assert.Equal(t, entity.DeliverySkipped, report.Outcomes[2].Status)
	assert.Equal(t, entity.DeliveryDelivered, report.Outcomes[3].Status)
	assert.Equal(t, "333", report.Outcomes[3].Destination)
	assert.Equal(t, entity.DeliverySkipped, report.Outcomes[4].Status)
	assert.Equal(t, noPhone.ID, report.Outcomes[4].RecipientID)
}

func TestNotificationDispatcher_Dispatch_Empty(t *testing.T) {
	sender := mockSvc.NewMockMessageSender(t)
	dispatcher := NewNotificationDispatcher(newTestLogger(), sender, nil, nil)

	report := dispatcher.Dispatch(context.Background(), nil, entity.Alert{})

	assert.Zero(t, report.Attempted)
	assert.Empty(t, report.Outcomes)
}

func TestNotificationDispatcher_Dispatch_RespectsConcurrencyLimit(t *testing.T) {
	sender := mockSvc.NewMockMessageSender(t)
	cfg := &config.Config{Notification: &config.NotificationConfig{Concurrency: 2}}
	dispatcher := NewNotificationDispatcher(newTestLogger(), sender, cfg, nil)

	var inFlight, peak atomic.Int32
	sender.EXPECT().Channel().Return("sms").Maybe()
	sender.EXPECT().Destination(mock.Anything).RunAndReturn(phoneDestination)
	sender.EXPECT().Send(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string) error {
			current := inFlight.Add(1)
			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return nil
		}).
		Times(6)

	recipients := make([]*entity.Account, 6)
	for i := range recipients {
		recipients[i] = &entity.Account{ID: uuid.New(), Phone: "98000000" + string(rune('0'+i))}
	}

	report := dispatcher.Dispatch(context.Background(), recipients, entity.Alert{})

	assert.Equal(t, 6, report.Delivered)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

// TestRequestService_Create_AlertsOnlyDonorsInRange drives a create through the real
// matcher and dispatcher over the memory store.
func TestRequestService_Create_AlertsOnlyDonorsInRange(t *testing.T) {
	repos := newMemoryRepos()
	cfg := newTestConfig()
	sender := mockSvc.NewMockMessageSender(t)
	broadcaster := mockSvc.NewMockEventBroadcaster(t)
	logger := newTestLogger()

	svc := NewRequestService(RequestServiceParams{
		Logger:      logger,
		RequestRepo: repos.requests,
		AccountRepo: repos.accounts,
		GeoMatcher:  NewGeoMatcher(repos.accounts, cfg),
		Dispatcher:  NewNotificationDispatcher(logger, sender, cfg, nil),
		Broadcaster: broadcaster,
	})
	ctx := context.Background()

	patient := repos.createAccount(t, entity.RolePatient, "O+", point(73.85, 18.52))
	for _, p := range [][2]float64{{73.86, 18.53}, {73.70, 18.40}, {74.00, 18.65}} {
		repos.createAccount(t, entity.RoleDonor, "O+", point(p[0], p[1]))
	}
	repos.createAccount(t, entity.RoleDonor, "O+", point(75.00, 18.52))
	repos.createAccount(t, entity.RoleDonor, "O+", point(73.85, 19.00))
	// In range but not a match.
	repos.createAccount(t, entity.RoleDonor, "AB-", point(73.85, 18.52))

	var sends atomic.Int32
	sender.EXPECT().Channel().Return("sms").Maybe()
	sender.EXPECT().Destination(mock.Anything).RunAndReturn(phoneDestination)
	sender.EXPECT().Send(ctx, "9800000000", mock.Anything).
		RunAndReturn(func(context.Context, string, string) error {
			sends.Add(1)

			return nil
		})
	broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestCreated, mock.AnythingOfType("*entity.BloodRequest")).Return(nil).Once()

	request, err := svc.Create(ctx, patient.ID, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, int32(3), sends.Load())

	stored, err := repos.requests.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, stored.ID)
}
