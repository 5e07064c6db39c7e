package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/repository"
	"lifeflow/internal/domain/service"
	mockRepo "lifeflow/internal/mocks/repository"
	mockSvc "lifeflow/internal/mocks/service"
	mockUsecase "lifeflow/internal/mocks/usecase"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type requestServiceMocks struct {
	requestRepo *mockRepo.MockRequestRepository
	accountRepo *mockRepo.MockAccountRepository
	geoMatcher  *mockUsecase.MockGeoMatcher
	dispatcher  *mockUsecase.MockNotificationDispatcher
	broadcaster *mockSvc.MockEventBroadcaster
	qrcodeSvc   *mockSvc.MockQRCodeService
}

func createTestRequestService(t *testing.T) (usecase.RequestUsecase, *requestServiceMocks) {
	mocks := &requestServiceMocks{
		requestRepo: mockRepo.NewMockRequestRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		geoMatcher:  mockUsecase.NewMockGeoMatcher(t),
		dispatcher:  mockUsecase.NewMockNotificationDispatcher(t),
		broadcaster: mockSvc.NewMockEventBroadcaster(t),
		qrcodeSvc:   mockSvc.NewMockQRCodeService(t),
	}

	svc := NewRequestService(RequestServiceParams{
		Logger:      newTestLogger(),
		RequestRepo: mocks.requestRepo,
		AccountRepo: mocks.accountRepo,
		GeoMatcher:  mocks.geoMatcher,
		Dispatcher:  mocks.dispatcher,
		Broadcaster: mocks.broadcaster,
		QRCodeSvc:   mocks.qrcodeSvc,
	})

	return svc, mocks
}

func validCreateInput() *usecase.CreateRequestInput {
	return &usecase.CreateRequestInput{
		BloodType:     entity.BloodType("O+"),
		UnitsRequired: 2,
		HospitalName:  " City Hospital ",
		City:          "Pune",
	}
}

func TestRequestService_Create_ValidationFailed(t *testing.T) {
	lon := 73.85

	tests := []struct {
		name   string
		mutate func(*usecase.CreateRequestInput)
	}{
		{"unknown blood type", func(in *usecase.CreateRequestInput) { in.BloodType = "Z+" }},
		{"zero units", func(in *usecase.CreateRequestInput) { in.UnitsRequired = 0 }},
		{"negative units", func(in *usecase.CreateRequestInput) { in.UnitsRequired = -1 }},
		{"blank hospital", func(in *usecase.CreateRequestInput) { in.HospitalName = "  " }},
		{"blank city", func(in *usecase.CreateRequestInput) { in.City = "" }},
		{"unknown urgency", func(in *usecase.CreateRequestInput) { in.Urgency = "Someday" }},
		{"longitude without latitude", func(in *usecase.CreateRequestInput) { in.Longitude = &lon }},
		{"out of range coordinates", func(in *usecase.CreateRequestInput) {
			badLon, lat := 200.0, 10.0
			in.Longitude, in.Latitude = &badLon, &lat
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestRequestService(t)
			input := validCreateInput()
			tt.mutate(input)

			request, err := svc.Create(context.Background(), uuid.New(), input)
			require.Error(t, err)
			assert.Nil(t, request)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRequestService_Create_NilInput(t *testing.T) {
	svc, _ := createTestRequestService(t)

	_, err := svc.Create(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_Create_RequesterNotFound(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	mocks.accountRepo.EXPECT().FindAccountByID(ctx, requesterID).Return(nil, repository.ErrAccountNotFound)

	_, err := svc.Create(ctx, requesterID, validCreateInput())
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestRequestService_Create_Success(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	lon, lat := 73.85, 18.52
	input := validCreateInput()
	input.Longitude, input.Latitude = &lon, &lat

	donors := []*entity.Account{{ID: uuid.New(), Role: entity.RoleDonor}, {ID: uuid.New(), Role: entity.RoleDonor}}

	mocks.accountRepo.EXPECT().FindAccountByID(ctx, requesterID).Return(&entity.Account{ID: requesterID, Role: entity.RolePatient}, nil)
	mocks.accountRepo.EXPECT().UpdateLocation(ctx, requesterID, *point(lon, lat)).Return(nil)
	mocks.requestRepo.EXPECT().CreateRequest(ctx, mock.AnythingOfType("*entity.BloodRequest")).Return(nil)
	mocks.geoMatcher.EXPECT().FindNearbyAccount(ctx, requesterID, entity.RoleDonor, entity.BloodType("O+")).Return(donors, nil)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, donors, mock.AnythingOfType("entity.Alert")).
		Run(func(_ context.Context, _ []*entity.Account, alert entity.Alert) {
			assert.Equal(t, "City Hospital", alert.HospitalName)
			assert.Equal(t, "Pune", alert.City)
		}).
		Return(&entity.DispatchReport{Attempted: 2, Delivered: 2})
	mocks.broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestCreated, mock.AnythingOfType("*entity.BloodRequest")).Return(nil).Once()

	request, err := svc.Create(ctx, requesterID, input)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, entity.UrgencyUrgent, request.Urgency)
	assert.Equal(t, "City Hospital", request.HospitalName)
	assert.Equal(t, requesterID, request.RequesterID)
	assert.Nil(t, request.AcceptedBy)
	assert.NotEqual(t, uuid.Nil, request.ID)
}

func TestRequestService_Create_LocationUnavailableIsContained(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	mocks.accountRepo.EXPECT().FindAccountByID(ctx, requesterID).Return(&entity.Account{ID: requesterID}, nil)
	mocks.requestRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(nil)
	mocks.geoMatcher.EXPECT().FindNearbyAccount(ctx, requesterID, entity.RoleDonor, mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable)
	mocks.broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestCreated, mock.Anything).Return(nil)

	request, err := svc.Create(ctx, requesterID, validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
	mocks.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestService_Create_MatchAndBroadcastFailuresAreContained(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	mocks.accountRepo.EXPECT().FindAccountByID(ctx, requesterID).Return(&entity.Account{ID: requesterID}, nil)
	mocks.requestRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(nil)
	mocks.geoMatcher.EXPECT().FindNearbyAccount(ctx, requesterID, entity.RoleDonor, mock.Anything).Return(nil, errors.New("store offline"))
	mocks.broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestCreated, mock.Anything).Return(errors.New("hub closed"))

	request, err := svc.Create(ctx, requesterID, validCreateInput())
	require.NoError(t, err)
	assert.NotNil(t, request)
}

func TestRequestService_Create_PersistFailure(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()

	mocks.accountRepo.EXPECT().FindAccountByID(ctx, requesterID).Return(&entity.Account{ID: requesterID}, nil)
	mocks.requestRepo.EXPECT().CreateRequest(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.Create(ctx, requesterID, validCreateInput())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestRequestService_Accept_TargetStatusByRole(t *testing.T) {
	tests := []struct {
		name   string
		role   entity.Role
		target entity.RequestStatus
	}{
		{"donor moves to in progress", entity.RoleDonor, entity.StatusInProgress},
		{"patient accepts as donor", entity.RolePatient, entity.StatusInProgress},
		{"hospital completes directly", entity.RoleHospital, entity.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := createTestRequestService(t)
			ctx := context.Background()
			requestID, accepterID := uuid.New(), uuid.New()

			mocks.accountRepo.EXPECT().FindAccountByID(ctx, accepterID).
				Return(&entity.Account{ID: accepterID, Name: "Asha", Role: tt.role}, nil)
			mocks.requestRepo.EXPECT().ClaimPending(ctx, requestID, accepterID, tt.target).
				Return(&entity.BloodRequest{ID: requestID, Status: tt.target, AcceptedBy: &accepterID}, nil)
			mocks.broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestAccepted, mock.Anything).Return(nil)

			request, err := svc.Accept(ctx, requestID, accepterID)
			require.NoError(t, err)
			assert.Equal(t, tt.target, request.Status)
			require.NotNil(t, request.Accepter)
			assert.Equal(t, "Asha", request.Accepter.Name)
		})
	}
}

func TestRequestService_Accept_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"already claimed", repository.ErrRequestNotPending, domainerrors.ErrAlreadyClaimed},
		{"missing request", repository.ErrRequestNotFound, domainerrors.ErrRequestNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := createTestRequestService(t)
			ctx := context.Background()
			requestID, accepterID := uuid.New(), uuid.New()

			mocks.accountRepo.EXPECT().FindAccountByID(ctx, accepterID).Return(&entity.Account{ID: accepterID, Role: entity.RoleDonor}, nil)
			mocks.requestRepo.EXPECT().ClaimPending(ctx, requestID, accepterID, entity.StatusInProgress).Return(nil, tt.repoErr)

			_, err := svc.Accept(ctx, requestID, accepterID)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestService_Accept_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	repos := newMemoryRepos()
	broadcaster := mockSvc.NewMockEventBroadcaster(t)
	svc := NewRequestService(RequestServiceParams{
		Logger:      newTestLogger(),
		RequestRepo: repos.requests,
		AccountRepo: repos.accounts,
		Broadcaster: broadcaster,
	})
	ctx := context.Background()

	patient := repos.createAccount(t, entity.RolePatient, "", nil)
	request := &entity.BloodRequest{
		ID:            uuid.New(),
		RequesterID:   patient.ID,
		BloodType:     "A+",
		UnitsRequired: 1,
		HospitalName:  "General",
		City:          "Pune",
		Urgency:       entity.UrgencyUrgent,
		Status:        entity.StatusPending,
	}
	require.NoError(t, repos.requests.CreateRequest(ctx, request))

	const contenders = 16
	donors := make([]*entity.Account, contenders)
	for i := range donors {
		donors[i] = repos.createAccount(t, entity.RoleDonor, "A+", nil)
	}

	broadcaster.EXPECT().Broadcast(mock.Anything, entity.EventRequestAccepted, mock.Anything).Return(nil).Once()

	var (
		wg       sync.WaitGroup
		wins     atomic.Int32
		conflict atomic.Int32
		winner   atomic.Value
	)
	start := make(chan struct{})
	for _, donor := range donors {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			<-start
			if _, err := svc.Accept(ctx, request.ID, id); err != nil {
				if errors.Is(err, domainerrors.ErrAlreadyClaimed) {
					conflict.Add(1)
				}

				return
			}
			wins.Add(1)
			winner.Store(id)
		}(donor.ID)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(contenders-1), conflict.Load())

	stored, err := repos.requests.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, stored.Status)
	require.NotNil(t, stored.AcceptedBy)
	assert.Equal(t, winner.Load(), *stored.AcceptedBy)
}

func TestRequestService_Cancel_FromAnyOpenState(t *testing.T) {
	repos := newMemoryRepos()
	broadcaster := mockSvc.NewMockEventBroadcaster(t)
	svc := NewRequestService(RequestServiceParams{
		Logger:      newTestLogger(),
		RequestRepo: repos.requests,
		AccountRepo: repos.accounts,
		Broadcaster: broadcaster,
	})
	ctx := context.Background()

	patient := repos.createAccount(t, entity.RolePatient, "", nil)
	donor := repos.createAccount(t, entity.RoleDonor, "B+", nil)
	broadcaster.EXPECT().Broadcast(ctx, mock.Anything, mock.Anything).Return(nil)

	newRequest := func() *entity.BloodRequest {
		request := &entity.BloodRequest{
			ID:          uuid.New(),
			RequesterID: patient.ID,
			BloodType:   "B+",
			Status:      entity.StatusPending,
		}
		require.NoError(t, repos.requests.CreateRequest(ctx, request))

		return request
	}

	t.Run("pending stays pending with reason", func(t *testing.T) {
		request := newRequest()

		cancelled, err := svc.Cancel(ctx, request.ID, " donor unavailable ")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, cancelled.Status)
		require.NotNil(t, cancelled.CancellationReason)
		assert.Equal(t, "donor unavailable", *cancelled.CancellationReason)
	})

	t.Run("in progress returns to pending and clears accepter", func(t *testing.T) {
		request := newRequest()
		_, err := svc.Accept(ctx, request.ID, donor.ID)
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, request.ID, "plans changed")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, cancelled.Status)
		assert.Nil(t, cancelled.AcceptedBy)

		// Reopened requests can be claimed again.
		_, err = svc.Accept(ctx, request.ID, donor.ID)
		require.NoError(t, err)
	})

	t.Run("completed is rejected", func(t *testing.T) {
		request := newRequest()
		_, err := repos.requests.ClaimPending(ctx, request.ID, donor.ID, entity.StatusInProgress)
		require.NoError(t, err)
		_, err = repos.requests.MarkCompleted(ctx, request.ID)
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, request.ID, "too late")
		assert.ErrorIs(t, err, domainerrors.ErrRequestCompleted)
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := svc.Cancel(ctx, uuid.New(), "gone")
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	})
}

func TestRequestService_Cancel_ReasonRequired(t *testing.T) {
	svc, _ := createTestRequestService(t)

	_, err := svc.Cancel(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_Complete(t *testing.T) {
	t.Run("hospital completes", func(t *testing.T) {
		svc, mocks := createTestRequestService(t)
		ctx := context.Background()
		hospitalID, requestID := uuid.New(), uuid.New()

		mocks.accountRepo.EXPECT().FindAccountByID(ctx, hospitalID).Return(&entity.Account{ID: hospitalID, Role: entity.RoleHospital}, nil)
		mocks.requestRepo.EXPECT().MarkCompleted(ctx, requestID).Return(&entity.BloodRequest{ID: requestID, Status: entity.StatusCompleted}, nil)
		mocks.broadcaster.EXPECT().
			Broadcast(ctx, entity.EventRequestCompleted, entity.RequestCompletedPayload{ID: requestID, Status: entity.StatusCompleted}).
			Return(nil)

		request, err := svc.Complete(ctx, hospitalID, requestID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, request.Status)
	})

	t.Run("non hospital is forbidden", func(t *testing.T) {
		svc, mocks := createTestRequestService(t)
		ctx := context.Background()
		donorID := uuid.New()

		mocks.accountRepo.EXPECT().FindAccountByID(ctx, donorID).Return(&entity.Account{ID: donorID, Role: entity.RoleDonor}, nil)

		_, err := svc.Complete(ctx, donorID, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedRole)
	})

	t.Run("already completed", func(t *testing.T) {
		svc, mocks := createTestRequestService(t)
		ctx := context.Background()
		hospitalID, requestID := uuid.New(), uuid.New()

		mocks.accountRepo.EXPECT().FindAccountByID(ctx, hospitalID).Return(&entity.Account{ID: hospitalID, Role: entity.RoleHospital}, nil)
		mocks.requestRepo.EXPECT().MarkCompleted(ctx, requestID).Return(nil, repository.ErrRequestCompleted)

		_, err := svc.Complete(ctx, hospitalID, requestID)
		assert.ErrorIs(t, err, domainerrors.ErrRequestCompleted)
	})
}

func TestRequestService_Complete_OnlyAcceptedRequests(t *testing.T) {
	repos := newMemoryRepos()
	broadcaster := mockSvc.NewMockEventBroadcaster(t)
	svc := NewRequestService(RequestServiceParams{
		Logger:      newTestLogger(),
		RequestRepo: repos.requests,
		AccountRepo: repos.accounts,
		Broadcaster: broadcaster,
	})
	ctx := context.Background()

	patient := repos.createAccount(t, entity.RolePatient, "", nil)
	donor := repos.createAccount(t, entity.RoleDonor, "A-", nil)
	hospital := repos.createAccount(t, entity.RoleHospital, "", nil)

	request := &entity.BloodRequest{ID: uuid.New(), RequesterID: patient.ID, BloodType: "A-", Status: entity.StatusPending}
	require.NoError(t, repos.requests.CreateRequest(ctx, request))

	_, err := svc.Complete(ctx, hospital.ID, request.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotAccepted)

	stored, err := repos.requests.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
	assert.Nil(t, stored.AcceptedBy)

	broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestAccepted, mock.Anything).Return(nil).Once()
	broadcaster.EXPECT().Broadcast(ctx, entity.EventRequestCompleted, mock.Anything).Return(nil).Once()

	_, err = svc.Accept(ctx, request.ID, donor.ID)
	require.NoError(t, err)

	completed, err := svc.Complete(ctx, hospital.ID, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)
	require.NotNil(t, completed.AcceptedBy)
	assert.Equal(t, donor.ID, *completed.AcceptedBy)
}

func TestRequestService_Lists(t *testing.T) {
	svc, mocks := createTestRequestService(t)
	ctx := context.Background()
	requesterID := uuid.New()
	pending := []*entity.BloodRequest{{ID: uuid.New(), Status: entity.StatusPending}}
	inProgress := []*entity.BloodRequest{{ID: uuid.New(), Status: entity.StatusInProgress}}

	mocks.requestRepo.EXPECT().FindRequestsByRequester(ctx, requesterID).Return(pending, nil)
	mocks.requestRepo.EXPECT().FindRequestsByStatus(ctx, entity.StatusPending).Return(pending, nil)
	mocks.requestRepo.EXPECT().FindRequestsByStatus(ctx, entity.StatusInProgress).Return(inProgress, nil)

	mine, err := svc.ListByRequester(ctx, requesterID)
	require.NoError(t, err)
	assert.Equal(t, pending, mine)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, open)

	active, err := svc.ListInProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, inProgress, active)
}

func TestRequestService_VerificationQR(t *testing.T) {
	t.Run("accepted request renders code", func(t *testing.T) {
		svc, mocks := createTestRequestService(t)
		ctx := context.Background()
		requestID, donorID := uuid.New(), uuid.New()

		mocks.requestRepo.EXPECT().FindRequestByID(ctx, requestID).
			Return(&entity.BloodRequest{ID: requestID, Status: entity.StatusInProgress, AcceptedBy: &donorID}, nil)
		mocks.qrcodeSvc.EXPECT().
			GenerateVerificationQR(service.VerificationCode{RequestID: requestID, DonorID: donorID}).
			Return([]byte("png"), nil)

		png, err := svc.VerificationQR(ctx, requestID)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("pending request has no code", func(t *testing.T) {
		svc, mocks := createTestRequestService(t)
		ctx := context.Background()
		requestID := uuid.New()

		mocks.requestRepo.EXPECT().FindRequestByID(ctx, requestID).
			Return(&entity.BloodRequest{ID: requestID, Status: entity.StatusPending}, nil)

		_, err := svc.VerificationQR(ctx, requestID)
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotAccepted)
	})
}
