package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lifeflow/config"
	"lifeflow/internal/delivery/api/middleware"
	"lifeflow/internal/delivery/api/router"
	"lifeflow/internal/delivery/api/router/handler"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/infra/metrics"
	mockSvc "lifeflow/internal/mocks/service"
	mockUsecase "lifeflow/internal/mocks/usecase"
	"lifeflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type testServer struct {
	echo       *echo.Echo
	verifier   *mockSvc.MockTokenVerifier
	requestUC  *mockUsecase.MockRequestUsecase
	donationUC *mockUsecase.MockDonationUsecase
	donorUC    *mockUsecase.MockDonorUsecase
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func createTestServer(t *testing.T, m *metrics.Metrics) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		verifier:   mockSvc.NewMockTokenVerifier(t),
		requestUC:  mockUsecase.NewMockRequestUsecase(t),
		donationUC: mockUsecase.NewMockDonationUsecase(t),
		donorUC:    mockUsecase.NewMockDonorUsecase(t),
	}

	ts.echo = newEcho(newTestConfig(), logger, router.RouterParams{
		RequestHandler:  handler.NewRequestHandler(handler.RequestHandlerParams{RequestUC: ts.requestUC, Logger: logger}),
		DonationHandler: handler.NewDonationHandler(handler.DonationHandlerParams{DonationUC: ts.donationUC, Logger: logger}),
		DonorHandler:    handler.NewDonorHandler(ts.donorUC),
		AuthMiddleware:  middleware.NewAuthMiddleware(ts.verifier),
		Metrics:         m,
		Config:          newTestConfig(),
	})

	return ts
}

// login makes the verifier accept token for an account with the given role.
func (ts *testServer) login(token string, role entity.Role) uuid.UUID {
	accountID := uuid.New()
	ts.verifier.EXPECT().ValidateToken(token).Return(&service.Claims{AccountID: accountID, Role: role}, nil)

	return accountID
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	ts := createTestServer(t, nil)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, extractData(t, rec))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return string(body.Data)
}

func TestServer_OpenRequestsArePublic(t *testing.T) {
	ts := createTestServer(t, nil)
	ts.requestUC.EXPECT().ListOpen(mock.Anything).Return([]*entity.BloodRequest{{ID: uuid.New(), Status: entity.StatusPending}}, nil)

	rec := ts.do(http.MethodGet, "/api/requests", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Pending"`)
}

func TestServer_Authentication(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ts := createTestServer(t, nil)

		rec := ts.do(http.MethodGet, "/api/requests/my-requests", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		ts := createTestServer(t, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/requests/my-requests", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.verifier.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		rec := ts.do(http.MethodGet, "/api/requests/my-requests", "expired", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "INVALID_TOKEN", body.Error.Code)
		assert.Nil(t, body.Error.Details)
	})
}

func TestServer_CreateRequest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ts := createTestServer(t, nil)
		patientID := ts.login("patient", entity.RolePatient)

		ts.requestUC.EXPECT().
			Create(mock.Anything, patientID, mock.AnythingOfType("*usecase.CreateRequestInput")).
			Run(func(_ context.Context, _ uuid.UUID, input *usecase.CreateRequestInput) {
				assert.Equal(t, entity.BloodType("O+"), input.BloodType)
				assert.Equal(t, 2, input.UnitsRequired)
				require.NotNil(t, input.Longitude)
				assert.InDelta(t, 73.85, *input.Longitude, 1e-9)
			}).
			Return(&entity.BloodRequest{ID: uuid.New(), RequesterID: patientID, Status: entity.StatusPending}, nil)

		rec := ts.do(http.MethodPost, "/api/requests", "patient",
			`{"bloodType":"O+","units":2,"hospitalName":"General","city":"Pune","longitude":73.85,"latitude":18.52}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Pending"`)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("patient", entity.RolePatient)

		rec := ts.do(http.MethodPost, "/api/requests", "patient", `{"bloodType":"Q","units":0,"city":"Pune","longitude":10}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		details, ok := body.Error.Details.(string)
		require.True(t, ok)
		assert.Contains(t, details, "bloodType must be one of")
		assert.Contains(t, details, "units must be greater than 0")
		assert.Contains(t, details, "hospitalName is required")
		assert.Contains(t, details, "latitude is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("patient", entity.RolePatient)

		rec := ts.do(http.MethodPost, "/api/requests", "patient", `{"bloodType":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
	})
}

func TestServer_AcceptRequest(t *testing.T) {
	t.Run("conflict maps to 409", func(t *testing.T) {
		ts := createTestServer(t, nil)
		donorID := ts.login("donor", entity.RoleDonor)
		requestID := uuid.New()

		ts.requestUC.EXPECT().Accept(mock.Anything, requestID, donorID).Return(nil, domainerrors.ErrAlreadyClaimed)

		rec := ts.do(http.MethodPost, "/api/requests/"+requestID.String()+"/accept", "donor", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALREADY_CLAIMED", decodeError(t, rec).Error.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("donor", entity.RoleDonor)

		rec := ts.do(http.MethodPost, "/api/requests/not-a-uuid/accept", "donor", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeError(t, rec).Error.Code)
	})

	t.Run("internal errors are opaque", func(t *testing.T) {
		ts := createTestServer(t, nil)
		donorID := ts.login("donor", entity.RoleDonor)
		requestID := uuid.New()

		ts.requestUC.EXPECT().Accept(mock.Anything, requestID, donorID).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to accept"))

		rec := ts.do(http.MethodPost, "/api/requests/"+requestID.String()+"/accept", "donor", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Nil(t, decodeError(t, rec).Error.Details)
	})
}

func TestServer_CancelRequest(t *testing.T) {
	ts := createTestServer(t, nil)
	ts.login("patient", entity.RolePatient)
	requestID := uuid.New()
	reason := "found a donor elsewhere"

	ts.requestUC.EXPECT().Cancel(mock.Anything, requestID, reason).
		Return(&entity.BloodRequest{ID: requestID, Status: entity.StatusPending, CancellationReason: &reason}, nil)

	rec := ts.do(http.MethodPost, "/api/requests/"+requestID.String()+"/cancel", "patient", `{"reason":"`+reason+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), reason)
}

func TestServer_CompleteRequiresHospital(t *testing.T) {
	t.Run("donor is forbidden", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("donor", entity.RoleDonor)

		rec := ts.do(http.MethodPost, "/api/requests/"+uuid.NewString()+"/complete", "donor", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "UNAUTHORIZED_ROLE", decodeError(t, rec).Error.Code)
	})

	t.Run("hospital completes", func(t *testing.T) {
		ts := createTestServer(t, nil)
		hospitalID := ts.login("hospital", entity.RoleHospital)
		requestID := uuid.New()

		ts.requestUC.EXPECT().Complete(mock.Anything, hospitalID, requestID).
			Return(&entity.BloodRequest{ID: requestID, Status: entity.StatusCompleted}, nil)

		rec := ts.do(http.MethodPost, "/api/requests/"+requestID.String()+"/complete", "hospital", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"Completed"`)
	})
}

func TestServer_VerificationQR(t *testing.T) {
	ts := createTestServer(t, nil)
	ts.login("donor", entity.RoleDonor)
	requestID := uuid.New()

	ts.requestUC.EXPECT().VerificationQR(mock.Anything, requestID).Return([]byte("\x89PNG"), nil)

	rec := ts.do(http.MethodGet, "/api/requests/"+requestID.String()+"/qr", "donor", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestServer_VerifyDonation(t *testing.T) {
	t.Run("hospital verifies by donor id", func(t *testing.T) {
		ts := createTestServer(t, nil)
		hospitalID := ts.login("hospital", entity.RoleHospital)
		donorID, requestID := uuid.New(), uuid.New()

		ts.donationUC.EXPECT().
			VerifyDonation(mock.Anything, hospitalID, &usecase.VerifyDonationInput{DonorID: donorID, RequestID: &requestID}).
			Return(&usecase.VerifyDonationResult{
				Message:      "Donation successfully verified.",
				BadgeAwarded: entity.BadgeFirstDonation,
				Log:          &entity.DonationLog{ID: uuid.New(), DonorID: donorID, HospitalID: hospitalID, DonatedAt: time.Now()},
			}, nil)

		rec := ts.do(http.MethodPost, "/api/hospitals/verify-donation", "hospital",
			`{"donorId":"`+donorID.String()+`","requestId":"`+requestID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"badgeAwarded":"First Donation"`)
	})

	t.Run("needs donor or code", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("hospital", entity.RoleHospital)

		rec := ts.do(http.MethodPost, "/api/hospitals/verify-donation", "hospital", `{"requestId":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})

	t.Run("donor is forbidden", func(t *testing.T) {
		ts := createTestServer(t, nil)
		ts.login("donor", entity.RoleDonor)

		rec := ts.do(http.MethodPost, "/api/hospitals/verify-donation", "donor", `{"donorId":"`+uuid.NewString()+`"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_DonorAndHistoryRoutes(t *testing.T) {
	ts := createTestServer(t, nil)
	token := "donor"
	donorID := uuid.New()
	ts.verifier.EXPECT().ValidateToken(token).Return(&service.Claims{AccountID: donorID, Role: entity.RoleDonor}, nil)

	ts.donorUC.EXPECT().DonationLogs(mock.Anything, donorID).Return(&usecase.DonationLogSummary{Count: 0, Logs: []*entity.DonationLog{}}, nil)
	ts.donorUC.EXPECT().NearbyRequests(mock.Anything, donorID).Return(nil, domainerrors.ErrLocationUnavailable)
	ts.donationUC.EXPECT().DonorHistory(mock.Anything, donorID).Return([]*entity.DonationLog{}, nil)
	ts.donationUC.EXPECT().HospitalHistory(mock.Anything, donorID).Return(nil, domainerrors.ErrUnauthorizedRole)
	ts.donationUC.EXPECT().PatientHistory(mock.Anything, donorID).Return([]*entity.DonationLog{}, nil)
	ts.requestUC.EXPECT().ListByRequester(mock.Anything, donorID).Return([]*entity.BloodRequest{}, nil)
	ts.requestUC.EXPECT().ListInProgress(mock.Anything).Return([]*entity.BloodRequest{}, nil)

	tests := []struct {
		path string
		code int
	}{
		{"/api/donors/donation-logs", http.StatusOK},
		{"/api/donors/nearby-requests", http.StatusBadRequest},
		{"/api/donations/donor-history", http.StatusOK},
		{"/api/donations/hospital-history", http.StatusForbidden},
		{"/api/donations/patient-history", http.StatusOK},
		{"/api/requests/my-requests", http.StatusOK},
		{"/api/requests/inprogress", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := ts.do(http.MethodGet, tt.path, token, "")
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := createTestServer(t, nil)

	rec := ts.do(http.MethodGet, "/api/nothing-here", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Error.Code)
}

func TestServer_MetricsRoute(t *testing.T) {
	ts := createTestServer(t, metrics.New())

	rec := ts.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "lifeflow_")
}

func TestNewServer_RegistersStopHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    newTestConfig(),
		Logger: logger,
		RouterParams: router.RouterParams{
			RequestHandler:  handler.NewRequestHandler(handler.RequestHandlerParams{Logger: logger}),
			DonationHandler: handler.NewDonationHandler(handler.DonationHandlerParams{Logger: logger}),
			DonorHandler:    handler.NewDonorHandler(nil),
			AuthMiddleware:  middleware.NewAuthMiddleware(nil),
			Config:          newTestConfig(),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, srv)

	lc.RequireStart()
	lc.RequireStop()
}
