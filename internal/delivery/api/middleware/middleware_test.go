package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/service"
	mockSvc "lifeflow/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_SetsCaller(t *testing.T) {
	verifier := mockSvc.NewMockTokenVerifier(t)
	auth := NewAuthMiddleware(verifier)
	accountID := uuid.New()

	verifier.EXPECT().ValidateToken("good").Return(&service.Claims{AccountID: accountID, Role: entity.RoleDonor}, nil)

	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	req = req.WithContext(deliverycontext.WithLogger(req.Context(), slog.New(slog.NewJSONHandler(&buf, nil))))
	c, _ := newContext(req)

	err := auth.Authenticate(func(c echo.Context) error {
		caller, ok := deliverycontext.GetCaller(c)
		require.True(t, ok)
		assert.Equal(t, accountID, caller.AccountID)
		assert.Equal(t, entity.RoleDonor, caller.Role)

		deliverycontext.Logger(c.Request().Context()).Info("inside")

		return nil
	})(c)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"account_id":"`+accountID.String()+`"`)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "MISSING_TOKEN"},
		{"wrong scheme", "Token abc", "INVALID_TOKEN"},
		{"empty bearer", "Bearer ", "INVALID_TOKEN"},
		{"invalid token", "Bearer bad", "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockSvc.NewMockTokenVerifier(t)
			if tt.header == "Bearer bad" {
				verifier.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))
			}
			auth := NewAuthMiddleware(verifier)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newContext(req)

			err := auth.Authenticate(func(echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	auth := NewAuthMiddleware(nil)
	guard := auth.RequireRole(entity.RoleHospital)

	t.Run("allowed", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
		deliverycontext.SetCaller(c, deliverycontext.Caller{AccountID: uuid.New(), Role: entity.RoleHospital})

		err := guard(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("other role", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
		deliverycontext.SetCaller(c, deliverycontext.Caller{AccountID: uuid.New(), Role: entity.RolePatient})

		err := guard(func(echo.Context) error { return nil })(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED_ROLE")
	})

	t.Run("not authenticated", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))

		err := guard(func(echo.Context) error { return nil })(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	t.Run("app error keeps code and details", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		m.HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("city is required"), c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_FAILED"`)
		assert.Contains(t, rec.Body.String(), `"details":"city is required"`)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		m.HandleHTTPError(errors.Wrap(domainerrors.ErrRequestNotFound, "lookup"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "REQUEST_NOT_FOUND")
	})

	t.Run("echo error", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
	})

	t.Run("unknown error is logged and hidden", func(t *testing.T) {
		buf.Reset()
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/boom", nil))

		m.HandleHTTPError(errors.New("nil pointer in matcher"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "nil pointer")
		assert.Contains(t, buf.String(), "nil pointer in matcher")
		assert.Contains(t, buf.String(), `"path":"/boom"`)
	})

	t.Run("committed response is left alone", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, c.NoContent(http.StatusAccepted))

		m.HandleHTTPError(errors.New("late failure"), c)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}
