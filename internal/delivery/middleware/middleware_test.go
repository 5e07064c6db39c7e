package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeflow/config"
	deliverycontext "lifeflow/internal/delivery/context"
	domainerrors "lifeflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	var fromCtx string
	var hasLogger bool
	handler := mw.Process(func(c echo.Context) error {
		fromCtx = deliverycontext.RequestIDFrom(c.Request().Context())
		hasLogger = deliverycontext.Logger(c.Request().Context()) != nil

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, handler(c))

	header := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, header)
	assert.Equal(t, header, fromCtx)
	assert.True(t, hasLogger)
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	handler := mw.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
	e := echo.New()

	ok := mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, ok(e.NewContext(httptest.NewRequest(http.MethodGet, "/ok", nil), httptest.NewRecorder())))
	assert.Empty(t, buf.String())

	failing := mw.Handle(func(echo.Context) error { return domainerrors.ErrAlreadyClaimed })
	err := failing(e.NewContext(httptest.NewRequest(http.MethodPost, "/claim", nil), httptest.NewRecorder()))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "status=409")
	assert.Contains(t, buf.String(), "level=WARN")
}
