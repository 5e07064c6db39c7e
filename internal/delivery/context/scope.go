// Package context carries per-request values from the HTTP layer down to the usecases:
// the request id, a logger tagged with it, and the authenticated caller.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echo.Context only accepts string keys.
const (
	echoRequestIDKey = "lifeflow.request_id"
	echoCallerKey    = "lifeflow.caller"
)

// HeaderXRequestID carries the request id in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// Begin stores the request id on c and places it, with a logger tagged by it, in the request context.
func Begin(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id stored by Begin, or "" outside a scoped request.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return RequestIDFrom(c.Request().Context())
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithLogger returns ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request logger carried by ctx, or nil.
func Logger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// LoggerFrom returns the request logger carried by ctx, falling back to fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := Logger(ctx); logger != nil {
		return logger
	}

	return fallback
}
