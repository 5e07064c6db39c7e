package context

import (
	"log/slog"

	"lifeflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Caller is the account a verified access token speaks for.
type Caller struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// SetCaller records the caller on c and adds account_id to the request logger.
func SetCaller(c echo.Context, caller Caller) {
	c.Set(echoCallerKey, caller)

	ctx := c.Request().Context()
	if logger := Logger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("account_id", caller.AccountID.String())))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// GetCaller returns the caller set by SetCaller. A nil account id counts as missing.
func GetCaller(c echo.Context) (Caller, bool) {
	caller, ok := c.Get(echoCallerKey).(Caller)

	return caller, ok && caller.AccountID != uuid.Nil
}

// AccountID returns the authenticated account id.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	caller, ok := GetCaller(c)

	return caller.AccountID, ok
}
