package middleware

import (
	"slices"
	"strings"

	"lifeflow/internal/delivery/api/response"
	deliverycontext "lifeflow/internal/delivery/context"
	"lifeflow/internal/domain/entity"
	domainerrors "lifeflow/internal/domain/errors"
	"lifeflow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware verifies access tokens issued by the identity service.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and puts the caller's id and role on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, deliverycontext.Caller{AccountID: claims.AccountID, Role: claims.Role})

		return next(c)
	}
}

// RequireRole rejects callers whose token role is not one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := deliverycontext.GetCaller(c)
			if !ok || !slices.Contains(roles, caller.Role) {
				return response.FromAppError(c, domainerrors.ErrUnauthorizedRole)
			}

			return next(c)
		}
	}
}
