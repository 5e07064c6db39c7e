package service

import (
	"lifeflow/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens issued by the identity service.
type Claims struct {
	AccountID uuid.UUID
	Role      entity.Role
	jwt.RegisteredClaims
}

// TokenVerifier defines the interface for validating access tokens.
// Tokens are never issued by this service.
type TokenVerifier interface {
	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
