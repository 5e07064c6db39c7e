// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"lifeflow/config"
	"lifeflow/internal/domain/entity"
	"lifeflow/internal/domain/service"
	"lifeflow/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessClaims is the wire shape of an access token: sub is the account UUID.
type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier validates HS256 access tokens minted by the identity service.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks the signature and expiry, then decodes the subject and role.
func (v *jwtVerifier) ValidateToken(tokenString string) (*service.Claims, error) {
	var claims accessClaims

	token, err := v.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not an account id")
	}

	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return nil, errors.Errorf("token role %q is not recognised", claims.Role)
	}

	return &service.Claims{
		AccountID:        accountID,
		Role:             role,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
