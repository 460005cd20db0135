package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for operator session tokens.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and validates operator session tokens in local mode,
// where no remote identity provider is configured.
type TokenService interface {
	// GenerateToken creates a signed session token for the operator email.
	GenerateToken(email string) (string, error)

	// ValidateToken checks the token signature and expiry.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
