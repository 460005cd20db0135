// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// SignInRequest carries either a remote ID token or local credentials.
type SignInRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful sign-in.
type Session struct {
	Operator  *entity.Operator `json:"operator"`
	Token     string           `json:"token,omitempty"`
	ExpiresIn int64            `json:"expiresIn,omitempty"`
}

// SessionUsecase defines operator sign-in and request authentication.
type SessionUsecase interface {
	// AuthRequired is false only in local mode with no operators configured.
	AuthRequired() bool

	// SignIn verifies credentials, checks the allow-list and authorizes the
	// catalog for the operator.
	SignIn(ctx context.Context, req *SignInRequest) (*Session, error)

	// Authenticate resolves a bearer token to an allow-listed operator.
	Authenticate(ctx context.Context, token string) (*entity.Operator, error)

	// SignOut de-authorizes the catalog.
	SignOut(ctx context.Context) error
}
