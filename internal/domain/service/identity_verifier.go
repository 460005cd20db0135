package service

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// IdentityVerifier verifies ID tokens minted by the remote identity provider
// (Firebase Auth) and resolves them to an operator.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Operator, error)
}
