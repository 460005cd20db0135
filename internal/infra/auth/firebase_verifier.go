package auth

import (
	"context"
	"log/slog"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// TokenVerifier is the subset of the Firebase Auth client used here.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client TokenVerifier
	logger *slog.Logger
}

// NewFirebaseVerifier resolves Firebase ID tokens to operators.
func NewFirebaseVerifier(client *firebaseauth.Client, logger *slog.Logger) service.IdentityVerifier {
	return newFirebaseVerifier(client, logger)
}

func newFirebaseVerifier(client TokenVerifier, logger *slog.Logger) *firebaseVerifier {
	return &firebaseVerifier{client: client, logger: logger}
}

// VerifyIDToken checks the token with Firebase and reads the email claim.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Operator, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("Firebase ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	email, _ := token.Claims["email"].(string)

	return &entity.Operator{
		UID:   token.UID,
		Email: email,
	}, nil
}
