// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/usecase"
)

// localOperator stands in for the signed-in user when local mode runs
// without any configured accounts.
var localOperator = entity.Operator{UID: "local", Email: "local@shiptrack"}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	logger    *slog.Logger
	catalog   usecase.CatalogUsecase
	verifier  service.IdentityVerifier
	tokens    service.TokenService
	hasher    service.PasswordHasher
	operators map[string]string
}

// NewSessionService is the constructor for sessionService. verifier is only
// used in remote mode and may be nil otherwise.
func NewSessionService(
	logger *slog.Logger,
	catalog usecase.CatalogUsecase,
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	operators []config.OperatorConfig,
) usecase.SessionUsecase {
	accounts := make(map[string]string, len(operators))
	for _, op := range operators {
		if email := strings.TrimSpace(op.Email); email != "" {
			accounts[email] = op.PasswordHash
		}
	}

	return &sessionService{
		logger:    logger,
		catalog:   catalog,
		verifier:  verifier,
		tokens:    tokens,
		hasher:    hasher,
		operators: accounts,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) remote() bool {
	return srv.catalog.Mode() == entity.BackendRemote
}

func (srv *sessionService) AuthRequired() bool {
	return srv.remote() || len(srv.operators) > 0
}

// SignIn verifies the credentials and, in remote mode, subscribes the catalog
// on behalf of the operator.
func (srv *sessionService) SignIn(ctx context.Context, req *usecase.SignInRequest) (*usecase.Session, error) {
	if srv.remote() {
		return srv.signInRemote(ctx, req)
	}

	if !srv.AuthRequired() {
		op := localOperator

		return &usecase.Session{Operator: &op}, nil
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email and password are required.")
	}

	hash, ok := srv.operators[email]
	if !ok || !srv.hasher.Check(req.Password, hash) {
		srv.log(ctx).Info("Rejected operator sign-in", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.GenerateToken(email)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	srv.log(ctx).Info("Operator signed in", slog.String("email", email))

	return &usecase.Session{
		Operator:  &entity.Operator{UID: email, Email: email},
		Token:     token,
		ExpiresIn: int64(srv.tokens.TokenTTL().Seconds()),
	}, nil
}

func (srv *sessionService) signInRemote(ctx context.Context, req *usecase.SignInRequest) (*usecase.Session, error) {
	idToken := strings.TrimSpace(req.IDToken)
	if idToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("ID token is required.")
	}

	op, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Info("Rejected ID token", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	// Authorize also tears the subscription down for a rejected operator.
	if err := srv.catalog.Authorize(ctx, op); err != nil {
		return nil, err
	}
	if !srv.catalog.IsAuthorizedUser(op) {
		return nil, domainerrors.ErrForbidden
	}

	srv.log(ctx).Info("Operator signed in", slog.String("email", op.Email))

	return &usecase.Session{Operator: op}, nil
}

// Authenticate resolves a bearer token for an admin request.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Operator, error) {
	if !srv.AuthRequired() {
		op := localOperator

		return &op, nil
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	if srv.remote() {
		op, err := srv.verifier.VerifyIDToken(ctx, token)
		if err != nil {
			return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
		}
		if !srv.catalog.IsAuthorizedUser(op) {
			return nil, domainerrors.ErrForbidden
		}
		// A restarted process has no live subscription until someone is seen.
		if err := srv.catalog.EnsureAuthorized(ctx, op); err != nil {
			return nil, err
		}

		return op, nil
	}

	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}
	if _, ok := srv.operators[claims.Email]; !ok {
		return nil, domainerrors.ErrForbidden
	}

	return &entity.Operator{UID: claims.Email, Email: claims.Email}, nil
}

// SignOut de-authorizes the catalog, clearing the remote list.
func (srv *sessionService) SignOut(ctx context.Context) error {
	srv.log(ctx).Info("Operator signed out")

	return srv.catalog.Authorize(ctx, nil)
}
