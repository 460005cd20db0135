package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "shiptrack/internal/delivery/context"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// tokenQueryParam carries the bearer token for WebSocket upgrades, which
// browsers cannot send headers with.
const tokenQueryParam = "access_token"

// AuthMiddleware resolves the operator behind an admin request.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate rejects the request unless the session usecase accepts its
// bearer token. Without configured accounts every request is admitted as the
// local operator.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil && m.sessions.AuthRequired() {
			return err
		}

		ctx := c.Request().Context()
		op, err := m.sessions.Authenticate(ctx, token)
		if err != nil {
			return err
		}

		deliverycontext.SetOperator(c, op)
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("operator", op.Email))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		if token := c.QueryParam(tokenQueryParam); token != "" {
			return token, nil
		}

		return "", domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return "", domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
	}

	return token, nil
}
