package handler

import (
	"log/slog"
	"net/http"

	"shiptrack/internal/delivery/api/response"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for operator sign-in handlers.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SessionStatus describes the signed-in operator and the active backend.
type SessionStatus struct {
	Operator     *entity.Operator   `json:"operator"`
	Mode         entity.BackendMode `json:"mode"`
	AuthRequired bool               `json:"authRequired"`
	Authorized   bool               `json:"authorized"`
}

// SignIn exchanges credentials for a session.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req usecase.SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	session, err := h.sessionUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Current reports who is signed in.
func (h *SessionHandler) Current(c echo.Context) error {
	return response.Success(c, http.StatusOK, &SessionStatus{
		Operator:     deliverycontext.GetOperator(c),
		Mode:         h.catalogUC.Mode(),
		AuthRequired: h.sessionUC.AuthRequired(),
		Authorized:   h.catalogUC.Authorized(),
	})
}

// SignOut ends the session and drops the realtime subscription.
func (h *SessionHandler) SignOut(c echo.Context) error {
	if err := h.sessionUC.SignOut(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
