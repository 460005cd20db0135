package handler

import (
	"log/slog"

	"shiptrack/internal/delivery/api/stream"
	deliverycontext "shiptrack/internal/delivery/context"
	domainerrors "shiptrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub    *stream.Hub
	Logger *slog.Logger
}

// StreamHandler upgrades dashboards to the live update socket.
type StreamHandler struct {
	hub    *stream.Hub
	logger *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler.
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		hub:    params.Hub,
		logger: params.Logger,
	}
}

// Connect blocks for the lifetime of the socket.
func (h *StreamHandler) Connect(c echo.Context) error {
	op := deliverycontext.GetOperator(c)
	if op == nil {
		return domainerrors.ErrUnauthorized
	}

	return h.hub.Serve(c.Response(), c.Request(), op)
}
