package handler

import (
	"log/slog"
	"net/http"

	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler serves the public, unauthenticated tracking lookup.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler.
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// TrackingResult is what a customer sees for one tracking number.
type TrackingResult struct {
	Shipment *entity.Shipment `json:"shipment"`
	Link     string           `json:"link"`
}

// Lookup finds a shipment by its tracking number.
func (h *TrackingHandler) Lookup(c echo.Context) error {
	trackingNo := c.Param("trackingNo")

	shipment, err := h.trackingUC.Lookup(c.Request().Context(), trackingNo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &TrackingResult{
		Shipment: shipment,
		Link:     h.trackingUC.TrackingLink(shipment.TrackingNo),
	})
}

// QRCode renders the tracking link as a PNG.
func (h *TrackingHandler) QRCode(c echo.Context) error {
	png, err := h.trackingUC.TrackingQR(c.Request().Context(), c.Param("trackingNo"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
