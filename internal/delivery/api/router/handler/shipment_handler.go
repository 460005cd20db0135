package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShipmentHandlerParams holds dependencies for ShipmentHandler, injected by Fx.
type ShipmentHandlerParams struct {
	fx.In

	ShipmentUC     usecase.ShipmentUsecase
	CatalogUC      usecase.CatalogUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// ShipmentHandler serves the admin dashboard table and its edit forms.
type ShipmentHandler struct {
	shipmentUC     usecase.ShipmentUsecase
	catalogUC      usecase.CatalogUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler.
func NewShipmentHandler(params ShipmentHandlerParams) *ShipmentHandler {
	return &ShipmentHandler{
		shipmentUC:     params.ShipmentUC,
		catalogUC:      params.CatalogUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListShipmentsRequest is the dashboard table state taken from the query string.
type ListShipmentsRequest struct {
	Text   string `query:"q"`
	Status string `query:"status"`
	Sort   string `query:"sort"`
	Page   int    `query:"page" validate:"gte=0"`
}

// ShipmentPage is one table page plus the catalog revision it was cut from.
type ShipmentPage struct {
	*entity.Page
	Revision uint64 `json:"revision"`
}

// DeleteShipmentResponse acknowledges a delete. Pending is set when the
// remote write is still in flight.
type DeleteShipmentResponse struct {
	ID      string `json:"id"`
	Pending bool   `json:"pending"`
}

// ListShipments projects the filtered, sorted page of the collection.
func (h *ShipmentHandler) ListShipments(c echo.Context) error {
	var req ListShipmentsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid list query")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	key, dir := entity.ParseSort(req.Sort)
	query := entity.ViewQuery{
		Text:      req.Text,
		Status:    req.Status,
		SortKey:   key,
		SortDir:   dir,
		PageIndex: req.Page,
	}

	page, err := h.catalogUC.Project(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ShipmentPage{
		Page:     page,
		Revision: h.catalogUC.Revision(),
	})
}

// GetShipment returns one shipment by id.
func (h *ShipmentHandler) GetShipment(c echo.Context) error {
	shipment, err := h.catalogUC.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// SubmitShipment creates a shipment when the form has no id and updates it
// otherwise.
func (h *ShipmentHandler) SubmitShipment(c echo.Context) error {
	var draft usecase.ShipmentDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}

	// The usecase trims the id too, so a blank id is a create.
	status := http.StatusOK
	if strings.TrimSpace(draft.ID) == "" {
		status = http.StatusCreated
	}

	shipment, err := h.shipmentUC.Submit(c.Request().Context(), &draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, shipment)
}

// QuickEdit patches the status block of one shipment.
func (h *ShipmentHandler) QuickEdit(c echo.Context) error {
	var draft usecase.QuickEditDraft
	if err := c.Bind(&draft); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quick edit input")
	}
	draft.ID = c.Param("id")

	shipment, err := h.shipmentUC.QuickEdit(c.Request().Context(), &draft)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shipment)
}

// DeleteShipment removes one shipment. Remote deletes are acknowledged before
// the store confirms them.
func (h *ShipmentHandler) DeleteShipment(c echo.Context) error {
	id := c.Param("id")
	if err := h.shipmentUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	if h.catalogUC.Mode() == entity.BackendRemote {
		return response.Success(c, http.StatusAccepted, &DeleteShipmentResponse{ID: id, Pending: true})
	}

	return response.Success(c, http.StatusOK, &DeleteShipmentResponse{ID: id})
}

// MailtoLinks builds the manual-notification links for one shipment.
func (h *ShipmentHandler) MailtoLinks(c echo.Context) error {
	shipment, err := h.catalogUC.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	isNew := c.QueryParam("new") == "true"

	return response.Success(c, http.StatusOK, h.notificationUC.MailtoLinks(shipment, isNew))
}
