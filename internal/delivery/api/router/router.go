// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	ShipmentHandler *handler.ShipmentHandler
	TrackingHandler *handler.TrackingHandler
	TransferHandler *handler.TransferHandler
	StreamHandler   *handler.StreamHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	shipmentHandler *handler.ShipmentHandler
	trackingHandler *handler.TrackingHandler
	transferHandler *handler.TransferHandler
	streamHandler   *handler.StreamHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		shipmentHandler: params.ShipmentHandler,
		trackingHandler: params.TrackingHandler,
		transferHandler: params.TransferHandler,
		streamHandler:   params.StreamHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public tracking page
	trackingGroup := api.Group("/tracking")
	{
		trackingGroup.GET("/:trackingNo", r.trackingHandler.Lookup)
		trackingGroup.GET("/:trackingNo/qr", r.trackingHandler.QRCode)
	}

	// Sign-in is the only admin route without authentication
	api.POST("/admin/session", r.sessionHandler.SignIn)

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/session", r.sessionHandler.Current)
		adminGroup.DELETE("/session", r.sessionHandler.SignOut)

		adminGroup.GET("/ws", r.streamHandler.Connect)

		adminGroup.GET("/export", r.transferHandler.Export)
		adminGroup.POST("/import", r.transferHandler.Import)
		adminGroup.POST("/backup", r.transferHandler.Backup)
		adminGroup.GET("/backups", r.transferHandler.ListBackups)
	}

	shipmentsGroup := adminGroup.Group("/shipments")
	{
		shipmentsGroup.GET("", r.shipmentHandler.ListShipments)
		shipmentsGroup.POST("", r.shipmentHandler.SubmitShipment)
		shipmentsGroup.GET("/:id", r.shipmentHandler.GetShipment)
		shipmentsGroup.PATCH("/:id/quick", r.shipmentHandler.QuickEdit)
		shipmentsGroup.DELETE("/:id", r.shipmentHandler.DeleteShipment)
		shipmentsGroup.GET("/:id/mailto", r.shipmentHandler.MailtoLinks)
	}
}
