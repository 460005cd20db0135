package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"shiptrack/config"
	"shiptrack/internal/delivery"
	apimiddleware "shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/router"
	"shiptrack/internal/delivery/api/stream"
	"shiptrack/internal/delivery/api/validator"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/delivery/middleware"
	"shiptrack/internal/domain/lifecycle"
	"shiptrack/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
	hub    *stream.Hub
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Hub          *stream.Hub
	RouterParams router.RouterParams
}

// wsPath is excluded from gzip; compressed writers cannot be hijacked.
const wsPath = "/api/admin/ws"

// NewServer builds the echo server with the admin and tracking routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	cfg := params.Cfg

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Request id before the access log so every line carries it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.AllowedOrigins)))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	e.Use(echomiddleware.GzipWithConfig(echomiddleware.GzipConfig{
		Skipper: func(c echo.Context) bool { return c.Path() == wsPath },
	}))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    cfg,
		logger: params.Logger,
		server: e,
		hub:    params.Hub,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// corsConfig lets browser dashboards send bearer tokens and read the request
// id. An empty origin list admits any origin.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	cors := echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID, echo.HeaderContentDisposition},
	}
	if len(origins) > 0 {
		cors.AllowOrigins = origins
	}

	return cors
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting shipment API", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down shipment API", slog.Int("dashboards", s.hub.Clients()))
	// Hijacked sockets are not tracked by Shutdown.
	s.hub.Close()

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
