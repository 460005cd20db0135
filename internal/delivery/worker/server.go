// Package worker serves the Pub/Sub push endpoint that archives shipment
// events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"shiptrack/config"
	"shiptrack/internal/delivery"
	"shiptrack/internal/delivery/middleware"
	"shiptrack/internal/delivery/worker/handler"
	"shiptrack/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultPort matches the local publisher's default push endpoint.
const DefaultPort = 8081

// maxPushBodySize bounds one push envelope; events carry ids and statuses only.
const maxPushBodySize = "1M"

type workerServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	PushHandler  *handler.PushHandler
	AuditHandler *handler.AuditHandler
}

// NewServer creates the HTTP server receiving Pub/Sub pushes for the audit log.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(maxPushBodySize))
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush)
	e.GET("/audit", params.AuditHandler.ListDay)

	srv := &workerServer{
		port:   workerPort(params.Cfg),
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func workerPort(cfg *config.Config) int {
	if cfg.Audit != nil && cfg.Audit.Port > 0 {
		return cfg.Audit.Port
	}

	return DefaultPort
}

// Serve blocks until the server is shut down.
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting audit worker", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down audit worker")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
