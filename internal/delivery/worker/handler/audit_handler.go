package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shiptrack/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const auditDayLayout = "2006-01-02"

// AuditHandlerParams holds dependencies for the AuditHandler
type AuditHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Audit  repository.ArchiveStore `name:"audit"`
}

// AuditHandler lets operators see which events reached the archive on a day.
type AuditHandler struct {
	logger *slog.Logger
	audit  repository.ArchiveStore
	now    func() time.Time
}

func NewAuditHandler(params AuditHandlerParams) *AuditHandler {
	return &AuditHandler{
		logger: params.Logger,
		audit:  params.Audit,
		now:    time.Now,
	}
}

// AuditDay lists the archived objects for one UTC day.
type AuditDay struct {
	Day     string   `json:"day"`
	Objects []string `json:"objects"`
}

// ListDay answers GET /audit?day=2006-01-02; the day defaults to today (UTC).
func (h *AuditHandler) ListDay(c echo.Context) error {
	day := h.now().UTC()
	if raw := c.QueryParam("day"); raw != "" {
		parsed, err := time.Parse(auditDayLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "day must be YYYY-MM-DD"})
		}
		day = parsed
	}

	names, err := h.audit.List(c.Request().Context())
	if err != nil {
		h.logger.Error("[Worker] Failed to list audit archive", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "audit archive unavailable"})
	}

	prefix := day.Format("2006/01/02") + "/"
	objects := make([]string, 0)
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			objects = append(objects, name)
		}
	}

	return c.JSON(http.StatusOK, &AuditDay{
		Day:     day.Format(auditDayLayout),
		Objects: objects,
	})
}
