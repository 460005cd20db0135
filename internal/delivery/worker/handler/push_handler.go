package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shiptrack/config"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// AuditRecord is the document archived for one shipment event.
type AuditRecord struct {
	Event      *entity.ShipmentEvent `json:"event"`
	MessageID  string                `json:"message_id,omitempty"`
	ReceivedAt int64                 `json:"received_at"`
}

// PushHandler archives shipment events delivered by Pub/Sub push
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	audit          repository.ArchiveStore
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Audit  repository.ArchiveStore `name:"audit"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		audit:          params.Audit,
		now:            time.Now,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.ShipmentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse shipment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if event.ID == "" || event.ShipmentID == "" {
		h.logger.Error("[Worker] Shipment event without ids", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	ctx, reqLogger := deliverycontext.Trace(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Archiving shipment event",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("shipment_id", event.ShipmentID),
	)

	if err := h.archive(ctx, &event, pushMsg.Message.MessageID); err != nil {
		reqLogger.Error("[Worker] Failed to archive shipment event",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)

		// 503 makes Pub/Sub redeliver
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.ShipmentEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// archive writes the event under its occurrence day. Redeliveries overwrite
// the same object.
func (h *PushHandler) archive(ctx context.Context, event *entity.ShipmentEvent, messageID string) error {
	record := &AuditRecord{
		Event:      event,
		MessageID:  messageID,
		ReceivedAt: h.now().UnixMilli(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.audit.Put(ctx, AuditObjectName(event), data)
}

// AuditObjectName is the archive path of an event, grouped by UTC day.
func AuditObjectName(event *entity.ShipmentEvent) string {
	day := time.UnixMilli(event.OccurredAt).UTC().Format("2006/01/02")

	return fmt.Sprintf("%s/%s.json", day, event.ID)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
