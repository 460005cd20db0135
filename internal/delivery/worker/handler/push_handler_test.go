package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shiptrack/config"
	"shiptrack/internal/domain/entity"
	mockRepo "shiptrack/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testReceivedAt = time.Date(2026, 3, 14, 9, 31, 0, 0, time.UTC)

func createTestPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockArchiveStore) {
	t.Helper()

	audit := mockRepo.NewMockArchiveStore(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Audit:  audit,
	})
	h.now = func() time.Time { return testReceivedAt }

	return h, audit
}

func testEvent() *entity.ShipmentEvent {
	return &entity.ShipmentEvent{
		ID:         "evt-1",
		RequestID:  "req-from-event",
		Type:       entity.ShipmentStatusChanged,
		ShipmentID: "ship-1",
		TrackingNo: "JP123456789",
		OldStatus:  "In Transit",
		Status:     "Delivered",
		Backend:    entity.BackendRemote,
		OccurredAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC).UnixMilli(),
	}
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/shipment-audit"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_ArchivesEvent(t *testing.T) {
	h, audit := createTestPushHandler(t)

	var stored []byte
	audit.EXPECT().Put(mock.Anything, "2026/03/14/evt-1.json", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, data []byte) error {
			stored = data

			return nil
		}).Once()

	rec := doPush(t, h, pushBody(t, testEvent(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var record AuditRecord
	require.NoError(t, json.Unmarshal(stored, &record))
	assert.Equal(t, testEvent(), record.Event)
	assert.Equal(t, "msg-1", record.MessageID)
	assert.Equal(t, testReceivedAt.UnixMilli(), record.ReceivedAt)
}

func TestPushHandler_RetryableOnArchiveFailure(t *testing.T) {
	h, audit := createTestPushHandler(t)

	audit.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket unavailable")).Once()

	rec := doPush(t, h, pushBody(t, testEvent(), nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
	}{
		{
			name: "not json",
			body: func(*testing.T) string { return `{"message":` },
		},
		{
			name: "data not base64",
			body: func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
		},
		{
			name: "data not an event",
			body: func(t *testing.T) string { return pushBody(t, []string{"nope"}, nil) },
		},
		{
			name: "event without ids",
			body: func(t *testing.T) string {
				return pushBody(t, &entity.ShipmentEvent{Type: entity.ShipmentDeleted}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t)

			rec := doPush(t, h, tt.body(t))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := createTestPushHandler(t)
	ctx := context.Background()

	t.Run("attribute wins", func(t *testing.T) {
		var msg PubSubMessage
		msg.Message.Attributes = map[string]string{"request_id": "req-from-attr"}

		assert.Equal(t, "req-from-attr", h.extractRequestID(ctx, &msg, testEvent()))
	})

	t.Run("event field next", func(t *testing.T) {
		assert.Equal(t, "req-from-event", h.extractRequestID(ctx, &PubSubMessage{}, testEvent()))
	})

	t.Run("generated last", func(t *testing.T) {
		id := h.extractRequestID(ctx, &PubSubMessage{}, &entity.ShipmentEvent{})
		assert.Len(t, id, 36)
	})
}

func TestPushHandler_RequiresTokenWhenVerifying(t *testing.T) {
	h, _ := createTestPushHandler(t)
	h.verifyPushAuth = true

	rec := doPush(t, h, pushBody(t, testEvent(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuditObjectName(t *testing.T) {
	event := &entity.ShipmentEvent{
		ID:         "evt-9",
		OccurredAt: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC).UnixMilli(),
	}

	assert.Equal(t, "2025/12/31/evt-9.json", AuditObjectName(event))
}
