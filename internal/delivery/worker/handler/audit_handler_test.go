package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockRepo "shiptrack/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditHandler_ListDay(t *testing.T) {
	stored := []string{
		"2026/03/13/evt-0.json",
		"2026/03/14/evt-1.json",
		"2026/03/14/evt-2.json",
		"2026/03/15/evt-3.json",
	}

	tests := []struct {
		name        string
		query       string
		listErr     error
		wantStatus  int
		wantDay     string
		wantObjects []string
	}{
		{
			name:        "defaults to today",
			wantStatus:  http.StatusOK,
			wantDay:     "2026-03-14",
			wantObjects: []string{"2026/03/14/evt-1.json", "2026/03/14/evt-2.json"},
		},
		{
			name:        "explicit day",
			query:       "?day=2026-03-15",
			wantStatus:  http.StatusOK,
			wantDay:     "2026-03-15",
			wantObjects: []string{"2026/03/15/evt-3.json"},
		},
		{
			name:        "empty day",
			query:       "?day=2026-01-01",
			wantStatus:  http.StatusOK,
			wantDay:     "2026-01-01",
			wantObjects: []string{},
		},
		{
			name:       "malformed day",
			query:      "?day=14.03.2026",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "archive down",
			listErr:    errors.New("bucket gone"),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			audit := mockRepo.NewMockArchiveStore(t)
			h := NewAuditHandler(AuditHandlerParams{
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
				Audit:  audit,
			})
			h.now = func() time.Time { return testReceivedAt }

			if tt.wantStatus != http.StatusBadRequest {
				if tt.listErr != nil {
					audit.EXPECT().List(mock.Anything).Return(nil, tt.listErr).Once()
				} else {
					audit.EXPECT().List(mock.Anything).Return(stored, nil).Once()
				}
			}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/audit"+tt.query, nil), rec)

			require.NoError(t, h.ListDay(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got AuditDay
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.wantDay, got.Day)
			assert.Equal(t, tt.wantObjects, got.Objects)
		})
	}
}
