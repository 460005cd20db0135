package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shiptrack/internal/delivery/api/response"
	"shiptrack/internal/delivery/api/validator"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	type payload struct {
		Status string `validate:"required"`
	}

	tests := []struct {
		name       string
		err        func() error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "domain error",
			err:        func() error { return errors.Wrap(domainerrors.ErrShipmentNotFound, "find") },
			wantStatus: http.StatusNotFound,
			wantCode:   "SHIPMENT_NOT_FOUND",
		},
		{
			name:       "backend error",
			err:        func() error { return domainerrors.NewBackendError("update", errors.New("deadline")) },
			wantStatus: http.StatusBadGateway,
			wantCode:   "BACKEND_FAILED",
		},
		{
			name:       "validation errors",
			err:        func() error { return validator.New().Validate(&payload{}) },
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "echo error",
			err:        func() error { return echo.ErrNotFound },
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        func() error { return errors.New("boom") },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newTestLogger()).HandleHTTPError(tt.err(), c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestErrorMiddleware_ValidationListsFields(t *testing.T) {
	type payload struct {
		Status   string `validate:"required"`
		Location string `validate:"required"`
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewErrorMiddleware(newTestLogger()).HandleHTTPError(validator.New().Validate(&payload{}), c)

	assert.Equal(t, []any{"Status", "Location"}, decodeError(t, rec).Details)
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	NewErrorMiddleware(newTestLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	admin := &entity.Operator{UID: "u1", Email: "admin@jpeglogistics.cc"}

	tests := []struct {
		name         string
		setupRequest func(req *http.Request)
		setupMock    func(m *mockUsecase.MockSessionUsecase)
		wantErr      error
		wantOperator *entity.Operator
	}{
		{
			name: "bearer header",
			setupRequest: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "tok").Return(admin, nil).Once()
			},
			wantOperator: admin,
		},
		{
			name: "websocket query token",
			setupRequest: func(req *http.Request) {
				q := req.URL.Query()
				q.Set("access_token", "ws-tok")
				req.URL.RawQuery = q.Encode()
			},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "ws-tok").Return(admin, nil).Once()
			},
			wantOperator: admin,
		},
		{
			name:         "missing token when required",
			setupRequest: func(req *http.Request) {},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().AuthRequired().Return(true).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name: "malformed header when required",
			setupRequest: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Basic abc")
			},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().AuthRequired().Return(true).Once()
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:         "missing token in open local mode",
			setupRequest: func(req *http.Request) {},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().AuthRequired().Return(false).Once()
				m.EXPECT().Authenticate(mock.Anything, "").Return(&entity.Operator{Email: "local"}, nil).Once()
			},
			wantOperator: &entity.Operator{Email: "local"},
		},
		{
			name: "operator not allowed",
			setupRequest: func(req *http.Request) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			},
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, domainerrors.ErrForbidden).Once()
			},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := mockUsecase.NewMockSessionUsecase(t)
			tt.setupMock(sessions)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/admin/shipments", nil)
			tt.setupRequest(req)
			c := e.NewContext(req, httptest.NewRecorder())

			var seen *entity.Operator
			next := func(c echo.Context) error {
				seen = deliverycontext.GetOperator(c)

				return nil
			}

			err := NewAuthMiddleware(sessions).Authenticate(next)(c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, seen)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOperator, seen)
		})
	}
}
