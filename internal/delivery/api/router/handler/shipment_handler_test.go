package handler

import (
	"net/http"
	"testing"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	mockUsecase "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shipmentHandlerFixture struct {
	handler       *ShipmentHandler
	shipments     *mockUsecase.MockShipmentUsecase
	catalog       *mockUsecase.MockCatalogUsecase
	notifications *mockUsecase.MockNotificationUsecase
}

func createTestShipmentHandler(t *testing.T) *shipmentHandlerFixture {
	t.Helper()

	f := &shipmentHandlerFixture{
		shipments:     mockUsecase.NewMockShipmentUsecase(t),
		catalog:       mockUsecase.NewMockCatalogUsecase(t),
		notifications: mockUsecase.NewMockNotificationUsecase(t),
	}
	f.handler = NewShipmentHandler(ShipmentHandlerParams{
		ShipmentUC:     f.shipments,
		CatalogUC:      f.catalog,
		NotificationUC: f.notifications,
		Logger:         newTestLogger(),
	})

	return f
}

func TestShipmentHandler_ListShipments(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	page := &entity.Page{
		Items:     []entity.Shipment{{ID: "a", TrackingNo: "JP1"}},
		Total:     11,
		PageIndex: 1,
		HasPrev:   true,
	}
	f.catalog.EXPECT().Project(mock.Anything, entity.ViewQuery{
		Text:      "berlin",
		Status:    "In Transit",
		SortKey:   "createdAt",
		SortDir:   entity.SortAsc,
		PageIndex: 1,
	}).Return(page, nil).Once()
	f.catalog.EXPECT().Revision().Return(uint64(7)).Once()

	c, rec := newTestContext(e, http.MethodGet, "/api/admin/shipments?q=berlin&status=In+Transit&sort=createdAt:asc&page=1", "")
	require.NoError(t, f.handler.ListShipments(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string]any](t, rec)
	assert.EqualValues(t, 7, got["revision"])
	assert.EqualValues(t, 11, got["total"])
	assert.Equal(t, true, got["hasPrev"])
	assert.Len(t, got["page"], 1)
}

func TestShipmentHandler_ListShipments_DefaultSort(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	f.catalog.EXPECT().Project(mock.Anything, entity.ViewQuery{
		SortKey: entity.DefaultSortKey,
		SortDir: entity.SortDesc,
	}).Return(&entity.Page{}, nil).Once()
	f.catalog.EXPECT().Revision().Return(uint64(0)).Once()

	c, rec := newTestContext(e, http.MethodGet, "/api/admin/shipments", "")
	require.NoError(t, f.handler.ListShipments(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShipmentHandler_ListShipments_NegativePage(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/admin/shipments?page=-1", "")
	require.NoError(t, f.handler.ListShipments(c))
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestShipmentHandler_SubmitShipment(t *testing.T) {
	t.Run("create answers 201", func(t *testing.T) {
		f := createTestShipmentHandler(t)
		e := newTestEcho()

		f.shipments.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(d *usecase.ShipmentDraft) bool {
			return d.ID == "" && d.Status == "Pending" && d.Sender.Name == "Ana Becker"
		})).Return(&entity.Shipment{ID: "new-id", TrackingNo: "JP260314093000"}, nil).Once()

		c, rec := newTestContext(e, http.MethodPost, "/api/admin/shipments",
			`{"status":"Pending","sender":{"name":"Ana Becker"}}`)
		require.NoError(t, f.handler.SubmitShipment(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		got := decodeData[entity.Shipment](t, rec)
		assert.Equal(t, "new-id", got.ID)
	})

	t.Run("blank id is a create", func(t *testing.T) {
		f := createTestShipmentHandler(t)
		e := newTestEcho()

		f.shipments.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(&entity.Shipment{ID: "new-id"}, nil).Once()

		c, rec := newTestContext(e, http.MethodPost, "/api/admin/shipments", `{"id":"  ","status":"Pending"}`)
		require.NoError(t, f.handler.SubmitShipment(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("update answers 200", func(t *testing.T) {
		f := createTestShipmentHandler(t)
		e := newTestEcho()

		f.shipments.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(d *usecase.ShipmentDraft) bool {
			return d.ID == "abc"
		})).Return(&entity.Shipment{ID: "abc"}, nil).Once()

		c, rec := newTestContext(e, http.MethodPost, "/api/admin/shipments", `{"id":"abc"}`)
		require.NoError(t, f.handler.SubmitShipment(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("validation failure keeps the message", func(t *testing.T) {
		f := createTestShipmentHandler(t)
		e := newTestEcho()

		f.shipments.EXPECT().Submit(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithMessage("Please fill all required sender fields.")).Once()

		c, rec := newTestContext(e, http.MethodPost, "/api/admin/shipments", `{}`)
		require.NoError(t, f.handler.SubmitShipment(c))

		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "sender fields")
	})

	t.Run("malformed body", func(t *testing.T) {
		f := createTestShipmentHandler(t)
		e := newTestEcho()

		c, rec := newTestContext(e, http.MethodPost, "/api/admin/shipments", `{"status":`)
		require.NoError(t, f.handler.SubmitShipment(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

func TestShipmentHandler_QuickEdit_TakesIDFromPath(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	f.shipments.EXPECT().QuickEdit(mock.Anything, &usecase.QuickEditDraft{
		ID:         "abc",
		Status:     "Delivered",
		StatusDate: "2026-03-14",
		StatusTime: "09:30",
		Location:   "Dallas",
	}).Return(&entity.Shipment{ID: "abc", Status: "Delivered"}, nil).Once()

	c, rec := newTestContext(e, http.MethodPatch, "/api/admin/shipments/abc/quick",
		`{"id":"other","status":"Delivered","statusDate":"2026-03-14","statusTime":"09:30","location":"Dallas"}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, f.handler.QuickEdit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestShipmentHandler_DeleteShipment(t *testing.T) {
	tests := []struct {
		name        string
		mode        entity.BackendMode
		wantStatus  int
		wantPending bool
	}{
		{name: "local", mode: entity.BackendLocal, wantStatus: http.StatusOK},
		{name: "remote", mode: entity.BackendRemote, wantStatus: http.StatusAccepted, wantPending: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestShipmentHandler(t)
			e := newTestEcho()

			f.shipments.EXPECT().Delete(mock.Anything, "abc").Return(nil).Once()
			f.catalog.EXPECT().Mode().Return(tt.mode).Once()

			c, rec := newTestContext(e, http.MethodDelete, "/api/admin/shipments/abc", "")
			c.SetParamNames("id")
			c.SetParamValues("abc")

			require.NoError(t, f.handler.DeleteShipment(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			got := decodeData[DeleteShipmentResponse](t, rec)
			assert.Equal(t, "abc", got.ID)
			assert.Equal(t, tt.wantPending, got.Pending)
		})
	}
}

func TestShipmentHandler_GetShipment_NotFound(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	f.catalog.EXPECT().Find(mock.Anything, "missing").Return(nil, domainerrors.ErrShipmentNotFound).Once()

	c, rec := newTestContext(e, http.MethodGet, "/api/admin/shipments/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, f.handler.GetShipment(c))
	assertErrorCode(t, rec, http.StatusNotFound, "SHIPMENT_NOT_FOUND")
}

func TestShipmentHandler_MailtoLinks(t *testing.T) {
	f := createTestShipmentHandler(t)
	e := newTestEcho()

	shipment := &entity.Shipment{ID: "abc", TrackingNo: "JP1"}
	f.catalog.EXPECT().Find(mock.Anything, "abc").Return(shipment, nil).Once()
	f.notifications.EXPECT().MailtoLinks(shipment, true).
		Return(&usecase.MailtoLinks{Sender: "mailto:ana@example.com"}).Once()

	c, rec := newTestContext(e, http.MethodGet, "/api/admin/shipments/abc/mailto?new=true", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, f.handler.MailtoLinks(c))
	got := decodeData[usecase.MailtoLinks](t, rec)
	assert.Equal(t, "mailto:ana@example.com", got.Sender)
	assert.Empty(t, got.Receiver)
}
