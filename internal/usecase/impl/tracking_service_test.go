package impl

import (
	"context"
	"testing"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	mockRepo "shiptrack/internal/mocks/repository"
	mockSvc "shiptrack/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackingService_Lookup_Local(t *testing.T) {
	ctx := context.Background()
	backend, store := newLocalBackend(t)
	require.NoError(t, store.Save(ctx, []entity.Shipment{
		validShipment("a", "JP11112222", "Pending", 1),
		validShipment("b", "JP33334444", "Delivered", 2),
	}))
	svc := NewTrackingService(backend, nil, "")

	shipment, err := svc.Lookup(ctx, "  jp33334444 ")
	require.NoError(t, err)
	assert.Equal(t, "b", shipment.ID)

	_, err = svc.Lookup(ctx, "JP00000000")
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)

	_, err = svc.Lookup(ctx, "   ")
	assert.Equal(t, "Please enter a tracking number.", validationMessage(t, err))
}

func TestTrackingService_Lookup_Remote(t *testing.T) {
	ctx := context.Background()
	store := mockRepo.NewMockRemoteShipmentStore(t)
	svc := NewTrackingService(repository.NewRemoteBackend(store), nil, "")

	found := validShipment("a", "JP1", "Pending", 1)
	store.EXPECT().FindByField(mock.Anything, "trackingNo", "JP1").Return(&found, nil).Once()
	store.EXPECT().FindByField(mock.Anything, "trackingNo", "JP2").Return(nil, repository.ErrShipmentNotFound).Once()
	store.EXPECT().FindByField(mock.Anything, "trackingNo", "JP3").Return(nil, errors.New("unavailable")).Once()

	shipment, err := svc.Lookup(ctx, "JP1")
	require.NoError(t, err)
	assert.Equal(t, "a", shipment.ID)

	_, err = svc.Lookup(ctx, "JP2")
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)

	_, err = svc.Lookup(ctx, "JP3")
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailed)
}

func TestTrackingService_TrackingLink(t *testing.T) {
	assert.Equal(t,
		"https://jpeglogistics.cc/tracking.html?tn=JP1",
		NewTrackingService(repository.Backend{}, nil, "").TrackingLink("JP1"))
	assert.Equal(t,
		"https://track.test/tracking.html?tn=JP+1%2F2",
		NewTrackingService(repository.Backend{}, nil, " https://track.test/ ").TrackingLink("JP 1/2"))
}

func TestTrackingService_TrackingQR(t *testing.T) {
	ctx := context.Background()
	backend, store := newLocalBackend(t)
	require.NoError(t, store.Save(ctx, []entity.Shipment{validShipment("a", "JP1", "Pending", 1)}))

	qr := mockSvc.NewMockQRCodeService(t)
	qr.EXPECT().GenerateTrackingQR("https://track.test/tracking.html?tn=JP1").Return([]byte("png"), nil).Once()
	svc := NewTrackingService(backend, qr, "https://track.test")

	png, err := svc.TrackingQR(ctx, "jp1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.TrackingQR(ctx, "JP404")
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)
}
