package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	mockRepo "shiptrack/internal/mocks/repository"
	mockSvc "shiptrack/internal/mocks/service"
	"shiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeSubscription is a hand-driven realtime listener.
type fakeSubscription struct {
	events       chan repository.SnapshotEvent
	once         sync.Once
	unsubscribed atomic.Bool
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{events: make(chan repository.SnapshotEvent, 8)}
}

func (s *fakeSubscription) Events() <-chan repository.SnapshotEvent {
	return s.events
}

func (s *fakeSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.unsubscribed.Store(true)
		close(s.events)
	})
}

// end closes the stream the way a listener that stops on its own does.
func (s *fakeSubscription) end() {
	s.once.Do(func() { close(s.events) })
}

var (
	adminOp    = &entity.Operator{UID: "u-1", Email: "admin@jpeglogistics.cc"}
	strangerOp = &entity.Operator{UID: "u-2", Email: "someone@example.com"}
)

func createTestRemoteCatalog(t *testing.T, notifier *mockSvc.MockViewNotifier) (usecase.CatalogUsecase, *mockRepo.MockRemoteShipmentStore) {
	t.Helper()

	store := mockRepo.NewMockRemoteShipmentStore(t)
	catalog := NewCatalogService(
		repository.NewRemoteBackend(store),
		entity.AllowList{"admin@jpeglogistics.cc"},
		notifier,
		newTestLogger(),
	)
	t.Cleanup(catalog.Close)

	return catalog, store
}

func TestCatalogService_Local(t *testing.T) {
	ctx := context.Background()
	backend, store := newLocalBackend(t)
	notifier := mockSvc.NewMockViewNotifier(t)
	notifier.EXPECT().CollectionChanged(uint64(1), 2).Once()

	catalog := NewCatalogService(backend, nil, notifier, newTestLogger())

	require.NoError(t, catalog.Authorize(ctx, nil))
	assert.True(t, catalog.Authorized())
	assert.Equal(t, entity.BackendLocal, catalog.Mode())

	require.NoError(t, store.Save(ctx, []entity.Shipment{
		validShipment("a", "JP1", "Pending", 10),
		validShipment("b", "JP2", "Delivered", 20),
	}))

	items, err := catalog.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, catalog.Refresh(ctx))
	assert.Equal(t, uint64(1), catalog.Revision())

	found, err := catalog.Find(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "JP2", found.TrackingNo)

	_, err = catalog.Find(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrShipmentNotFound)

	page, err := catalog.Project(ctx, entity.ViewQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"JP2", "JP1"}, trackingNumbers(page.Items))
}

func TestCatalogService_Authorize_UnpermittedClearsWithoutSubscribing(t *testing.T) {
	notifier := mockSvc.NewMockViewNotifier(t)
	notifier.EXPECT().CollectionChanged(uint64(1), 0).Once()
	catalog, _ := createTestRemoteCatalog(t, notifier)

	require.NoError(t, catalog.Authorize(context.Background(), strangerOp))

	assert.False(t, catalog.Authorized())
	assert.False(t, catalog.IsAuthorizedUser(strangerOp))
	assert.True(t, catalog.IsAuthorizedUser(adminOp))

	items, err := catalog.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_Authorize_AppliesPushedSnapshots(t *testing.T) {
	ctx := context.Background()
	notifier := newQuietNotifier(t)
	catalog, store := createTestRemoteCatalog(t, notifier)

	sub := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()

	require.NoError(t, catalog.Authorize(ctx, adminOp))
	assert.True(t, catalog.Authorized())

	sub.events <- repository.SnapshotEvent{Items: []entity.Shipment{
		validShipment("b", "JP2", "Pending", 20),
		validShipment("a", "JP1", "Pending", 10),
	}}

	require.Eventually(t, func() bool { return catalog.Revision() == 1 }, time.Second, 5*time.Millisecond)

	items, err := catalog.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP2", "JP1"}, trackingNumbers(items))

	sub.events <- repository.SnapshotEvent{Items: []entity.Shipment{validShipment("c", "JP3", "Pending", 30)}}

	require.Eventually(t, func() bool { return catalog.Revision() == 2 }, time.Second, 5*time.Millisecond)
	items, err = catalog.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP3"}, trackingNumbers(items))
}

func TestCatalogService_Authorize_EmptyPushClearsView(t *testing.T) {
	ctx := context.Background()
	catalog, store := createTestRemoteCatalog(t, newQuietNotifier(t))

	sub := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()
	require.NoError(t, catalog.Authorize(ctx, adminOp))

	sub.events <- repository.SnapshotEvent{Items: []entity.Shipment{validShipment("a", "JP1", "Pending", 10)}}
	require.Eventually(t, func() bool { return catalog.Revision() == 1 }, time.Second, 5*time.Millisecond)

	sub.events <- repository.SnapshotEvent{Items: []entity.Shipment{}}
	require.Eventually(t, func() bool { return catalog.Revision() == 2 }, time.Second, 5*time.Millisecond)

	page, err := catalog.Project(ctx, entity.ViewQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)
	assert.True(t, catalog.Authorized())
}

func TestCatalogService_Authorize_ReplacesPreviousSubscription(t *testing.T) {
	ctx := context.Background()
	notifier := newQuietNotifier(t)
	catalog, store := createTestRemoteCatalog(t, notifier)

	first := newFakeSubscription()
	second := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(first, nil).Once()
	store.EXPECT().Subscribe(mock.Anything).Return(second, nil).Once()

	require.NoError(t, catalog.Authorize(ctx, adminOp))
	require.NoError(t, catalog.Authorize(ctx, adminOp))

	assert.True(t, first.unsubscribed.Load())
	assert.False(t, second.unsubscribed.Load())

	require.NoError(t, catalog.Authorize(ctx, nil))
	assert.True(t, second.unsubscribed.Load())
	assert.False(t, catalog.Authorized())
}

func TestCatalogService_SubscriptionErrorBecomesNotice(t *testing.T) {
	var recorder noticeRecorder
	notifier := mockSvc.NewMockViewNotifier(t)
	notifier.EXPECT().Notify(mock.Anything).Run(recorder.record).Maybe()
	catalog, store := createTestRemoteCatalog(t, notifier)

	sub := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()
	require.NoError(t, catalog.Authorize(context.Background(), adminOp))

	sub.events <- repository.SnapshotEvent{Err: errors.New("permission denied")}

	require.Eventually(t, func() bool { return len(recorder.all()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, entity.Notice{
		Kind:    entity.NoticeError,
		Message: "Error loading shipments: permission denied",
	}, recorder.all()[0])
	assert.Equal(t, uint64(0), catalog.Revision())
}

func TestCatalogService_SubscribeFailure(t *testing.T) {
	catalog, store := createTestRemoteCatalog(t, mockSvc.NewMockViewNotifier(t))
	store.EXPECT().Subscribe(mock.Anything).Return(nil, errors.New("unavailable")).Once()

	err := catalog.Authorize(context.Background(), adminOp)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailed)
	assert.False(t, catalog.Authorized())
}

func TestCatalogService_CloseUnsubscribes(t *testing.T) {
	catalog, store := createTestRemoteCatalog(t, newQuietNotifier(t))
	sub := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()
	require.NoError(t, catalog.Authorize(context.Background(), adminOp))

	catalog.Close()

	assert.True(t, sub.unsubscribed.Load())
	assert.False(t, catalog.Authorized())
}

func TestCatalogService_EnsureAuthorized_Local(t *testing.T) {
	backend, _ := newLocalBackend(t)
	catalog := NewCatalogService(backend, nil, mockSvc.NewMockViewNotifier(t), newTestLogger())

	require.NoError(t, catalog.EnsureAuthorized(context.Background(), nil))
	assert.True(t, catalog.Authorized())
}

func TestCatalogService_EnsureAuthorized_KeepsLiveSubscription(t *testing.T) {
	ctx := context.Background()
	catalog, store := createTestRemoteCatalog(t, newQuietNotifier(t))

	sub := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(sub, nil).Once()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- catalog.EnsureAuthorized(ctx, adminOp)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.True(t, catalog.Authorized())
	assert.False(t, sub.unsubscribed.Load())

	require.NoError(t, catalog.EnsureAuthorized(ctx, adminOp))
}

func TestCatalogService_EndedSubscriptionResubscribes(t *testing.T) {
	ctx := context.Background()
	catalog, store := createTestRemoteCatalog(t, newQuietNotifier(t))

	first := newFakeSubscription()
	second := newFakeSubscription()
	store.EXPECT().Subscribe(mock.Anything).Return(first, nil).Once()
	store.EXPECT().Subscribe(mock.Anything).Return(second, nil).Once()

	require.NoError(t, catalog.Authorize(ctx, adminOp))
	first.events <- repository.SnapshotEvent{Items: []entity.Shipment{validShipment("a", "JP1", "Pending", 10)}}
	require.Eventually(t, func() bool { return catalog.Revision() == 1 }, time.Second, 5*time.Millisecond)

	first.end()
	require.Eventually(t, func() bool { return !catalog.Authorized() }, time.Second, 5*time.Millisecond)

	items, err := catalog.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP1"}, trackingNumbers(items))

	require.NoError(t, catalog.EnsureAuthorized(ctx, adminOp))
	assert.True(t, catalog.Authorized())

	second.events <- repository.SnapshotEvent{Items: []entity.Shipment{validShipment("b", "JP2", "Pending", 20)}}
	require.Eventually(t, func() bool { return catalog.Revision() == 2 }, time.Second, 5*time.Millisecond)
}
