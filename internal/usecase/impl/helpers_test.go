package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/localstore"
	mockSvc "shiptrack/internal/mocks/service"

	"github.com/stretchr/testify/mock"
	"gocloud.dev/blob/memblob"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLocalBackend returns a local backend on an in-memory bucket.
func newLocalBackend(t *testing.T) (repository.Backend, repository.LocalShipmentStore) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := localstore.NewShipmentStore(bucket, "jp_shipments", newTestLogger())

	return repository.NewLocalBackend(store), store
}

// newQuietNotifier accepts any number of renderer pushes.
func newQuietNotifier(t *testing.T) *mockSvc.MockViewNotifier {
	t.Helper()

	notifier := mockSvc.NewMockViewNotifier(t)
	notifier.EXPECT().CollectionChanged(mock.Anything, mock.Anything).Maybe()
	notifier.EXPECT().Notify(mock.Anything).Maybe()

	return notifier
}

// noticeRecorder collects notices pushed to a MockViewNotifier.
type noticeRecorder struct {
	mu      sync.Mutex
	notices []entity.Notice
}

func (r *noticeRecorder) record(notice entity.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

func (r *noticeRecorder) all() []entity.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Notice(nil), r.notices...)
}

func validShipment(id, trackingNo, status string, updatedAt int64) entity.Shipment {
	return entity.Shipment{
		ID:          id,
		TrackingNo:  trackingNo,
		Sender:      entity.Sender{Name: "Ana Becker", Email: "ana@example.com", Phone: "+493012345", City: "Berlin", State: "BE", Country: "DE"},
		Receiver:    entity.Receiver{Name: "Jeff Miller", Email: "jeff@example.com", Phone: "+197212345", Street: "Main St 101", City: "Dallas", State: "TX", Country: "US", Postal: "75201"},
		Status:      status,
		Origin:      "Berlin, DE",
		Destination: "Dallas, US",
		CreatedAt:   updatedAt - 1000,
		UpdatedAt:   updatedAt,
	}
}
