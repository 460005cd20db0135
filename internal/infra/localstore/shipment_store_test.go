package localstore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const testKey = "jp_shipments"

func createTestStore(t *testing.T) (repository.LocalShipmentStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewShipmentStore(bucket, testKey, logger), bucket
}

func TestShipmentStore_LoadMissingKeyIsEmpty(t *testing.T) {
	store, _ := createTestStore(t)

	items, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestShipmentStore_LoadCorruptContentIsEmpty(t *testing.T) {
	store, bucket := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, bucket.WriteAll(ctx, testKey, []byte("{not json"), nil))

	items, err := store.Load(ctx)

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestShipmentStore_CreatePrependsAndAssignsID(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, &entity.Shipment{TrackingNo: "JP1"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := store.Create(ctx, &entity.Shipment{ID: "fixed", TrackingNo: "JP2"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", second.ID)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "JP2", items[0].TrackingNo)
	assert.Equal(t, "JP1", items[1].TrackingNo)
}

func TestShipmentStore_UpdateReplacesInPlace(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []entity.Shipment{
		{ID: "a", Status: "Pending"},
		{ID: "b", Status: "Pending"},
	}))

	updated, err := store.Update(ctx, "b", &entity.Shipment{Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, "b", updated.ID)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pending", items[0].Status)
	assert.Equal(t, "Delivered", items[1].Status)
}

func TestShipmentStore_UpdateAndDeleteMissing(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "nope", &entity.Shipment{})
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)

	err = store.Delete(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
}

func TestShipmentStore_Delete(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []entity.Shipment{{ID: "a"}, {ID: "b"}, {ID: "c"}}))

	require.NoError(t, store.Delete(ctx, "b"))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[1].ID)
}

func TestShipmentStore_FindByField(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []entity.Shipment{
		{ID: "a", TrackingNo: "JP123", Status: "Pending"},
		{ID: "b", TrackingNo: "JP123", Status: "In Transit"},
	}))

	t.Run("tracking number ignores case and returns first", func(t *testing.T) {
		got, err := store.FindByField(ctx, "trackingNo", "jp123")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("other fields are exact", func(t *testing.T) {
		_, err := store.FindByField(ctx, "status", "in transit")
		assert.ErrorIs(t, err, repository.ErrShipmentNotFound)

		got, err := store.FindByField(ctx, "status", "In Transit")
		require.NoError(t, err)
		assert.Equal(t, "b", got.ID)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := store.FindByField(ctx, "color", "red")
		assert.ErrorIs(t, err, repository.ErrShipmentNotFound)
	})
}
