package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	mockRepo "shiptrack/internal/mocks/repository"
	mockUc "shiptrack/internal/mocks/usecase"
	"shiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestLocalTransferService(t *testing.T, backups repository.ArchiveStore) (usecase.TransferUsecase, repository.LocalShipmentStore) {
	t.Helper()

	backend, store := newLocalBackend(t)
	catalog := NewCatalogService(backend, nil, newQuietNotifier(t), newTestLogger())
	svc := NewTransferService(newTestLogger(), catalog, backend, backups)
	svc.(*transferService).now = func() time.Time { return testNow }

	return svc, store
}

func TestTransferService_ExportFormat(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestLocalTransferService(t, nil)

	empty, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))

	item := validShipment("a", "JP1", "Pending", 1)
	item.Notes = "<fragile> & heavy"
	require.NoError(t, store.Save(ctx, []entity.Shipment{item}))

	data, err := svc.Export(ctx)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"id\": \"a\",\n    \"trackingNo\": \"JP1\","))
	assert.Contains(t, out, `"notes": "<fragile> & heavy"`)
	assert.Contains(t, out, `"featuredImage": null`)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestTransferService_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	source, sourceStore := createTestLocalTransferService(t, nil)

	weight := 4.2
	unit := "kg"
	first := validShipment("a", "JP1", "Pending", 10)
	first.CargoWeightValue = &weight
	first.CargoWeightUnit = &unit
	require.NoError(t, sourceStore.Save(ctx, []entity.Shipment{first, validShipment("b", "JP2", "Delivered", 20)}))

	exported, err := source.Export(ctx)
	require.NoError(t, err)

	target, targetStore := createTestLocalTransferService(t, nil)
	result, err := target.Import(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{Total: 2}, result)

	reexported, err := target.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(exported), string(reexported))

	items, err := targetStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JP1", "JP2"}, trackingNumbers(items))
}

func TestTransferService_ImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestLocalTransferService(t, nil)
	require.NoError(t, store.Save(ctx, []entity.Shipment{validShipment("a", "JP1", "Pending", 1)}))

	for _, input := range []string{`{"id":"a"}`, `null`, `not json`, ``} {
		_, err := svc.Import(ctx, []byte(input))
		assert.ErrorIs(t, err, domainerrors.ErrImportInvalid, input)
	}

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestTransferService_ImportEmptyArrayClearsLocal(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestLocalTransferService(t, nil)
	require.NoError(t, store.Save(ctx, []entity.Shipment{validShipment("a", "JP1", "Pending", 1)}))

	result, err := svc.Import(ctx, []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTransferService_ImportRemoteCountsFailures(t *testing.T) {
	ctx := context.Background()
	remote := mockRepo.NewMockRemoteShipmentStore(t)
	svc := NewTransferService(newTestLogger(), mockUc.NewMockCatalogUsecase(t), repository.NewRemoteBackend(remote), nil)

	remote.EXPECT().Update(mock.Anything, "a", mock.Anything).Return(nil, nil).Once()
	remote.EXPECT().Update(mock.Anything, "b", mock.Anything).Return(nil, errors.New("permission denied")).Once()
	remote.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Shipment) bool {
		return s.TrackingNo == "JP3"
	})).Return(nil, nil).Once()

	result, err := svc.Import(ctx, []byte(`[
		{"id": "a", "trackingNo": "JP1"},
		{"id": "b", "trackingNo": "JP2"},
		{"trackingNo": "JP3"}
	]`))

	require.NoError(t, err)
	assert.Equal(t, &usecase.ImportResult{Total: 3, Failed: 1}, result)
}

func TestTransferService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	svc, store := createTestLocalTransferService(t, nil)

	seeded, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []string{"JP123456789", "JP987654321"}, trackingNumbers(items))
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.LessOrEqual(t, item.UpdatedAt, testNow.UnixMilli())
		assert.LessOrEqual(t, item.CreatedAt, item.UpdatedAt)
	}

	seeded, err = svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestTransferService_SeedIfEmpty_RemoteIsNoop(t *testing.T) {
	svc := NewTransferService(newTestLogger(), mockUc.NewMockCatalogUsecase(t),
		repository.NewRemoteBackend(mockRepo.NewMockRemoteShipmentStore(t)), nil)

	seeded, err := svc.SeedIfEmpty(context.Background())

	require.NoError(t, err)
	assert.False(t, seeded)
}

func TestTransferService_Backup(t *testing.T) {
	ctx := context.Background()
	archive := mockRepo.NewMockArchiveStore(t)
	svc, store := createTestLocalTransferService(t, archive)
	require.NoError(t, store.Save(ctx, []entity.Shipment{validShipment("a", "JP1", "Pending", 1)}))

	expected, err := svc.Export(ctx)
	require.NoError(t, err)
	archive.EXPECT().Put(mock.Anything, "shipments-20260314T093000Z.json", expected).Return(nil).Once()

	name, err := svc.Backup(ctx)

	require.NoError(t, err)
	assert.Equal(t, "shipments-20260314T093000Z.json", name)
}

func TestTransferService_BackupFailures(t *testing.T) {
	ctx := context.Background()

	unconfigured, _ := createTestLocalTransferService(t, nil)
	_, err := unconfigured.Backup(ctx)
	require.Error(t, err)

	archive := mockRepo.NewMockArchiveStore(t)
	archive.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket gone")).Once()
	svc, _ := createTestLocalTransferService(t, archive)

	_, err = svc.Backup(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailed)
}

func TestTransferService_Backup_RemoteWithoutSubscription(t *testing.T) {
	catalog := mockUc.NewMockCatalogUsecase(t)
	catalog.EXPECT().Authorized().Return(false).Once()
	svc := NewTransferService(newTestLogger(), catalog,
		repository.NewRemoteBackend(mockRepo.NewMockRemoteShipmentStore(t)), mockRepo.NewMockArchiveStore(t))

	_, err := svc.Backup(context.Background())

	assert.ErrorIs(t, err, ErrNoLiveSnapshot)
}

func TestTransferService_Backups(t *testing.T) {
	ctx := context.Background()

	unconfigured, _ := createTestLocalTransferService(t, nil)
	names, err := unconfigured.Backups(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	archive := mockRepo.NewMockArchiveStore(t)
	archive.EXPECT().List(mock.Anything).Return([]string{
		"notes.txt",
		"shipments-20260312T030000Z.json",
		"shipments-20260313T030000Z.json",
		"shipments-20260314T030000Z.json",
	}, nil).Once()
	svc, _ := createTestLocalTransferService(t, archive)

	names, err = svc.Backups(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"shipments-20260314T030000Z.json",
		"shipments-20260313T030000Z.json",
		"shipments-20260312T030000Z.json",
	}, names)

	failing := mockRepo.NewMockArchiveStore(t)
	failing.EXPECT().List(mock.Anything).Return(nil, errors.New("bucket gone")).Once()
	svc, _ = createTestLocalTransferService(t, failing)

	_, err = svc.Backups(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrBackendFailed)
}
