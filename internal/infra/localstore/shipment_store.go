package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type shipmentStore struct {
	mu     sync.Mutex
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewShipmentStore creates a local store persisting the whole collection as
// one JSON array under key.
func NewShipmentStore(bucket *blob.Bucket, key string, logger *slog.Logger) repository.LocalShipmentStore {
	return &shipmentStore{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load reads the collection. A missing key or unreadable content is an empty
// collection.
func (s *shipmentStore) Load(ctx context.Context) ([]entity.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read(ctx)
}

// Save replaces the collection.
func (s *shipmentStore) Save(ctx context.Context, items []entity.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(ctx, items)
}

// Create prepends the shipment so the newest record is first in storage.
func (s *shipmentStore) Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	stored := shipment.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	items = append([]entity.Shipment{stored}, items...)
	if err := s.write(ctx, items); err != nil {
		return nil, err
	}

	out := stored.Clone()

	return &out, nil
}

func (s *shipmentStore) Update(ctx context.Context, id string, shipment *entity.Shipment) (*entity.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return nil, repository.ErrShipmentNotFound
	}

	stored := shipment.Clone()
	stored.ID = id
	items[idx] = stored
	if err := s.write(ctx, items); err != nil {
		return nil, err
	}

	out := stored.Clone()

	return &out, nil
}

func (s *shipmentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return repository.ErrShipmentNotFound
	}

	items = append(items[:idx], items[idx+1:]...)

	return s.write(ctx, items)
}

// FindByField matches exactly, except trackingNo which ignores case.
func (s *shipmentStore) FindByField(ctx context.Context, field, value string) (*entity.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		got, _, numeric, ok := items[i].FieldValue(field)
		if !ok || numeric {
			continue
		}

		matched := got == value
		if field == "trackingNo" {
			matched = strings.EqualFold(got, value)
		}
		if matched {
			out := items[i].Clone()

			return &out, nil
		}
	}

	return nil, repository.ErrShipmentNotFound
}

func (s *shipmentStore) read(ctx context.Context) ([]entity.Shipment, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []entity.Shipment{}, nil
		}

		return nil, errors.Wrapf(err, "read %s", s.key)
	}

	var items []entity.Shipment
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("Local store content is not a shipment array, treating as empty",
			slog.String("key", s.key),
			slog.Any("error", err),
		)

		return []entity.Shipment{}, nil
	}
	if items == nil {
		items = []entity.Shipment{}
	}

	return items, nil
}

func (s *shipmentStore) write(ctx context.Context, items []entity.Shipment) error {
	if items == nil {
		items = []entity.Shipment{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "write %s", s.key)
	}

	return nil
}

func indexOf(items []entity.Shipment, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}
