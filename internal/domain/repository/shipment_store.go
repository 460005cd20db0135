// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shiptrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for shipment persistence.
var (
	// ErrShipmentNotFound is returned when no document matches an id or field lookup.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrUnknownBackend is returned when a Backend carries neither variant.
	ErrUnknownBackend = errors.New("unknown shipment backend")
)

// ShipmentStore is the capability set shared by both backend variants.
type ShipmentStore interface {
	// Create persists a new shipment and returns the stored record. A shipment
	// without an ID gets one assigned by the store.
	Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error)

	// Update writes shipment under id. Fields the store knows about but the
	// caller did not model are preserved.
	Update(ctx context.Context, id string, shipment *entity.Shipment) (*entity.Shipment, error)

	// Delete removes the shipment with the given id.
	Delete(ctx context.Context, id string) error

	// FindByField returns the first shipment whose field equals value, or
	// ErrShipmentNotFound.
	FindByField(ctx context.Context, field, value string) (*entity.Shipment, error)
}

// SnapshotEvent is one realtime push: either the complete collection ordered
// by updatedAt descending, or the error the listener hit.
type SnapshotEvent struct {
	Items []entity.Shipment
	Err   error
}

// Subscription is a live listener on the remote collection.
type Subscription interface {
	// Events delivers full-state snapshots. The channel is closed once the
	// subscription ends.
	Events() <-chan SnapshotEvent

	// Unsubscribe stops the listener and waits for Events to close. It is safe
	// to call more than once.
	Unsubscribe()
}

// RemoteShipmentStore is the realtime document store variant. Writes may fail
// and are never retried by the store.
type RemoteShipmentStore interface {
	ShipmentStore

	// Subscribe opens a realtime listener on the whole collection.
	Subscribe(ctx context.Context) (Subscription, error)
}

// LocalShipmentStore is the single-key variant. The whole collection is read
// and written as one value; there is no change feed.
type LocalShipmentStore interface {
	ShipmentStore

	// Load reads the whole persisted collection in stored order.
	Load(ctx context.Context) ([]entity.Shipment, error)

	// Save replaces the whole persisted collection.
	Save(ctx context.Context, items []entity.Shipment) error
}

// Backend is the storage variant chosen once at startup: exactly one of
// remote or local is set.
type Backend struct {
	mode   entity.BackendMode
	remote RemoteShipmentStore
	local  LocalShipmentStore
}

// NewRemoteBackend selects the realtime document store.
func NewRemoteBackend(store RemoteShipmentStore) Backend {
	return Backend{mode: entity.BackendRemote, remote: store}
}

// NewLocalBackend selects the local single-key store.
func NewLocalBackend(store LocalShipmentStore) Backend {
	return Backend{mode: entity.BackendLocal, local: store}
}

// Mode reports which variant is active.
func (b Backend) Mode() entity.BackendMode {
	return b.mode
}

// Remote returns the remote store when the backend is remote.
func (b Backend) Remote() (RemoteShipmentStore, bool) {
	return b.remote, b.mode == entity.BackendRemote
}

// Local returns the local store when the backend is local.
func (b Backend) Local() (LocalShipmentStore, bool) {
	return b.local, b.mode == entity.BackendLocal
}

// Store returns the active variant through the shared capability set.
func (b Backend) Store() (ShipmentStore, error) {
	switch b.mode {
	case entity.BackendRemote:
		return b.remote, nil
	case entity.BackendLocal:
		return b.local, nil
	default:
		return nil, ErrUnknownBackend
	}
}

// ArchiveStore keeps write-once documents such as backups and audit records.
type ArchiveStore interface {
	// Put stores data under name, relative to the archive's prefix.
	Put(ctx context.Context, name string, data []byte) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
}
