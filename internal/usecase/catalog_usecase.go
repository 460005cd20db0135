package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// CatalogUsecase owns the canonical in-memory shipment list for the process.
type CatalogUsecase interface {
	// Mode reports the backend variant chosen at startup.
	Mode() entity.BackendMode

	// IsAuthorizedUser reports whether op passes the configured allow-list.
	IsAuthorizedUser(op *entity.Operator) bool

	// Authorize gates the remote subscription on op. A nil or non-permitted
	// operator tears the subscription down and clears the list. It is a no-op
	// in local mode.
	Authorize(ctx context.Context, op *entity.Operator) error

	// EnsureAuthorized subscribes for op only when no subscription is live.
	// Concurrent callers open at most one listener.
	EnsureAuthorized(ctx context.Context, op *entity.Operator) error

	// Authorized reports whether a remote subscription is active. Local mode is
	// always authorized.
	Authorized() bool

	// Snapshot returns a copy of the current list.
	Snapshot(ctx context.Context) ([]entity.Shipment, error)

	// Find returns a copy of the shipment with id from the current list.
	Find(ctx context.Context, id string) (*entity.Shipment, error)

	// Project returns the page of the current list described by query.
	Project(ctx context.Context, query entity.ViewQuery) (*entity.Page, error)

	// Refresh re-reads the local store and tells renderers to re-project.
	Refresh(ctx context.Context) error

	// Notify forwards a notice to renderers.
	Notify(notice entity.Notice)

	// Revision is bumped on every list replacement.
	Revision() uint64

	// Close tears down any active subscription.
	Close()
}
