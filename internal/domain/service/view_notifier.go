package service

import (
	"shiptrack/internal/domain/entity"
)

// ViewNotifier is the push side of the renderer boundary.
type ViewNotifier interface {
	// CollectionChanged tells renderers the canonical list was replaced and
	// any projected page should be recomputed.
	CollectionChanged(revision uint64, total int)

	// Notify shows a transient message to operators.
	Notify(notice entity.Notice)
}
