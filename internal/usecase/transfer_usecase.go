package usecase

import (
	"context"
)

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

// TransferUsecase covers bulk export, import, demo seeding and backups.
type TransferUsecase interface {
	// Export renders the current collection as an indented JSON array.
	Export(ctx context.Context) ([]byte, error)

	// Import loads a JSON array of shipments into the active backend.
	Import(ctx context.Context, data []byte) (*ImportResult, error)

	// SeedIfEmpty writes the demo shipments when the local store is empty and
	// reports whether it did.
	SeedIfEmpty(ctx context.Context) (bool, error)

	// Backup writes an export to the backup bucket and returns its key.
	Backup(ctx context.Context) (string, error)

	// Backups lists the stored backup names, newest first.
	Backups(ctx context.Context) ([]string, error)
}
