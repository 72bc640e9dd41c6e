package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// SnapshotRepository moves whole collections in and out of the store for
// backup and restore.
type SnapshotRepository interface {
	// ExportCollections returns deep copies of every collection.
	ExportCollections(ctx context.Context) (domain.Snapshot, error)

	// ReplaceCollections atomically replaces each collection present
	// (non-nil) in the snapshot and leaves absent collections untouched.
	// The caller validates the snapshot first; on error no collection is
	// replaced.
	ReplaceCollections(ctx context.Context, snapshot domain.Snapshot) error
}
