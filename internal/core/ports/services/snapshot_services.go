package services

import (
	"context"
	"io"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// SnapshotSvc exports and restores JSON backups of the whole ledger.
type SnapshotSvc interface {
	// Export returns a snapshot of every collection stamped with the
	// current time and version.
	Export(ctx context.Context) (domain.Snapshot, error)

	// ExportJSON writes the snapshot as indented JSON.
	ExportJSON(ctx context.Context, w io.Writer) error

	// Import validates a snapshot and replaces the collections it carries.
	// Malformed input fails with apperrors.ErrInvalidSnapshot and leaves
	// existing state untouched. Collection keys are optional; an absent
	// collection is not replaced.
	Import(ctx context.Context, snapshot domain.Snapshot) error

	// ImportJSON decodes and imports a JSON snapshot.
	ImportJSON(ctx context.Context, r io.Reader) error
}
