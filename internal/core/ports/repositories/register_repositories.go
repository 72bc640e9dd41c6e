package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// RegisterRepository defines persistence operations for register entries
// and the approval transition that posts them to the ledger.
type RegisterRepository interface {
	// SaveRegisterEntry prepends a new register entry (newest first).
	SaveRegisterEntry(ctx context.Context, entry domain.RegisterEntry) error

	// UpdateRegisterEntry replaces an entry by id. Fails with
	// apperrors.ErrNotFound for an unknown id and apperrors.ErrLockedEntry
	// when the stored entry is already Posted.
	UpdateRegisterEntry(ctx context.Context, entryID string, entry domain.RegisterEntry) error

	// DeleteRegisterEntry removes an entry by id with the same guards as
	// UpdateRegisterEntry.
	DeleteRegisterEntry(ctx context.Context, entryID string) error

	// FindRegisterEntryByID retrieves a single entry.
	FindRegisterEntryByID(ctx context.Context, entryID string) (*domain.RegisterEntry, error)

	// ListRegisterEntries returns entries newest first, optionally filtered
	// by register type.
	ListRegisterEntries(ctx context.Context, typeFilter *domain.RegisterType) ([]domain.RegisterEntry, error)

	// MarkPosted atomically sets the entry's status to Posted and prepends
	// the materialized transaction to the ledger, as one commit. Fails with
	// apperrors.ErrNotFound for an unknown id and
	// apperrors.ErrAlreadyPosted when the entry is already Posted, in which
	// case no transaction is created.
	MarkPosted(ctx context.Context, entryID string, txn domain.Transaction) error
}
