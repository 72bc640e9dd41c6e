package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// TransactionRepository defines persistence operations for the general
// ledger. The ledger is append-only: admitted transactions are never
// mutated or deleted through normal operation.
type TransactionRepository interface {
	// SaveTransaction prepends a transaction to the ledger (newest first).
	// The caller is responsible for validating balance before admission.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// ListTransactions returns the ledger newest first. The returned slice
	// is a copy; mutating it does not affect the store.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
