// Package repositories declares the persistence interfaces that back the
// ledger services. The canonical implementation is the in-memory store in
// internal/repositories/memory, which owns every collection behind a single
// mutex and applies mutations atomically.
package repositories

import "github.com/ledgerlite/ledgerlite/internal/core/domain"

// LedgerRepository is the full store surface: every collection plus the
// mutation subscription mechanism.
type LedgerRepository interface {
	AccountRepository
	TransactionRepository
	RegisterRepository
	TemplateRepository
	SettingsRepository
	AuditRepository
	SnapshotRepository

	// Subscribe registers a callback invoked after every committed
	// mutation. The returned function cancels the subscription.
	Subscribe(fn func(domain.Event)) (cancel func())
}
