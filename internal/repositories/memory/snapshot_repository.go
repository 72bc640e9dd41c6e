package memory

import (
	"context"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) ExportCollections(ctx context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, len(s.accounts))
	copy(accounts, s.accounts)

	return domain.Snapshot{
		Transactions:    domain.CloneTransactions(s.transactions),
		ChartOfAccounts: accounts,
		RegisterEntries: domain.CloneRegisterEntries(s.registerEntries),
		Templates:       domain.CloneTemplates(s.templates),
		ExportDate:      time.Now().UTC(),
		Version:         domain.SnapshotVersion,
	}, nil
}

func (s *Store) ReplaceCollections(ctx context.Context, snapshot domain.Snapshot) error {
	s.mu.Lock()
	if snapshot.ChartOfAccounts != nil {
		accounts := make([]domain.Account, len(snapshot.ChartOfAccounts))
		copy(accounts, snapshot.ChartOfAccounts)
		s.accounts = accounts
	}
	if snapshot.Transactions != nil {
		s.transactions = domain.CloneTransactions(snapshot.Transactions)
	}
	if snapshot.RegisterEntries != nil {
		s.registerEntries = domain.CloneRegisterEntries(snapshot.RegisterEntries)
	}
	if snapshot.Templates != nil {
		s.templates = domain.CloneTemplates(snapshot.Templates)
	}
	s.logAction("Import Data", "Restored data from backup file")
	s.mu.Unlock()

	s.notify("Import Data", "")
	return nil
}
