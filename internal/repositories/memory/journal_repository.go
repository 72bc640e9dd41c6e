package memory

import (
	"context"
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	stored := txn.Clone()

	s.mu.Lock()
	s.transactions = append([]domain.Transaction{stored}, s.transactions...)
	s.logAction("Create Transaction", fmt.Sprintf("Created transaction %s", stored.TransactionID))
	s.mu.Unlock()

	s.notify("Create Transaction", stored.TransactionID)
	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneTransactions(s.transactions), nil
}
