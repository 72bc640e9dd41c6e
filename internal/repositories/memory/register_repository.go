package memory

import (
	"context"
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) SaveRegisterEntry(ctx context.Context, entry domain.RegisterEntry) error {
	stored := entry.Clone()

	s.mu.Lock()
	s.registerEntries = append([]domain.RegisterEntry{stored}, s.registerEntries...)
	s.logAction("Create Register Entry", fmt.Sprintf("Created %s entry %s", stored.Type, stored.EntryID))
	s.mu.Unlock()

	s.notify("Create Register Entry", stored.EntryID)
	return nil
}

func (s *Store) UpdateRegisterEntry(ctx context.Context, entryID string, entry domain.RegisterEntry) error {
	stored := entry.Clone()
	stored.EntryID = entryID

	s.mu.Lock()
	idx, err := s.registerIndex(entryID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.registerEntries[idx].Status == domain.StatusPosted {
		s.mu.Unlock()
		return fmt.Errorf("%w: entry %s", apperrors.ErrLockedEntry, entryID)
	}
	s.registerEntries[idx] = stored
	s.logAction("Update Register Entry", fmt.Sprintf("Updated %s entry %s", stored.Type, entryID))
	s.mu.Unlock()

	s.notify("Update Register Entry", entryID)
	return nil
}

func (s *Store) DeleteRegisterEntry(ctx context.Context, entryID string) error {
	s.mu.Lock()
	idx, err := s.registerIndex(entryID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.registerEntries[idx].Status == domain.StatusPosted {
		s.mu.Unlock()
		return fmt.Errorf("%w: entry %s", apperrors.ErrLockedEntry, entryID)
	}
	s.registerEntries = append(s.registerEntries[:idx], s.registerEntries[idx+1:]...)
	s.logAction("Delete Register Entry", fmt.Sprintf("Deleted entry %s", entryID))
	s.mu.Unlock()

	s.notify("Delete Register Entry", entryID)
	return nil
}

func (s *Store) FindRegisterEntryByID(ctx context.Context, entryID string) (*domain.RegisterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.registerIndex(entryID)
	if err != nil {
		return nil, err
	}
	found := s.registerEntries[idx].Clone()
	return &found, nil
}

func (s *Store) ListRegisterEntries(ctx context.Context, typeFilter *domain.RegisterType) ([]domain.RegisterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RegisterEntry, 0, len(s.registerEntries))
	for _, e := range s.registerEntries {
		if typeFilter != nil && e.Type != *typeFilter {
			continue
		}
		out = append(out, e.Clone())
	}
	return out, nil
}

// MarkPosted commits the approval transition: the entry becomes Posted and
// the materialized transaction lands on the ledger, both or neither.
func (s *Store) MarkPosted(ctx context.Context, entryID string, txn domain.Transaction) error {
	stored := txn.Clone()

	s.mu.Lock()
	idx, err := s.registerIndex(entryID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if s.registerEntries[idx].Status == domain.StatusPosted {
		s.mu.Unlock()
		return fmt.Errorf("%w: entry %s", apperrors.ErrAlreadyPosted, entryID)
	}
	s.registerEntries[idx].Status = domain.StatusPosted
	s.transactions = append([]domain.Transaction{stored}, s.transactions...)
	s.logAction("Approve Entry", fmt.Sprintf("Approved entry %s, posted transaction %s", entryID, stored.TransactionID))
	s.mu.Unlock()

	s.notify("Approve Entry", entryID)
	return nil
}

// registerIndex locates an entry by id. Called with s.mu held.
func (s *Store) registerIndex(entryID string) (int, error) {
	for i, e := range s.registerEntries {
		if e.EntryID == entryID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: register entry %s", apperrors.ErrNotFound, entryID)
}
