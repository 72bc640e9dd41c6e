package memory

import (
	"context"
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	for _, existing := range s.accounts {
		if existing.Name == account.Name {
			s.mu.Unlock()
			return fmt.Errorf("%w: account name %q", apperrors.ErrDuplicate, account.Name)
		}
	}
	s.accounts = append(s.accounts, account)
	s.logAction("Create Account", fmt.Sprintf("Created account %s (%s)", account.Name, account.Type))
	s.mu.Unlock()

	s.notify("Create Account", account.AccountID)
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	idx := -1
	for i, a := range s.accounts {
		if a.AccountID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}

	name := s.accounts[idx].Name
	if s.accountNameReferenced(name) {
		s.mu.Unlock()
		return fmt.Errorf("%w: account %q is referenced by existing postings", apperrors.ErrValidation, name)
	}

	s.accounts = append(s.accounts[:idx], s.accounts[idx+1:]...)
	s.logAction("Delete Account", fmt.Sprintf("Deleted account %s", name))
	s.mu.Unlock()

	s.notify("Delete Account", accountID)
	return nil
}

// accountNameReferenced reports whether any transaction or register entry
// posting still joins on the account name. Called with s.mu held.
func (s *Store) accountNameReferenced(name string) bool {
	for _, tx := range s.transactions {
		for _, p := range tx.Postings {
			if p.Account == name {
				return true
			}
		}
	}
	for _, e := range s.registerEntries {
		for _, p := range e.Postings {
			if p.Account == name {
				return true
			}
		}
	}
	return false
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.AccountID == accountID {
			found := a
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}
