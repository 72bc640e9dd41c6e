package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	// SaveAccount appends a new account. Fails with apperrors.ErrDuplicate
	// when another account already carries the same name, since the name is
	// the join key used by every posting.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account by id. Fails with
	// apperrors.ErrNotFound for an unknown id and with
	// apperrors.ErrValidation when the account name is still referenced by
	// any transaction or register entry.
	DeleteAccount(ctx context.Context, accountID string) error

	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns the chart of accounts in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
