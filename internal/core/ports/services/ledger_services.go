// Package services declares the function surface the presentation layer
// consumes. Forms, tables and exports are external collaborators that call
// into the core exclusively through these interfaces.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	"github.com/ledgerlite/ledgerlite/internal/dto"
)

// AccountSvc manages the chart of accounts.
type AccountSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// JournalSvc manages the general ledger.
type JournalSvc interface {
	// CreateTransaction admits a manual journal entry after enforcing the
	// double-entry law; an unbalanced entry fails with
	// apperrors.ErrImbalanced and leaves the ledger untouched.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// AccountBalance computes a signed balance over [from, to] inclusive;
	// zero bounds are open-ended.
	AccountBalance(ctx context.Context, accountName string, from, to domain.Date) (decimal.Decimal, error)
}

// RegisterSvc manages register entries and their approval workflow.
type RegisterSvc interface {
	CreateEntry(ctx context.Context, req dto.SaveRegisterEntryRequest) (*domain.RegisterEntry, error)
	UpdateEntry(ctx context.Context, entryID string, req dto.SaveRegisterEntryRequest) (*domain.RegisterEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	ListEntries(ctx context.Context, typeFilter *domain.RegisterType) ([]domain.RegisterEntry, error)

	// SubmitForApproval moves a Draft entry to Pending once its postings
	// balance and carry at least two valid lines.
	SubmitForApproval(ctx context.Context, entryID string) error

	// ApproveEntry posts a non-Posted entry: status becomes Posted and
	// exactly one transaction is materialized onto the ledger. Re-approval
	// fails with apperrors.ErrAlreadyPosted without posting a duplicate.
	ApproveEntry(ctx context.Context, entryID string) (*domain.Transaction, error)

	// ApproveEntries and DeleteEntries apply their single-entry operation
	// sequentially, best effort: a failure partway leaves earlier
	// applications committed.
	ApproveEntries(ctx context.Context, entryIDs []string) dto.BatchResult
	DeleteEntries(ctx context.Context, entryIDs []string) dto.BatchResult
}

// TemplateSvc manages posting templates.
type TemplateSvc interface {
	AddTemplate(ctx context.Context, req dto.SaveTemplateRequest) (*domain.Template, error)
	DeleteTemplate(ctx context.Context, templateID string) error
	ListTemplates(ctx context.Context) ([]domain.Template, error)
}

// SettingsSvc manages preferences and exposes the audit trail.
type SettingsSvc interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
	GetAuditLog(ctx context.Context) ([]domain.AuditEntry, error)

	// FormatAmount renders an amount in the configured currency.
	FormatAmount(ctx context.Context, amount decimal.Decimal) string
}
