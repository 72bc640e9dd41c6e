// Package seed loads the starter chart of accounts and a small demo data
// set into an empty ledger.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
)

// InitialChartOfAccounts is the default chart loaded into a fresh ledger.
var InitialChartOfAccounts = []domain.Account{
	{AccountID: "101", Name: "Cash", Type: domain.Asset},
	{AccountID: "102", Name: "Bank", Type: domain.Asset},
	{AccountID: "110", Name: "Accounts Receivable", Type: domain.Asset},
	{AccountID: "201", Name: "Accounts Payable", Type: domain.Liability},
	{AccountID: "301", Name: "Owner Capital", Type: domain.Equity},
	{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
	{AccountID: "402", Name: "Service Revenue", Type: domain.Revenue},
	{AccountID: "501", Name: "Office Supplies Expense", Type: domain.Expense},
	{AccountID: "502", Name: "Electricity Expense", Type: domain.Expense},
	{AccountID: "503", Name: "Rent Expense", Type: domain.Expense},
	{AccountID: "504", Name: "Salaries Expense", Type: domain.Expense},
}

// Load seeds the chart of accounts and, when demo is true, a sample
// transaction and register entry. It does nothing on a ledger that already
// has accounts, so restarting over a mirrored store never duplicates data.
func Load(ctx context.Context, repo portsrepo.LedgerRepository, demo bool) error {
	existing, err := repo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("seed: list accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, acc := range InitialChartOfAccounts {
		if err := repo.SaveAccount(ctx, acc); err != nil {
			return fmt.Errorf("seed: account %s: %w", acc.Name, err)
		}
	}
	if !demo {
		return nil
	}

	txn := domain.Transaction{
		TransactionID: "TXN-2025-001",
		Date:          domain.NewDate(2025, 12, 4),
		Description:   "Received cash for services rendered",
		Postings: []domain.Posting{
			{Account: "Cash", Kind: domain.DebitKind, Amount: decimal.NewFromInt(500)},
			{Account: "Service Revenue", Kind: domain.CreditKind, Amount: decimal.NewFromInt(500)},
		},
	}
	if err := repo.SaveTransaction(ctx, txn); err != nil {
		return fmt.Errorf("seed: transaction %s: %w", txn.TransactionID, err)
	}

	entry := domain.RegisterEntry{
		EntryID:       "REG-001",
		Date:          domain.NewDate(2025, 12, 5),
		Type:          domain.SalesRegister,
		Description:   "Consulting Service for Client A",
		Entity:        "Client A",
		Reference:     "INV-1001",
		PaymentMethod: "Bank Transfer",
		Status:        domain.StatusDraft,
		Postings: []domain.Posting{
			{Account: "Accounts Receivable", Kind: domain.DebitKind, Amount: decimal.NewFromInt(1200)},
			{Account: "Service Revenue", Kind: domain.CreditKind, Amount: decimal.NewFromInt(1200)},
		},
	}
	if err := repo.SaveRegisterEntry(ctx, entry); err != nil {
		return fmt.Errorf("seed: register entry %s: %w", entry.EntryID, err)
	}
	return nil
}
