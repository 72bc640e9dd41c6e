package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	"github.com/ledgerlite/ledgerlite/internal/core/services"
	"github.com/ledgerlite/ledgerlite/internal/repositories/memory"
)

func seedStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveAccount(ctx, domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1",
		Date:          domain.NewDate(2025, 12, 4),
		Postings: []domain.Posting{
			{Account: "Cash", Kind: domain.DebitKind, Amount: decimal.NewFromInt(500)},
			{Account: "Service Revenue", Kind: domain.CreditKind, Amount: decimal.NewFromInt(500)},
		},
	}))
	return store
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := services.NewSnapshotService(store)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportJSON(ctx, &buf))

	restored := memory.NewStore()
	restoredSvc := services.NewSnapshotService(restored)
	require.NoError(t, restoredSvc.ImportJSON(ctx, &buf))

	accounts, err := restored.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cash", accounts[0].Name)

	transactions, err := restored.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "t1", transactions[0].TransactionID)
}

func TestImportRejectsMissingVersion(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(memory.NewStore())

	err := svc.Import(ctx, domain.Snapshot{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestImportRejectsIncompatibleVersion(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(memory.NewStore())

	err := svc.Import(ctx, domain.Snapshot{Version: "2.0"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestImportAcceptsMinorVersionDifference(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(memory.NewStore())

	err := svc.Import(ctx, domain.Snapshot{Version: "1.1"})
	assert.NoError(t, err)
}

func TestImportRejectsUnbalancedTransaction(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := services.NewSnapshotService(store)

	err := svc.Import(ctx, domain.Snapshot{
		Version: domain.SnapshotVersion,
		Transactions: []domain.Transaction{
			{
				TransactionID: "bad",
				Postings: []domain.Posting{
					{Account: "Cash", Kind: domain.DebitKind, Amount: decimal.NewFromInt(100)},
					{Account: "Sales Revenue", Kind: domain.CreditKind, Amount: decimal.NewFromInt(50)},
				},
			},
		},
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)

	// The failed import must leave existing state untouched.
	transactions, listErr := store.ListTransactions(ctx)
	require.NoError(t, listErr)
	require.Len(t, transactions, 1)
	assert.Equal(t, "t1", transactions[0].TransactionID)
}

func TestImportRejectsUnknownAccountType(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(memory.NewStore())

	err := svc.Import(ctx, domain.Snapshot{
		Version:         domain.SnapshotVersion,
		ChartOfAccounts: []domain.Account{{AccountID: "999", Name: "Mystery", Type: "Contra"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestImportPartialSnapshot(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := services.NewSnapshotService(store)

	// Accounts only: the ledger must survive.
	err := svc.Import(ctx, domain.Snapshot{
		Version: domain.SnapshotVersion,
		ChartOfAccounts: []domain.Account{
			{AccountID: "102", Name: "Bank", Type: domain.Asset},
		},
	})
	require.NoError(t, err)

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Bank", accounts[0].Name)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestImportJSONMalformed(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(memory.NewStore())

	err := svc.ImportJSON(ctx, strings.NewReader("{not json"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidSnapshot)
}

func TestExportJSONIsIndented(t *testing.T) {
	ctx := context.Background()
	svc := services.NewSnapshotService(seedStore(t))

	var buf bytes.Buffer
	require.NoError(t, svc.ExportJSON(ctx, &buf))
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), "\n  \"")
	assert.Contains(t, buf.String(), `"version": "1.0"`)
}
