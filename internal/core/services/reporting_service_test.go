package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/core/services"
	"github.com/ledgerlite/ledgerlite/internal/repositories/memory"
)

// fixedToday pins the reporting clock so month windows and aging buckets
// are deterministic.
var fixedToday = domain.NewDate(2025, time.June, 30)

func newReportingFixture(t *testing.T) (*memory.Store, portssvc.ReportingSvc) {
	t.Helper()
	store := memory.NewStore()
	svc := services.NewReportingService(store, store, store,
		services.WithToday(func() domain.Date { return fixedToday }))
	return store, svc
}

func addAccounts(t *testing.T, store *memory.Store, accounts ...domain.Account) {
	t.Helper()
	ctx := context.Background()
	for _, acc := range accounts {
		require.NoError(t, store.SaveAccount(ctx, acc))
	}
}

func addTxn(t *testing.T, store *memory.Store, date string, postings ...domain.Posting) {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	require.NoError(t, store.SaveTransaction(context.Background(), domain.Transaction{
		TransactionID: "t-" + date + "-" + postings[0].Account,
		Date:          d,
		Postings:      postings,
	}))
}

func dr(account string, amount int64) domain.Posting {
	return domain.Posting{Account: account, Kind: domain.DebitKind, Amount: decimal.NewFromInt(amount)}
}

func cr(account string, amount int64) domain.Posting {
	return domain.Posting{Account: account, Kind: domain.CreditKind, Amount: decimal.NewFromInt(amount)}
}

func amountOf(t *testing.T, rows []domain.AccountAmount, account string) decimal.Decimal {
	t.Helper()
	for _, row := range rows {
		if row.Account == account {
			return row.Amount
		}
	}
	t.Fatalf("no row for account %s", account)
	return decimal.Zero
}

func TestProfitAndLoss(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "402", Name: "Service Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "503", Name: "Rent Expense", Type: domain.Expense},
	)
	addTxn(t, store, "2025-06-10", dr("Cash", 500), cr("Sales Revenue", 500))
	addTxn(t, store, "2025-06-12", dr("Rent Expense", 200), cr("Cash", 200))

	report, err := svc.ProfitAndLoss(ctx, domain.Date{}, domain.Date{})
	require.NoError(t, err)

	// Credit-normal revenue reads positive; zero-balance accounts are
	// omitted entirely.
	require.Len(t, report.Revenue, 1)
	assert.True(t, amountOf(t, report.Revenue, "Sales Revenue").Equal(decimal.NewFromInt(500)))
	require.Len(t, report.Expense, 1)
	assert.True(t, amountOf(t, report.Expense, "Rent Expense").Equal(decimal.NewFromInt(200)))
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.TotalExpense.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.NetProfit.Equal(decimal.NewFromInt(300)))
}

func TestProfitAndLossDateWindow(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
	)
	addTxn(t, store, "2025-05-10", dr("Cash", 300), cr("Sales Revenue", 300))
	addTxn(t, store, "2025-06-10", dr("Cash", 500), cr("Sales Revenue", 500))

	report, err := svc.ProfitAndLoss(ctx, domain.NewDate(2025, time.June, 1), domain.NewDate(2025, time.June, 30))
	require.NoError(t, err)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(500)))
}

func TestBalanceSheet(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "201", Name: "Accounts Payable", Type: domain.Liability},
		domain.Account{AccountID: "301", Name: "Owner Capital", Type: domain.Equity},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "501", Name: "Office Supplies Expense", Type: domain.Expense},
	)
	addTxn(t, store, "2025-06-01", dr("Cash", 1000), cr("Owner Capital", 1000))
	addTxn(t, store, "2025-06-05", dr("Cash", 500), cr("Sales Revenue", 500))
	// A purchase on credit: the payable's internal balance is -300 and must
	// display as a positive liability.
	addTxn(t, store, "2025-06-08", dr("Office Supplies Expense", 300), cr("Accounts Payable", 300))

	report, err := svc.BalanceSheet(ctx, fixedToday)
	require.NoError(t, err)

	assert.True(t, report.TotalAssets.Equal(decimal.NewFromInt(1500)))
	assert.True(t, amountOf(t, report.Liabilities, "Accounts Payable").Equal(decimal.NewFromInt(300)))
	assert.True(t, amountOf(t, report.Equity, "Owner Capital").Equal(decimal.NewFromInt(1000)))
	assert.True(t, amountOf(t, report.Equity, "Retained Earnings (Calculated)").Equal(decimal.NewFromInt(200)))
	assert.True(t, report.TotalEquity.Equal(decimal.NewFromInt(1200)))
	assert.True(t, report.Balanced(), "assets %s, liabilities %s, equity %s",
		report.TotalAssets, report.TotalLiabilities, report.TotalEquity)
}

func TestTrialBalance(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
	)
	addTxn(t, store, "2025-06-10", dr("Cash", 500), cr("Sales Revenue", 500))

	report, err := svc.TrialBalance(ctx, fixedToday)
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)
	assert.True(t, report.Rows[0].Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Rows[0].Credit.IsZero())
	assert.True(t, report.Rows[1].Credit.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.TotalDebit.Equal(report.TotalCredit))
}

func TestTrialBalanceDetectsInconsistentLedger(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
	)
	// The store does not re-validate; an unbalanced transaction snuck in
	// must surface at trial balance time.
	addTxn(t, store, "2025-06-10", dr("Cash", 100), cr("Sales Revenue", 50))

	report, err := svc.TrialBalance(ctx, fixedToday)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOutOfBalance)
	assert.True(t, report.TotalDebit.Equal(decimal.NewFromInt(100)))
	assert.True(t, report.TotalCredit.Equal(decimal.NewFromInt(50)))
}

func TestDashboardKPIs(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "102", Name: "Bank", Type: domain.Asset},
		domain.Account{AccountID: "301", Name: "Owner Capital", Type: domain.Equity},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "503", Name: "Rent Expense", Type: domain.Expense},
	)
	// Last month: counts toward cash, not toward the month's P&L.
	addTxn(t, store, "2025-05-10", dr("Cash", 300), cr("Sales Revenue", 300))
	addTxn(t, store, "2025-06-10", dr("Cash", 500), cr("Sales Revenue", 500))
	addTxn(t, store, "2025-06-12", dr("Rent Expense", 100), cr("Cash", 100))
	addTxn(t, store, "2025-06-15", dr("Bank", 200), cr("Owner Capital", 200))

	kpis, err := svc.DashboardKPIs(ctx)
	require.NoError(t, err)

	assert.True(t, kpis.Revenue.Equal(decimal.NewFromInt(500)), "got %s", kpis.Revenue)
	assert.True(t, kpis.Expense.Equal(decimal.NewFromInt(100)))
	assert.True(t, kpis.NetProfit.Equal(decimal.NewFromInt(400)))
	assert.True(t, kpis.CashBalance.Equal(decimal.NewFromInt(900)), "got %s", kpis.CashBalance)
}

func TestAgingReportBuckets(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)

	entries := []struct {
		id     string
		date   domain.Date
		status domain.RegisterStatus
		bucket string
	}{
		{"current", fixedToday, domain.StatusPending, domain.BucketCurrent},
		{"d30", domain.NewDate(2025, time.May, 31), domain.StatusPending, domain.Bucket1To30},
		{"d31", domain.NewDate(2025, time.May, 30), domain.StatusPending, domain.Bucket31To60},
		{"d61", domain.NewDate(2025, time.April, 30), domain.StatusPosted, domain.Bucket61To90},
		{"d91", domain.NewDate(2025, time.March, 31), domain.StatusPending, domain.BucketOver90},
	}
	for _, e := range entries {
		require.NoError(t, store.SaveRegisterEntry(ctx, domain.RegisterEntry{
			EntryID:   e.id,
			Date:      e.date,
			Type:      domain.SalesRegister,
			Entity:    "Client A",
			Reference: "INV-" + e.id,
			Status:    e.status,
			Postings: []domain.Posting{
				dr("Accounts Receivable", 1200),
				cr("Service Revenue", 1200),
			},
		}))
	}
	// Drafts are not yet documents; they never age.
	require.NoError(t, store.SaveRegisterEntry(ctx, domain.RegisterEntry{
		EntryID: "draft", Date: fixedToday, Type: domain.SalesRegister, Status: domain.StatusDraft,
	}))
	// Other register types are out of scope for this report.
	require.NoError(t, store.SaveRegisterEntry(ctx, domain.RegisterEntry{
		EntryID: "purchase", Date: fixedToday, Type: domain.PurchaseRegister, Status: domain.StatusPending,
	}))

	rows, err := svc.AgingReport(ctx, domain.SalesRegister)
	require.NoError(t, err)
	require.Len(t, rows, len(entries))

	byRef := make(map[string]domain.AgingRow, len(rows))
	for _, row := range rows {
		byRef[row.Reference] = row
	}
	for _, e := range entries {
		row, ok := byRef["INV-"+e.id]
		require.True(t, ok, "missing row for %s", e.id)
		assert.Equal(t, e.bucket, row.Bucket, "entry %s aged %d days", e.id, row.Days)
		// The face amount is half the posting total.
		assert.True(t, row.Amount.Equal(decimal.NewFromInt(1200)), "got %s", row.Amount)
	}
}

func TestFinancialRatios(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "201", Name: "Accounts Payable", Type: domain.Liability},
		domain.Account{AccountID: "301", Name: "Owner Capital", Type: domain.Equity},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "503", Name: "Rent Expense", Type: domain.Expense},
	)
	addTxn(t, store, "2025-06-01", dr("Cash", 1000), cr("Owner Capital", 1000))
	addTxn(t, store, "2025-06-02", dr("Cash", 600), cr("Accounts Payable", 600))
	addTxn(t, store, "2025-06-05", dr("Cash", 500), cr("Sales Revenue", 500))
	addTxn(t, store, "2025-06-08", dr("Rent Expense", 100), cr("Cash", 100))

	ratios, err := svc.FinancialRatios(ctx)
	require.NoError(t, err)

	// Assets 2000, liabilities 600, equity 1400 (incl. retained earnings 400),
	// revenue 500, net profit 400.
	assert.True(t, ratios.CurrentRatio.Equal(decimal.NewFromFloat(3.33)), "got %s", ratios.CurrentRatio)
	assert.True(t, ratios.ProfitMargin.Equal(decimal.NewFromInt(80)), "got %s", ratios.ProfitMargin)
	assert.True(t, ratios.DebtToEquity.Equal(decimal.NewFromFloat(0.43)), "got %s", ratios.DebtToEquity)
}

func TestFinancialRatiosZeroDenominators(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportingFixture(t)

	ratios, err := svc.FinancialRatios(ctx)
	require.NoError(t, err)
	assert.True(t, ratios.CurrentRatio.IsZero())
	assert.True(t, ratios.ProfitMargin.IsZero())
	assert.True(t, ratios.DebtToEquity.IsZero())
}

func TestCashFlowIndirect(t *testing.T) {
	ctx := context.Background()
	store, svc := newReportingFixture(t)
	addAccounts(t, store,
		domain.Account{AccountID: "101", Name: "Cash", Type: domain.Asset},
		domain.Account{AccountID: "110", Name: "Accounts Receivable", Type: domain.Asset},
		domain.Account{AccountID: "120", Name: "Inventory", Type: domain.Asset},
		domain.Account{AccountID: "201", Name: "Accounts Payable", Type: domain.Liability},
		domain.Account{AccountID: "401", Name: "Sales Revenue", Type: domain.Revenue},
		domain.Account{AccountID: "505", Name: "Depreciation Expense", Type: domain.Expense},
	)
	addTxn(t, store, "2025-06-05", dr("Accounts Receivable", 1000), cr("Sales Revenue", 1000))
	addTxn(t, store, "2025-06-10", dr("Depreciation Expense", 100), cr("Cash", 100))
	addTxn(t, store, "2025-06-15", dr("Inventory", 200), cr("Accounts Payable", 200))

	report, err := svc.CashFlowIndirect(ctx, domain.NewDate(2025, time.June, 1), domain.NewDate(2025, time.June, 30))
	require.NoError(t, err)

	assert.True(t, report.NetIncome.Equal(decimal.NewFromInt(900)))
	assert.True(t, report.Adjustments.Depreciation.Equal(decimal.NewFromInt(100)))
	assert.True(t, report.Adjustments.ChangeInAR.Equal(decimal.NewFromInt(-1000)))
	assert.True(t, report.Adjustments.ChangeInAP.Equal(decimal.NewFromInt(200)))
	assert.True(t, report.Adjustments.ChangeInInventory.Equal(decimal.NewFromInt(-200)))
	// 900 + 100 - 1000 + 200 - 200
	assert.True(t, report.OperatingCashFlow.IsZero(), "got %s", report.OperatingCashFlow)
}

func TestReportsOnEmptyLedger(t *testing.T) {
	ctx := context.Background()
	_, svc := newReportingFixture(t)

	pl, err := svc.ProfitAndLoss(ctx, domain.Date{}, domain.Date{})
	require.NoError(t, err)
	assert.Empty(t, pl.Revenue)
	assert.True(t, pl.NetProfit.IsZero())

	bs, err := svc.BalanceSheet(ctx, fixedToday)
	require.NoError(t, err)
	assert.Empty(t, bs.Assets)
	assert.True(t, bs.Balanced())

	tb, err := svc.TrialBalance(ctx, fixedToday)
	require.NoError(t, err)
	assert.Empty(t, tb.Rows)
}
