package services

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// ReportingSvc builds derived financial statements from the current
// collections. Every method is a pure read: reports never mutate state, are
// deterministic given the same data, and return empty rows with zero totals
// on an empty ledger rather than failing.
type ReportingSvc interface {
	ProfitAndLoss(ctx context.Context, from, to domain.Date) (domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, asOf domain.Date) (domain.BalanceSheetReport, error)

	// TrialBalance additionally verifies ledger-wide consistency: when the
	// debit and credit columns disagree it returns the report together with
	// apperrors.ErrOutOfBalance.
	TrialBalance(ctx context.Context, asOf domain.Date) (domain.TrialBalanceReport, error)

	DashboardKPIs(ctx context.Context) (domain.DashboardKPIs, error)
	AgingReport(ctx context.Context, registerType domain.RegisterType) ([]domain.AgingRow, error)
	FinancialRatios(ctx context.Context) (domain.FinancialRatios, error)
	CashFlowIndirect(ctx context.Context, from, to domain.Date) (domain.CashFlowReport, error)
}
