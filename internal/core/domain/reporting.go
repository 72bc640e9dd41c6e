package domain

import (
	"github.com/shopspring/decimal"
)

// AccountAmount is an account with its display amount on a financial report.
type AccountAmount struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// PAndLReport is a profit and loss statement over a date range. Revenue
// amounts are negated from the internal debit-positive balance so both
// sides read as positive magnitudes.
type PAndLReport struct {
	Revenue      []AccountAmount `json:"revenue"`
	Expense      []AccountAmount `json:"expense"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
}

// BalanceSheetReport is a cumulative statement of position as of a date.
// Equity includes a synthetic "Retained Earnings (Calculated)" row equal to
// cumulative net profit when non-zero.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// Balanced reports whether the accounting identity holds: assets equal
// liabilities plus equity, within the posting tolerance. It can only fail
// if the underlying ledger admitted an unbalanced transaction.
func (r BalanceSheetReport) Balanced() bool {
	diff := r.TotalAssets.Sub(r.TotalLiabilities.Add(r.TotalEquity))
	return diff.Abs().LessThanOrEqual(BalanceTolerance)
}

// TrialBalanceRow is an account's cumulative balance split into debit and
// credit columns by sign.
type TrialBalanceRow struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account with a non-zero cumulative balance.
// TotalDebit must equal TotalCredit for a consistent ledger.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// DashboardKPIs are the headline figures for the current calendar month,
// plus an all-time cash position over accounts named like cash or bank.
type DashboardKPIs struct {
	Revenue     decimal.Decimal `json:"revenue"`
	Expense     decimal.Decimal `json:"expense"`
	NetProfit   decimal.Decimal `json:"netProfit"`
	CashBalance decimal.Decimal `json:"cashBalance"`
}

// Aging bucket labels, oldest last.
const (
	BucketCurrent = "Current"
	Bucket1To30   = "1-30 Days"
	Bucket31To60  = "31-60 Days"
	Bucket61To90  = "61-90 Days"
	BucketOver90  = "> 90 Days"
)

// AgingRow is one receivable or payable document bucketed by age.
type AgingRow struct {
	Entity    string          `json:"entity"`
	Reference string          `json:"reference"`
	Date      Date            `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Days      int             `json:"days"`
	Bucket    string          `json:"bucket"`
}

// FinancialRatios are headline solvency and profitability ratios. Any ratio
// whose denominator is zero is reported as zero, never an error.
type FinancialRatios struct {
	CurrentRatio decimal.Decimal `json:"currentRatio"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	DebtToEquity decimal.Decimal `json:"debtToEquity"`
}

// CashFlowAdjustments are the non-cash and working-capital adjustments of
// an indirect cash flow statement, stated as their impact on cash.
type CashFlowAdjustments struct {
	Depreciation      decimal.Decimal `json:"depreciation"`
	ChangeInAR        decimal.Decimal `json:"changeInAR"`
	ChangeInAP        decimal.Decimal `json:"changeInAP"`
	ChangeInInventory decimal.Decimal `json:"changeInInventory"`
}

// CashFlowReport is an indirect-method operating cash flow statement. The
// working-capital changes are net movements over the period window rather
// than a true opening/closing balance comparison, so this is an
// approximation.
type CashFlowReport struct {
	NetIncome         decimal.Decimal     `json:"netIncome"`
	Adjustments       CashFlowAdjustments `json:"adjustments"`
	OperatingCashFlow decimal.Decimal     `json:"operatingCashFlow"`
}
