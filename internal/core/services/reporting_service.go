package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/apperrors"
	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/utils/accounting"
)

// reportingService builds derived statements from snapshots of the store
// collections. Every method reads copies and mutates nothing; an account
// referenced by a posting but missing from the chart simply contributes no
// report row.
type reportingService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	accountRepo  portsrepo.AccountRepository
	registerRepo portsrepo.RegisterRepository

	today func() domain.Date
}

// ReportingServiceOption is a functional option for configuring the
// reporting service.
type ReportingServiceOption func(*reportingService)

// WithToday overrides the clock used for "current day" reports (dashboard,
// aging, ratios). Tests pin it for determinism.
func WithToday(today func() domain.Date) ReportingServiceOption {
	return func(s *reportingService) { s.today = today }
}

// NewReportingService creates a new reporting service with the provided
// options.
func NewReportingService(
	txnRepo portsrepo.TransactionRepository,
	accountRepo portsrepo.AccountRepository,
	registerRepo portsrepo.RegisterRepository,
	options ...ReportingServiceOption,
) portssvc.ReportingSvc {
	svc := &reportingService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		registerRepo: registerRepo,
		today:        domain.Today,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to domain.Date) (domain.PAndLReport, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.PAndLReport{}, err
	}
	return buildProfitAndLoss(transactions, accounts, from, to), nil
}

// buildProfitAndLoss computes a P&L over [from, to]. Revenue accounts are
// credit-normal so their internal balance is negated for display; expense
// accounts report the raw debit-normal balance. Zero-balance accounts are
// omitted.
func buildProfitAndLoss(transactions []domain.Transaction, accounts []domain.Account, from, to domain.Date) domain.PAndLReport {
	report := domain.PAndLReport{
		Revenue:      []domain.AccountAmount{},
		Expense:      []domain.AccountAmount{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	filtered := accounting.FilterByDate(transactions, from, to)

	for _, acc := range accounts {
		if acc.Type != domain.Revenue && acc.Type != domain.Expense {
			continue
		}
		balance := accounting.AccountBalance(filtered, acc.Name, domain.Date{}, domain.Date{})
		if balance.IsZero() {
			continue
		}
		amount := accounting.DisplayBalance(balance, acc.Type)
		row := domain.AccountAmount{Account: acc.Name, Amount: amount}
		if acc.Type == domain.Revenue {
			report.Revenue = append(report.Revenue, row)
			report.TotalRevenue = report.TotalRevenue.Add(amount)
		} else {
			report.Expense = append(report.Expense, row)
			report.TotalExpense = report.TotalExpense.Add(amount)
		}
	}

	report.NetProfit = report.TotalRevenue.Sub(report.TotalExpense)
	return report
}

func (s *reportingService) BalanceSheet(ctx context.Context, asOf domain.Date) (domain.BalanceSheetReport, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.BalanceSheetReport{}, err
	}
	return buildBalanceSheet(transactions, accounts, asOf), nil
}

// buildBalanceSheet computes cumulative positions up to asOf (no lower
// bound) and appends the calculated retained earnings row so the statement
// closes against cumulative net profit.
func buildBalanceSheet(transactions []domain.Transaction, accounts []domain.Account, asOf domain.Date) domain.BalanceSheetReport {
	report := domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	filtered := accounting.FilterByDate(transactions, domain.Date{}, asOf)

	for _, acc := range accounts {
		balance := accounting.AccountBalance(filtered, acc.Name, domain.Date{}, domain.Date{})
		if balance.IsZero() {
			continue
		}
		switch acc.Type {
		case domain.Asset:
			report.Assets = append(report.Assets, domain.AccountAmount{Account: acc.Name, Amount: balance})
			report.TotalAssets = report.TotalAssets.Add(balance)
		case domain.Liability:
			creditBal := balance.Neg()
			report.Liabilities = append(report.Liabilities, domain.AccountAmount{Account: acc.Name, Amount: creditBal})
			report.TotalLiabilities = report.TotalLiabilities.Add(creditBal)
		case domain.Equity:
			creditBal := balance.Neg()
			report.Equity = append(report.Equity, domain.AccountAmount{Account: acc.Name, Amount: creditBal})
			report.TotalEquity = report.TotalEquity.Add(creditBal)
		}
	}

	pl := buildProfitAndLoss(transactions, accounts, domain.Date{}, asOf)
	if !pl.NetProfit.IsZero() {
		report.Equity = append(report.Equity, domain.AccountAmount{
			Account: "Retained Earnings (Calculated)",
			Amount:  pl.NetProfit,
		})
		report.TotalEquity = report.TotalEquity.Add(pl.NetProfit)
	}
	return report
}

func (s *reportingService) TrialBalance(ctx context.Context, asOf domain.Date) (domain.TrialBalanceReport, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.TrialBalanceReport{}, err
	}

	report := domain.TrialBalanceReport{
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	filtered := accounting.FilterByDate(transactions, domain.Date{}, asOf)

	for _, acc := range accounts {
		balance := accounting.AccountBalance(filtered, acc.Name, domain.Date{}, domain.Date{})
		if balance.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{Account: acc.Name, Debit: decimal.Zero, Credit: decimal.Zero}
		if balance.IsPositive() {
			row.Debit = balance
		} else {
			row.Credit = balance.Neg()
		}
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}

	if drift := report.TotalDebit.Sub(report.TotalCredit).Abs(); drift.GreaterThan(domain.BalanceTolerance) {
		s.LogError(ctx, apperrors.ErrOutOfBalance, "Trial balance columns disagree",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
		return report, fmt.Errorf("%w: debit %s vs credit %s",
			apperrors.ErrOutOfBalance, report.TotalDebit, report.TotalCredit)
	}
	return report, nil
}

func (s *reportingService) DashboardKPIs(ctx context.Context) (domain.DashboardKPIs, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.DashboardKPIs{}, err
	}

	today := s.today()
	pl := buildProfitAndLoss(transactions, accounts, today.MonthStart(), today)

	// Cash position: every account named like cash or bank, all time. The
	// substring match is the established convention for these dashboards.
	cashBalance := decimal.Zero
	for _, acc := range accounts {
		if !strings.Contains(acc.Name, "Cash") && !strings.Contains(acc.Name, "Bank") {
			continue
		}
		cashBalance = cashBalance.Add(accounting.AccountBalance(transactions, acc.Name, domain.Date{}, domain.Date{}))
	}

	return domain.DashboardKPIs{
		Revenue:     pl.TotalRevenue,
		Expense:     pl.TotalExpense,
		NetProfit:   pl.NetProfit,
		CashBalance: cashBalance,
	}, nil
}

func (s *reportingService) AgingReport(ctx context.Context, registerType domain.RegisterType) ([]domain.AgingRow, error) {
	entries, err := s.registerRepo.ListRegisterEntries(ctx, &registerType)
	if err != nil {
		return nil, err
	}

	today := s.today()
	rows := []domain.AgingRow{}
	for _, entry := range entries {
		if entry.Status == domain.StatusDraft {
			continue
		}
		days := today.DaysSince(entry.Date)

		// A balanced posting set states the face amount twice, once per
		// side, so the document amount is half the posting total.
		total := lo.Reduce(entry.Postings, func(sum decimal.Decimal, p domain.Posting, _ int) decimal.Decimal {
			return sum.Add(p.Amount)
		}, decimal.Zero)
		amount := total.Div(decimal.NewFromInt(2))

		rows = append(rows, domain.AgingRow{
			Entity:    entry.Entity,
			Reference: entry.Reference,
			Date:      entry.Date,
			Amount:    amount,
			Days:      days,
			Bucket:    agingBucket(days),
		})
	}
	return rows, nil
}

// agingBucket maps an age in whole days to its bucket. The boundaries are
// inclusive on the young side: day 30 is still "1-30 Days", day 31 is
// "31-60 Days".
func agingBucket(days int) string {
	switch {
	case days > 90:
		return domain.BucketOver90
	case days > 60:
		return domain.Bucket61To90
	case days > 30:
		return domain.Bucket31To60
	case days > 0:
		return domain.Bucket1To30
	default:
		return domain.BucketCurrent
	}
}

func (s *reportingService) FinancialRatios(ctx context.Context) (domain.FinancialRatios, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.FinancialRatios{}, err
	}

	today := s.today()
	bs := buildBalanceSheet(transactions, accounts, today)
	pl := buildProfitAndLoss(transactions, accounts, domain.Date{}, today)

	hundred := decimal.NewFromInt(100)
	return domain.FinancialRatios{
		CurrentRatio: accounting.SafeDiv(bs.TotalAssets, bs.TotalLiabilities).Round(2),
		ProfitMargin: accounting.SafeDiv(pl.NetProfit, pl.TotalRevenue).Mul(hundred).Round(1),
		DebtToEquity: accounting.SafeDiv(bs.TotalLiabilities, bs.TotalEquity).Round(2),
	}, nil
}

// CashFlowIndirect derives operating cash flow from net income. The
// working-capital terms are net movements inside the period window rather
// than true opening/closing balance differences, so the statement is an
// approximation.
func (s *reportingService) CashFlowIndirect(ctx context.Context, from, to domain.Date) (domain.CashFlowReport, error) {
	transactions, accounts, err := s.ledgerData(ctx)
	if err != nil {
		return domain.CashFlowReport{}, err
	}

	pl := buildProfitAndLoss(transactions, accounts, from, to)
	netIncome := pl.NetProfit

	// Depreciation reduced net income without moving cash; add it back.
	depreciation := decimal.Zero
	if depAcc, ok := lo.Find(accounts, func(a domain.Account) bool {
		return strings.Contains(a.Name, "Depreciation")
	}); ok {
		if row, ok := lo.Find(pl.Expense, func(r domain.AccountAmount) bool {
			return r.Account == depAcc.Name
		}); ok {
			depreciation = row.Amount
		}
	}

	filtered := accounting.FilterByDate(transactions, from, to)
	changeInAR := decimal.Zero
	changeInAP := decimal.Zero
	changeInInventory := decimal.Zero
	for _, acc := range accounts {
		movement := accounting.AccountBalance(filtered, acc.Name, domain.Date{}, domain.Date{})
		switch {
		case strings.Contains(acc.Name, "Receivable"):
			changeInAR = changeInAR.Add(movement)
		case strings.Contains(acc.Name, "Payable"):
			// Credit normal: a negative movement is a payable increase.
			changeInAP = changeInAP.Add(movement.Neg())
		case strings.Contains(acc.Name, "Inventory"):
			changeInInventory = changeInInventory.Add(movement)
		}
	}

	operating := netIncome.Add(depreciation).Sub(changeInAR).Add(changeInAP).Sub(changeInInventory)
	return domain.CashFlowReport{
		NetIncome: netIncome,
		Adjustments: domain.CashFlowAdjustments{
			Depreciation:      depreciation,
			ChangeInAR:        changeInAR.Neg(),
			ChangeInAP:        changeInAP,
			ChangeInInventory: changeInInventory.Neg(),
		},
		OperatingCashFlow: operating,
	}, nil
}

// ledgerData snapshots the transaction and account collections.
func (s *reportingService) ledgerData(ctx context.Context) ([]domain.Transaction, []domain.Account, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	return transactions, accounts, nil
}
