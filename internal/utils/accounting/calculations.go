// Package accounting holds the pure balance computations shared by the
// ledger services and the report engine.
package accounting

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// FilterByDate returns the transactions dated within [from, to] inclusive.
// A zero bound is open-ended.
func FilterByDate(transactions []domain.Transaction, from, to domain.Date) []domain.Transaction {
	return lo.Filter(transactions, func(tx domain.Transaction, _ int) bool {
		return tx.Date.InRange(from, to)
	})
}

// AccountBalance computes the signed balance of the named account over a
// date-filtered transaction set: debits add, credits subtract. A positive
// result reads as a debit-normal (Asset/Expense) balance; callers negate
// for credit-normal accounts.
//
// Within a single transaction only the first debit posting and the first
// credit posting matching the account are counted. Multiple same-kind
// postings to one account inside one transaction therefore collapse to the
// first match. Every report depends on this exact behavior; do not change
// it without revisiting all of them.
func AccountBalance(transactions []domain.Transaction, accountName string, from, to domain.Date) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range FilterByDate(transactions, from, to) {
		if debit, ok := firstPosting(tx.Postings, accountName, domain.DebitKind); ok {
			balance = balance.Add(debit.Amount)
		}
		if credit, ok := firstPosting(tx.Postings, accountName, domain.CreditKind); ok {
			balance = balance.Sub(credit.Amount)
		}
	}
	return balance
}

func firstPosting(postings []domain.Posting, accountName string, kind domain.PostingKind) (domain.Posting, bool) {
	return lo.Find(postings, func(p domain.Posting) bool {
		return p.Account == accountName && p.Kind == kind
	})
}

// DisplayBalance converts a signed balance to its display magnitude for the
// given account type: credit-normal balances are negated.
func DisplayBalance(balance decimal.Decimal, accountType domain.AccountType) decimal.Decimal {
	if accountType.IsDebitNormal() {
		return balance
	}
	return balance.Neg()
}

// SafeDiv divides a by b, mapping a zero denominator to zero rather than an
// error or infinity.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}
