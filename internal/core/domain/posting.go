package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PostingKind indicates whether a posting line is a debit or a credit.
type PostingKind string

const (
	DebitKind  PostingKind = "debit"
	CreditKind PostingKind = "credit"
)

// BalanceTolerance is the maximum admissible drift between the debit and
// credit sums of a posting set, in currency units.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// Posting is a single line of a double-entry posting set. The amount is
// always non-negative; the sign is carried by Kind, never by the value.
type Posting struct {
	Account string          `json:"account" validate:"required"`
	Kind    PostingKind     `json:"kind" validate:"required,oneof=debit credit"`
	Amount  decimal.Decimal `json:"amount"`
}

// PostingTotals sums the debit and credit sides of a posting set.
func PostingTotals(postings []Posting) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, p := range postings {
		if p.Kind == DebitKind {
			debits = debits.Add(p.Amount)
		} else {
			credits = credits.Add(p.Amount)
		}
	}
	return debits, credits
}

// ValidatePostings enforces the double-entry law on a posting set: at least
// two lines, every line naming an account with a non-negative amount, and
// debit and credit sums equal within BalanceTolerance.
func ValidatePostings(postings []Posting) error {
	if len(postings) < 2 {
		return fmt.Errorf("posting set must have at least two lines, got %d", len(postings))
	}
	for i, p := range postings {
		if p.Account == "" {
			return fmt.Errorf("posting line %d has no account", i)
		}
		if p.Kind != DebitKind && p.Kind != CreditKind {
			return fmt.Errorf("posting line %d has unknown kind %q", i, p.Kind)
		}
		if p.Amount.IsNegative() {
			return fmt.Errorf("posting line %d has negative amount %s", i, p.Amount)
		}
	}
	debits, credits := PostingTotals(postings)
	if drift := debits.Sub(credits).Abs(); drift.GreaterThan(BalanceTolerance) {
		return fmt.Errorf("debits %s do not equal credits %s", debits, credits)
	}
	return nil
}

// ClonePostings returns an independent copy of a posting set so that callers
// can never mutate a stored slice out from under the ledger.
func ClonePostings(postings []Posting) []Posting {
	if postings == nil {
		return nil
	}
	out := make([]Posting, len(postings))
	copy(out, postings)
	return out
}
