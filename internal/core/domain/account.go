package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Revenue   AccountType = "Revenue"
	Expense   AccountType = "Expense"
)

// IsDebitNormal reports whether a positive signed balance is the natural
// state for the account type. Asset and Expense accounts carry debit-normal
// balances; Liability, Equity and Revenue accounts carry credit-normal
// balances and are negated for display.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Valid reports whether t is one of the five accounting types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account is a chart-of-accounts entry. The Name is the join key used by
// every posting; it must stay unique and stable once any transaction
// references it.
type Account struct {
	AccountID string      `json:"id" validate:"required"`
	Name      string      `json:"name" validate:"required"`
	Type      AccountType `json:"type" validate:"required"`
}
