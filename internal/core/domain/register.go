package domain

import "fmt"

// RegisterType classifies a register entry by business document kind.
type RegisterType string

const (
	SalesRegister    RegisterType = "Sales"
	PurchaseRegister RegisterType = "Purchase"
	CashRegister     RegisterType = "Cash"
	BankRegister     RegisterType = "Bank"
	ExpenseRegister  RegisterType = "Expense"
	AssetRegister    RegisterType = "Asset"
	PayrollRegister  RegisterType = "Payroll"
)

// Valid reports whether t is a known register type.
func (t RegisterType) Valid() bool {
	switch t {
	case SalesRegister, PurchaseRegister, CashRegister, BankRegister,
		ExpenseRegister, AssetRegister, PayrollRegister:
		return true
	}
	return false
}

// RegisterStatus is the approval state of a register entry.
//
// The state machine is Draft -> Pending -> Posted. Draft and Pending
// entries may be edited or deleted; Posted is terminal and locked.
type RegisterStatus string

const (
	StatusDraft   RegisterStatus = "Draft"
	StatusPending RegisterStatus = "Pending"
	StatusPosted  RegisterStatus = "Posted"
)

// RegisterEntry is a business document (invoice, bill, payroll run, ...)
// awaiting approval. Approving a Pending entry posts exactly one
// Transaction to the general ledger and locks the entry.
type RegisterEntry struct {
	EntryID       string         `json:"id" validate:"required"`
	Date          Date           `json:"date"`
	Type          RegisterType   `json:"type" validate:"required"`
	Description   string         `json:"description"`
	Entity        string         `json:"entity"`
	Reference     string         `json:"reference"`
	PaymentMethod string         `json:"paymentMethod"`
	Status        RegisterStatus `json:"status" validate:"required,oneof=Draft Pending Posted"`
	Postings      []Posting      `json:"postings" validate:"dive"`
}

// Clone returns a deep copy of the register entry.
func (e RegisterEntry) Clone() RegisterEntry {
	e.Postings = ClonePostings(e.Postings)
	return e
}

// CloneRegisterEntries deep-copies a register entry list.
func CloneRegisterEntries(entries []RegisterEntry) []RegisterEntry {
	if entries == nil {
		return nil
	}
	out := make([]RegisterEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// LedgerDescription is the description carried by the transaction that
// approval materializes from the entry.
func (e RegisterEntry) LedgerDescription() string {
	return fmt.Sprintf("%s: %s (%s)", e.Type, e.Description, e.Entity)
}
