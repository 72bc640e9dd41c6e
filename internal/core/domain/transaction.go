package domain

// Transaction is a single, balanced journal entry in the general ledger.
// Transactions are immutable once admitted and the ledger is append-only:
// the store prepends new transactions so the list reads newest first.
type Transaction struct {
	TransactionID string    `json:"id" validate:"required"`
	Date          Date      `json:"date"`
	Description   string    `json:"description"`
	Postings      []Posting `json:"postings" validate:"required,min=2,dive"`
}

// Clone returns a deep copy of the transaction.
func (t Transaction) Clone() Transaction {
	t.Postings = ClonePostings(t.Postings)
	return t
}

// CloneTransactions deep-copies a transaction list.
func CloneTransactions(txns []Transaction) []Transaction {
	if txns == nil {
		return nil
	}
	out := make([]Transaction, len(txns))
	for i, t := range txns {
		out[i] = t.Clone()
	}
	return out
}
