package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// PostingInput is one line of a posting set as submitted by a caller.
type PostingInput struct {
	Account string             `json:"account" validate:"required"`
	Kind    domain.PostingKind `json:"kind" validate:"required,oneof=debit credit"`
	Amount  decimal.Decimal    `json:"amount"`
}

// CreateTransactionRequest carries a manual journal entry. The id is
// assigned by the service; the posting set must balance to be admitted.
type CreateTransactionRequest struct {
	Date        domain.Date    `json:"date"`
	Description string         `json:"description"`
	Postings    []PostingInput `json:"postings" validate:"required,min=2,dive"`
}

// ToPostings converts the submitted lines to domain postings.
func ToPostings(inputs []PostingInput) []domain.Posting {
	postings := make([]domain.Posting, len(inputs))
	for i, in := range inputs {
		postings[i] = domain.Posting{Account: in.Account, Kind: in.Kind, Amount: in.Amount}
	}
	return postings
}
