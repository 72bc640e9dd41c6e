package dto

import "github.com/ledgerlite/ledgerlite/internal/core/domain"

// CreateAccountRequest carries the data needed to add a chart-of-accounts
// entry. The id is assigned by the service.
type CreateAccountRequest struct {
	Name string             `json:"name" validate:"required"`
	Type domain.AccountType `json:"type" validate:"required,oneof=Asset Liability Equity Revenue Expense"`
}
