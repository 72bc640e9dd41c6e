package dto

import "github.com/ledgerlite/ledgerlite/internal/core/domain"

// SaveRegisterEntryRequest carries a register entry for creation or update.
// Status may only be Draft or Pending through this surface; Posted is
// reachable solely via approval.
type SaveRegisterEntryRequest struct {
	Date          domain.Date           `json:"date"`
	Type          domain.RegisterType   `json:"type" validate:"required"`
	Description   string                `json:"description"`
	Entity        string                `json:"entity"`
	Reference     string                `json:"reference"`
	PaymentMethod string                `json:"paymentMethod"`
	Status        domain.RegisterStatus `json:"status" validate:"required,oneof=Draft Pending"`
	Postings      []PostingInput        `json:"postings" validate:"dive"`
}

// SaveTemplateRequest carries a posting template. No balance invariant is
// applied since amounts are often blank.
type SaveTemplateRequest struct {
	Name        string              `json:"name" validate:"required"`
	Type        domain.RegisterType `json:"type"`
	Description string              `json:"description"`
	Postings    []PostingInput      `json:"postings"`
}

// BatchResult reports the outcome of a best-effort batch operation: the ids
// that were applied and, per failed id, the reason. A failure partway does
// not roll back earlier applications.
type BatchResult struct {
	Applied []string          `json:"applied"`
	Failed  map[string]string `json:"failed,omitempty"`
}
