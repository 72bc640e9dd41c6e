package domain

import "time"

// SnapshotVersion is the version tag written by Export and required by
// Import. Only the major version is compared, so a "1.1" build can read a
// "1.0" backup.
const SnapshotVersion = "1.0"

// Snapshot is the JSON backup format for the whole ledger. On import each
// collection key is optional: an absent (nil) collection leaves the current
// data for that collection untouched, while a present but empty collection
// replaces it with nothing.
type Snapshot struct {
	Transactions    []Transaction   `json:"transactions,omitempty" validate:"omitempty,dive"`
	ChartOfAccounts []Account       `json:"chartOfAccounts,omitempty" validate:"omitempty,dive"`
	RegisterEntries []RegisterEntry `json:"registerEntries,omitempty" validate:"omitempty,dive"`
	Templates       []Template      `json:"templates,omitempty" validate:"omitempty,dive"`
	ExportDate      time.Time       `json:"exportDate"`
	Version         string          `json:"version" validate:"required"`
}

// ScheduledReport is a saved report delivery configuration. Scheduled
// reports live only in the persistence mirror, matching the original
// behavior of keeping them beside the ledger rather than inside it.
type ScheduledReport struct {
	ReportID   string `json:"id"`
	Name       string `json:"name"`
	ReportType string `json:"reportType"`
	Frequency  string `json:"frequency"`
	Recipient  string `json:"recipient"`
}
