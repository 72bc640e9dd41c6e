package domain

import "time"

// AuditEntry records a single store mutation. The audit log is append-only,
// newest first, written exclusively by the ledger store; users never edit
// or remove entries.
type AuditEntry struct {
	AuditID   string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	User      string    `json:"user"`
}

// Event describes a committed store mutation, delivered to subscribers
// after the mutation is visible.
type Event struct {
	Action   string
	EntityID string
}
