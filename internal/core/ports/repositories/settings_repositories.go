package repositories

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// SettingsRepository defines persistence operations for application
// preferences.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// AuditRepository exposes the append-only audit trail. Entries are written
// exclusively by the store's own mutation operations; there is no external
// append surface.
type AuditRepository interface {
	// ListAuditLog returns audit entries newest first.
	ListAuditLog(ctx context.Context) ([]domain.AuditEntry, error)
}
