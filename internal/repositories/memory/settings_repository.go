package memory

import (
	"context"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

func (s *Store) GetSettings(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	s.settings = settings
	s.logAction("Update Settings", "Updated application preferences")
	if s.mirror != nil {
		_ = s.mirror.SaveSettings(settings)
	}
	s.mu.Unlock()

	s.notify("Update Settings", "")
	return nil
}

func (s *Store) ListAuditLog(ctx context.Context) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AuditEntry, len(s.auditLog))
	copy(out, s.auditLog)
	return out, nil
}
