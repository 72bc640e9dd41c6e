package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
	"github.com/ledgerlite/ledgerlite/internal/utils"
)

// settingsService manages preferences and exposes the audit trail.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	auditRepo    portsrepo.AuditRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, auditRepo portsrepo.AuditRepository) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: settingsRepo, auditRepo: auditRepo}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	return s.settingsRepo.GetSettings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	current, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	merged := patch.Apply(current)
	if err := s.settingsRepo.SaveSettings(ctx, merged); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return domain.Settings{}, err
	}
	s.LogInfo(ctx, "Settings updated")
	return merged, nil
}

func (s *settingsService) GetAuditLog(ctx context.Context) ([]domain.AuditEntry, error) {
	return s.auditRepo.ListAuditLog(ctx)
}

func (s *settingsService) FormatAmount(ctx context.Context, amount decimal.Decimal) string {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return amount.StringFixed(2)
	}
	return utils.FormatCurrency(amount, settings.Currency)
}
