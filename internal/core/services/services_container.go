package services

import (
	portsrepo "github.com/ledgerlite/ledgerlite/internal/core/ports/repositories"
	portssvc "github.com/ledgerlite/ledgerlite/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. Every service shares the same repository so all
// of them observe one consistent ledger.
func NewServiceContainer(repo portsrepo.LedgerRepository, options ...ReportingServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repo),
		Journal:   NewJournalService(repo),
		Register:  NewRegisterService(repo),
		Template:  NewTemplateService(repo),
		Settings:  NewSettingsService(repo, repo),
		Reporting: NewReportingService(repo, repo, repo, options...),
		Snapshot:  NewSnapshotService(repo),
	}
}
