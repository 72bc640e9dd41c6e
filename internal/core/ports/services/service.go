package services

// ServiceContainer holds instances of all the application services. It is
// the single entry point for callers: build one from a LedgerRepository via
// services.NewServiceContainer and use the fields directly.
type ServiceContainer struct {
	Account   AccountSvc
	Journal   JournalSvc
	Register  RegisterSvc
	Template  TemplateSvc
	Settings  SettingsSvc
	Reporting ReportingSvc
	Snapshot  SnapshotSvc
}
