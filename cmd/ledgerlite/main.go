package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
	"github.com/ledgerlite/ledgerlite/internal/core/services"
	"github.com/ledgerlite/ledgerlite/internal/platform/config"
	"github.com/ledgerlite/ledgerlite/internal/platform/logging"
	"github.com/ledgerlite/ledgerlite/internal/repositories/bolt"
	"github.com/ledgerlite/ledgerlite/internal/repositories/memory"
	"github.com/ledgerlite/ledgerlite/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	mirror, err := bolt.Open(cfg.MirrorPath)
	if err != nil {
		logger.Error("Failed to open persistence mirror", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer mirror.Close()

	// Persisted preferences win over configured defaults.
	settings := cfg.DefaultSettings()
	if persisted, ok, err := mirror.LoadSettings(); err != nil {
		logger.Warn("Failed to load mirrored settings", slog.String("error", err.Error()))
	} else if ok {
		settings = persisted
	}

	store := memory.NewStore(
		memory.WithUser(cfg.AuditUser),
		memory.WithMirror(mirror),
		memory.WithSettings(settings),
	)
	cancel := store.Subscribe(func(ev domain.Event) {
		logger.Debug("Ledger mutation", slog.String("action", ev.Action), slog.String("entity_id", ev.EntityID))
	})
	defer cancel()

	container := services.NewServiceContainer(store)

	if err := seed.Load(ctx, store, cfg.SeedDemoData); err != nil {
		logger.Error("Failed to seed ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Ledger ready", slog.String("company", settings.CompanyName))

	kpis, err := container.Reporting.DashboardKPIs(ctx)
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Dashboard",
		slog.String("revenue", container.Settings.FormatAmount(ctx, kpis.Revenue)),
		slog.String("expense", container.Settings.FormatAmount(ctx, kpis.Expense)),
		slog.String("net_profit", container.Settings.FormatAmount(ctx, kpis.NetProfit)),
		slog.String("cash_balance", container.Settings.FormatAmount(ctx, kpis.CashBalance)))

	tb, err := container.Reporting.TrialBalance(ctx, domain.Today())
	if err != nil {
		logger.Error("Trial balance failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Trial balance",
		slog.Int("rows", len(tb.Rows)),
		slog.String("total_debit", tb.TotalDebit.String()),
		slog.String("total_credit", tb.TotalCredit.String()))
}
