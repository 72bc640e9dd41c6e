package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ledgerlite/ledgerlite/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	CompanyName     string
	DefaultCurrency string
	Theme           string
	Notifications   bool
	MirrorPath      string
	AuditUser       string
	LogLevel        string
	SeedDemoData    bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("COMPANY_NAME", "My Company")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")
	viper.SetDefault("THEME", "light")
	viper.SetDefault("NOTIFICATIONS", true)
	viper.SetDefault("MIRROR_PATH", "ledgerlite.db")
	viper.SetDefault("AUDIT_USER", "Admin")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.CompanyName = viper.GetString("COMPANY_NAME")
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.Theme = viper.GetString("THEME")
	cfg.Notifications = viper.GetBool("NOTIFICATIONS")
	cfg.MirrorPath = viper.GetString("MIRROR_PATH")
	cfg.AuditUser = viper.GetString("AUDIT_USER")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.SeedDemoData = viper.GetBool("SEED_DEMO_DATA")

	return cfg, nil
}

// DefaultSettings builds the initial preferences from configuration.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		Currency:      c.DefaultCurrency,
		Theme:         c.Theme,
		CompanyName:   c.CompanyName,
		Notifications: c.Notifications,
	}
}
