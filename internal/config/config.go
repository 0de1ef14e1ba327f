// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/cardledger/internal/models"
	"github.com/mmynk/cardledger/pkg/logging"
)

// Config holds application configuration.
type Config struct {
	LogLevel         slog.Level
	SeedDemoData     bool
	DefaultTheme     models.Theme
	MetricsNamespace string
	SelfName         string // Split participant that stands for the dashboard user
}

// Load reads configuration from environment variables, falling back to a .env
// file in the working directory and then to defaults.
func Load() (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("DEFAULT_THEME", string(models.ThemeDark))
	v.SetDefault("METRICS_NAMESPACE", "cardledger")
	v.SetDefault("SELF_NAME", "You")
	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:         logging.ParseLevel(v.GetString("LOG_LEVEL")),
		SeedDemoData:     v.GetBool("SEED_DEMO_DATA"),
		MetricsNamespace: strings.TrimSpace(v.GetString("METRICS_NAMESPACE")),
		SelfName:         strings.TrimSpace(v.GetString("SELF_NAME")),
	}

	switch theme := models.Theme(strings.ToLower(strings.TrimSpace(v.GetString("DEFAULT_THEME")))); theme {
	case models.ThemeDark, models.ThemeLight:
		cfg.DefaultTheme = theme
	default:
		return nil, fmt.Errorf("invalid DEFAULT_THEME %q: want dark or light", theme)
	}

	if cfg.MetricsNamespace == "" {
		return nil, fmt.Errorf("METRICS_NAMESPACE must not be empty")
	}
	if cfg.SelfName == "" {
		cfg.SelfName = "You"
	}
	return cfg, nil
}
