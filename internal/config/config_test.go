package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/cardledger/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "SEED_DEMO_DATA", "DEFAULT_THEME", "METRICS_NAMESPACE", "SELF_NAME"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, models.ThemeDark, cfg.DefaultTheme)
	assert.Equal(t, "cardledger", cfg.MetricsNamespace)
	assert.Equal(t, "You", cfg.SelfName)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("DEFAULT_THEME", "Light")
	t.Setenv("METRICS_NAMESPACE", "dash")
	t.Setenv("SELF_NAME", "Priya")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, models.ThemeLight, cfg.DefaultTheme)
	assert.Equal(t, "dash", cfg.MetricsNamespace)
	assert.Equal(t, "Priya", cfg.SelfName)
}

func TestLoad_InvalidTheme(t *testing.T) {
	t.Setenv("DEFAULT_THEME", "sepia")

	_, err := Load()
	assert.ErrorContains(t, err, "DEFAULT_THEME")
}
