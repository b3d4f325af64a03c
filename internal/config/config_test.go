package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"RETAILPULSE_CONFIG_FILE",
		"RETAILPULSE_SERVER_PORT",
		"RETAILPULSE_LOGGING_LEVEL",
		"RETAILPULSE_DATASETS_PRICE_LIST",
		"RETAILPULSE_DATASETS_SALES_WORKBOOK",
		"RETAILPULSE_DATASETS_STOCK_BOOK",
		"RETAILPULSE_DATASETS_PHYSICAL_COUNT",
	}
	for _, v := range vars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	// Point the config file somewhere that does not exist so the repo's
	// own config.yaml cannot interfere.
	t.Setenv("RETAILPULSE_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, filepath.IsAbs(cfg.Datasets.PriceList))
	assert.Contains(t, cfg.Datasets.PriceList, "price list.xlsx")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9001
logging:
  level: debug
datasets:
  stock_book: /srv/data/stock book.xlsx
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("RETAILPULSE_CONFIG_FILE", configFile)
	t.Setenv("RETAILPULSE_LOGGING_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// File values survive where the environment stays silent.
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "/srv/data/stock book.xlsx", cfg.Datasets.StockBook)
	// Environment wins where both speak.
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_FileOnlyValuesSurvive(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9100
  read_timeout: 5s
security:
  enable_cors: false
  rate_limit:
    enabled: false
datasets:
  price_list: /srv/data/price list.xlsx
reports:
  output_dir: /srv/reports
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("RETAILPULSE_CONFIG_FILE", configFile)

	cfg, err := Load()
	require.NoError(t, err)

	// Every file value lands, including booleans flipped off.
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Security.EnableCORS)
	assert.False(t, cfg.Security.RateLimit.Enabled)
	assert.Equal(t, "/srv/data/price list.xlsx", cfg.Datasets.PriceList)
	assert.Equal(t, "/srv/reports", cfg.Reports.OutputDir)
	// Keys the file stays silent on keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("RETAILPULSE_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("RETAILPULSE_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("RETAILPULSE_CONFIG_FILE", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("RETAILPULSE_SERVER_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_MissingDatasetRejected(t *testing.T) {
	cfg := WithDefaults()
	cfg.Datasets.PriceList = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sales dashboard datasets")
}

func TestWithDefaults(t *testing.T) {
	cfg := WithDefaults()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Security.RateLimit.Enabled)
	require.NotEmpty(t, cfg.Datasets.SalesWorkbook)
}
