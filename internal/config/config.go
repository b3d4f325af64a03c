package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Datasets DatasetsConfig `yaml:"datasets" envconfig:"DATASETS"`
	Reports  ReportsConfig  `yaml:"reports" envconfig:"REPORTS"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED"`
	RPS     float64 `yaml:"rps" envconfig:"RPS"`
	Burst   int     `yaml:"burst" envconfig:"BURST"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	Format      string `yaml:"format" envconfig:"FORMAT"`
	Output      string `yaml:"output" envconfig:"OUTPUT"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// DatasetsConfig names the source workbooks for both dashboards. Paths are
// resolved relative to the working directory at load time.
type DatasetsConfig struct {
	PriceList     string `yaml:"price_list" envconfig:"PRICE_LIST"`
	SalesWorkbook string `yaml:"sales_workbook" envconfig:"SALES_WORKBOOK"`
	StockBook     string `yaml:"stock_book" envconfig:"STOCK_BOOK"`
	PhysicalCount string `yaml:"physical_count" envconfig:"PHYSICAL_COUNT"`
}

// ReportsConfig contains file export configuration
type ReportsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// defaults returns the built-in configuration. Load layers the optional
// YAML file and then the environment on top of this.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "console",
			FilePath:    "logs/app.log",
			Development: true,
		},
		Datasets: DatasetsConfig{
			PriceList:     "data/price list.xlsx",
			SalesWorkbook: "data/july to sep safa2025.xlsx",
			StockBook:     "data/stock book.xlsx",
			PhysicalCount: "data/physical count.xlsx",
		},
		Reports: ReportsConfig{
			OutputDir: "reports",
		},
	}
}

// Load loads configuration with increasing precedence: built-in defaults,
// then the optional YAML file, then environment variables (prefix
// RETAILPULSE). Each layer only touches the keys it actually sets: the
// YAML unmarshal leaves absent keys alone, and envconfig carries no
// default tags so unset variables leave the merged value alone.
func Load() (*Config, error) {
	cfg := defaults()

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("RETAILPULSE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg in place
func loadFromFile(cfg *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// getConfigFilePath returns the config file path, overridable via env
func getConfigFilePath() string {
	if path := os.Getenv("RETAILPULSE_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

// resolvePaths makes all dataset and report paths absolute so the loader
// cache key is stable regardless of the working directory a request sees.
func (c *Config) resolvePaths() error {
	paths := []*string{
		&c.Datasets.PriceList,
		&c.Datasets.SalesWorkbook,
		&c.Datasets.StockBook,
		&c.Datasets.PhysicalCount,
		&c.Reports.OutputDir,
		&c.Logging.FilePath,
	}
	for _, p := range paths {
		if *p == "" || filepath.IsAbs(*p) {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

// validate checks configuration sanity
func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Security.RateLimit.Enabled && c.Security.RateLimit.RPS <= 0 {
		return fmt.Errorf("invalid rate limit rps: %f", c.Security.RateLimit.RPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Datasets.PriceList == "" || c.Datasets.SalesWorkbook == "" {
		return fmt.Errorf("sales dashboard datasets not configured")
	}
	if c.Datasets.StockBook == "" || c.Datasets.PhysicalCount == "" {
		return fmt.Errorf("variance dashboard datasets not configured")
	}

	return nil
}

// WithDefaults returns the built-in configuration without touching the
// environment or the filesystem, with rate limiting disabled. Intended
// for tests.
func WithDefaults() *Config {
	cfg := defaults()
	cfg.Security.RateLimit.Enabled = false
	return cfg
}
