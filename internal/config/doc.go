// Package config provides centralized configuration management for the
// RetailPulse dashboards. It handles loading configuration from multiple
// sources, validation, and a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern RETAILPULSE_* for namespacing:
//
//	RETAILPULSE_SERVER_PORT=8080
//	RETAILPULSE_LOGGING_LEVEL=info
//	RETAILPULSE_DATASETS_PRICE_LIST="data/price list.xlsx"
//	RETAILPULSE_DATASETS_STOCK_BOOK="data/stock book.xlsx"
//
// # Dataset Paths
//
// Each dashboard reads exactly two workbooks: a reference table and a
// transaction table. Paths are resolved to absolute form at load time so the
// process-wide loader cache key is stable.
//
// # Testing
//
// For testing, use config.WithDefaults() to create a configuration with
// sensible defaults that don't require environment variables or external
// resources.
package config
