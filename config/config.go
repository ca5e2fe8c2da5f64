package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	API    APIConfig
	Output OutputConfig
	Log    LogConfig
}

// APIConfig controls the marketplace catalog client.
type APIConfig struct {
	// BaseURL is the catalog search endpoint.
	BaseURL string // default: the wccom-extensions 1.0 search path

	// UserAgent is the identifying header sent on every page request.
	UserAgent string // default: "Mozilla/5.0 (compatible; Script/1.0)"

	// Timeout bounds each individual page request.
	Timeout time.Duration // default: 30s

	// MaxPages caps the pagination loop as a safety net against a
	// misbehaving total_pages value. 0 disables the cap.
	MaxPages int // default: 500

	// Offline substitutes the fixed sample dataset for the live fetch.
	Offline bool // default: true
}

// OutputConfig controls where the record list is written.
type OutputConfig struct {
	// CSVPath is the delimited-text output file. Empty disables it.
	CSVPath string // default: "woocommerce_extensions.csv"

	// XLSXPath is the spreadsheet output file. Empty disables it.
	XLSXPath string // default: "woocommerce_extensions.xlsx"

	// JSONPath is an optional JSON output file. Empty disables it.
	JSONPath string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   envOr("WOOSCRAPE_BASE_URL", "https://woocommerce.com/wp-json/wccom-extensions/1.0/search"),
			UserAgent: envOr("WOOSCRAPE_USER_AGENT", "Mozilla/5.0 (compatible; Script/1.0)"),
			Timeout:   envDurationOr("WOOSCRAPE_TIMEOUT", 30*time.Second),
			MaxPages:  envIntOr("WOOSCRAPE_MAX_PAGES", 500),
			Offline:   envBoolOr("WOOSCRAPE_OFFLINE", true),
		},
		Output: OutputConfig{
			CSVPath:  envOr("WOOSCRAPE_CSV_PATH", "woocommerce_extensions.csv"),
			XLSXPath: envOr("WOOSCRAPE_XLSX_PATH", "woocommerce_extensions.xlsx"),
			JSONPath: os.Getenv("WOOSCRAPE_JSON_PATH"),
		},
		Log: LogConfig{
			Level:  envOr("WOOSCRAPE_LOG_LEVEL", "info"),
			Format: envOr("WOOSCRAPE_LOG_FORMAT", "text"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
