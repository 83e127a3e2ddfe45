// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and environment variables.
// - External errors must be wrapped via this package's error helpers.
package config

// Upstream API defaults. These are public, unauthenticated endpoints.
const (
	DefaultWHOGHOBaseURL    = "https://ghoapi.azureedge.net/api"
	DefaultWorldBankBaseURL = "https://api.worldbank.org/v2"
	DefaultOECDBaseURL      = "https://sdmx.oecd.org/public/rest/data"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// HTTPTimeoutSeconds bounds each upstream API call.
	HTTPTimeoutSeconds int `koanf:"http_timeout_seconds"`

	// RequestDelayMS is the courtesy pause between upstream calls.
	// Not a backpressure mechanism; just avoids hammering public APIs.
	RequestDelayMS int `koanf:"request_delay_ms"`

	// OutputDir is where CSV snapshots are written.
	OutputDir string `koanf:"output_dir"`

	// MaxRunsRetained caps the in-memory run history kept for exports.
	MaxRunsRetained int `koanf:"max_runs_retained"`

	// Upstream base URLs, overridable for testing against fixtures.
	WHOGHOBaseURL    string `koanf:"who_gho_base_url"`
	WorldBankBaseURL string `koanf:"world_bank_base_url"`
	OECDBaseURL      string `koanf:"oecd_base_url"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		HTTPTimeoutSeconds: 30,
		RequestDelayMS:     500,
		OutputDir:          ".",
		MaxRunsRetained:    20,
		WHOGHOBaseURL:      DefaultWHOGHOBaseURL,
		WorldBankBaseURL:   DefaultWorldBankBaseURL,
		OECDBaseURL:        DefaultOECDBaseURL,
	}
}
