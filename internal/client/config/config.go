package config

import "time"

// Config holds runtime settings for the prepshare CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend REST API.
//   - RequestTimeout: per-request bound for outgoing API calls.
//   - CacheDSN: path/DSN of the local SQLite cache database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	CacheDSN       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CacheDSN = "prepshare.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
