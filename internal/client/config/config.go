// Package config loads runtime settings for the admin CLI.
//
// Values are layered: struct defaults first, then a JSON config file (path
// given via -c/-config), then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - APIBaseURL: root of the administration REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: SQLite file backing the credential store.
//   - PageSize: users fetched per page by the list command.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5222"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "admincli.db"
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
