// Package config loads runtime settings for the back office in layers:
// built-in defaults, then an optional JSON file (-c/-config), then
// command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: sqlite DSN of the local medium (path or :memory:).
//   - SchemaVersion: version segment baked into every store key.
//   - SessionTTL: how long a session stays valid after sign-in.
//   - TokenSecret: HMAC key used to sign session access tokens.
type Config struct {
	DatabasePath  string
	SchemaVersion string
	SessionTTL    time.Duration
	TokenSecret   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "backoffice.db"
	c.SchemaVersion = "v1"
	c.SessionTTL = 24 * time.Hour
	c.TokenSecret = "local-dev-secret"
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
