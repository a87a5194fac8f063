package config

import (
	"encoding/json"
	"os"

	"github.com/magangjo/backoffice/internal/flagx"
	"github.com/magangjo/backoffice/internal/timex"
)

// JSONConfig is a DTO used only for unmarshalling the config file. The
// session TTL may be given either as a string like "24h" or as integer
// nanoseconds.
type JSONConfig struct {
	DatabasePath  string         `json:"database_path"`
	SchemaVersion string         `json:"schema_version"`
	SessionTTL    timex.Duration `json:"session_ttl"`
	TokenSecret   string         `json:"token_secret"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent flag means no JSON layer. Read or unmarshal failures panic; the
// binary cannot run with a half-applied config.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SchemaVersion != "" {
		cfg.SchemaVersion = jc.SchemaVersion
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
}
