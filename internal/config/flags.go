package config

import (
	"flag"
	"os"
	"time"

	"github.com/magangjo/backoffice/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   sqlite DSN of the local database (default from Config)
//	-v string   schema version segment of store keys
//	-t int      session TTL in hours
//
// The args are filtered to only the flags handled here so other
// packages' flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-v", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "sqlite database path")
	fs.StringVar(&cfg.SchemaVersion, "v", cfg.SchemaVersion, "store schema version")
	ttlHours := fs.Int("t", int(cfg.SessionTTL.Hours()), "session TTL (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*ttlHours) * time.Hour
}
