package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/metricsdash/internal/flagx"
)

// parseFlags populates Config fields from the -a, -d, -l and -v flags.
// Other arguments (such as -c) are filtered out with flagx.FilterArgs so the
// layers do not trip over each other.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-v"})

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database file")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "UI locale")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
