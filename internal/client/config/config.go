package config

import (
	"time"

	"github.com/dmitrijs2005/metricsdash/internal/client/api"
	"github.com/dmitrijs2005/metricsdash/internal/client/i18n"
)

// Config holds runtime settings for the dashboard CLI.
//
// RequestTimeout of zero leaves the HTTP client without a timeout.
type Config struct {
	APIBaseURL     string
	SessionDB      string
	Locale         string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = api.DefaultBaseURL
	c.SessionDB = "dashboard.db"
	c.Locale = i18n.DefaultLocale
	c.LogLevel = "info"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config from defaults, the optional config file,
// the environment and finally the flags in args (os.Args[1:]). Later sources
// take precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
