package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// envConfig mirrors the environment variables read at startup. Unset
// variables keep the zero value and do not override earlier layers.
type envConfig struct {
	APIBaseURL     string         `env:"API_BASE_URL"`
	ViteAPIBaseURL string         `env:"VITE_API_BASE_URL"`
	SessionDB      string         `env:"DASHBOARD_SESSION_DB"`
	Locale         string         `env:"DASHBOARD_LOCALE"`
	LogLevel       string         `env:"DASHBOARD_LOG_LEVEL"`
	RequestTimeout *time.Duration `env:"DASHBOARD_REQUEST_TIMEOUT"`
}

// loadDotEnv exports the variables of path into the process environment.
// Variables that are already set win; a missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseEnv(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	switch {
	case ec.APIBaseURL != "":
		cfg.APIBaseURL = ec.APIBaseURL
	case ec.ViteAPIBaseURL != "":
		cfg.APIBaseURL = ec.ViteAPIBaseURL
	}
	if ec.SessionDB != "" {
		cfg.SessionDB = ec.SessionDB
	}
	if ec.Locale != "" {
		cfg.Locale = ec.Locale
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	return nil
}
