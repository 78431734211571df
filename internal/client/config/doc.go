// Package config loads runtime configuration for the dashboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are decoded as YAML, anything else as JSON.
//  3. Environment: a .env file in the working directory is loaded first
//     without overriding variables that are already set, then the process
//     environment is applied.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL (without the /api prefix)
//	-d string   path of the SQLite session file
//	-l string   UI locale (pt-BR, en-US)
//	-v string   log level (debug, info, warn, error)
//
// Environment variables
//
//	API_BASE_URL               backend base URL
//	VITE_API_BASE_URL          backend base URL, used when API_BASE_URL is unset
//	DASHBOARD_SESSION_DB       path of the SQLite session file
//	DASHBOARD_LOCALE           UI locale
//	DASHBOARD_LOG_LEVEL        log level
//	DASHBOARD_REQUEST_TIMEOUT  HTTP client timeout, e.g. "10s"
//
// # File schema
//
// Durations accept strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "session_db": "dashboard.db",
//	  "locale": "pt-BR",
//	  "log_level": "info",
//	  "request_timeout": "10s"
//	}
package config
