package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures environment driven configuration values for the portal.
type Config struct {
	HTTPPort   int
	APIBaseURL string
	APITimeout time.Duration
	SQLiteDSN  string
	LogLevel   string
}

// Load parses configuration values from the current process environment.
//
// The loader applies defaults for optional fields while validating required
// values, accumulating every problem into a single error so operators see the
// full list at once.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:   3000,
		APITimeout: 15 * time.Second,
		SQLiteDSN:  "file:portal.db?_foreign_keys=on",
		LogLevel:   "info",
	}

	missing := make([]string, 0, 1)
	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("PORTAL_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "PORTAL_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if base := strings.TrimSpace(os.Getenv("PORTAL_API_BASE_URL")); base == "" {
		missing = append(missing, "PORTAL_API_BASE_URL")
	} else {
		cfg.APIBaseURL = strings.TrimRight(base, "/")
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("PORTAL_API_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "PORTAL_API_TIMEOUT")
		} else {
			cfg.APITimeout = timeout
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("PORTAL_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if level := strings.TrimSpace(os.Getenv("PORTAL_LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
