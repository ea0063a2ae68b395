// config/overlay.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	EnvDataDir   = "ROJOBS_DATA_DIR"
	EnvOutputDir = "ROJOBS_OUTPUT_DIR"
	EnvBasename  = "ROJOBS_BASENAME"
	EnvLogLevel  = "ROJOBS_LOG_LEVEL"
	EnvWorkers   = "ROJOBS_WORKERS"
)

// OverlayEnv applies environment overrides on top of the file config.
func OverlayEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvOutputDir)); v != "" {
		cfg.App.OutputDir = v
	}
	if v := strings.TrimSpace(getenv(EnvBasename)); v != "" {
		cfg.App.Basename = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.App.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Scrape.Workers = n
	}
	return nil
}
