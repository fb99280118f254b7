// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultReportTitle is used when the config omits a report title.
	defaultReportTitle = "kriterion: Benchmark Results"
	// defaultMaxRows caps how many rows the filter command prints to the terminal.
	defaultMaxRows = 200
)

// Config represents the top-level application configuration.
type Config struct {
	Results     string `json:"results,omitempty"`
	Debug       bool   `json:"debug"`
	JSONMode    bool   `json:"jsonMode"`
	LogFile     string `json:"logFile,omitempty"`
	ReportTitle string `json:"reportTitle,omitempty"`
	MaxRows     int    `json:"maxRows,omitempty"`
	ConfigPath  string `json:"-"`
}

// Title returns the report title, falling back to the default when unset.
func (c Config) Title() string {
	if c.ReportTitle == "" {
		return defaultReportTitle
	}
	return c.ReportTitle
}

// RowLimit returns the configured terminal row cap, falling back to the default.
func (c Config) RowLimit() int {
	if c.MaxRows <= 0 {
		return defaultMaxRows
	}
	return c.MaxRows
}

// Load reads a JSON config file from the given path. It is used by tests
// and as a fallback; the CLI normally loads configuration through viper so
// flags can override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ConfigPath = path
	return &cfg, nil
}
