// Package config loads phytocert configuration from phytocert.yaml,
// falling back to defaults when the file is absent and applying
// environment overrides on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all phytocert configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Record store
	Storage StorageConfig `yaml:"storage"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Public portal surface
	Portal PortalConfig `yaml:"portal"`
}

// StorageConfig configures the record store.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures the categorized file logger.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"` // debug, info, warn, error
}

// PortalConfig configures the public lookup surface.
type PortalConfig struct {
	// Base URL the QR payload links back into. Informational only; the
	// payload itself is plain text.
	BaseURL string `yaml:"base_url"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "phytocert",
		Version: "1.0.0",

		Storage: StorageConfig{
			DatabasePath: "data/phytocert.db",
		},

		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},

		Portal: PortalConfig{
			BaseURL: "https://verify.moccae.gov.ae",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment trump file values.
//
//	PHYTOCERT_DB    - record store database path
//	PHYTOCERT_DEBUG - "1"/"true" enables debug logging
//	PHYTOCERT_LOG_LEVEL - debug/info/warn/error
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PHYTOCERT_DB"); v != "" {
		c.Storage.DatabasePath = v
	}
	if v := os.Getenv("PHYTOCERT_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
	if v := os.Getenv("PHYTOCERT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Storage.DatabasePath == "" {
		return fmt.Errorf("storage.database_path must not be empty")
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug/info/warn/error", c.Logging.Level)
	}
	return nil
}
