// pkg/config/config.go
// Package config loads the cratesync configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds cratesync configuration
type Config struct {
	CargoPath string   `yaml:"cargo_path"` // cargo binary to invoke
	Locked    bool     `yaml:"locked"`     // pass --locked by default
	Exclude   []string `yaml:"exclude"`    // package name globs to always skip
	Verbose   bool     `yaml:"verbose"`    // enable debug logging
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CargoPath: "cargo",
	}
}

// Load loads configuration from file. A missing file is not an error;
// defaults are returned instead.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "cratesync", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
