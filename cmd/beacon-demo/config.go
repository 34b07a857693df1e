package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo's YAML configuration.
type Config struct {
	// Logging is the hub delivery log level: none, info, or verbose.
	Logging string `yaml:"logging"`

	// Service names the demo traffic source.
	Service string `yaml:"service"`

	// Adapters toggles the shipped reference adapters.
	Adapters struct {
		Console    bool `yaml:"console"`
		Prometheus bool `yaml:"prometheus"`
	} `yaml:"adapters"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	cfg := Config{
		Logging: "info",
		Service: "beacon-demo",
	}
	cfg.Adapters.Console = true
	return cfg
}

// LoadConfig reads a YAML config file, layering it over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
