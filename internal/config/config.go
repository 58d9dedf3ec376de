// Package config loads gamemarks settings from defaults, a YAML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is looked up in the working directory when no path is given
const ConfigFileName = "gamemarks.yaml"

// DefaultResultsDir is where artifacts go unless configured otherwise
const DefaultResultsDir = "booked-results"

// Config holds the configuration for a sweep
type Config struct {
	ResultsDir     string   `yaml:"results_dir"`
	IgnorePatterns []string `yaml:"ignore_patterns"`
	LogLevel       string   `yaml:"log_level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ResultsDir:     DefaultResultsDir,
		IgnorePatterns: make([]string, 0),
		LogLevel:       "info",
	}
}

// Load loads the configuration from environment variables or defaults
func Load() *Config {
	cfg := Default()
	cfg.ApplyEnv()
	return cfg
}

// LoadFile overlays the YAML file at path onto the defaults.
func LoadFile(path string) (*Config, error) {
	//nolint:gosec // G304: path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.ResultsDir == "" {
		cfg.ResultsDir = DefaultResultsDir
	}
	return cfg, nil
}

// ApplyEnv overrides fields from GAMEMARKS_* variables that are set
func (c *Config) ApplyEnv() {
	c.ResultsDir = getEnv("GAMEMARKS_RESULTS_DIR", c.ResultsDir)
	c.LogLevel = getEnv("GAMEMARKS_LOG_LEVEL", c.LogLevel)
	if v := os.Getenv("GAMEMARKS_IGNORE"); v != "" {
		c.IgnorePatterns = splitList(v)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(v string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
