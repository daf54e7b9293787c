// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// External services
	APIKey             string `json:"api_key,omitempty"`             // Gemini API key for embeddings
	ClassifierEndpoint string `json:"classifier_endpoint,omitempty"` // Strength classifier URL
	DatabaseURL        string `json:"database_url,omitempty"`        // PostgreSQL connection URL

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // Per external call
	DisableCache   bool `json:"disable_cache,omitempty"`   // Force fresh embeddings (debug)
	UseBrowser     bool `json:"use_browser,omitempty"`     // Headless browser for SPA job boards
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information

	// Combination weights (0 means use the engine default)
	ClassifierBlend float64 `json:"classifier_blend,omitempty"` // Share of strength from the classifier (0.0-1.0)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.ClassifierBlend < 0 || c.ClassifierBlend > 1 {
		return fmt.Errorf("config error: 'classifier_blend' must be between 0 and 1")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ClassifierEndpoint == "" {
		result.ClassifierEndpoint = defaults.ClassifierEndpoint
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.ClassifierBlend == 0 {
		result.ClassifierBlend = defaults.ClassifierBlend
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
