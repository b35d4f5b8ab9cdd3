// Package config handles configuration loading and validation for scopepad.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Theme         string   `yaml:"theme"`          // dark, light, or auto
	SubmitTimeout int      `yaml:"submit_timeout"` // seconds; bounds each form submission
	EventBuffer   int      `yaml:"event_buffer"`   // event bus channel capacity
	PinnedTags    []string `yaml:"pinned_tags"`    // tag globs surfaced first in listings
	DefaultScope  string   `yaml:"default_scope"`  // scope name or ID used when none is given
	DataDir       string   `yaml:"-"`              // set by caller, not from config file
}

// Themes supported by the TUI.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:         ThemeAuto,
		SubmitTimeout: 30,
		EventBuffer:   64,
		PinnedTags:    []string{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.SubmitTimeout == 0 {
		c.SubmitTimeout = defaults.SubmitTimeout
	}
	if c.EventBuffer == 0 {
		c.EventBuffer = defaults.EventBuffer
	}
	if c.PinnedTags == nil {
		c.PinnedTags = []string{}
	}
}

// SubmitTimeoutDuration returns the submit timeout as a time.Duration.
func (c *Config) SubmitTimeoutDuration() time.Duration {
	return time.Duration(c.SubmitTimeout) * time.Second
}
