// Package config loads intentbench configuration from
// .intentbench/config.yaml in the workspace, with defaults for every
// field so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"intentbench/internal/classifier"
)

// Config holds all intentbench configuration.
type Config struct {
	// Classifier under test
	Classifier classifier.Config `yaml:"classifier"`

	// Evaluation settings
	Evaluation EvaluationConfig `yaml:"evaluation"`

	// Run history
	History HistoryConfig `yaml:"history"`

	// Logging (read independently by the logging package)
	Logging LoggingConfig `yaml:"logging"`
}

// EvaluationConfig tunes the evaluation engine.
type EvaluationConfig struct {
	CaseTimeout string `yaml:"case_timeout"` // e.g. "10s"
	Workers     int    `yaml:"workers"`
}

// HistoryConfig configures the SQLite run history.
type HistoryConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path"` // default: .intentbench/history.db
}

// LoggingConfig mirrors the section consumed by internal/logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Classifier: classifier.DefaultConfig(),
		Evaluation: EvaluationConfig{CaseTimeout: "10s", Workers: 1},
		History:    HistoryConfig{},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load reads config from the workspace, applying defaults and
// environment overrides. A missing file yields the defaults.
func Load(workspace string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(workspace, ".intentbench", "config.yaml")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Secrets come from the environment, never the config file on disk.
	if key := os.Getenv("INTENTBENCH_GENAI_KEY"); key != "" {
		cfg.Classifier.Embedding.GenAIAPIKey = key
	}

	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(workspace, ".intentbench", "history.db")
	}
	return cfg, nil
}

// CaseTimeout parses the evaluation case timeout, falling back to 10s.
func (c *Config) CaseTimeout() time.Duration {
	d, err := time.ParseDuration(c.Evaluation.CaseTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
