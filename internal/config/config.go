// Package config loads and persists the datasheet CLI configuration.
//
// Configuration lives at ~/.datasheet/config.yaml. Every value has a working
// default, so a missing file is never an error. Environment variables and
// CLI flags override file values; that layering is applied by the callers,
// not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/akiselev/datasheet/internal/logging"
)

// ConfigFileName is the name of the YAML configuration file.
const ConfigFileName = "config.yaml"

// DefaultGeminiModel is the model used when neither the config file nor the
// --model flag names one.
const DefaultGeminiModel = "gemini-3-pro-preview"

// Config is the root configuration document.
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Mouser  MouserConfig  `yaml:"mouser"`
	Digikey DigikeyConfig `yaml:"digikey"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generative extraction backend.
type GeminiConfig struct {
	// APIKey is the lowest-precedence key source; flags and env vars win.
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// MouserConfig configures the Mouser part-search API.
type MouserConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// DigikeyConfig configures the DigiKey part-search API.
type DigikeyConfig struct {
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	Sandbox      bool   `yaml:"sandbox,omitempty"`
}

// CacheConfig configures the upload cache location.
type CacheConfig struct {
	// Dir overrides the platform cache directory. Empty means auto-detect.
	Dir string `yaml:"dir,omitempty"`
}

// LoggingConfig configures the zerolog setup.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
}

// ToLoggingConfig bridges the YAML logging section to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:      lc.Level,
		Format:     lc.Format,
		File:       lc.File,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
	}
}

// Default returns a Config populated with working defaults.
func Default() *Config {
	return &Config{
		Gemini: GeminiConfig{
			Model: DefaultGeminiModel,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// New loads the configuration from the default path, falling back to
// defaults when the file is missing or unreadable. Configuration is
// optional, so New never fails.
func New() *Config {
	path, err := FilePath()
	if err != nil {
		return Default()
	}

	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Load reads a Config from path. Defaults are applied first so absent keys
// keep their default values. A missing file returns defaults without error;
// malformed YAML is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serializing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
