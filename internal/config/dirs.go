package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the configuration directory when set.
const EnvConfigDir = "DATASHEET_CONFIG_DIR"

// Dir returns the path to the datasheet configuration directory
// (~/.datasheet by default, DATASHEET_CONFIG_DIR when set).
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".datasheet"), nil
}

// FilePath returns the full path to the configuration file.
func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// EnsureDir creates the configuration directory if it does not exist.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}
