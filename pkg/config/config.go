// Package config persists the CLI settings as a single JSON file in the
// platform config directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	appDirName     = "TasksCLI"
	configFileName = "config.json"
)

// Config holds the persisted settings.
type Config struct {
	// GlobalFile is the default target file for new tasks. Empty means
	// unset; create then requires an explicit --file.
	GlobalFile string `json:"global_file,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{}
}

// Path returns the config file location under the platform config
// directory, creating the directory if needed.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine a configuration directory: %w", err)
	}
	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the configuration from path. A missing file yields the
// defaults. A file that cannot be parsed also yields the defaults, with a
// warning: a corrupt config must never block task creation.
func Load(path string, log *zap.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Warn("could not parse config file, using defaults",
			zap.String("path", path),
			zap.Error(err))
		return Default(), nil
	}
	return cfg, nil
}

// Save writes the configuration to path as pretty-printed JSON, replacing
// any previous contents wholesale.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
