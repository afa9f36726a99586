// Package file provides the TOML-backed application configuration,
// stored in the tripdeck config directory.
package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application settings. Everything is optional;
// zero values fall back to built-in defaults.
type Config struct {
	// DataDir is where the annotation database lives.
	// Defaults to ~/.tripdeck/data.
	DataDir string `toml:"data_dir,omitempty"`

	// TripFile is an optional JSON baseline catalog overriding the
	// built-in trip data.
	TripFile string `toml:"trip_file,omitempty"`

	// Verbose enables diagnostic logging by default.
	Verbose bool `toml:"verbose,omitempty"`
}

// ConfigStore reads and writes the config file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a store for the TOML config file.
// If configDir is empty, defaults to ~/.tripdeck/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".tripdeck")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the configuration. A missing file yields the zero
// config, not an error.
func (s *ConfigStore) Load() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the configuration with restricted permissions.
func (s *ConfigStore) Save(cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
