package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file inside the
	// store directory. This file is user-managed and never written by imgdup.
	userConfigFile = ".imgdupconfig.yaml"

	// DefaultChunkLength is the substring length used for partial matching
	// when the config does not override it.
	DefaultChunkLength = 120
)

// DefaultExtensions are the file suffixes accepted when scanning a directory.
var DefaultExtensions = []string{"jpg", "jpeg", "png"}

// Config represents user configuration from .imgdupconfig.yaml.
type Config struct {
	// AcceptedExtensions controls which files are picked up from a directory.
	AcceptedExtensions []string `yaml:"accepted_extensions"`

	// ChunkLength is the substring length used for partial matching.
	ChunkLength int `yaml:"chunk_length"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		AcceptedExtensions: append([]string(nil), DefaultExtensions...),
		ChunkLength:        DefaultChunkLength,
	}
}

// LoadConfig loads .imgdupconfig.yaml from the store directory if it exists,
// otherwise returns defaults. Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	configPath := filepath.Join(s.root, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults and overlay whatever the file sets
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if cfg.ChunkLength <= 0 {
		return nil, fmt.Errorf("invalid chunk_length %d in %s: must be positive", cfg.ChunkLength, userConfigFile)
	}
	if len(cfg.AcceptedExtensions) == 0 {
		cfg.AcceptedExtensions = append([]string(nil), DefaultExtensions...)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
