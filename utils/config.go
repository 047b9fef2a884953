package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	DefaultSeedPath string `json:"default_seed_path"`
	AutosavePath    string `json:"autosave_path"`
	ClearScreen     bool   `json:"clear_screen"`
	ShowStats       bool   `json:"show_stats"`
	LogLevel        string `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		DefaultSeedPath: "autosave.txt",
		AutosavePath:    "autosave.txt",
		ClearScreen:     true,
		ShowStats:       true,
		LogLevel:        "info",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if config.DefaultSeedPath == "" {
		config.DefaultSeedPath = DefaultConfig().DefaultSeedPath
	}
	if config.AutosavePath == "" {
		config.AutosavePath = DefaultConfig().AutosavePath
	}

	return config, nil
}
