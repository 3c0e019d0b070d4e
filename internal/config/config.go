package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbaumann/ferry/internal/logger"
)

// Config holds the persisted Ferry settings.
type Config struct {
	ShowHidden bool   `json:"show_hidden"`
	Editor     string `json:"editor"`
	StartDir   string `json:"start_dir"` // optional override when no argument is given
}

// Load reads config from ~/.config/ferry/config.json, writing defaults on
// first run. Load never fails; a broken file falls back to defaults.
func Load() *Config {
	defaults := &Config{
		ShowHidden: false,
		Editor:     "",
		StartDir:   "",
	}

	path, err := Path()
	if err != nil {
		logger.Error("failed to locate config: %v", err)
		return defaults
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("failed to create config directory: %v", err)
		return defaults
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if err := Save(defaults); err != nil {
			logger.Warn("failed to save default config: %v", err)
		}
		return defaults
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("failed to parse config file %s: %v, using defaults", path, err)
		return defaults
	}

	return cfg
}

// Save writes config to ~/.config/ferry/config.json.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("cannot locate config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// Path returns the config file location.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "ferry", "config.json"), nil
}
