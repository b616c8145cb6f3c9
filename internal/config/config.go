// Package config provides functions for loading and saving issues-downloader settings and credentials.
package config

import (
	"fmt"
	"os"

	"github.com/alan/issues-downloader/cmd"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads the configuration from the specified file.
// Keys missing from the file keep their default values.
func LoadConfig(filename string) (*cmd.Config, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // Config filename is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := cmd.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(filename string, config *cmd.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func validate(config *cmd.Config) error {
	if config.IssuesDir == "" {
		return fmt.Errorf("issues_dir must not be empty")
	}
	if config.ContentsDir == "" {
		return fmt.Errorf("contents_dir must not be empty")
	}
	if config.ContentDelay < 0 {
		return fmt.Errorf("content_delay must not be negative")
	}
	if config.PerPage < 1 || config.PerPage > 100 {
		return fmt.Errorf("per_page must be between 1 and 100, got %d", config.PerPage)
	}
	return nil
}
