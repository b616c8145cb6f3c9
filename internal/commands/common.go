// Package commands holds initialization shared by the CLI commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/alan/issues-downloader/cmd"
	"github.com/alan/issues-downloader/internal/config"
	"github.com/alan/issues-downloader/internal/github"
)

// LoadConfigOrDefault loads the settings file, falling back to defaults when it does not exist
func LoadConfigOrDefault(loadConfig func(string) (*cmd.Config, error), configFile string) (*cmd.Config, error) {
	settings, err := loadConfig(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Config file not found, using defaults", "config", configFile)
		return cmd.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// InitializeGitHubClient creates a GitHub client from credentials and settings.
// A token selects OAuth2 authentication; otherwise basic authentication is used.
func InitializeGitHubClient(ctx context.Context, creds config.Credentials, settings *cmd.Config) (*github.Client, error) {
	var client *github.Client
	if creds.UseToken() {
		slog.Debug("Using token authentication")
		client = github.NewClient(ctx, creds.Token)
	} else {
		slog.Debug("Using basic authentication", "user", creds.User)
		client = github.NewBasicAuthClient(creds.User, creds.Password)
	}

	if settings.APIURL != "" {
		if err := client.SetBaseURL(settings.APIURL); err != nil {
			return nil, fmt.Errorf("invalid api_url: %w", err)
		}
	}

	return client.WithPerPage(settings.PerPage), nil
}
