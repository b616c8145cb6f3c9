package commands

import (
	"context"

	"github.com/alan/issues-downloader/cmd"
	"github.com/alan/issues-downloader/internal/config"
	"github.com/alan/issues-downloader/internal/github"
)

// BaseCommand provides common fields and initialization for commands that talk to GitHub
type BaseCommand struct {
	ConfigFile      *string
	EnvFile         *string
	LoadConfig      func(string) (*cmd.Config, error)
	LoadCredentials func(string) (config.Credentials, error)
	GitHubClient    *github.Client
	Config          *cmd.Config
}

// Init loads settings and credentials and creates a GitHub client scoped to owner/repo
func (bc *BaseCommand) Init(ctx context.Context, owner, repo string) error {
	settings, err := LoadConfigOrDefault(bc.LoadConfig, *bc.ConfigFile)
	if err != nil {
		return err
	}
	bc.Config = settings

	loadCredentials := bc.LoadCredentials
	if loadCredentials == nil {
		loadCredentials = config.LoadCredentials
	}

	var envFile string
	if bc.EnvFile != nil {
		envFile = *bc.EnvFile
	}
	creds, err := loadCredentials(envFile)
	if err != nil {
		return err
	}

	client, err := InitializeGitHubClient(ctx, creds, settings)
	if err != nil {
		return err
	}
	bc.GitHubClient = client.WithRepository(owner, repo)

	return nil
}
