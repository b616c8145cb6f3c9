// Package config implements the config command for creating and inspecting the settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/alan/issues-downloader/cmd"
	"github.com/alan/issues-downloader/internal/commands"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initOptions holds the values accepted by config init
type initOptions struct {
	issuesDir    string
	contentsDir  string
	contentDelay time.Duration
	apiURL       string
	perPage      int
	force        bool
}

// NewConfigCmd creates and returns the config command
func NewConfigCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error), saveConfig func(string, *cmd.Config) error) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the issues-downloader settings file",
	}

	configCmd.AddCommand(newInitCmd(globalConfigFile, saveConfig))
	configCmd.AddCommand(newShowCmd(globalConfigFile, loadConfig))

	return configCmd
}

func newInitCmd(globalConfigFile *string, saveConfig func(string, *cmd.Config) error) *cobra.Command {
	opts := &initOptions{}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with default values",
		Long: `Init creates the settings file with default directories, content delay
and page size. Flags override individual defaults.

An existing settings file is only replaced when --force is given.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runInit(cobraCmd.OutOrStdout(), *globalConfigFile, opts, saveConfig)
		},
	}

	defaults := cmd.DefaultConfig()
	initCmd.Flags().StringVar(&opts.issuesDir, "issues-dir", defaults.IssuesDir, "Directory for issue markdown files")
	initCmd.Flags().StringVar(&opts.contentsDir, "contents-dir", defaults.ContentsDir, "Directory for downloaded contents")
	initCmd.Flags().DurationVar(&opts.contentDelay, "content-delay", defaults.ContentDelay, "Delay between content downloads")
	initCmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (GitHub Enterprise)")
	initCmd.Flags().IntVar(&opts.perPage, "per-page", defaults.PerPage, "Issues requested per page (1-100)")
	initCmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing settings file")

	return initCmd
}

func runInit(out io.Writer, configFile string, opts *initOptions, saveConfig func(string, *cmd.Config) error) error {
	if !opts.force {
		if _, err := os.Stat(configFile); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", configFile)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}
	}

	if opts.perPage < 1 || opts.perPage > 100 {
		return fmt.Errorf("per-page must be between 1 and 100, got %d", opts.perPage)
	}
	if opts.contentDelay < 0 {
		return fmt.Errorf("content-delay must not be negative")
	}

	settings := &cmd.Config{
		IssuesDir:    opts.issuesDir,
		ContentsDir:  opts.contentsDir,
		ContentDelay: opts.contentDelay,
		APIURL:       opts.apiURL,
		PerPage:      opts.perPage,
	}

	if err := saveConfig(configFile, settings); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "Successfully initialized %s with:\n", configFile)
	fmt.Fprintf(out, "  Issues directory: %s\n", settings.IssuesDir)
	fmt.Fprintf(out, "  Contents directory: %s\n", settings.ContentsDir)
	fmt.Fprintf(out, "  Content delay: %s\n", settings.ContentDelay)
	fmt.Fprintf(out, "  Per page: %d\n", settings.PerPage)
	if settings.APIURL != "" {
		fmt.Fprintf(out, "  API URL: %s\n", settings.APIURL)
	}
	return nil
}

func newShowCmd(globalConfigFile *string, loadConfig func(string) (*cmd.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Print the effective settings as YAML",
		Long:         `Show prints the settings a download would use. Defaults are shown when the settings file does not exist.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			return runShow(cobraCmd.OutOrStdout(), *globalConfigFile, loadConfig)
		},
	}
}

func runShow(out io.Writer, configFile string, loadConfig func(string) (*cmd.Config, error)) error {
	settings, err := commands.LoadConfigOrDefault(loadConfig, configFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	_, err = out.Write(data)
	return err
}
