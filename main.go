// package main is the entry point for the issues downloader
package main

import (
	"context"
	"log/slog"
	"os"

	configcmd "github.com/alan/issues-downloader/cmd/config"
	"github.com/alan/issues-downloader/cmd/download"
	"github.com/alan/issues-downloader/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var envFile string
	var logLevel string
	var logFormat string

	rootCmd := download.NewDownloadCmd(&configFile, &envFile, config.LoadConfig)
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		setupLogger(logLevel, logFormat)
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "issues-downloader.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File with GITHUB_USER, GITHUB_PASSWORD or GITHUB_TOKEN")

	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfig, config.SaveConfig))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
