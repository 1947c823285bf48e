package cmd

import (
	"fmt"
	"os"

	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/config"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/logger"
	"github.com/saurav-thakur/Youtube-Comments-Sentiments-Analysis/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sentiment-storage",
	Short: "Storage tooling for the YouTube comment sentiment pipeline",
	Long: `sentiment-storage manages the object-storage side of the sentiment
pipeline: dataset CSV upload/download, folder markers, and Keras model
artifacts staged from the bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// runtime bundles what every command needs: configuration, a logger and a
// connected storage client.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
}

func initRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &runtime{cfg: cfg, logger: l, client: client}, nil
}
