package main

import (
	"alcyxob/training-tracker/internal/config"
	"alcyxob/training-tracker/internal/logging"
	"alcyxob/training-tracker/internal/repository"
	"alcyxob/training-tracker/internal/repository/backend"
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "trackerctl",
		Short:        "Inspect and maintain the training tracker from the command line",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")

	cmd.AddCommand(
		planCmd(),
		statsCmd(),
		resetCmd(),
		exportCmd(),
	)
	return cmd
}

// openStore loads configuration and opens the configured record store.
func openStore(ctx context.Context) (config.Config, repository.Store, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, nil, err
	}
	logging.Setup(logging.SetupParams{LogLevel: "warn"})

	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, store, nil
}

func closeStore(ctx context.Context, store repository.Store) {
	if err := store.Close(ctx); err != nil {
		log.Warnf("close store: %s", err)
	}
}
