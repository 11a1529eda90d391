package main

import (
	"fmt"
	"os"

	"github.com/countydirectory/internal/config"
	"github.com/countydirectory/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	appConfig   config.AppConfig
	log         *zap.Logger
	databaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "directoryctl",
	Short: "Maintenance commands for the county directory",
	Long: `directoryctl seeds the directory database, validates page documents
before they are uploaded, and lists stored pages.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database", "", "database DSN or sqlite path (default from DATABASE_URL)")
	rootCmd.AddCommand(seedCmd, validateCmd, pagesCmd)
}

func initialize(cmd *cobra.Command) error {
	appConfig = config.Load()
	if cmd.Flags().Changed("database") {
		appConfig.DatabaseURL = databaseURL
	}

	l, err := logger.New(logger.Options{Mode: "dev", Level: appConfig.LogLevel, File: appConfig.LogFile})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	log = l
	return nil
}
