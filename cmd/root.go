package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moviehub/internal/data/repository"
	"moviehub/internal/wire"
	"moviehub/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the moviehub command. Running it without a subcommand
// starts the HTTP server.
func NewRootCmd() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "moviehub",
		Short: "moviehub serves an in-memory movie catalog over HTTP",
		Long: `moviehub serves an in-memory movie catalog over HTTP.

Configuration is read from an optional env file, then environment
variables, then command line flags. The catalog is lost on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional env file")
	rootCmd.PersistentFlags().String("port", "", "HTTP server port (overrides PORT)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (overrides DEBUG)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, envFile)
		},
	})

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, envFile string) error {
	// Load config
	config, err := utils.LoadConfig(envFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using production logger.\n", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Bool("admin_reset", config.App.AdminResetEnabled),
	)

	repo := repository.NewRepository(logger)
	app := wire.Wiring(repo, config, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := APIServer(ctx, app.Router, config, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("Server stopped")
	return nil
}
