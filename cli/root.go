// Package cli holds the wisdom command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/config"
	"github.com/andrewpaige1/wisdom-compass-api/logging"
	"github.com/andrewpaige1/wisdom-compass-api/seed"
	"github.com/andrewpaige1/wisdom-compass-api/server"
)

var configFile string

// NewRootCommand builds the command tree. Running it without a subcommand serves.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "wisdom",
		Short:         "Wisdom Compass API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML or TOML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate, seed if configured, and serve the API",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update database tables",
			RunE:  runMigrate,
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default catalog into an empty database",
			RunE:  runSeed,
		},
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap loads config, builds the logger and opens a migrated database.
// The auth section is only checked when requireAuth is set.
func bootstrap(requireAuth bool) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if requireAuth {
		if err := cfg.Validate(); err != nil {
			return nil, nil, nil, err
		}
	}

	logger, err := logging.New(cfg.Server.LogLevel, cfg.Server.LogFormat)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := config.Connect(cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, nil, err
	}
	logger.Info("Database ready", zap.String("driver", cfg.Database.Driver))
	return cfg, logger, db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, db, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Seed.OnStart {
		if _, err := seed.Run(cmd.Context(), db, logger); err != nil {
			return err
		}
	}

	app, err := server.New(cfg, db, logger)
	if err != nil {
		return err
	}
	return app.Run(cmd.Context())
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, logger, _, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("Migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	_, logger, db, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	result, err := seed.Run(cmd.Context(), db, logger)
	if err != nil {
		return err
	}
	logger.Info("Seed finished",
		zap.Bool("skipped", result.Skipped),
		zap.Int("characters", result.Characters),
		zap.Int("philosophies", result.Philosophies),
		zap.Int("quotes", result.Quotes),
	)
	return nil
}
