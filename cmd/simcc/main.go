package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mamadbah2/simcc/internal/config"
	"github.com/mamadbah2/simcc/internal/console"
	"github.com/mamadbah2/simcc/internal/repository/relational"
	harvestsvc "github.com/mamadbah2/simcc/internal/service/harvest"
	"github.com/mamadbah2/simcc/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "simcc",
	Short: "SIMCC - sugarcane harvest monitoring",
	Long: `SIMCC records sugarcane harvest sessions, derives the harvest loss
against a reference productivity of 100 t/ha and classifies its efficiency.

Database credentials are read from DB_USER, DB_PASSWORD and DB_DSN
(optionally through a .env file in the working directory).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("%w\nSet DB_USER, DB_PASSWORD and DB_DSN in the environment or in a .env file", err)
	}

	// the level was validated by config.Load
	baseLogger := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Output))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := relational.NewRelationalRepository(cfg.Database, logger.Named(baseLogger, "repo.relational"))
	if err != nil {
		return err
	}

	// A missing table is created here; an unreachable database is only
	// reported so the menu stays available.
	if err := repo.EnsureSchema(ctx); err != nil {
		baseLogger.Warn("schema check failed", zap.Error(err))
	}

	svc := harvestsvc.NewService(repo, logger.Named(baseLogger, "svc.harvest"))
	shell := console.NewShell(svc, os.Stdin, os.Stdout, logger.Named(baseLogger, "shell"))

	baseLogger.Info("simcc started", zap.String("driver", cfg.Database.Driver))
	return shell.Run(ctx)
}
