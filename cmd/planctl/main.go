package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phaseplan/internal/config"
	"phaseplan/internal/database"
	"phaseplan/internal/repository"
	"phaseplan/internal/service"
)

var Version = "dev"

// app bundles the opened database and services for one command run
type app struct {
	db      *database.DB
	repo    *repository.StateRepository
	state   *service.StateService
	backups *service.BackupService
	reports *service.ReportService
}

func openApp() (*app, error) {
	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := repository.NewStateRepository(db, cfg.StateKey)
	state := service.NewStateService(repo)
	return &app{
		db:      db,
		repo:    repo,
		state:   state,
		backups: service.NewBackupService(state),
		reports: service.NewReportService(),
	}, nil
}

func (a *app) Close() {
	a.db.Close()
}

// withApp opens the app around run
func withApp(run func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return run(a, cmd, args)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "planctl",
		Short:        "PhasePlan maintenance: backups, reports and lookups",
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(resetCmd())
	rootCmd.AddCommand(insightsCmd())
	rootCmd.AddCommand(trendCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(xlsxCmd())
	rootCmd.AddCommand(icsCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
