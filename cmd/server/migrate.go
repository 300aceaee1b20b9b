package main

import (
	"errors"
	"fmt"
	"strconv"

	"payment-api/internal/config"
	"payment-api/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var seed bool
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				if err := runner.WaitForDatabase(); err != nil {
					return err
				}
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				return runner.LoadSeeds()
			}, seed)
		},
	}
	up.Flags().BoolVar(&seed, "seed", false, "load seed data after migrating")

	down := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back applied migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid steps %q: %w", args[0], err)
				}
				steps = n
			}
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				return runner.Rollback(steps)
			}, false)
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(func(runner *database.MigrationRunner) error {
				version, dirty, err := runner.GetMigrationStatus()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version: %d, dirty: %t\n", version, dirty)
				return nil
			}, false)
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func withMigrationRunner(fn func(*database.MigrationRunner) error, seed bool) error {
	cfg := config.Load()
	newLogger(cfg)

	db, err := database.OpenSQL(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	migrationCfg := cfg.Migration
	migrationCfg.Seed = migrationCfg.Seed || seed

	return fn(database.NewMigrationRunnerFromConfig(db, migrationCfg))
}
