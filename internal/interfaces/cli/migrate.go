package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/postgres"
)

// newMigrateCommand applies or rolls back schema migrations.
func newMigrateCommand(opts *RootOptions) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the case-store schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts)
			if err != nil {
				return err
			}
			return postgres.RunMigrations(postgres.DSN(cfg.Database), cfg.Database.MigrationPath, logger)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(opts)
			if err != nil {
				return err
			}
			return postgres.RollbackMigrations(postgres.DSN(cfg.Database), cfg.Database.MigrationPath, steps, logger)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	cmd.AddCommand(up, down)
	return cmd
}
