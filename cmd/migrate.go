package main

import (
	"context"
	"database/sql"
	"fmt"
	root "ground"
	"ground/internal/config"
	"ground/pkg/logger"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateQueue brings the river job tables to the latest version. It returns
// the version the queue schema ends up at.
func migrateQueue(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing river migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return current, nil
	}

	if _, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return current, fmt.Errorf("could not migrate river tables: %w", err)
	}

	return latest, nil
}

// migrateCommand constructs the 'migrate' subcommand that brings the ground
// schema and the job queue tables to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "storage is not backed by *sql.DB")
			}

			if err := strg.Migrate(ctx, root.Migrations); err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}

			version, err := migrateQueue(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate job queue", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int("queueVersion", version))
		},
	}

	return cmd
}
