package main

import (
	"context"
	"io/fs"

	root "topics"
	"topics/internal/config"
	"topics/pkg/logger"
	"topics/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the topic
// tables and, unless --skip-queue is set, the enrollment job queue to their
// latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var opts postgres.MigrateOptions

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
			}

			res, err := strg.Migrate(ctx, migrations, opts)
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			logger.Info(ctx, "database migrated",
				zap.Int64("schemaVersion", res.SchemaVersion),
				zap.Int("schemaApplied", res.SchemaApplied),
				zap.Bool("queueSkipped", opts.SkipQueue),
				zap.Int("queueVersion", res.QueueVersion),
				zap.Int("queueApplied", res.QueueApplied),
			)
		},
	}

	cmd.Flags().BoolVar(&opts.SkipQueue, "skip-queue", false,
		"only migrate the topic tables and leave the job queue tables untouched")

	return cmd
}
