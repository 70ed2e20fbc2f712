package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

var errNotPool = errors.New("migrations need a pooled connection, not a tx")

// MigrateOptions selects which schemas Migrate brings up to date.
type MigrateOptions struct {
	// SkipQueue leaves the river job tables untouched.
	SkipQueue bool
}

// MigrateResult reports the schema versions after Migrate returns.
type MigrateResult struct {
	SchemaVersion int64
	SchemaApplied int
	QueueVersion  int
	QueueApplied  int
	QueueUpToDate bool
}

// Migrate applies the goose migrations found at the root of fsys and then
// migrates the river queue tables to their latest version. Both steps are
// idempotent.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, opts MigrateOptions) (MigrateResult, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return MigrateResult{}, errNotPool
	}

	var res MigrateResult
	if err := migrateSchema(ctx, db, fsys, &res); err != nil {
		return res, err
	}
	if opts.SkipQueue {
		return res, nil
	}
	if err := migrateQueue(ctx, db, &res); err != nil {
		return res, err
	}

	return res, nil
}

func migrateSchema(ctx context.Context, db *sql.DB, fsys fs.FS, res *MigrateResult) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	applied, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not migrate pgsql: %w", err)
	}
	res.SchemaApplied = len(applied)

	if res.SchemaVersion, err = provider.GetDBVersion(ctx); err != nil {
		return fmt.Errorf("could not read pgsql schema version: %w", err)
	}

	return nil
}

func migrateQueue(ctx context.Context, db *sql.DB, res *MigrateResult) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		res.QueueVersion = existing[len(existing)-1].Version
	}
	if res.QueueVersion >= latest {
		res.QueueUpToDate = true

		return nil
	}

	out, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	})
	if err != nil {
		return fmt.Errorf("could not migrate river queue database: %w", err)
	}
	res.QueueApplied = len(out.Versions)
	res.QueueVersion = latest

	return nil
}
