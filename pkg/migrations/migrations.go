// Package migrations holds the schema of the catalog response cache and the
// user profile table.
package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

var Migrations = migrate.NewMigrations()

// BringUpToDate creates the migration tables if needed and applies every
// pending migration as one group.
func BringUpToDate(ctx context.Context, db *bun.DB) (*migrate.MigrationGroup, error) {
	migrator := migrate.NewMigrator(db, Migrations)
	if err := migrator.Init(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create migration tables")
	}
	group, err := migrator.Migrate(ctx)
	return group, errors.Wrap(err, "failed to apply migrations")
}
