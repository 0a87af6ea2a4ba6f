package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE catalog_responses (
				key TEXT PRIMARY KEY,
				endpoint TEXT NOT NULL,
				body BLOB NOT NULL,
				fetched_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Pruning scans by age
		_, err = db.Exec(`CREATE INDEX ix_catalog_responses_fetched_at ON catalog_responses(fetched_at)`)
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("DROP TABLE IF EXISTS catalog_responses")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
