// Package catalogcache stores upstream catalog responses in SQLite so that
// repeated listings within the freshness window skip the network.
package catalogcache

import (
	"context"
	"database/sql"
	"encoding/hex"
	"net/url"
	"time"

	"github.com/marqueehq/marquee/pkg/models"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/blake2b"
)

type Cache struct {
	db  *bun.DB
	ttl time.Duration
	now func() time.Time
}

func New(db *bun.DB, ttl time.Duration) *Cache {
	return &Cache{
		db:  db,
		ttl: ttl,
		now: time.Now,
	}
}

// Key identifies a request by endpoint and query. Credentials must be removed
// from the query beforehand.
func Key(endpoint string, query url.Values) string {
	sum := blake2b.Sum256([]byte(endpoint + "?" + query.Encode()))
	return hex.EncodeToString(sum[:])
}

// Get returns the stored body for key if it is still fresh.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry := &models.CatalogResponse{}
	err := c.db.NewSelect().
		Model(entry).
		Where("key = ?", key).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	if c.now().Sub(entry.FetchedAt) >= c.ttl {
		return nil, false, nil
	}
	return entry.Body, true, nil
}

// Set stores body under key, replacing any previous entry.
func (c *Cache) Set(ctx context.Context, key, endpoint string, body []byte) error {
	entry := &models.CatalogResponse{
		Key:       key,
		Endpoint:  endpoint,
		Body:      body,
		FetchedAt: c.now().UTC(),
	}
	_, err := c.db.NewInsert().
		Model(entry).
		On("CONFLICT (key) DO UPDATE").
		Set("endpoint = EXCLUDED.endpoint").
		Set("body = EXCLUDED.body").
		Set("fetched_at = EXCLUDED.fetched_at").
		Exec(ctx)
	return errors.WithStack(err)
}

// Prune deletes entries older than the freshness window and returns how many
// were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	cutoff := c.now().UTC().Add(-c.ttl)
	res, err := c.db.NewDelete().
		Model((*models.CatalogResponse)(nil)).
		Where("fetched_at <= ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	n, err := res.RowsAffected()
	return n, errors.WithStack(err)
}

// RunJanitor prunes the cache every interval until ctx is done.
func (c *Cache) RunJanitor(ctx context.Context, interval time.Duration) {
	log := logger.FromContext(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := c.Prune(ctx)
			if err != nil {
				log.Err(err).Warn("failed to prune catalog cache")
				continue
			}
			if n > 0 {
				log.Info("pruned catalog cache", logger.Data{"removed": n})
			}
		}
	}
}
