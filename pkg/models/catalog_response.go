package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CatalogResponse is a raw upstream response body kept for reuse.
type CatalogResponse struct {
	bun.BaseModel `bun:"table:catalog_responses,alias:cr"`

	Key       string    `bun:",pk"`
	Endpoint  string    `bun:",notnull"`
	Body      []byte    `bun:",notnull"`
	FetchedAt time.Time `bun:",notnull"`
}
