// Package search looks titles up by name across movies and TV shows.
package search

import (
	"context"
	"strings"

	"github.com/marqueehq/marquee/pkg/models"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

// Searcher returns the first page of titles of one kind matching query.
type Searcher interface {
	Search(ctx context.Context, kind models.MediaType, query string) (*models.PageResult, error)
}

type Service struct {
	searcher Searcher
}

func NewService(searcher Searcher) *Service {
	return &Service{searcher}
}

// Search looks query up among movies and TV shows at the same time. Titles
// without a poster are left out. A blank query matches nothing and is not
// sent upstream.
func (svc *Service) Search(ctx context.Context, query string) (*Results, error) {
	query = strings.TrimSpace(query)
	results := &Results{
		Query:  query,
		Movies: []models.MediaSummary{},
		Shows:  []models.MediaSummary{},
	}
	if query == "" {
		return results, nil
	}

	p := pool.New().WithErrors().WithContext(ctx).WithFirstError().WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		page, err := svc.searcher.Search(ctx, models.MediaTypeMovie, query)
		if err != nil {
			return err
		}
		results.Movies = withPosters(page.Items)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		page, err := svc.searcher.Search(ctx, models.MediaTypeTV, query)
		if err != nil {
			return err
		}
		results.Shows = withPosters(page.Items)
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

func withPosters(items []models.MediaSummary) []models.MediaSummary {
	out := make([]models.MediaSummary, 0, len(items))
	for _, item := range items {
		if item.PosterPath != nil {
			out = append(out, item)
		}
	}
	return out
}
