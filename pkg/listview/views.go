package listview

import (
	"context"

	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/models"
)

// Discover drives the movies or TV shows list.
type Discover struct {
	*Controller[listparams.Discover]
}

func NewDiscover(kind models.MediaType, fetch FetchFunc[listparams.Discover], syncer Synchronizer[listparams.Discover]) *Discover {
	return &Discover{New(string(kind), fetch, syncer)}
}

// ChangeGenre selects genre g (0 for all) and returns to the first page.
func (d *Discover) ChangeGenre(ctx context.Context, g int) error {
	return d.Update(ctx, func(p listparams.Discover) listparams.Discover {
		return p.WithGenre(g)
	})
}

// ChangeSort selects sort key s and returns to the first page.
func (d *Discover) ChangeSort(ctx context.Context, s listparams.SortKey) error {
	return d.Update(ctx, func(p listparams.Discover) listparams.Discover {
		return p.WithSort(s)
	})
}

// Trending drives the trending list.
type Trending struct {
	*Controller[listparams.Trending]
}

func NewTrending(fetch FetchFunc[listparams.Trending], syncer Synchronizer[listparams.Trending]) *Trending {
	return &Trending{New("trending", fetch, syncer)}
}

func (t *Trending) ChangeMediaType(ctx context.Context, m models.MediaType) error {
	return t.Update(ctx, func(p listparams.Trending) listparams.Trending {
		return p.WithMediaType(m)
	})
}

func (t *Trending) ChangeTimeWindow(ctx context.Context, w listparams.TimeWindow) error {
	return t.Update(ctx, func(p listparams.Trending) listparams.Trending {
		return p.WithTimeWindow(w)
	})
}
