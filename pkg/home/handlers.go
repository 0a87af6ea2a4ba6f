// Package home serves the landing page: a featured title above rows of
// trending, popular and top rated titles.
package home

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/robinjoseph08/golib/logger"
	"github.com/sourcegraph/conc/pool"
)

type handler struct {
	catalog *catalog.Client
}

type slider struct {
	title string
	load  func(ctx context.Context) ([]models.MediaSummary, error)
	items []models.MediaSummary
}

func (h *handler) show(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromContext(ctx)

	sliders := []*slider{
		{title: "Trending Movies", load: h.catalog.TrendingMoviesToday},
		{title: "Popular TV Shows", load: h.catalog.PopularShows},
		{title: "Top Rated Movies", load: h.catalog.TopRatedMovies},
	}
	var hero models.MediaItem

	// A section that fails to load is left out or shown empty; the page
	// itself always renders.
	p := pool.New()
	p.Go(func() {
		item, err := h.catalog.Hero(ctx)
		if err != nil {
			log.Err(err).Warn("failed to load featured title")
			return
		}
		hero = item
	})
	for _, s := range sliders {
		s := s
		p.Go(func() {
			items, err := s.load(ctx)
			if err != nil {
				log.Err(err).Warn("failed to load slider", logger.Data{"slider": s.title})
				return
			}
			s.items = items
		})
	}
	p.Wait()

	content := ""
	if hero != nil {
		content += pages.Hero(h.catalog, hero)
	}
	for _, s := range sliders {
		content += pages.Slider(h.catalog, s.title, s.items)
	}

	return c.HTML(http.StatusOK, pages.Render("", sessions.Header(c, "/"), content))
}
