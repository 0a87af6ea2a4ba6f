package search

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/pkg/errors"
)

type handler struct {
	searchService *Service
	images        pages.Images
}

var tabs = []struct {
	kind  models.MediaType
	label string
}{
	{models.MediaTypeMovie, "Movies"},
	{models.MediaTypeTV, "TV Shows"},
}

// page renders the search form and, for a non-blank query, the results of
// the selected tab. Unknown tabs fall back to movies.
func (h *handler) page(c echo.Context) error {
	ctx := c.Request().Context()

	kind, ok := models.ParseMediaType(c.QueryParam("type"))
	if !ok {
		kind = models.MediaTypeMovie
	}

	results, err := h.searchService.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<form method="get" action="/search" class="filters"><input type="search" name="q" value="%s" placeholder="Search movies and TV shows" autofocus><input type="hidden" name="type" value="%s"><button type="submit">Search</button></form>`,
		html.EscapeString(results.Query), kind)

	if results.Query == "" {
		b.WriteString(pages.Empty("Search for a movie or TV show."))
	} else {
		b.WriteString(`<nav class="filters tabs">`)
		for _, tab := range tabs {
			q := url.Values{"q": {results.Query}, "type": {string(tab.kind)}}
			class := "tab"
			if tab.kind == kind {
				class += " selected"
			}
			fmt.Fprintf(&b, `<a href="/search?%s" class="%s">%s (%d)</a>`,
				html.EscapeString(q.Encode()), class, tab.label, len(results.Of(tab.kind)))
		}
		b.WriteString(`</nav>`)
		b.WriteString(pages.Grid(h.images, results.Of(kind)))
	}

	title := "Search"
	if results.Query != "" {
		title = fmt.Sprintf("Search: %s", results.Query)
	}
	return c.HTML(http.StatusOK, pages.Render(title, sessions.Header(c, "/search"), b.String()))
}

func (h *handler) api(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params
	params := SearchQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	results, err := h.searchService.Search(ctx, params.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, results))
}
