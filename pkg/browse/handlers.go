// Package browse serves the paginated movies, TV shows and trending lists.
//
// Each browser session keeps one controller per list. GET renders the
// controller's state, re-mounting it when the address differs from the one
// it last committed. A failed re-mount steps back to the committed address.
// The filter and pagination forms POST a transition together with the
// address they were rendered for, and are redirected back to the committed
// address, so failed transitions leave the page as it was.
package browse

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
)

type handler struct {
	catalog *catalog.Client
}

// mountable is what show needs from a list controller.
type mountable interface {
	Mounted() bool
	Mount(ctx context.Context) error
}

type navigable interface {
	Matches(location *url.URL) bool
	Navigate(location *url.URL)
	Back() bool
}

// syncView brings a controller in line with the requested address. A controller
// that already committed this address is left alone so that redirects after a
// transition render without another fetch. When loading a new address fails,
// the address goes back to the one whose data is still shown.
func syncView(ctx context.Context, ctrl mountable, addr navigable, location *url.URL, loaded bool) error {
	navigated := false
	switch {
	case !ctrl.Mounted():
	case !addr.Matches(location):
		addr.Navigate(location)
		navigated = true
	case loaded:
		return nil
	}

	err := ctrl.Mount(ctx)
	if err != nil && navigated {
		addr.Back()
	}
	return err
}

// prepareView syncs a controller with the address a form was rendered for
// and reports whether the posted transition may be applied. Forms without
// that address act on whatever is committed, mounting the first page if
// nothing is.
func prepareView(ctx context.Context, ctrl mountable, addr navigable, from *url.URL, loaded bool) bool {
	if from == nil {
		if !ctrl.Mounted() {
			_ = ctrl.Mount(ctx)
		}
		return true
	}
	return syncView(ctx, ctrl, addr, from, loaded) == nil
}

// formOrigin returns the "from" address of a form posted for the list at base,
// or nil when it is missing or belongs elsewhere.
func formOrigin(c echo.Context, base string) *url.URL {
	from := c.FormValue("from")
	if from == "" {
		return nil
	}
	u, err := url.Parse(from)
	if err != nil || u.Path != base {
		return nil
	}
	return &url.URL{Path: u.Path, RawQuery: u.RawQuery}
}

// formInt parses an integer form field. Anything unparsable is 0, which every
// transition coerces to its default.
func formInt(c echo.Context, name string) int {
	v, err := strconv.Atoi(c.FormValue(name))
	if err != nil {
		return 0
	}
	return v
}

type discoverRoutes struct {
	*handler
	kind models.MediaType
}

func (d *discoverRoutes) base() string {
	if d.kind == models.MediaTypeTV {
		return "/tvshows"
	}
	return "/movies"
}

func (d *discoverRoutes) title() string {
	if d.kind == models.MediaTypeTV {
		return "TV Shows"
	}
	return "Movies"
}

func (d *discoverRoutes) view(c echo.Context, location *url.URL) *sessions.DiscoverView {
	sess := sessions.FromContext(c)
	if d.kind == models.MediaTypeTV {
		return sess.Shows(location)
	}
	return sess.Movies(location)
}

func (d *discoverRoutes) show(c echo.Context) error {
	ctx := c.Request().Context()
	location := c.Request().URL

	view := d.view(c, location)
	// Failures are logged by the controller and the last good page is kept.
	_ = syncView(ctx, view, view.URL, location, view.State().Result != nil)
	if !view.URL.Matches(location) {
		// The requested page lay beyond the last one, or could not be loaded.
		return c.Redirect(http.StatusSeeOther, view.URL.Location())
	}

	content := discoverContent(d.catalog, d.base(), d.title(), view.URL.Location(), view.State())
	return c.HTML(http.StatusOK, pages.Render(d.title(), sessions.Header(c, d.base()), content))
}

// transition applies change to the view the form was posted from and
// redirects to the committed address.
func (d *discoverRoutes) transition(c echo.Context, change func(ctx context.Context, view *sessions.DiscoverView) error) error {
	ctx := c.Request().Context()
	from := formOrigin(c, d.base())

	location := from
	if location == nil {
		location = &url.URL{Path: d.base()}
	}
	view := d.view(c, location)
	if prepareView(ctx, view, view.URL, from, view.State().Result != nil) {
		_ = change(ctx, view)
	}
	return c.Redirect(http.StatusSeeOther, view.URL.Location())
}

func (d *discoverRoutes) changeGenre(c echo.Context) error {
	return d.transition(c, func(ctx context.Context, view *sessions.DiscoverView) error {
		return view.ChangeGenre(ctx, formInt(c, "genre"))
	})
}

func (d *discoverRoutes) changeSort(c echo.Context) error {
	return d.transition(c, func(ctx context.Context, view *sessions.DiscoverView) error {
		return view.ChangeSort(ctx, listparams.SortKey(c.FormValue("sortBy")))
	})
}

func (d *discoverRoutes) changePage(c echo.Context) error {
	return d.transition(c, func(ctx context.Context, view *sessions.DiscoverView) error {
		return view.ChangePage(ctx, formInt(c, "page"))
	})
}

func (h *handler) trendingView(c echo.Context, location *url.URL) *sessions.TrendingView {
	return sessions.FromContext(c).Trending(location)
}

func (h *handler) showTrending(c echo.Context) error {
	ctx := c.Request().Context()
	location := c.Request().URL

	view := h.trendingView(c, location)
	_ = syncView(ctx, view, view.URL, location, view.State().Result != nil)
	if !view.URL.Matches(location) {
		return c.Redirect(http.StatusSeeOther, view.URL.Location())
	}

	content := trendingContent(h.catalog, view.URL.Location(), view.State())
	return c.HTML(http.StatusOK, pages.Render("Trending", sessions.Header(c, "/trending"), content))
}

func (h *handler) trendingTransition(c echo.Context, change func(ctx context.Context, view *sessions.TrendingView) error) error {
	ctx := c.Request().Context()
	from := formOrigin(c, "/trending")

	location := from
	if location == nil {
		location = &url.URL{Path: "/trending"}
	}
	view := h.trendingView(c, location)
	if prepareView(ctx, view, view.URL, from, view.State().Result != nil) {
		_ = change(ctx, view)
	}
	return c.Redirect(http.StatusSeeOther, view.URL.Location())
}

func (h *handler) changeMediaType(c echo.Context) error {
	return h.trendingTransition(c, func(ctx context.Context, view *sessions.TrendingView) error {
		return view.ChangeMediaType(ctx, models.MediaType(c.FormValue("mediaType")))
	})
}

func (h *handler) changeTimeWindow(c echo.Context) error {
	return h.trendingTransition(c, func(ctx context.Context, view *sessions.TrendingView) error {
		return view.ChangeTimeWindow(ctx, listparams.TimeWindow(c.FormValue("timeWindow")))
	})
}

func (h *handler) changeTrendingPage(c echo.Context) error {
	return h.trendingTransition(c, func(ctx context.Context, view *sessions.TrendingView) error {
		return view.ChangePage(ctx, formInt(c, "page"))
	})
}
