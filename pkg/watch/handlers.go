package watch

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/details"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/pkg/errors"
)

type handler struct {
	catalog *catalog.Client
	embeds  Embeds
}

func (h *handler) show(c echo.Context) error {
	ctx := c.Request().Context()

	kind, id, err := details.ParseTarget(c)
	if err != nil {
		return err
	}

	d, err := h.catalog.Details(ctx, kind, id)
	if err != nil {
		return errors.WithStack(err)
	}

	ep := Episode{Season: 1, Episode: 1}
	if kind == models.MediaTypeTV {
		ep = ParseEpisode(c.QueryParam("s"), c.QueryParam("e"))
	}

	content := watchContent(h.catalog, d, h.embeds.URL(kind, id, ep), ep)
	return c.HTML(http.StatusOK, pages.Render(d.Title, sessions.Header(c, ""), content))
}
