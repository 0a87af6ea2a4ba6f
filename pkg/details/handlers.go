// Package details serves the page of a single movie or TV show.
package details

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/sourcegraph/conc/pool"
)

const castSize = 10

type handler struct {
	catalog *catalog.Client
}

// ParseTarget reads the media type and id path parameters. Anything but a
// movie or TV show with a positive id is not found.
func ParseTarget(c echo.Context) (models.MediaType, int, error) {
	kind, ok := models.ParseMediaType(c.Param("mediaType"))
	if !ok {
		return "", 0, errcodes.NotFound("Title")
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return "", 0, errcodes.NotFound("Title")
	}
	return kind, id, nil
}

func (h *handler) show(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromContext(ctx)

	kind, id, err := ParseTarget(c)
	if err != nil {
		return err
	}

	var details *models.Details
	var credits *models.Credits

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		d, err := h.catalog.Details(ctx, kind, id)
		if err != nil {
			return err
		}
		details = d
		return nil
	})
	p.Go(func(ctx context.Context) error {
		// The page is still useful without its cast.
		cr, err := h.catalog.Credits(ctx, kind, id)
		if err != nil {
			log.Err(err).Warn("failed to load credits", logger.Data{"media_type": kind, "id": id})
			return nil
		}
		credits = cr
		return nil
	})
	if err := p.Wait(); err != nil {
		return errors.WithStack(err)
	}

	content := detailsContent(h.catalog, details, credits.TopCast(castSize))
	return c.HTML(http.StatusOK, pages.Render(details.Title, sessions.Header(c, ""), content))
}
