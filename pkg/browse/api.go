package browse

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/pkg/errors"
)

// Unlike the pages, the API reports values it does not recognize instead of
// coercing them.

func (h *handler) apiDiscover(c echo.Context) error {
	ctx := c.Request().Context()

	kind, ok := models.ParseMediaType(c.Param("mediaType"))
	if !ok {
		return errcodes.ValidationError(`"mediaType" must be one of the following: "movie", "tv"`)
	}

	params := DiscoverQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	p := listparams.NewDiscover(kind, params.Page, params.Genre, listparams.SortKey(params.SortBy))
	if p.Genre != params.Genre {
		return errcodes.ValidationError(fmt.Sprintf(`"genre" %d is not a %s genre`, params.Genre, kind))
	}
	if string(p.SortBy) != params.SortBy {
		return errcodes.ValidationError(fmt.Sprintf(`"sort_by" must be one of the following: %s`, quoted(listparams.SortOptions(kind))))
	}

	result, err := h.catalog.Discover(ctx, p)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func (h *handler) apiTrending(c echo.Context) error {
	ctx := c.Request().Context()

	params := TrendingQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	mediaType := models.MediaType(c.Param("mediaType"))
	window := listparams.TimeWindow(c.Param("timeWindow"))
	p := listparams.NewTrending(params.Page, mediaType, window)
	if p.MediaType != mediaType {
		return errcodes.ValidationError(fmt.Sprintf(`"mediaType" must be one of the following: %s`, quoted(listparams.MediaTypeOptions())))
	}
	if p.TimeWindow != window {
		return errcodes.ValidationError(fmt.Sprintf(`"timeWindow" must be one of the following: %s`, quoted(listparams.TimeWindowOptions())))
	}

	result, err := h.catalog.Trending(ctx, p)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, result))
}

func quoted(opts []listparams.Option) string {
	vals := make([]string, 0, len(opts))
	for _, o := range opts {
		vals = append(vals, strconv.Quote(o.Value))
	}
	return strings.Join(vals, ", ")
}
