package browse

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/listview"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
)

func discoverContent(images pages.Images, base, title, from string, state listview.State[listparams.Discover]) string {
	p := state.Params

	genre := ""
	if p.Genre != 0 {
		genre = strconv.Itoa(p.Genre)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(title))
	b.WriteString(`<div class="filters">`)
	b.WriteString(pages.Select(base+"/genre", from, "genre", "Genre", pages.GenreOptions(p.Kind), genre))
	b.WriteString(pages.Select(base+"/sort", from, "sortBy", "Sort by", listparams.SortOptions(p.Kind), string(p.SortBy)))
	b.WriteString(`</div>`)
	b.WriteString(results(images, strings.ToLower(title), base+"/page", from, p.Page, state.Result))
	return b.String()
}

func trendingContent(images pages.Images, from string, state listview.State[listparams.Trending]) string {
	p := state.Params

	var b strings.Builder
	b.WriteString(`<h1>Trending</h1>`)
	b.WriteString(`<div class="filters">`)
	b.WriteString(pages.Select("/trending/media-type", from, "mediaType", "Show", listparams.MediaTypeOptions(), string(p.MediaType)))
	b.WriteString(pages.Select("/trending/time-window", from, "timeWindow", "Trending", listparams.TimeWindowOptions(), string(p.TimeWindow)))
	b.WriteString(`</div>`)
	b.WriteString(results(images, "trending titles", "/trending/page", from, p.Page, state.Result))
	return b.String()
}

func results(images pages.Images, what, pageAction, from string, page int, result *models.PageResult) string {
	if result == nil {
		return pages.Empty(fmt.Sprintf("Could not load %s. Please try again later.", what))
	}
	return pages.Grid(images, result.Items) + pages.Pagination(pageAction, from, page, result.TotalPages)
}
