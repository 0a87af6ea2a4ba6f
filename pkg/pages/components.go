package pages

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/models"
)

// Images resolves catalog image paths into addresses.
type Images interface {
	ImageURL(size string, path *string) string
}

// DetailsURL returns the details page of a movie or TV show, or "" for media
// types without one.
func DetailsURL(kind models.MediaType, id int) string {
	if !kind.HasDetails() {
		return ""
	}
	return fmt.Sprintf("/details/%s/%d", kind, id)
}

// WatchURL returns the player page of a movie or TV show.
func WatchURL(kind models.MediaType, id int) string {
	return fmt.Sprintf("/watch/%s/%d", kind, id)
}

// Rating formats a vote average with one decimal.
func Rating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Tile renders one entry. Entries without a details page are not linked.
func Tile(images Images, item models.MediaSummary) string {
	img := `<div class="no-image"></div>`
	if src := images.ImageURL(catalog.SizePoster, item.PosterPath); src != "" {
		img = fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(src), html.EscapeString(item.DisplayTitle))
	}

	var meta []string
	if item.MediaType != models.MediaTypePerson {
		meta = append(meta, fmt.Sprintf(`<span class="rating">★ %s</span>`, Rating(item.VoteAverage)))
	}
	if year := item.Year(); year != "" {
		meta = append(meta, year)
	}

	body := fmt.Sprintf(`%s<div class="tile-title">%s</div><div class="tile-meta">%s</div>`,
		img, html.EscapeString(item.DisplayTitle), strings.Join(meta, " · "))

	if href := DetailsURL(item.MediaType, item.ID); href != "" {
		return fmt.Sprintf(`<a href="%s" class="tile">%s</a>`, href, body)
	}
	return fmt.Sprintf(`<div class="tile">%s</div>`, body)
}

// Grid renders items in a responsive grid.
func Grid(images Images, items []models.MediaSummary) string {
	if len(items) == 0 {
		return Empty("Nothing to show.")
	}
	var b strings.Builder
	b.WriteString(`<div class="grid">`)
	for _, item := range items {
		b.WriteString(Tile(images, item))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Slider renders a titled, horizontally scrolling row.
func Slider(images Images, title string, items []models.MediaSummary) string {
	var b strings.Builder
	b.WriteString(`<div class="slider">`)
	for _, item := range items {
		b.WriteString(Tile(images, item))
	}
	b.WriteString(`</div>`)
	if len(items) == 0 {
		return Section(title, Empty("Nothing to show."))
	}
	return Section(title, b.String())
}

// Hero renders the featured entry of the home page.
func Hero(images Images, item models.MediaItem) string {
	var title, overview string
	var backdrop *string
	switch v := item.(type) {
	case *models.Movie:
		title, overview, backdrop = v.Title, v.Overview, v.BackdropPath
	case *models.TVShow:
		title, overview, backdrop = v.Name, v.Overview, v.BackdropPath
	default:
		return ""
	}

	s := item.Summary()
	style := ""
	if src := images.ImageURL(catalog.SizeBackdrop, backdrop); src != "" {
		style = fmt.Sprintf(` style="background-image: url('%s')"`, html.EscapeString(src))
	}

	meta := `<span class="rating">★ ` + Rating(s.VoteAverage) + `</span>`
	if year := s.Year(); year != "" {
		meta += " · " + year
	}

	return fmt.Sprintf(`<div class="hero"%s><div class="hero-body">
  <h1>%s</h1>
  <p class="tile-meta">%s</p>
  <p>%s</p>
  <a href="%s" class="button">Watch now</a> <a href="%s" class="button">More info</a>
</div></div>`,
		style, html.EscapeString(title), meta, html.EscapeString(overview),
		WatchURL(item.Kind(), s.ID), DetailsURL(item.Kind(), s.ID))
}

// Select renders a filter that posts its value to action when changed. from
// is the address the page was rendered for, so the change applies to what the
// visitor is looking at. The submit button covers browsers without scripting.
func Select(action, from, name, label string, opts []listparams.Option, selected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<form method="post" action="%s" class="filter">%s<label>%s `, html.EscapeString(action), fromField(from), html.EscapeString(label))
	fmt.Fprintf(&b, `<select name="%s" onchange="this.form.submit()">`, html.EscapeString(name))
	for _, o := range opts {
		sel := ""
		if o.Value == selected {
			sel = " selected"
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, html.EscapeString(o.Value), sel, html.EscapeString(o.Label))
	}
	b.WriteString(`</select></label><noscript><button type="submit">Apply</button></noscript></form>`)
	return b.String()
}

func fromField(from string) string {
	if from == "" {
		return ""
	}
	return fmt.Sprintf(`<input type="hidden" name="from" value="%s">`, html.EscapeString(from))
}

// GenreOptions lists the genres of kind with a leading "All Genres" entry
// whose value is empty.
func GenreOptions(kind models.MediaType) []listparams.Option {
	genres := listparams.Genres(kind)
	opts := make([]listparams.Option, 0, len(genres)+1)
	opts = append(opts, listparams.Option{Value: "", Label: "All Genres"})
	for _, g := range genres {
		opts = append(opts, listparams.Option{Value: strconv.Itoa(g.ID), Label: g.Name})
	}
	return opts
}

// Pagination renders previous/next controls that post the target page to
// action along with from, like Select. Controls outside 1..totalPages are
// disabled.
func Pagination(action, from string, page, totalPages int) string {
	if totalPages <= 1 {
		return ""
	}

	button := func(target int, label string) string {
		if target < 1 || target > totalPages {
			return fmt.Sprintf(`<button type="button" disabled>%s</button>`, label)
		}
		return fmt.Sprintf(`<form method="post" action="%s">%s<input type="hidden" name="page" value="%d"><button type="submit">%s</button></form>`,
			html.EscapeString(action), fromField(from), target, label)
	}

	return fmt.Sprintf(`<div class="pagination">%s<span>Page %d of %d</span>%s</div>`,
		button(page-1, "← Previous"), page, totalPages, button(page+1, "Next →"))
}
