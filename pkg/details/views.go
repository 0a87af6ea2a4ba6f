package details

import (
	"fmt"
	"html"
	"strings"

	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
)

func detailsContent(images pages.Images, d *models.Details, cast []models.CastMember) string {
	var b strings.Builder

	b.WriteString(`<div class="details">`)
	if src := images.ImageURL(catalog.SizePoster, d.PosterPath); src != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="poster">`, html.EscapeString(src), html.EscapeString(d.Title))
	} else {
		b.WriteString(`<div class="poster no-image"></div>`)
	}

	b.WriteString(`<div class="details-body">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(d.Title))
	if d.Tagline != "" {
		fmt.Fprintf(&b, `<p class="tagline">%s</p>`, html.EscapeString(d.Tagline))
	}
	fmt.Fprintf(&b, `<p class="tile-meta">%s</p>`, strings.Join(facts(d), " · "))
	if len(d.Genres) > 0 {
		b.WriteString(`<ul class="genres">`)
		for _, g := range d.Genres {
			fmt.Fprintf(&b, `<li>%s</li>`, html.EscapeString(g.Name))
		}
		b.WriteString(`</ul>`)
	}
	fmt.Fprintf(&b, `<p class="overview">%s</p>`, html.EscapeString(d.Overview))
	fmt.Fprintf(&b, `<a href="%s" class="button">Watch now</a>`, pages.WatchURL(d.MediaType, d.ID))
	b.WriteString(`</div></div>`)

	b.WriteString(pages.Section("Top Cast", castGrid(images, cast)))
	return b.String()
}

func facts(d *models.Details) []string {
	out := []string{fmt.Sprintf(`<span class="rating">★ %s</span>`, pages.Rating(d.VoteAverage))}
	if year := d.Year(); year != "" {
		out = append(out, year)
	}
	if d.Runtime > 0 {
		out = append(out, fmt.Sprintf("%d min", d.Runtime))
	}
	switch {
	case d.NumberOfSeasons == 1:
		out = append(out, "1 season")
	case d.NumberOfSeasons > 1:
		out = append(out, fmt.Sprintf("%d seasons", d.NumberOfSeasons))
	}
	return out
}

func castGrid(images pages.Images, cast []models.CastMember) string {
	if len(cast) == 0 {
		return pages.Empty("No cast information.")
	}

	var b strings.Builder
	b.WriteString(`<div class="slider">`)
	for _, m := range cast {
		img := `<div class="no-image"></div>`
		if src := images.ImageURL(catalog.SizeProfile, m.ProfilePath); src != "" {
			img = fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy">`, html.EscapeString(src), html.EscapeString(m.Name))
		}
		fmt.Fprintf(&b, `<div class="tile cast-member">%s<div class="tile-title">%s</div><div class="tile-meta">%s</div></div>`,
			img, html.EscapeString(m.Name), html.EscapeString(m.Character))
	}
	b.WriteString(`</div>`)
	return b.String()
}
