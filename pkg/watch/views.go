package watch

import (
	"fmt"
	"html"
	"strings"

	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
)

const playerPermissions = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

func watchContent(images pages.Images, d *models.Details, embed string, ep Episode) string {
	var b strings.Builder

	if embed == "" {
		b.WriteString(pages.Empty("No player is available for this title."))
	} else {
		fmt.Fprintf(&b, `<div class="player"><iframe src="%s" allowfullscreen allow="%s"></iframe></div>`,
			html.EscapeString(embed), playerPermissions)
	}

	b.WriteString(`<div class="details">`)
	if src := images.ImageURL(catalog.SizePoster, d.PosterPath); src != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="poster">`, html.EscapeString(src), html.EscapeString(d.Title))
	}
	b.WriteString(`<div class="details-body">`)
	fmt.Fprintf(&b, `<h1>%s</h1>`, html.EscapeString(d.Title))
	b.WriteString(`<p class="badges">`)
	if year := d.Year(); year != "" {
		fmt.Fprintf(&b, `<span class="badge">%s</span>`, year)
	}
	fmt.Fprintf(&b, `<span class="badge">%s / 10</span></p>`, pages.Rating(d.VoteAverage))
	fmt.Fprintf(&b, `<p class="overview">%s</p>`, html.EscapeString(d.Overview))

	if d.MediaType == models.MediaTypeTV {
		b.WriteString(episodePicker(d, ep))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// episodePicker lists the seasons, each linking to its first episode, and the
// episodes of the current season.
func episodePicker(d *models.Details, ep Episode) string {
	var b strings.Builder

	b.WriteString(`<div class="episodes"><div class="season-list"><h2>Seasons</h2>`)
	for _, s := range d.Seasons {
		class := "season"
		if s.SeasonNumber == ep.Season {
			class += " selected"
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Season %d", s.SeasonNumber)
		}
		fmt.Fprintf(&b, `<a href="%s" class="%s">%s</a>`,
			html.EscapeString(Link(d.ID, Episode{Season: s.SeasonNumber, Episode: 1})), class, html.EscapeString(name))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="episode-list"><h2>Episodes</h2>`)
	count := d.EpisodesIn(ep.Season)
	if count == 0 {
		b.WriteString(pages.Empty("No episodes listed for this season."))
	}
	for i := 1; i <= count; i++ {
		class := "episode"
		if i == ep.Episode {
			class += " selected"
		}
		fmt.Fprintf(&b, `<a href="%s" class="%s">Episode %d</a>`,
			html.EscapeString(Link(d.ID, Episode{Season: ep.Season, Episode: i})), class, i)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}
