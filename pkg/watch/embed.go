// Package watch serves the player page of a movie or TV show episode.
package watch

import (
	"fmt"
	"strconv"

	"github.com/marqueehq/marquee/pkg/models"
)

// Embeds are the base addresses of the video players.
type Embeds struct {
	Movie string
	TV    string
}

// Episode is a position within a show. Both numbers start at 1.
type Episode struct {
	Season  int
	Episode int
}

// ParseEpisode reads the s and e query values. Missing, unparsable or
// non-positive values become 1.
func ParseEpisode(s, e string) Episode {
	return Episode{Season: atLeastOne(s), Episode: atLeastOne(e)}
}

func atLeastOne(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// URL returns the address of the player for the title, or "" when no player
// is configured for its kind. The TV address appends the episode to the
// configured base as is, ahead of the autoplay flag.
func (em Embeds) URL(kind models.MediaType, id int, ep Episode) string {
	switch kind {
	case models.MediaTypeMovie:
		if em.Movie == "" {
			return ""
		}
		return fmt.Sprintf("%s/%d?autoplay=1", em.Movie, id)
	case models.MediaTypeTV:
		if em.TV == "" {
			return ""
		}
		return fmt.Sprintf("%s/%d&s=%d&e=%d?autoplay=1", em.TV, id, ep.Season, ep.Episode)
	default:
		return ""
	}
}

// Link returns the watch page of episode ep of show id.
func Link(id int, ep Episode) string {
	return fmt.Sprintf("/watch/tv/%d?s=%d&e=%d", id, ep.Season, ep.Episode)
}
