package models

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details is the decoded payload of a movie or TV show details request. The
// show-only fields are zero for movies.
type Details struct {
	ID           int       `json:"id"`
	MediaType    MediaType `json:"media_type"`
	Title        string    `json:"title"`
	Tagline      string    `json:"tagline,omitempty"`
	Overview     string    `json:"overview"`
	PosterPath   *string   `json:"poster_path"`
	BackdropPath *string   `json:"backdrop_path"`
	VoteAverage  float64   `json:"vote_average"`
	Date         *string   `json:"date"`
	Runtime      int       `json:"runtime,omitempty"`
	Genres       []Genre   `json:"genres"`

	NumberOfSeasons int      `json:"number_of_seasons,omitempty"`
	Seasons         []Season `json:"seasons,omitempty"`
}

// Year returns the four-digit year of Date, or "" when unknown.
func (d *Details) Year() string {
	if d.Date == nil || len(*d.Date) < 4 {
		return ""
	}
	return (*d.Date)[:4]
}

type Season struct {
	SeasonNumber int     `json:"season_number"`
	EpisodeCount int     `json:"episode_count"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
}

// EpisodesIn returns the episode count of the given season, or 0 when the
// season is unknown.
func (d *Details) EpisodesIn(season int) int {
	for _, s := range d.Seasons {
		if s.SeasonNumber == season {
			return s.EpisodeCount
		}
	}
	return 0
}

type Credits struct {
	Cast []CastMember `json:"cast"`
}

type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// TopCast returns at most n cast members in billing order.
func (c *Credits) TopCast(n int) []CastMember {
	if c == nil {
		return nil
	}
	if len(c.Cast) <= n {
		return c.Cast
	}
	return c.Cast[:n]
}
