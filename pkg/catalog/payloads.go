package catalog

import (
	"github.com/marqueehq/marquee/pkg/models"
)

// The upstream never pages past 500 even when total_pages says otherwise.
const maxPages = 500

type rawItem struct {
	ID                 int     `json:"id"`
	MediaType          string  `json:"media_type"`
	Title              string  `json:"title"`
	Name               string  `json:"name"`
	Overview           string  `json:"overview"`
	PosterPath         *string `json:"poster_path"`
	BackdropPath       *string `json:"backdrop_path"`
	ProfilePath        *string `json:"profile_path"`
	VoteAverage        float64 `json:"vote_average"`
	ReleaseDate        *string `json:"release_date"`
	FirstAirDate       *string `json:"first_air_date"`
	KnownForDepartment string  `json:"known_for_department"`
}

type rawPage struct {
	Page         int       `json:"page"`
	Results      []rawItem `json:"results"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
}

type rawDetails struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Name            string         `json:"name"`
	Tagline         string         `json:"tagline"`
	Overview        string         `json:"overview"`
	PosterPath      *string        `json:"poster_path"`
	BackdropPath    *string        `json:"backdrop_path"`
	VoteAverage     float64        `json:"vote_average"`
	ReleaseDate     *string        `json:"release_date"`
	FirstAirDate    *string        `json:"first_air_date"`
	Runtime         int            `json:"runtime"`
	EpisodeRunTime  []int          `json:"episode_run_time"`
	Genres          []models.Genre `json:"genres"`
	NumberOfSeasons int            `json:"number_of_seasons"`
	Seasons         []rawSeason    `json:"seasons"`
}

type rawSeason struct {
	SeasonNumber int     `json:"season_number"`
	EpisodeCount int     `json:"episode_count"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
}

// decodeItem picks the variant for a raw entry. kind is the media type of the
// endpoint; for mixed endpoints ("all") the entry's own media_type decides.
// Entries of an unknown type are dropped.
func decodeItem(kind models.MediaType, raw rawItem) (models.MediaItem, bool) {
	if kind == models.MediaTypeAll || kind == "" {
		kind = models.MediaType(raw.MediaType)
	}

	switch kind {
	case models.MediaTypeMovie:
		return &models.Movie{
			ID:           raw.ID,
			Title:        raw.Title,
			Overview:     raw.Overview,
			PosterPath:   nonEmpty(raw.PosterPath),
			BackdropPath: nonEmpty(raw.BackdropPath),
			VoteAverage:  raw.VoteAverage,
			ReleaseDate:  nonEmpty(raw.ReleaseDate),
		}, true
	case models.MediaTypeTV:
		return &models.TVShow{
			ID:           raw.ID,
			Name:         raw.Name,
			Overview:     raw.Overview,
			PosterPath:   nonEmpty(raw.PosterPath),
			BackdropPath: nonEmpty(raw.BackdropPath),
			VoteAverage:  raw.VoteAverage,
			FirstAirDate: nonEmpty(raw.FirstAirDate),
		}, true
	case models.MediaTypePerson:
		return &models.Person{
			ID:                 raw.ID,
			Name:               raw.Name,
			ProfilePath:        nonEmpty(raw.ProfilePath),
			KnownForDepartment: raw.KnownForDepartment,
		}, true
	default:
		return nil, false
	}
}

func decodeItems(kind models.MediaType, raws []rawItem) []models.MediaItem {
	items := make([]models.MediaItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := decodeItem(kind, raw); ok {
			items = append(items, item)
		}
	}
	return items
}

func decodePage(kind models.MediaType, raw *rawPage) *models.PageResult {
	total := raw.TotalPages
	if total > maxPages {
		total = maxPages
	}
	return &models.PageResult{
		Items:        models.Summaries(decodeItems(kind, raw.Results)),
		Page:         raw.Page,
		TotalPages:   total,
		TotalResults: raw.TotalResults,
	}
}

func decodeDetails(kind models.MediaType, raw *rawDetails) *models.Details {
	d := &models.Details{
		ID:           raw.ID,
		MediaType:    kind,
		Tagline:      raw.Tagline,
		Overview:     raw.Overview,
		PosterPath:   nonEmpty(raw.PosterPath),
		BackdropPath: nonEmpty(raw.BackdropPath),
		VoteAverage:  raw.VoteAverage,
		Genres:       raw.Genres,
	}

	if kind == models.MediaTypeMovie {
		d.Title = raw.Title
		d.Date = nonEmpty(raw.ReleaseDate)
		d.Runtime = raw.Runtime
		return d
	}

	d.Title = raw.Name
	d.Date = nonEmpty(raw.FirstAirDate)
	if len(raw.EpisodeRunTime) > 0 {
		d.Runtime = raw.EpisodeRunTime[0]
	}
	d.NumberOfSeasons = raw.NumberOfSeasons
	for _, s := range raw.Seasons {
		// Season 0 holds specials, which have no embed.
		if s.SeasonNumber < 1 {
			continue
		}
		d.Seasons = append(d.Seasons, models.Season{
			SeasonNumber: s.SeasonNumber,
			EpisodeCount: s.EpisodeCount,
			Name:         s.Name,
			Overview:     s.Overview,
			PosterPath:   nonEmpty(s.PosterPath),
		})
	}
	return d
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
