package models

const (
	MediaTypeAll    MediaType = "all"
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTV     MediaType = "tv"
	MediaTypePerson MediaType = "person"
)

// MediaType is the catalog's discriminant for an entry.
type MediaType string

// HasDetails reports whether the catalog serves details, credits and embeds
// for the media type.
func (m MediaType) HasDetails() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

// ParseMediaType returns the media type for movie or tv. Anything else is
// rejected.
func ParseMediaType(s string) (MediaType, bool) {
	m := MediaType(s)
	if !m.HasDetails() {
		return "", false
	}
	return m, true
}

// MediaItem is a single decoded catalog entry. The concrete type is decided
// once when the upstream payload is decoded.
type MediaItem interface {
	Kind() MediaType
	Summary() MediaSummary
	isMediaItem()
}

type Movie struct {
	ID           int
	Title        string
	Overview     string
	PosterPath   *string
	BackdropPath *string
	VoteAverage  float64
	ReleaseDate  *string
}

func (*Movie) Kind() MediaType { return MediaTypeMovie }
func (*Movie) isMediaItem()    {}

func (m *Movie) Summary() MediaSummary {
	return MediaSummary{
		ID:           m.ID,
		MediaType:    MediaTypeMovie,
		DisplayTitle: m.Title,
		PosterPath:   m.PosterPath,
		VoteAverage:  clampVote(m.VoteAverage),
		PrimaryDate:  m.ReleaseDate,
	}
}

type TVShow struct {
	ID           int
	Name         string
	Overview     string
	PosterPath   *string
	BackdropPath *string
	VoteAverage  float64
	FirstAirDate *string
}

func (*TVShow) Kind() MediaType { return MediaTypeTV }
func (*TVShow) isMediaItem()    {}

func (s *TVShow) Summary() MediaSummary {
	return MediaSummary{
		ID:           s.ID,
		MediaType:    MediaTypeTV,
		DisplayTitle: s.Name,
		PosterPath:   s.PosterPath,
		VoteAverage:  clampVote(s.VoteAverage),
		PrimaryDate:  s.FirstAirDate,
	}
}

// Person only shows up in trending results for the "person" and "all" media
// types.
type Person struct {
	ID                 int
	Name               string
	ProfilePath        *string
	KnownForDepartment string
}

func (*Person) Kind() MediaType { return MediaTypePerson }
func (*Person) isMediaItem()    {}

func (p *Person) Summary() MediaSummary {
	return MediaSummary{
		ID:           p.ID,
		MediaType:    MediaTypePerson,
		DisplayTitle: p.Name,
		PosterPath:   p.ProfilePath,
	}
}

// MediaSummary holds what a grid or slider tile needs.
type MediaSummary struct {
	ID           int       `json:"id"`
	MediaType    MediaType `json:"media_type"`
	DisplayTitle string    `json:"display_title"`
	PosterPath   *string   `json:"poster_path"`
	VoteAverage  float64   `json:"vote_average"`
	PrimaryDate  *string   `json:"primary_date"`
}

// Year returns the four-digit year of PrimaryDate, or "" when unknown.
func (s MediaSummary) Year() string {
	if s.PrimaryDate == nil || len(*s.PrimaryDate) < 4 {
		return ""
	}
	return (*s.PrimaryDate)[:4]
}

// PageResult is one page of a catalog listing.
type PageResult struct {
	Items        []MediaSummary `json:"results"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Summaries converts decoded items into tiles, preserving order.
func Summaries(items []MediaItem) []MediaSummary {
	out := make([]MediaSummary, 0, len(items))
	for _, item := range items {
		out = append(out, item.Summary())
	}
	return out
}

func clampVote(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 10:
		return 10
	default:
		return v
	}
}
