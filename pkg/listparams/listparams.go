package listparams

import (
	"context"
	"net/url"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/gorilla/schema"
	"github.com/marqueehq/marquee/pkg/models"
)

const (
	keyPage       = "page"
	keyGenre      = "genre"
	keySortBy     = "sortBy"
	keyMediaType  = "mediaType"
	keyTimeWindow = "timeWindow"
)

var (
	decoder = newDecoder()
	conform = modifiers.New()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("query")
	d.IgnoreUnknownKeys(true)
	return d
}

// Raw query values are decoded as strings so that garbage never fails the
// decode; coercion to recognized values happens afterwards.
type rawDiscover struct {
	Page   string `query:"page" mod:"trim" default:"1"`
	Genre  string `query:"genre" mod:"trim"`
	SortBy string `query:"sortBy" mod:"trim,lcase" default:"popularity.desc"`
}

type rawTrending struct {
	Page       string `query:"page" mod:"trim" default:"1"`
	MediaType  string `query:"mediaType" mod:"trim,lcase" default:"all"`
	TimeWindow string `query:"timeWindow" mod:"trim,lcase" default:"day"`
}

func decode(q url.Values, raw interface{}) {
	// Conversion errors cannot happen with string fields and unknown keys are
	// ignored, so a failed decode only leaves fields empty for the defaults.
	_ = decoder.Decode(raw, q)
	_ = conform.Struct(context.Background(), raw)
	_ = defaults.Set(raw)
}

func parsePage(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// Discover are the parameters of the movies and TV shows lists. Genre 0 means
// all genres.
type Discover struct {
	Kind   models.MediaType
	Page   int
	Genre  int
	SortBy SortKey
}

// DefaultDiscover returns the parameters used when the address carries none.
func DefaultDiscover(kind models.MediaType) Discover {
	return NewDiscover(kind, 1, 0, SortPopularity)
}

// NewDiscover builds discover parameters, substituting defaults for anything
// unrecognized.
func NewDiscover(kind models.MediaType, page, genre int, sortBy SortKey) Discover {
	if kind != models.MediaTypeTV {
		kind = models.MediaTypeMovie
	}
	if page < 1 {
		page = 1
	}
	if !validGenre(kind, genre) {
		genre = 0
	}
	if !validOption(SortOptions(kind), string(sortBy)) {
		sortBy = SortPopularity
	}
	return Discover{Kind: kind, Page: page, Genre: genre, SortBy: sortBy}
}

// ParseDiscover reads discover parameters from a query string.
func ParseDiscover(kind models.MediaType, q url.Values) Discover {
	raw := rawDiscover{}
	decode(q, &raw)

	genre, err := strconv.Atoi(raw.Genre)
	if err != nil {
		genre = 0
	}
	return NewDiscover(kind, parsePage(raw.Page), genre, SortKey(raw.SortBy))
}

func (d Discover) PageNumber() int { return d.Page }

func (d Discover) WithPage(p int) Discover {
	return NewDiscover(d.Kind, p, d.Genre, d.SortBy)
}

// WithGenre selects a genre and goes back to the first page.
func (d Discover) WithGenre(g int) Discover {
	return NewDiscover(d.Kind, 1, g, d.SortBy)
}

// WithSort selects a sort key and goes back to the first page.
func (d Discover) WithSort(s SortKey) Discover {
	return NewDiscover(d.Kind, 1, d.Genre, s)
}

// Apply writes the canonical serialization into q, leaving other keys alone.
func (d Discover) Apply(q url.Values) {
	q.Set(keyPage, strconv.Itoa(d.Page))
	if d.Genre == 0 {
		q.Del(keyGenre)
	} else {
		q.Set(keyGenre, strconv.Itoa(d.Genre))
	}
	q.Set(keySortBy, string(d.SortBy))
}

// Trending are the parameters of the trending list.
type Trending struct {
	Page       int
	MediaType  models.MediaType
	TimeWindow TimeWindow
}

func DefaultTrending() Trending {
	return NewTrending(1, models.MediaTypeAll, TimeWindowDay)
}

// NewTrending builds trending parameters, substituting defaults for anything
// unrecognized.
func NewTrending(page int, mediaType models.MediaType, window TimeWindow) Trending {
	if page < 1 {
		page = 1
	}
	if !validOption(trendingMediaTypes, string(mediaType)) {
		mediaType = models.MediaTypeAll
	}
	if !validOption(timeWindows, string(window)) {
		window = TimeWindowDay
	}
	return Trending{Page: page, MediaType: mediaType, TimeWindow: window}
}

// ParseTrending reads trending parameters from a query string.
func ParseTrending(q url.Values) Trending {
	raw := rawTrending{}
	decode(q, &raw)
	return NewTrending(parsePage(raw.Page), models.MediaType(raw.MediaType), TimeWindow(raw.TimeWindow))
}

func (t Trending) PageNumber() int { return t.Page }

func (t Trending) WithPage(p int) Trending {
	return NewTrending(p, t.MediaType, t.TimeWindow)
}

func (t Trending) WithMediaType(m models.MediaType) Trending {
	return NewTrending(1, m, t.TimeWindow)
}

func (t Trending) WithTimeWindow(w TimeWindow) Trending {
	return NewTrending(1, t.MediaType, w)
}

func (t Trending) Apply(q url.Values) {
	q.Set(keyPage, strconv.Itoa(t.Page))
	q.Set(keyMediaType, string(t.MediaType))
	q.Set(keyTimeWindow, string(t.TimeWindow))
}

// DiscoverCodec maps discover parameters of one kind to and from a query
// string.
type DiscoverCodec struct {
	Kind models.MediaType
}

func (c DiscoverCodec) Decode(q url.Values) Discover { return ParseDiscover(c.Kind, q) }

func (DiscoverCodec) Encode(d Discover, q url.Values) { d.Apply(q) }

type TrendingCodec struct{}

func (TrendingCodec) Decode(q url.Values) Trending { return ParseTrending(q) }

func (TrendingCodec) Encode(t Trending, q url.Values) { t.Apply(q) }
