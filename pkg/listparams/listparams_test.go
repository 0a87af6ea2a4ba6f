package listparams

import (
	"net/url"
	"testing"

	"github.com/marqueehq/marquee/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiscover(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		kind     models.MediaType
		query    string
		expected Discover
	}{
		{
			name:     "empty query uses defaults",
			kind:     models.MediaTypeMovie,
			query:    "",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 1, Genre: 0, SortBy: SortPopularity},
		},
		{
			name:     "recognized values",
			kind:     models.MediaTypeMovie,
			query:    "page=3&genre=28&sortBy=vote_average.desc",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 3, Genre: 28, SortBy: SortRating},
		},
		{
			name:     "non-numeric page falls back to 1",
			kind:     models.MediaTypeTV,
			query:    "page=abc",
			expected: Discover{Kind: models.MediaTypeTV, Page: 1, SortBy: SortPopularity},
		},
		{
			name:     "negative page falls back to 1",
			kind:     models.MediaTypeMovie,
			query:    "page=-4",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 1, SortBy: SortPopularity},
		},
		{
			name:     "unknown genre means all genres",
			kind:     models.MediaTypeMovie,
			query:    "genre=123456",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 1, SortBy: SortPopularity},
		},
		{
			name:     "genre of the other kind is not recognized",
			kind:     models.MediaTypeMovie,
			query:    "genre=10759",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 1, SortBy: SortPopularity},
		},
		{
			name:     "tv genre",
			kind:     models.MediaTypeTV,
			query:    "genre=10759&sortBy=first_air_date.desc",
			expected: Discover{Kind: models.MediaTypeTV, Page: 1, Genre: 10759, SortBy: SortFirstAirDate},
		},
		{
			name:     "sort key of the other kind falls back",
			kind:     models.MediaTypeTV,
			query:    "sortBy=release_date.desc",
			expected: Discover{Kind: models.MediaTypeTV, Page: 1, SortBy: SortPopularity},
		},
		{
			name:     "values are trimmed",
			kind:     models.MediaTypeMovie,
			query:    "page=+2+&genre=+35",
			expected: Discover{Kind: models.MediaTypeMovie, Page: 2, Genre: 35, SortBy: SortPopularity},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ParseDiscover(tc.kind, q))
		})
	}
}

func TestParseTrending(t *testing.T) {
	t.Parallel()

	q, err := url.ParseQuery("page=2&mediaType=tv&timeWindow=week")
	require.NoError(t, err)
	assert.Equal(t, Trending{Page: 2, MediaType: models.MediaTypeTV, TimeWindow: TimeWindowWeek}, ParseTrending(q))

	q, err = url.ParseQuery("mediaType=books&timeWindow=year")
	require.NoError(t, err)
	assert.Equal(t, DefaultTrending(), ParseTrending(q))
}

func TestDiscover_ApplyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range []models.MediaType{models.MediaTypeMovie, models.MediaTypeTV} {
		for _, g := range append(Genres(kind), models.Genre{}) {
			for _, s := range SortOptions(kind) {
				p := NewDiscover(kind, 7, g.ID, SortKey(s.Value))
				q := url.Values{}
				p.Apply(q)
				assert.Equal(t, p, ParseDiscover(kind, q))
			}
		}
	}
}

func TestDiscover_ApplyPreservesUnrelatedKeys(t *testing.T) {
	t.Parallel()

	q := url.Values{"utm_source": {"newsletter"}, "genre": {"28"}}
	DefaultDiscover(models.MediaTypeMovie).Apply(q)

	assert.Equal(t, "newsletter", q.Get("utm_source"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "popularity.desc", q.Get("sortBy"))
	_, hasGenre := q["genre"]
	assert.False(t, hasGenre)
}

func TestDiscover_Transitions(t *testing.T) {
	t.Parallel()

	p := NewDiscover(models.MediaTypeMovie, 4, 28, SortRating)

	assert.Equal(t, Discover{Kind: models.MediaTypeMovie, Page: 1, Genre: 35, SortBy: SortRating}, p.WithGenre(35))
	assert.Equal(t, Discover{Kind: models.MediaTypeMovie, Page: 1, Genre: 28, SortBy: SortReleaseDate}, p.WithSort(SortReleaseDate))
	assert.Equal(t, 9, p.WithPage(9).PageNumber())
	assert.Equal(t, 1, p.WithPage(0).PageNumber())
	assert.Equal(t, 0, p.WithGenre(-1).Genre)
}

func TestTrending_Transitions(t *testing.T) {
	t.Parallel()

	p := NewTrending(5, models.MediaTypeMovie, TimeWindowWeek)

	assert.Equal(t, Trending{Page: 1, MediaType: models.MediaTypePerson, TimeWindow: TimeWindowWeek}, p.WithMediaType(models.MediaTypePerson))
	assert.Equal(t, Trending{Page: 1, MediaType: models.MediaTypeMovie, TimeWindow: TimeWindowDay}, p.WithTimeWindow(TimeWindowDay))

	q := url.Values{}
	p.Apply(q)
	assert.Equal(t, p, ParseTrending(q))
}

func TestCodecs(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	DiscoverCodec{Kind: models.MediaTypeTV}.Encode(NewDiscover(models.MediaTypeTV, 2, 16, SortRating), q)
	assert.Equal(t, "genre=16&page=2&sortBy=vote_average.desc", q.Encode())

	tq := url.Values{}
	TrendingCodec{}.Encode(DefaultTrending(), tq)
	assert.Equal(t, DefaultTrending(), TrendingCodec{}.Decode(tq))
}
