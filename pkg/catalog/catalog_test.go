package catalog

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/marqueehq/marquee/pkg/catalogcache"
	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/migrations"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
	routes   map[string]string
	status   map[string]int
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{
		routes: map[string]string{},
		status: map[string]int{},
	}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.URL)
		body, ok := u.routes[r.URL.Path]
		status := u.status[r.URL.Path]
		u.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"status_code":34}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) calls() []*url.URL {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*url.URL(nil), u.requests...)
}

func newTestClient(u *upstream, cache *catalogcache.Cache) *Client {
	cfg := config.NewForTest()
	cfg.CatalogAPIURL = u.URL
	cfg.CatalogTimeout = 2 * time.Second
	return New(cfg, cache)
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

const discoverMovies = `{
	"page": 2,
	"total_pages": 41234,
	"total_results": 824660,
	"results": [
		{"id": 550, "title": "Fight Club", "poster_path": "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg", "vote_average": 8.4, "release_date": "1999-10-15"},
		{"id": 13, "title": "Forrest Gump", "poster_path": null, "vote_average": 8.5, "release_date": ""}
	]
}`

func TestDiscover(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/discover/movie"] = discoverMovies
	c := newTestClient(u, nil)

	res, err := c.Discover(context.Background(), listparams.NewDiscover(models.MediaTypeMovie, 2, 28, listparams.SortRating))
	require.NoError(t, err)

	require.Len(t, u.calls(), 1)
	q := u.calls()[0].Query()
	assert.Equal(t, "test-api-key", q.Get("api_key"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "vote_average.desc", q.Get("sort_by"))
	assert.Equal(t, "28", q.Get("with_genres"))

	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 500, res.TotalPages)
	assert.Equal(t, 824660, res.TotalResults)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Fight Club", res.Items[0].DisplayTitle)
	assert.Equal(t, models.MediaTypeMovie, res.Items[0].MediaType)
	assert.Equal(t, "1999", res.Items[0].Year())
	assert.Nil(t, res.Items[1].PosterPath)
	assert.Nil(t, res.Items[1].PrimaryDate)
}

func TestDiscover_AllGenresOmitsFilter(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/discover/tv"] = `{"page":1,"total_pages":3,"results":[{"id":1399,"name":"Game of Thrones","first_air_date":"2011-04-17","vote_average":8.4}]}`
	c := newTestClient(u, nil)

	res, err := c.Discover(context.Background(), listparams.DefaultDiscover(models.MediaTypeTV))
	require.NoError(t, err)

	_, hasGenre := u.calls()[0].Query()["with_genres"]
	assert.False(t, hasGenre)
	assert.Equal(t, "Game of Thrones", res.Items[0].DisplayTitle)
	assert.Equal(t, models.MediaTypeTV, res.Items[0].MediaType)
	assert.Equal(t, 3, res.TotalPages)
}

func TestFetchFailures(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()
		u := newUpstream(t)
		u.status["/discover/movie"] = http.StatusServiceUnavailable
		c := newTestClient(u, nil)

		_, err := c.Discover(context.Background(), listparams.DefaultDiscover(models.MediaTypeMovie))
		assert.True(t, errcodes.IsFetchFailure(err))
		assert.Contains(t, err.Error(), "Failed to fetch movies.")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		u := newUpstream(t)
		u.routes["/trending/all/day"] = `{"results": [`
		c := newTestClient(u, nil)

		_, err := c.Trending(context.Background(), listparams.DefaultTrending())
		assert.True(t, errcodes.IsFetchFailure(err))
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		u := newUpstream(t)
		c := newTestClient(u, nil)
		u.Close()

		_, err := c.Discover(context.Background(), listparams.DefaultDiscover(models.MediaTypeMovie))
		assert.True(t, errcodes.IsFetchFailure(err))
	})
}

func TestTrending_DecodesMixedTypes(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/trending/all/week"] = `{"page":1,"total_pages":1,"results":[
		{"id":1,"media_type":"movie","title":"Dune"},
		{"id":2,"media_type":"tv","name":"Shogun"},
		{"id":3,"media_type":"person","name":"Zendaya","profile_path":"/z.jpg"},
		{"id":4,"media_type":"collection","name":"Skipped"}
	]}`
	c := newTestClient(u, nil)

	res, err := c.Trending(context.Background(), listparams.NewTrending(1, models.MediaTypeAll, listparams.TimeWindowWeek))
	require.NoError(t, err)

	require.Len(t, res.Items, 3)
	assert.Equal(t, []models.MediaType{models.MediaTypeMovie, models.MediaTypeTV, models.MediaTypePerson},
		[]models.MediaType{res.Items[0].MediaType, res.Items[1].MediaType, res.Items[2].MediaType})
	assert.Equal(t, "Shogun", res.Items[1].DisplayTitle)
	assert.Equal(t, "/z.jpg", *res.Items[2].PosterPath)
}

func TestSearch(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/search/movie"] = `{"page":1,"total_pages":1,"total_results":1,"results":[{"id":603,"title":"The Matrix"}]}`
	c := newTestClient(u, nil)

	res, err := c.Search(context.Background(), models.MediaTypeMovie, "the matrix & co")
	require.NoError(t, err)

	assert.Equal(t, "the matrix & co", u.calls()[0].Query().Get("query"))
	assert.Equal(t, "The Matrix", res.Items[0].DisplayTitle)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/tv/1396"] = `{
		"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20", "episode_run_time": [47],
		"genres": [{"id": 18, "name": "Drama"}], "number_of_seasons": 5,
		"seasons": [
			{"season_number": 0, "episode_count": 9, "name": "Specials"},
			{"season_number": 1, "episode_count": 7, "name": "Season 1"},
			{"season_number": 2, "episode_count": 13, "name": "Season 2"}
		]
	}`
	u.routes["/movie/550"] = `{"id": 550, "title": "Fight Club", "release_date": "1999-10-15", "runtime": 139, "tagline": "Mischief. Mayhem. Soap."}`
	c := newTestClient(u, nil)

	show, err := c.Details(context.Background(), models.MediaTypeTV, 1396)
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", show.Title)
	assert.Equal(t, "2008", show.Year())
	assert.Equal(t, 47, show.Runtime)
	assert.Equal(t, []models.Genre{{ID: 18, Name: "Drama"}}, show.Genres)
	require.Len(t, show.Seasons, 2)
	assert.Equal(t, 13, show.EpisodesIn(2))
	assert.Equal(t, 0, show.EpisodesIn(0))

	movie, err := c.Details(context.Background(), models.MediaTypeMovie, 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, 139, movie.Runtime)
	assert.Equal(t, models.MediaTypeMovie, movie.MediaType)
	assert.Empty(t, movie.Seasons)
}

func TestDetails_NotFound(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/movie/2"] = `{}`
	c := newTestClient(u, nil)

	_, err := c.Details(context.Background(), models.MediaTypeMovie, 1)
	assert.True(t, errcodes.IsNotFound(err))

	_, err = c.Details(context.Background(), models.MediaTypeMovie, 2)
	assert.True(t, errcodes.IsNotFound(err))
}

func TestCredits(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/movie/550/credits"] = `{"id":550,"cast":[{"id":819,"name":"Edward Norton","character":"The Narrator","order":0},{"id":287,"name":"Brad Pitt","character":"Tyler Durden","order":1}]}`
	c := newTestClient(u, nil)

	credits, err := c.Credits(context.Background(), models.MediaTypeMovie, 550)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 2)
	assert.Equal(t, "Tyler Durden", credits.Cast[1].Character)
}

func TestSliders(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/trending/movie/day"] = `{"results":[{"id":1,"title":"A"}]}`
	u.routes["/tv/popular"] = `{"results":[{"id":2,"name":"B"}]}`
	u.routes["/movie/top_rated"] = `{"results":[{"id":3,"title":"C"}]}`
	c := newTestClient(u, nil)
	ctx := context.Background()

	trending, err := c.TrendingMoviesToday(ctx)
	require.NoError(t, err)
	popular, err := c.PopularShows(ctx)
	require.NoError(t, err)
	top, err := c.TopRatedMovies(ctx)
	require.NoError(t, err)

	assert.Equal(t, "A", trending[0].DisplayTitle)
	assert.Equal(t, models.MediaTypeTV, popular[0].MediaType)
	assert.Equal(t, "C", top[0].DisplayTitle)
}

func TestHero(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/trending/all/day"] = `{"results":[
		{"id":1,"media_type":"person","name":"Someone"},
		{"id":2,"media_type":"movie","title":"First","backdrop_path":"/b.jpg"},
		{"id":3,"media_type":"tv","name":"Second"}
	]}`
	c := newTestClient(u, nil)

	var bound int
	c.intn = func(n int) int {
		bound = n
		return n - 1
	}

	hero, err := c.Hero(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, bound)
	assert.Equal(t, models.MediaTypeTV, hero.Kind())
	assert.Equal(t, "Second", hero.Summary().DisplayTitle)
}

func TestHero_NothingTrending(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/trending/all/day"] = `{"results":[]}`
	c := newTestClient(u, nil)

	hero, err := c.Hero(context.Background())
	require.NoError(t, err)
	assert.Nil(t, hero)
}

func TestCache(t *testing.T) {
	t.Parallel()

	u := newUpstream(t)
	u.routes["/discover/movie"] = discoverMovies
	c := newTestClient(u, catalogcache.New(newTestDB(t), time.Hour))
	ctx := context.Background()
	p := listparams.DefaultDiscover(models.MediaTypeMovie)

	first, err := c.Discover(ctx, p)
	require.NoError(t, err)
	second, err := c.Discover(ctx, p)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, u.calls(), 1, "the second listing is served from the cache")

	_, err = c.Discover(ctx, p.WithPage(2))
	require.NoError(t, err)
	assert.Len(t, u.calls(), 2)
}

func TestImageURL(t *testing.T) {
	t.Parallel()

	c := New(config.NewForTest(), nil)
	path := "/poster.jpg"
	empty := ""

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", c.ImageURL(SizePoster, &path))
	assert.Equal(t, "", c.ImageURL(SizePoster, nil))
	assert.Equal(t, "", c.ImageURL(SizePoster, &empty))
}
