package watch

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		s, e string
		want Episode
	}{
		{"", "", Episode{1, 1}},
		{"2", "5", Episode{2, 5}},
		{"0", "-3", Episode{1, 1}},
		{"x", "4", Episode{1, 4}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseEpisode(tc.s, tc.e), "s=%q e=%q", tc.s, tc.e)
	}
}

func TestEmbedsURL(t *testing.T) {
	t.Parallel()
	em := Embeds{Movie: "https://player.test/movie", TV: "https://player.test/tv?id="}

	assert.Equal(t, "https://player.test/movie/550?autoplay=1", em.URL(models.MediaTypeMovie, 550, Episode{1, 1}))
	assert.Equal(t, "https://player.test/tv?id=/1396&s=2&e=3?autoplay=1", em.URL(models.MediaTypeTV, 1396, Episode{2, 3}))
	assert.Equal(t, "", em.URL(models.MediaTypePerson, 287, Episode{1, 1}))
	assert.Equal(t, "", Embeds{}.URL(models.MediaTypeMovie, 550, Episode{1, 1}))
}

func newTestServer(t *testing.T, movieEmbed, tvEmbed string) *testutils.Browser {
	t.Helper()

	up := testutils.NewUpstream(t)
	up.Handle("/movie/550", `{"id":550,"title":"Fight Club","release_date":"1999-10-15","vote_average":8.4,"poster_path":"/fc.jpg"}`)
	up.Handle("/tv/1396", `{"id":1396,"name":"Breaking Bad","first_air_date":"2008-01-20","vote_average":8.9,
		"seasons":[
			{"season_number":0,"episode_count":9,"name":"Specials"},
			{"season_number":1,"episode_count":7,"name":"Season 1"},
			{"season_number":2,"episode_count":13,"name":"Season 2"}
		]}`)

	cfg := up.Config()
	cfg.MovieEmbedURL = movieEmbed
	cfg.TVEmbedURL = tvEmbed

	e := echo.New()
	e.HTTPErrorHandler = errcodes.NewHandler().WithPages(func(c echo.Context, code int, msg string) string {
		return pages.ErrorPage(pages.Header{}, code, msg)
	}).Handle
	RegisterRoutes(e, cfg, catalog.New(cfg, nil))

	return testutils.NewBrowser(t, e)
}

func iframeSrc(t *testing.T, page *testutils.Page) string {
	t.Helper()
	frames := page.Find("iframe", "")
	require.Len(t, frames, 1)
	return testutils.Attr(frames[0], "src")
}

func TestWatch_Movie(t *testing.T) {
	t.Parallel()
	browser := newTestServer(t, "https://player.test/movie/", "https://player.test/tv")

	rec := browser.Get("/watch/movie/550")
	require.Equal(t, http.StatusOK, rec.Code)
	page := testutils.ParsePage(t, rec.Body.String())

	assert.Equal(t, "https://player.test/movie/550?autoplay=1", iframeSrc(t, page))
	assert.Equal(t, []string{"Fight Club"}, page.Texts("h1", ""))
	assert.Equal(t, []string{"1999", "8.4 / 10"}, page.Texts("span", "badge"))
	assert.Empty(t, page.Find("a", "season"))
}

func TestWatch_TV(t *testing.T) {
	t.Parallel()
	browser := newTestServer(t, "https://player.test/movie", "https://player.test/tv")

	rec := browser.Get("/watch/tv/1396?s=2&e=4")
	require.Equal(t, http.StatusOK, rec.Code)
	page := testutils.ParsePage(t, rec.Body.String())

	assert.Equal(t, "https://player.test/tv/1396&s=2&e=4?autoplay=1", iframeSrc(t, page))

	seasons := page.Find("a", "season")
	require.Len(t, seasons, 2, "specials are not listed")
	assert.Equal(t, "/watch/tv/1396?s=1&e=1", testutils.Attr(seasons[0], "href"))
	assert.Equal(t, []string{"Season 2"}, page.Texts("a", "selected")[:1])

	episodes := page.Find("a", "episode")
	require.Len(t, episodes, 13)
	assert.Equal(t, "/watch/tv/1396?s=2&e=1", testutils.Attr(episodes[0], "href"))
	assert.True(t, testutils.HasClass(episodes[3], "selected"))
}

func TestWatch_TVDefaultsToFirstEpisode(t *testing.T) {
	t.Parallel()
	browser := newTestServer(t, "", "https://player.test/tv")

	rec := browser.Get("/watch/tv/1396?s=0&e=abc")
	require.Equal(t, http.StatusOK, rec.Code)
	page := testutils.ParsePage(t, rec.Body.String())

	assert.Equal(t, "https://player.test/tv/1396&s=1&e=1?autoplay=1", iframeSrc(t, page))
	assert.Len(t, page.Find("a", "episode"), 7)
}

func TestWatch_NoPlayerConfigured(t *testing.T) {
	t.Parallel()
	browser := newTestServer(t, "", "")

	rec := browser.Get("/watch/movie/550")
	require.Equal(t, http.StatusOK, rec.Code)
	page := testutils.ParsePage(t, rec.Body.String())

	assert.Empty(t, page.Find("iframe", ""))
	assert.Contains(t, rec.Body.String(), "No player is available for this title.")
}

func TestWatch_NotFound(t *testing.T) {
	t.Parallel()
	browser := newTestServer(t, "https://player.test/movie", "https://player.test/tv")

	for _, target := range []string{"/watch/movie/1", "/watch/person/287", "/watch/tv/-4"} {
		rec := browser.Get(target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
	}
}
