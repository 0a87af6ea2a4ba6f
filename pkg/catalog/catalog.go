package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/pkg/errors"
)

const heroPool = 20

func resourceName(kind models.MediaType) string {
	if kind == models.MediaTypeTV {
		return "TV shows"
	}
	return "movies"
}

// Discover lists movies or TV shows for the given filter. The genre is passed
// through as is.
func (c *Client) Discover(ctx context.Context, p listparams.Discover) (*models.PageResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("sort_by", string(p.SortBy))
	if p.Genre != 0 {
		q.Set("with_genres", strconv.Itoa(p.Genre))
	}

	raw := &rawPage{}
	if err := c.get(ctx, "/discover/"+string(p.Kind), q, resourceName(p.Kind), raw); err != nil {
		return nil, err
	}
	return decodePage(p.Kind, raw), nil
}

// Trending lists what is trending for the media type over the time window.
func (c *Client) Trending(ctx context.Context, p listparams.Trending) (*models.PageResult, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))

	raw := &rawPage{}
	endpoint := fmt.Sprintf("/trending/%s/%s", p.MediaType, p.TimeWindow)
	if err := c.get(ctx, endpoint, q, "trending content", raw); err != nil {
		return nil, err
	}
	return decodePage(p.MediaType, raw), nil
}

// Search returns the first page of movies or TV shows matching query.
func (c *Client) Search(ctx context.Context, kind models.MediaType, query string) (*models.PageResult, error) {
	q := url.Values{}
	q.Set("query", query)

	raw := &rawPage{}
	if err := c.get(ctx, "/search/"+string(kind), q, "search results", raw); err != nil {
		return nil, err
	}
	return decodePage(kind, raw), nil
}

// Details returns the details of a movie or TV show.
func (c *Client) Details(ctx context.Context, kind models.MediaType, id int) (*models.Details, error) {
	resource := "Movie"
	if kind == models.MediaTypeTV {
		resource = "TV show"
	}

	raw := &rawDetails{}
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), url.Values{}, resource, raw); err != nil {
		return nil, err
	}
	if raw.ID == 0 {
		return nil, errors.WithStack(errcodes.NotFound(resource))
	}
	return decodeDetails(kind, raw), nil
}

// Credits returns the cast of a movie or TV show in billing order.
func (c *Client) Credits(ctx context.Context, kind models.MediaType, id int) (*models.Credits, error) {
	credits := &models.Credits{}
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/credits", kind, id), url.Values{}, "credits", credits); err != nil {
		return nil, err
	}
	return credits, nil
}

func (c *Client) list(ctx context.Context, kind models.MediaType, endpoint, resource string) ([]models.MediaSummary, error) {
	raw := &rawPage{}
	if err := c.get(ctx, endpoint, url.Values{}, resource, raw); err != nil {
		return nil, err
	}
	return models.Summaries(decodeItems(kind, raw.Results)), nil
}

func (c *Client) TrendingMoviesToday(ctx context.Context) ([]models.MediaSummary, error) {
	return c.list(ctx, models.MediaTypeMovie, "/trending/movie/day", "trending movies")
}

func (c *Client) PopularShows(ctx context.Context) ([]models.MediaSummary, error) {
	return c.list(ctx, models.MediaTypeTV, "/tv/popular", "popular TV shows")
}

func (c *Client) TopRatedMovies(ctx context.Context) ([]models.MediaSummary, error) {
	return c.list(ctx, models.MediaTypeMovie, "/movie/top_rated", "top rated movies")
}

// Hero picks a random movie or TV show among the first entries trending
// today. It returns nil when nothing suitable is trending.
func (c *Client) Hero(ctx context.Context) (models.MediaItem, error) {
	raw := &rawPage{}
	if err := c.get(ctx, "/trending/all/day", url.Values{}, "trending content", raw); err != nil {
		return nil, err
	}

	candidates := make([]models.MediaItem, 0, heroPool)
	for _, item := range decodeItems(models.MediaTypeAll, raw.Results) {
		if !item.Kind().HasDetails() {
			continue
		}
		candidates = append(candidates, item)
		if len(candidates) == heroPool {
			break
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[c.intn(len(candidates))], nil
}
