// Package catalog talks to the upstream media metadata API.
package catalog

import (
	"context"
	"crypto/tls"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marqueehq/marquee/pkg/catalogcache"
	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

const maxBodySize = 10 * 1024 * 1024

type Client struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	imageURL string
	cache    *catalogcache.Cache
	intn     func(n int) int
}

// New builds a client for the configured catalog. cache may be nil, in which
// case every call goes upstream.
func New(cfg *config.Config, cache *catalogcache.Cache) *Client {
	return &Client{
		http: &http.Client{
			Timeout: cfg.CatalogTimeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		baseURL:  strings.TrimRight(cfg.CatalogAPIURL, "/"),
		apiKey:   cfg.CatalogAPIKey,
		imageURL: strings.TrimRight(cfg.CatalogImageURL, "/"),
		cache:    cache,
		intn:     rand.Intn,
	}
}

// get loads endpoint with the given query into out. resource names what is
// being fetched in error messages.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, resource string, out interface{}) error {
	log := logger.FromContext(ctx)
	key := catalogcache.Key(endpoint, query)

	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			log.Err(err).Warn("failed to read catalog cache", logger.Data{"endpoint": endpoint})
		}
		if ok {
			if err := json.Unmarshal(body, out); err == nil {
				return nil
			}
		}
	}

	body, err := c.fetch(ctx, endpoint, query, resource)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Err(err).Warn("malformed catalog response", logger.Data{"endpoint": endpoint})
		return errors.WithStack(errcodes.FetchFailure(resource))
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, endpoint, body); err != nil {
			log.Err(err).Warn("failed to write catalog cache", logger.Data{"endpoint": endpoint})
		}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, query url.Values, resource string) ([]byte, error) {
	log := logger.FromContext(ctx)

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Err(err).Warn("catalog request failed", logger.Data{"endpoint": endpoint})
		return nil, errors.WithStack(errcodes.FetchFailure(resource))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.WithStack(errcodes.NotFound(resource))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("unexpected catalog status", logger.Data{"endpoint": endpoint, "status": resp.StatusCode})
		return nil, errors.WithStack(errcodes.FetchFailure(resource))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Err(err).Warn("failed to read catalog response", logger.Data{"endpoint": endpoint})
		return nil, errors.WithStack(errcodes.FetchFailure(resource))
	}
	return body, nil
}
