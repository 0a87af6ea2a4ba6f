// Package sessions tracks per-browser view state: the list controllers with
// their address history, and the signed-in user.
package sessions

import (
	"net/url"
	"sync"

	"github.com/marqueehq/marquee/pkg/listparams"
	"github.com/marqueehq/marquee/pkg/listview"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/urlstate"
	"github.com/marqueehq/marquee/pkg/userstore"
)

// Fetchers load list pages for the controllers of every session.
type Fetchers struct {
	Discover listview.FetchFunc[listparams.Discover]
	Trending listview.FetchFunc[listparams.Trending]
}

type DiscoverView struct {
	*listview.Discover
	URL *urlstate.Synchronizer[listparams.Discover]
}

type TrendingView struct {
	*listview.Trending
	URL *urlstate.Synchronizer[listparams.Trending]
}

type Session struct {
	ID   string
	User *userstore.Store

	fetchers Fetchers

	mu       sync.Mutex
	movies   *DiscoverView
	shows    *DiscoverView
	trending *TrendingView
}

func newSession(id string, fetchers Fetchers) *Session {
	return &Session{
		ID:       id,
		User:     userstore.New(),
		fetchers: fetchers,
	}
}

// Movies returns the movies view, creating it at location on first use.
func (s *Session) Movies(location *url.URL) *DiscoverView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.movies == nil {
		s.movies = s.newDiscover(models.MediaTypeMovie, location)
	}
	return s.movies
}

// Shows returns the TV shows view, creating it at location on first use.
func (s *Session) Shows(location *url.URL) *DiscoverView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shows == nil {
		s.shows = s.newDiscover(models.MediaTypeTV, location)
	}
	return s.shows
}

// Trending returns the trending view, creating it at location on first use.
func (s *Session) Trending(location *url.URL) *TrendingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trending == nil {
		syncer := urlstate.New[listparams.Trending](listparams.TrendingCodec{}, location)
		s.trending = &TrendingView{
			Trending: listview.NewTrending(s.fetchers.Trending, syncer),
			URL:      syncer,
		}
	}
	return s.trending
}

func (s *Session) newDiscover(kind models.MediaType, location *url.URL) *DiscoverView {
	syncer := urlstate.New[listparams.Discover](listparams.DiscoverCodec{Kind: kind}, location)
	return &DiscoverView{
		Discover: listview.NewDiscover(kind, s.fetchers.Discover, syncer),
		URL:      syncer,
	}
}
