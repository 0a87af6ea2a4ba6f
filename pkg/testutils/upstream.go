// Package testutils provides fixtures shared by the handler tests: a fake
// catalog API and an in-memory database.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/marqueehq/marquee/pkg/config"
)

// Upstream is a fake catalog API. Paths without a registered body answer 404.
type Upstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*url.URL
	routes   map[string]string
	status   map[string]int
}

func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{
		routes: map[string]string{},
		status: map[string]int{},
	}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
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
}

// Handle serves body for path.
func (u *Upstream) Handle(path, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[path] = body
	delete(u.status, path)
}

// Fail answers path with status and no body.
func (u *Upstream) Fail(path string, status int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status[path] = status
}

// Calls returns the requests received so far.
func (u *Upstream) Calls() []*url.URL {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*url.URL(nil), u.requests...)
}

// CallsTo returns the requests received for path.
func (u *Upstream) CallsTo(path string) []*url.URL {
	var out []*url.URL
	for _, c := range u.Calls() {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// Config returns a test config pointing the catalog at u.
func (u *Upstream) Config() *config.Config {
	cfg := config.NewForTest()
	cfg.CatalogAPIURL = u.URL
	cfg.CatalogImageURL = "https://img.test/t/p"
	cfg.CatalogTimeout = 2 * time.Second
	return cfg
}
