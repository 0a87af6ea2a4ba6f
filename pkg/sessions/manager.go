package sessions

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/pages"
)

const (
	// CookieName is the name of the view session cookie.
	CookieName = "marquee_view"

	contextKey = "view_session"
)

// Manager keeps the sessions of recent visitors. Idle sessions expire after
// the configured TTL and the least recently used ones are evicted once the
// capacity is reached.
type Manager struct {
	sessions *expirable.LRU[string, *Session]
	fetchers Fetchers
	ttl      time.Duration
}

func NewManager(cfg *config.Config, fetchers Fetchers) *Manager {
	return &Manager{
		sessions: expirable.NewLRU[string, *Session](cfg.SessionCapacity, nil, cfg.SessionTTL),
		fetchers: fetchers,
		ttl:      cfg.SessionTTL,
	}
}

// Middleware attaches the visitor's session to the request, starting a new one
// when the cookie is missing or its session has expired.
func (m *Manager) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sess *Session
		if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
			sess, _ = m.sessions.Get(cookie.Value)
		}
		if sess == nil {
			sess = newSession(uuid.NewString(), m.fetchers)
		}

		// Re-adding restarts the expiry clock on every visit.
		m.sessions.Add(sess.ID, sess)

		c.SetCookie(&http.Cookie{
			Name:     CookieName,
			Value:    sess.ID,
			Path:     "/",
			MaxAge:   int(m.ttl.Seconds()),
			HttpOnly: true,
			Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
			SameSite: http.SameSiteLaxMode,
		})
		c.Set(contextKey, sess)

		return next(c)
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(c echo.Context) *Session {
	sess, _ := c.Get(contextKey).(*Session)
	return sess
}

// Header returns the navigation bar for a page of section active, showing the
// session's user if one is signed in.
func Header(c echo.Context, active string) pages.Header {
	h := pages.Header{Active: active}
	if sess := FromContext(c); sess != nil {
		h.User = sess.User.Current()
	}
	return h
}
