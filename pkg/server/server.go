package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/auth"
	"github.com/marqueehq/marquee/pkg/binder"
	"github.com/marqueehq/marquee/pkg/browse"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/catalogcache"
	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/details"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/home"
	"github.com/marqueehq/marquee/pkg/identity"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/search"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/marqueehq/marquee/pkg/users"
	"github.com/marqueehq/marquee/pkg/watch"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB, cache *catalogcache.Cache) (*http.Server, error) {
	e, err := newEcho(cfg, db, cache)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func newEcho(cfg *config.Config, db *bun.DB, cache *catalogcache.Cache) (*echo.Echo, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())

	health.RegisterRoutes(e)

	catalogClient := catalog.New(cfg, cache)
	sessionManager := sessions.NewManager(cfg, sessions.Fetchers{
		Discover: catalogClient.Discover,
		Trending: catalogClient.Trending,
	})
	authService := auth.NewService(users.NewService(db), identity.New(cfg), cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	e.Use(withSession(sessionManager.Middleware, authMiddleware.Restore))

	home.RegisterRoutes(e, catalogClient)
	browse.RegisterRoutes(e, catalogClient)
	search.RegisterRoutes(e, catalogClient)
	details.RegisterRoutes(e, catalogClient)
	watch.RegisterRoutes(e, cfg, catalogClient)
	auth.RegisterRoutes(e, cfg, authService)

	e.RouteNotFound("/*", notFoundHandler)
	e.HTTPErrorHandler = errcodes.NewHandler().WithPages(func(c echo.Context, httpCode int, message string) string {
		return pages.ErrorPage(sessions.Header(c, ""), httpCode, message)
	}).Handle

	return e, nil
}

// withSession applies the view session middlewares to everything but the
// health checks and the stateless JSON API.
func withSession(middlewares ...echo.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		wrapped := next
		for i := len(middlewares) - 1; i >= 0; i-- {
			wrapped = middlewares[i](wrapped)
		}
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/api/") {
				return next(c)
			}
			return wrapped(c)
		}
	}
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
