package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/models"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/marqueehq/marquee/pkg/userstore"
	"github.com/robinjoseph08/golib/logger"
)

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Restore signs the view session's user store in from a valid session cookie
// when the store is empty, e.g. after the view session expired. Requests
// without a valid cookie pass through anonymously.
func (m *Middleware) Restore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := sessions.FromContext(c)
		if sess == nil || sess.User.Current() != nil {
			return next(c)
		}

		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		user, err := m.authService.UserFromToken(c.Request().Context(), cookie.Value)
		if err != nil {
			logger.FromContext(c.Request().Context()).Debug("ignoring session cookie", logger.Data{"error": err.Error()})
			return next(c)
		}

		sess.User.Login(StoreUser(user))
		return next(c)
	}
}

// StoreUser converts a persisted profile into the login store's shape.
func StoreUser(user *models.User) userstore.User {
	return userstore.User{
		UID:         user.UID,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}
}
