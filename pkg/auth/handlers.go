package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/marqueehq/marquee/pkg/pages"
	"github.com/marqueehq/marquee/pkg/sessions"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "marquee_session"
	// CookieMaxAge is how long the cookie is valid.
	CookieMaxAge = 7 * 24 * time.Hour // 7 days
)

type handler struct {
	authService *Service
	clientID    string
}

func sessionCookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	}
}

// loginPage renders the sign-in button of the identity provider.
func (h *handler) loginPage(c echo.Context) error {
	sess := sessions.FromContext(c)
	if sess != nil && sess.User.Current() != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	callback := c.Scheme() + "://" + c.Request().Host + "/auth/callback"
	return c.HTML(http.StatusOK, pages.Render("Sign in", pages.Header{Active: "/login"}, loginContent(h.clientID, callback)))
}

// callback completes the popup sign-in.
func (h *handler) callback(c echo.Context) error {
	ctx := c.Request().Context()

	params := CallbackPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, token, err := h.authService.SignIn(ctx, params.Credential)
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie(c, token, int(CookieMaxAge.Seconds())))
	if sess := sessions.FromContext(c); sess != nil {
		sess.User.Login(StoreUser(user))
	}

	logger.FromContext(ctx).Info("user signed in", logger.Data{"uid": user.UID})
	return c.Redirect(http.StatusSeeOther, "/")
}

// logout clears the session cookie and the login store.
func (h *handler) logout(c echo.Context) error {
	// Clear cookie by setting MaxAge to -1
	c.SetCookie(sessionCookie(c, "", -1))
	if sess := sessions.FromContext(c); sess != nil {
		sess.User.Logout()
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// me returns the signed-in user.
func (h *handler) me(c echo.Context) error {
	sess := sessions.FromContext(c)
	if sess == nil {
		return errcodes.Unauthorized("Not signed in.")
	}
	user := sess.User.Current()
	if user == nil {
		return errcodes.Unauthorized("Not signed in.")
	}
	return c.JSON(http.StatusOK, user)
}

// events streams the signed-in user of the session as server-sent events: the
// current value first, then one event per sign-in or sign-out, until the
// client goes away.
func (h *handler) events(c echo.Context) error {
	sess := sessions.FromContext(c)
	if sess == nil {
		return errcodes.Unauthorized("No session.")
	}
	updates, cancel := sess.User.Subscribe()
	defer cancel()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case user, ok := <-updates:
			if !ok {
				return nil
			}
			data, err := json.Marshal(user)
			if err != nil {
				return errors.WithStack(err)
			}
			if _, err := fmt.Fprintf(res, "event: user\ndata: %s\n\n", data); err != nil {
				// The client is gone.
				return nil
			}
			res.Flush()
		}
	}
}
