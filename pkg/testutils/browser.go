package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// Browser sends requests to an echo instance and keeps the cookies it is
// given between requests. Redirects are not followed.
type Browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

func NewBrowser(t *testing.T, e *echo.Echo) *Browser {
	return &Browser{t: t, e: e, cookies: map[string]*http.Cookie{}}
}

func (b *Browser) Get(target string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

// Post submits form to target as a browser form would.
func (b *Browser) Post(target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

// Cookie returns the stored cookie called name, or nil.
func (b *Browser) Cookie(name string) *http.Cookie {
	return b.cookies[name]
}

func (b *Browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}
