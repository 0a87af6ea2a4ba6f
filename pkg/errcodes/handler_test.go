package errcodes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_JSONForAPIRoutes(t *testing.T) {
	t.Parallel()
	h := NewHandler().WithPages(func(_ echo.Context, code int, msg string) string {
		return fmt.Sprintf("<p>%d %s</p>", code, msg)
	})

	c, rec := newContext("/api/discover/movie")
	h.Handle(errors.WithStack(FetchFailure("movies")), c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fetch_failure", body["error"]["code"])
	assert.Equal(t, "Failed to fetch movies.", body["error"]["message"])
}

func TestHandler_HTMLForPages(t *testing.T) {
	t.Parallel()
	h := NewHandler().WithPages(func(_ echo.Context, code int, msg string) string {
		return fmt.Sprintf("<p>%d %s</p>", code, msg)
	})

	c, rec := newContext("/details/movie/1")
	h.Handle(NotFound("Movie"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Equal(t, "<p>404 Movie not found.</p>", rec.Body.String())
}

func TestHandler_WithoutPagesFallsBackToJSON(t *testing.T) {
	t.Parallel()
	c, rec := newContext("/movies")
	NewHandler().Handle(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_server_error")
}

func TestHandler_EchoErrors(t *testing.T) {
	t.Parallel()
	c, rec := newContext("/api/x")
	NewHandler().Handle(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method_not_allowed")
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	assert.True(t, IsFetchFailure(errors.Wrap(FetchFailure("x"), "wrapped")))
	assert.False(t, IsFetchFailure(NotFound("x")))
	assert.True(t, IsNotFound(errors.WithStack(NotFound("x"))))
	assert.False(t, IsNotFound(errors.New("x")))
}
