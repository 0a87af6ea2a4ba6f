package errcodes

import (
	"net/http"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/errutils"
)

// PageRenderer renders an HTML error page for browser-facing routes.
type PageRenderer func(c echo.Context, httpCode int, message string) string

type Handler struct {
	renderPage PageRenderer
}

func NewHandler() *Handler {
	return &Handler{}
}

// WithPages makes the handler answer non-API requests with HTML rendered by r.
func (h *Handler) WithPages(r PageRenderer) *Handler {
	h.renderPage = r
	return h
}

// Handle is an Echo error handler that uses HTTP errors accordingly, and any
// generic error will be interpreted as an internal server error.
func (h *Handler) Handle(err error, c echo.Context) {
	if errutils.IsIgnorableErr(err) {
		logger.FromEchoContext(c).Err(err).Warn("broken pipe")
		return
	}

	httpCode, payload := h.generatePayload(c, err)

	// Internal server errors
	if httpCode == http.StatusInternalServerError {
		logger.FromEchoContext(c).Err(err).Error("server error")
	}

	if h.renderPage != nil && wantsHTML(c) {
		msg, _ := payload["error"].(map[string]interface{})["message"].(string)
		if err := c.HTML(httpCode, h.renderPage(c, httpCode, msg)); err != nil {
			logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler html error")
		}
		return
	}

	if err := c.JSON(httpCode, payload); err != nil {
		logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler json error")
	}
}

// wantsHTML is true for browser page routes. JSON API routes and clients that
// explicitly ask for JSON get the JSON payload.
func wantsHTML(c echo.Context) bool {
	req := c.Request()
	if strings.HasPrefix(req.URL.Path, "/api/") || strings.HasPrefix(req.URL.Path, "/auth/") {
		return false
	}
	accept := req.Header.Get(echo.HeaderAccept)
	return !strings.HasPrefix(accept, echo.MIMEApplicationJSON)
}

func (h *Handler) generatePayload(c echo.Context, err error) (int, map[string]interface{}) {
	return h.generateIndividualPayload(c, err)
}

func (h *Handler) generateIndividualPayload(_ echo.Context, err error) (int, map[string]interface{}) {
	code := ""
	msg := ""
	httpCode := http.StatusInternalServerError

	// Echo errors
	var he *echo.HTTPError
	if ok := errors.As(err, &he); ok {
		httpCode = he.Code
		msg, _ = he.Message.(string)
		code = strcase.ToSnake(msg)
	}

	// Custom errors
	var e *Error
	if ok := errors.As(err, &e); ok {
		httpCode = e.HTTPCode
		code = e.Code
		msg = e.Message
	}

	// Internal server errors that aren't Echo errors or custom errors
	if httpCode == http.StatusInternalServerError && msg == "" {
		code = "internal_server_error"
		msg = "Internal Server Error"
	}

	return httpCode, map[string]interface{}{
		"error": map[string]interface{}{
			"code":        code,
			"message":     msg,
			"status_code": httpCode,
		},
	}
}
