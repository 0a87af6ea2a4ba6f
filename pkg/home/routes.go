package home

import (
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
)

func RegisterRoutes(e *echo.Echo, catalogClient *catalog.Client) {
	h := &handler{catalog: catalogClient}

	e.GET("/", h.show)
}
