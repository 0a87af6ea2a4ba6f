package search

import (
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
)

// RegisterRoutes registers the search page and API.
func RegisterRoutes(e *echo.Echo, catalogClient *catalog.Client) {
	searchService := NewService(catalogClient)

	h := &handler{
		searchService: searchService,
		images:        catalogClient,
	}

	e.GET("/search", h.page)
	e.GET("/api/search", h.api)
}
