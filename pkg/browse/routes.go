package browse

import (
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/models"
)

// RegisterRoutes registers the list views and the JSON list API.
func RegisterRoutes(e *echo.Echo, catalogClient *catalog.Client) {
	h := &handler{catalog: catalogClient}

	for _, kind := range []models.MediaType{models.MediaTypeMovie, models.MediaTypeTV} {
		d := &discoverRoutes{handler: h, kind: kind}
		g := e.Group(d.base())
		g.GET("", d.show)
		g.POST("/genre", d.changeGenre)
		g.POST("/sort", d.changeSort)
		g.POST("/page", d.changePage)
	}

	trending := e.Group("/trending")
	trending.GET("", h.showTrending)
	trending.POST("/media-type", h.changeMediaType)
	trending.POST("/time-window", h.changeTimeWindow)
	trending.POST("/page", h.changeTrendingPage)

	api := e.Group("/api")
	api.GET("/discover/:mediaType", h.apiDiscover)
	api.GET("/trending/:mediaType/:timeWindow", h.apiTrending)
}
