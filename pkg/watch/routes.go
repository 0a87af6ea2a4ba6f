package watch

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/catalog"
	"github.com/marqueehq/marquee/pkg/config"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config, catalogClient *catalog.Client) {
	h := &handler{
		catalog: catalogClient,
		embeds: Embeds{
			Movie: strings.TrimRight(cfg.MovieEmbedURL, "/"),
			TV:    strings.TrimRight(cfg.TVEmbedURL, "/"),
		},
	}

	e.GET("/watch/:mediaType/:id", h.show)
}
