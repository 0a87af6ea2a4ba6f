package auth

import (
	"github.com/labstack/echo/v4"
	"github.com/marqueehq/marquee/pkg/config"
)

// RegisterRoutes registers all auth routes.
func RegisterRoutes(e *echo.Echo, cfg *config.Config, authService *Service) {
	h := &handler{
		authService: authService,
		clientID:    cfg.IdentityClientID,
	}

	e.GET("/login", h.loginPage)

	auth := e.Group("/auth")
	auth.POST("/callback", h.callback)
	auth.POST("/logout", h.logout)
	auth.GET("/me", h.me)
	auth.GET("/events", h.events)
}
