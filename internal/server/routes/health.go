package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthRoutes serves the liveness probe.
type HealthRoutes struct{}

// RegisterRoutes registers the liveness route.
func (HealthRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "VTEX API Server is running!")
	})
}
