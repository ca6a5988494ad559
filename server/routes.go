package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Generation and checks
	api.POST("/graphs/random", s.randomGraphHandler)
	api.POST("/graphs/connected", s.connectedHandler)

	// Algorithm runs
	api.POST("/run/:algo", s.runHandler)

	// Store
	api.GET("/graphs", s.listGraphsHandler)
	api.GET("/graphs/:id", s.getGraphHandler)
	api.POST("/graphs", s.saveGraphHandler)
	api.DELETE("/graphs/:id", s.deleteGraphHandler)
}
