// Package server exposes generation, connectivity checks, algorithm runs and
// the graph store over HTTP for the browser renderer.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/record"
)

const shutdownTimeout = 10 * time.Second

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// Server wires the HTTP API to a configuration and a store.
type Server struct {
	echo  *echo.Echo
	cfg   config.Config
	store record.Store
}

// New builds a Server with all routes registered.
func New(cfg config.Config, store record.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(observe)
	e.Use(middleware.BodyLimit("2M"))

	s := &Server{echo: e, cfg: cfg, store: store}
	s.registerRoutes()

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.echo }

// Run serves on the configured port until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", s.cfg.Addr(), "store", s.cfg.Store.Kind)
		if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down server")

	return s.echo.Shutdown(shutdownCtx)
}

// observe records request metrics and a debug log line per request.
func observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		elapsed := time.Since(start)
		metrics.HttpRequestDuration.WithLabelValues(req.Method, c.Path()).Observe(elapsed.Seconds())
		metrics.HttpRequestsTotal.WithLabelValues(req.Method, c.Path(), strconv.Itoa(status)).Inc()
		logger.Debug("request", "method", req.Method, "path", c.Path(), "status", status, "elapsed", elapsed)

		return nil
	}
}

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}
