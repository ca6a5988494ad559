package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/record"
)

type randomGraphRequest struct {
	Nodes   []int   `json:"nodes" validate:"omitempty,len=2,dive,min=1,max=30"`
	Weights []int   `json:"weights" validate:"omitempty,len=2"`
	Width   float64 `json:"width" validate:"omitempty,gt=0"`
	Height  float64 `json:"height" validate:"omitempty,gt=0"`
	Seed    *int64  `json:"seed"`
}

// randomGraphHandler generates a graph; omitted fields fall back to the
// generator configuration.
func (s *Server) randomGraphHandler(c echo.Context) error {
	req := new(randomGraphRequest)
	if err := c.Bind(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	gen := s.cfg.Generator
	nodes, weights := gen.Nodes, gen.Weights
	if len(req.Nodes) == 2 {
		nodes = builder.Range{Min: req.Nodes[0], Max: req.Nodes[1]}
	}
	if len(req.Weights) == 2 {
		weights = builder.Range{Min: req.Weights[0], Max: req.Weights[1]}
	}
	bounds := engine.Bounds{Width: gen.Width, Height: gen.Height}
	if req.Width > 0 {
		bounds.Width = req.Width
	}
	if req.Height > 0 {
		bounds.Height = req.Height
	}

	seed := gen.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := engine.GenerateGraph(nodes, weights, bounds, builder.WithSeed(seed))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	canvas := record.Canvas{Width: bounds.Width, Height: bounds.Height}
	return c.JSON(http.StatusOK, record.FromGraph(record.NewID(), canvas, g))
}

type connectedResponse struct {
	Connected bool `json:"connected"`
}

func (s *Server) connectedHandler(c echo.Context) error {
	rec := new(record.Record)
	if err := c.Bind(rec); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	g, err := rec.Graph()
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, connectedResponse{Connected: engine.IsConnected(g)})
}

func (s *Server) listGraphsHandler(c echo.Context) error {
	all, err := s.store.Load(c.Request().Context())
	if err != nil {
		logger.Error("failed to load graphs", "err", err)
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, all)
}

func (s *Server) getGraphHandler(c echo.Context) error {
	rec, err := record.Find(c.Request().Context(), s.store, c.Param("id"))
	if errors.Is(err, record.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Graph not found")
	}
	if err != nil {
		logger.Error("failed to load graph", "id", c.Param("id"), "err", err)
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	return c.JSON(http.StatusOK, rec)
}

// saveGraphHandler stores a record, assigning an ID when it has none.
func (s *Server) saveGraphHandler(c echo.Context) error {
	rec := new(record.Record)
	if err := c.Bind(rec); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if rec.ID == "" {
		rec.ID = record.NewID()
	}
	if err := rec.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if err := s.store.Save(ctx, *rec); err != nil {
		logger.Error("failed to save graph", "id", rec.ID, "err", err)
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	s.refreshStoredCount(ctx)
	logger.Info("graph saved", "id", rec.ID, "nodes", len(rec.Nodes), "edges", len(rec.Edges))

	return c.JSON(http.StatusCreated, rec)
}

func (s *Server) deleteGraphHandler(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	err := s.store.Delete(ctx, id)
	if errors.Is(err, record.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Graph not found")
	}
	if err != nil {
		logger.Error("failed to delete graph", "id", id, "err", err)
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	s.refreshStoredCount(ctx)
	logger.Info("graph deleted", "id", id)

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) refreshStoredCount(ctx context.Context) {
	if all, err := s.store.Load(ctx); err == nil {
		metrics.StoredGraphs.Set(float64(len(all)))
	}
}
