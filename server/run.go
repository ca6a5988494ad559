package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/engine"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/prim_kruskal"
	"github.com/katalvlaran/pathviz/record"
)

type runRequest struct {
	Algo  string        `param:"algo" validate:"oneof=dijkstra prim"`
	Graph record.Record `json:"graph" validate:"-"`

	// Source (Dijkstra) and Start (Prim) are interchangeable.
	Source *int `json:"source"`
	Start  *int `json:"start"`
}

type runResponse struct {
	Algorithm string             `json:"algorithm"`
	Steps     animation.Sequence `json:"steps"`
}

// runHandler runs an algorithm over the posted graph. A disconnected graph
// is a 422 with the user-facing message and no steps.
func (s *Server) runHandler(c echo.Context) error {
	req := new(runRequest)
	if err := c.Bind(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusNotFound, "Unknown algorithm")
	}

	g, err := req.Graph.Graph()
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	start := req.Source
	if start == nil {
		start = req.Start
	}

	steps, err := engine.Run(req.Algo, g, start)
	switch {
	case errors.Is(err, engine.ErrNotConnected):
		logger.Debug("run refused", "algorithm", req.Algo, "err", err)
		return errorJSON(c, http.StatusUnprocessableEntity, engine.ErrNotConnected.Error())
	case errors.Is(err, dijkstra.ErrVertexNotFound), errors.Is(err, prim_kruskal.ErrVertexNotFound):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case err != nil:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, runResponse{Algorithm: req.Algo, Steps: steps})
}
