// Package engine is the entry point the server and CLI call: graph
// generation, the connectivity gate, and the two instrumented algorithms.
//
// RunDijkstra and RunPrim refuse disconnected graphs with ErrNotConnected
// before any step is produced. Graphs with zero or one node yield an empty
// sequence. Every call is logged at debug level and counted in metrics.
package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/bfs"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/logger"
	"github.com/katalvlaran/pathviz/metrics"
	"github.com/katalvlaran/pathviz/prim_kruskal"
)

// Algorithm names, also used as metric labels.
const (
	AlgoDijkstra = "dijkstra"
	AlgoPrim     = "prim"
)

// ErrNotConnected is the user-facing refusal for graphs with more than one component.
var ErrNotConnected = errors.New("all nodes must be connected")

// Bounds is the canvas a graph is generated on.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GenerateGraph draws a clustered planar graph. The result may be disconnected.
func GenerateGraph(nodes, weights builder.Range, bounds Bounds, opts ...builder.Option) (*core.Graph, error) {
	g, err := builder.Generate(builder.Params{
		Nodes:   nodes,
		Weights: weights,
		Width:   bounds.Width,
		Height:  bounds.Height,
	}, opts...)
	if err != nil {
		return nil, err
	}

	metrics.GeneratedNodes.Observe(float64(g.NodeCount()))
	metrics.GeneratedEdges.Observe(float64(g.EdgeCount()))
	logger.Debug("graph generated", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "connected", bfs.Connected(g))

	return g, nil
}

// IsConnected reports whether every node is reachable from every other.
// Empty and single-node graphs are connected.
func IsConnected(g *core.Graph) bool {
	return bfs.Connected(g)
}

// RunDijkstra returns the steps of Dijkstra from source, or from the lowest
// node ID when source is nil.
func RunDijkstra(g *core.Graph, source *int) (animation.Sequence, error) {
	if err := gate(AlgoDijkstra, g); err != nil {
		return nil, err
	}

	var opts []dijkstra.Option
	if source != nil {
		opts = append(opts, dijkstra.Source(*source))
	}
	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return nil, fail(AlgoDijkstra, err)
	}

	return done(AlgoDijkstra, res.Steps), nil
}

// RunPrim returns the steps of Prim grown from start, or from the lowest
// node ID when start is nil.
func RunPrim(g *core.Graph, start *int) (animation.Sequence, error) {
	if err := gate(AlgoPrim, g); err != nil {
		return nil, err
	}

	var opts []prim_kruskal.Option
	if start != nil {
		opts = append(opts, prim_kruskal.WithRoot(*start))
	}
	res, err := prim_kruskal.Prim(g, opts...)
	if err != nil {
		return nil, fail(AlgoPrim, err)
	}
	logger.Debug("spanning tree", "edges", len(res.Tree), "weight", res.TotalWeight)

	return done(AlgoPrim, res.Steps), nil
}

// Run dispatches on the algorithm name.
func Run(algo string, g *core.Graph, start *int) (animation.Sequence, error) {
	switch algo {
	case AlgoDijkstra:
		return RunDijkstra(g, start)
	case AlgoPrim:
		return RunPrim(g, start)
	default:
		return nil, fmt.Errorf("engine: unknown algorithm %q", algo)
	}
}

// gate rejects a graph with more than one component.
func gate(algo string, g *core.Graph) error {
	if g == nil {
		return nil
	}
	comps := bfs.Components(g)
	if len(comps) <= 1 {
		return nil
	}
	metrics.AlgorithmRuns.WithLabelValues(algo, metrics.OutcomeDisconnected).Inc()
	logger.Debug("run refused", "algorithm", algo, "components", len(comps))

	return fmt.Errorf("%w (%d components)", ErrNotConnected, len(comps))
}

func fail(algo string, err error) error {
	metrics.AlgorithmRuns.WithLabelValues(algo, metrics.OutcomeError).Inc()
	logger.Debug("run failed", "algorithm", algo, "err", err)

	return err
}

func done(algo string, steps animation.Sequence) animation.Sequence {
	metrics.AlgorithmRuns.WithLabelValues(algo, metrics.OutcomeOK).Inc()
	metrics.StepsPerRun.WithLabelValues(algo).Observe(float64(len(steps)))
	logger.Debug("run finished", "algorithm", algo, "steps", len(steps))

	return steps
}
