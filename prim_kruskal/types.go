// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrVertexNotFound indicates that the requested Prim root is not a node of the graph.
var ErrVertexNotFound = errors.New("prim_kruskal: root node not found in graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for a Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using an ordered frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Prim from the lowest node ID).
//
// Complexity: O(E log E) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node for Prim's algorithm; used only when HasRoot.
	Root    int
	HasRoot bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.HasRoot = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim from the lowest node ID.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Result is the outcome of a Prim run.
type Result struct {
	Root        int
	Steps       animation.Sequence
	Tree        []core.Edge // in selection order
	TotalWeight int64
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, opts...) and drops the steps.
//	– Otherwise:     returns ErrUnknownMethod.
//
// Returns the tree edges, their total weight, and an error if computation cannot proceed.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		res, err := Prim(graph, opts...)
		if err != nil {
			return nil, 0, err
		}

		return res.Tree, res.TotalWeight, nil
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}
