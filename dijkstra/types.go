// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm with animation-step emission.
//
// Options:
//
//	– Source: ID of the starting node (defaults to the lowest node ID).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source node does not exist in the graph.
//	– ErrDisconnected    if some node is unreachable from the source.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathviz/animation"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source node does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrDisconnected indicates that at least one node is unreachable from the source.
	ErrDisconnected = errors.New("dijkstra: graph is not connected")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source    int  // ID of the source node
	HasSource bool // false → lowest node ID
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.HasSource = true
	}
}

// DefaultOptions returns Options that start from the lowest node ID.
func DefaultOptions() Options {
	return Options{}
}

// Entry is one row of the distance table.
type Entry struct {
	// Distance from the source; +Inf if never reached.
	Distance float64 `json:"distance"`
	// Prev is the predecessor on the shortest path; valid when HasPrev.
	Prev    int  `json:"prev"`
	HasPrev bool `json:"hasPrev"`
}

// Table maps node ID → Entry.
type Table map[int]Entry

// Result is the outcome of a Dijkstra run.
type Result struct {
	Source int
	Steps  animation.Sequence
	Table  Table
}

// Distances flattens the table to node ID → distance.
func (r *Result) Distances() map[int]float64 {
	out := make(map[int]float64, len(r.Table))
	for id, e := range r.Table {
		out[id] = e.Distance
	}

	return out
}

// PathTo reconstructs the node path source → … → dest.
// Returns an error if dest is unknown.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Table[dest]; !ok {
		return nil, fmt.Errorf("dijkstra: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		e := r.Table[cur]
		if !e.HasPrev {
			break
		}
		cur = e.Prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
