// Package dijkstra implements Dijkstra's shortest-path algorithm and records
// every visit and relaxation as an animation step.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is extracted from the frontier at most once.
//   - Each successful relaxation is a delete+insert in the ordered frontier.
//   - Space: O(V) for the table and the frontier.
//
// Notes on implementation choices:
//
//   - Edge weights are integers >= 1 (enforced by core), so no negative-weight scan is needed.
//   - The frontier is an ordered set keyed by (distance, node ID), so equal
//     distances resolve to the lowest node ID and decrease-key is exact.
//   - Incident edges are relaxed in ascending neighbor-ID order.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/core"
)

// Dijkstra computes shortest distances from the source node to every node
// of g and returns them with the ordered animation steps of the run.
//
// Steps emitted:
//   - visit-node{u} each time u is extracted from the frontier;
//   - relax-edge{e, v, d} each time edge e lowers v's distance to d.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. An explicit source must exist (ErrVertexNotFound).
//  3. Every node must be reachable from the source (ErrDisconnected).
//
// Graphs with fewer than two nodes yield an empty step sequence and no error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.HasSource && !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}
	n := g.NodeCount()
	if !cfg.HasSource {
		cfg.Source, _ = g.FirstNodeID()
	}
	if n < 2 {
		res := &Result{Source: cfg.Source, Steps: animation.Sequence{}, Table: Table{}}
		if n == 1 {
			res.Table[cfg.Source] = Entry{Distance: 0}
		}

		return res, nil
	}

	r := &runner{
		g:       g,
		table:   make(Table, n),
		visited: make(map[int]bool, n),
		steps:   make(animation.Sequence, 0, 2*n),
		frontier: btree.NewBTreeG(func(a, b frontierItem) bool {
			if a.dist != b.dist {
				return a.dist < b.dist
			}

			return a.id < b.id
		}),
	}
	r.init(cfg.Source)
	if err := r.process(); err != nil {
		return nil, err
	}
	if len(r.visited) != n {
		return nil, fmt.Errorf("%w: reached %d of %d nodes from %d", ErrDisconnected, len(r.visited), n, cfg.Source)
	}

	return &Result{Source: cfg.Source, Steps: r.steps, Table: r.table}, nil
}

// frontierItem is a (distance, node) pair in the ordered frontier.
type frontierItem struct {
	dist float64
	id   int
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph                 // read-only input
	table    Table                       // node → distance/predecessor
	visited  map[int]bool                // settled nodes
	steps    animation.Sequence          // emitted steps, in order
	frontier *btree.BTreeG[frontierItem] // unsettled nodes with finite distance
}

// init sets dist[v] = +Inf for all v and seeds the frontier with the source at 0.
func (r *runner) init(source int) {
	for _, id := range r.g.NodeIDs() {
		r.table[id] = Entry{Distance: math.Inf(1)}
	}
	r.table[source] = Entry{Distance: 0}
	r.frontier.Set(frontierItem{dist: 0, id: source})
}

// process repeatedly settles the closest unsettled node until the frontier empties.
func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		item, _ := r.frontier.PopMin()
		u := item.id

		r.visited[u] = true
		r.steps = append(r.steps, animation.VisitNode(u))

		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every unsettled neighbor of u through the edge joining them.
// A strictly smaller candidate updates the table, repositions the neighbor in
// the frontier, and emits relax-edge.
func (r *runner) relax(u int, du float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range edges {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}

		cand := du + float64(e.Weight)
		old := r.table[v]
		if cand >= old.Distance {
			continue
		}

		if !math.IsInf(old.Distance, 1) {
			r.frontier.Delete(frontierItem{dist: old.Distance, id: v})
		}
		r.table[v] = Entry{Distance: cand, Prev: u, HasPrev: true}
		r.frontier.Set(frontierItem{dist: cand, id: v})
		r.steps = append(r.steps, animation.RelaxEdge(e.ID, v, cand))
	}

	return nil
}
