// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root node over an ordered frontier of crossing edges and
// records every inclusion as an animation step.
package prim_kruskal

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/core"
)

// Prim computes the Minimum Spanning Tree of g by growing outwards from a root node.
//
// Error Conditions:
//   - ErrNilGraph       : if g is nil.
//   - ErrVertexNotFound : if an explicit root is not a node of g.
//   - ErrDisconnected   : if |V| > 1 and some node cannot be reached.
//
// Steps:
//  1. Validate g and the root; without WithRoot the lowest node ID is used.
//  2. |V| ≤ 1 → empty steps, empty tree.
//  3. Emit visit-node{root} and push the root's incident edges.
//  4. While the tree has < |V|-1 edges:
//     a. Pop the minimum candidate by (weight, From, To).
//     b. If both endpoints are already in the tree, skip it.
//     c. Otherwise emit visit-node{new} then add-edge{e}, and push the new node's
//     edges to nodes outside the tree.
//  5. Frontier exhausted early → ErrDisconnected.
//
// Ties on weight go to the edge with the smaller (From, To) pair compared as
// integers (core.LessEdge), not to the smaller ID string: "2-3" is taken
// before "10-2".
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.HasRoot && !g.HasNode(cfg.Root) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Root)
	}
	if !cfg.HasRoot {
		cfg.Root, _ = g.FirstNodeID()
	}

	n := g.NodeCount()
	if n < 2 {
		return &Result{Root: cfg.Root, Steps: animation.Sequence{}, Tree: []core.Edge{}}, nil
	}

	w := &primWalker{
		g:      g,
		inTree: make(map[int]bool, n),
		steps:  make(animation.Sequence, 0, 2*n-1),
		tree:   make([]core.Edge, 0, n-1),
		frontier: btree.NewBTreeG(func(a, b core.Edge) bool {
			if a.Weight != b.Weight {
				return a.Weight < b.Weight
			}

			return core.LessEdge(a, b)
		}),
	}
	if err := w.include(cfg.Root); err != nil {
		return nil, err
	}
	for len(w.tree) < n-1 {
		e, ok := w.frontier.PopMin()
		if !ok {
			return nil, fmt.Errorf("%w: tree spans %d of %d nodes from %d", ErrDisconnected, len(w.inTree), n, cfg.Root)
		}
		fresh := e.To
		if w.inTree[fresh] {
			fresh = e.From
		}
		if w.inTree[fresh] {
			continue
		}
		if err := w.include(fresh); err != nil {
			return nil, err
		}
		w.tree = append(w.tree, e)
		w.total += e.Weight
		w.steps = append(w.steps, animation.AddEdge(e.ID))
	}

	return &Result{Root: cfg.Root, Steps: w.steps, Tree: w.tree, TotalWeight: w.total}, nil
}

// primWalker holds the mutable state of one Prim run.
type primWalker struct {
	g        *core.Graph
	inTree   map[int]bool
	steps    animation.Sequence
	tree     []core.Edge
	total    int64
	frontier *btree.BTreeG[core.Edge]
}

// include adds id to the tree, emits visit-node, and pushes its crossing edges.
func (w *primWalker) include(id int) error {
	w.inTree[id] = true
	w.steps = append(w.steps, animation.VisitNode(id))

	edges, err := w.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("prim_kruskal: neighbors of %d: %w", id, err)
	}
	for _, e := range edges {
		if !w.inTree[e.Other(id)] {
			w.frontier.Set(e)
		}
	}

	return nil
}
