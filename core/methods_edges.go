// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/EdgeBetween/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) ascending, i.e. by edge ID order.
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates the undirected edge from-to with the given weight and
// returns its ID ("from-to").
//
// Steps:
//  1. Validate loop and weight.
//  2. Validate both endpoints exist (nodes are never auto-created: they carry coordinates).
//  3. Lock muEdgeAdj, reject an existing edge in either orientation.
//  4. Store the edge and mirror it in adjacency.
//
// Errors:
//   - ErrLoopNotAllowed, ErrBadWeight, ErrNodeNotFound, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (string, error) {
	if from == to {
		return "", fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if weight < MinWeight {
		return "", fmt.Errorf("%w: %s weight=%d", ErrBadWeight, EdgeID(from, to), weight)
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if existing, ok := g.adjacency[from][to]; ok {
		return "", fmt.Errorf("%w: %s (have %s)", ErrDuplicateEdge, EdgeID(from, to), existing)
	}

	eid := EdgeID(from, to)
	g.edges[eid] = &Edge{ID: eid, Weight: weight, From: from, To: to}
	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether u and v are joined, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns a copy of the edge with the given ID.
// Complexity: O(1).
func (g *Graph) Edge(id string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}

	return *e, nil
}

// EdgeBetween returns the edge joining u and v regardless of stored orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return Edge{}, false
	}

	return *g.edges[eid], true
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return LessEdge(out[i], out[j]) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// TotalWeight sums the weights of all edges.
func (g *Graph) TotalWeight() int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}

	return total
}

// ensureAdjacency allocates the adjacency bucket for id. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]string)
	}
}
