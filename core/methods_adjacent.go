// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
//
// Determinism:
//   - Neighbors() sorts by the opposite endpoint ID, then by edge order.
//   - NeighborIDs() returns IDs sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns copies of all edges incident to id, ordered by the
// opposite endpoint ID (ties are impossible: at most one edge per pair).
//
// Errors:
//   - ErrNodeNotFound: id is not in the graph.
//
// Complexity: O(d log d), d = degree(id).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	bucket := g.adjacency[id]
	out := make([]Edge, 0, len(bucket))
	for _, eid := range bucket {
		out = append(out, *g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(g.adjacency[id]), nil
}

// AdjacencyList returns node ID → sorted neighbor IDs for every node,
// including isolated nodes (empty slice). The result shares no memory with g.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[int][]int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[int][]int, len(g.nodes))
	for id := range g.nodes {
		nbrs := make([]int, 0, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			nbrs = append(nbrs, nbr)
		}
		sort.Ints(nbrs)
		out[id] = nbrs
	}

	return out
}
