package bfs

import (
	"sort"

	"github.com/katalvlaran/pathviz/core"
)

// Connected reports whether every node of g is reachable from every other.
// Empty and single-node graphs are connected; a nil graph is treated as empty.
//
// The check is a single BFS from the lowest node ID.
// Complexity: O(V + E log E).
func Connected(g *core.Graph) bool {
	if g == nil {
		return true
	}
	start, ok := g.FirstNodeID()
	if !ok {
		return true
	}
	res, err := BFS(g, start)
	if err != nil {
		return false
	}

	return len(res.Order) == g.NodeCount()
}

// AreAllConnected is Connected over raw node and edge lists, for callers that
// hold a graph in record form. Edges whose endpoints are not both listed are
// ignored, as are duplicate pairs and self-loops; weights are irrelevant.
func AreAllConnected(nodes []core.Node, edges []core.Edge) bool {
	g := core.NewGraph()
	for _, n := range nodes {
		// duplicate IDs collapse to one node
		_ = g.AddNode(n)
	}
	for _, e := range edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			continue
		}
		_, _ = g.AddEdge(e.From, e.To, core.MinWeight)
	}

	return Connected(g)
}

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest member.
// Complexity: O(V + E log E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	seen := make(map[int]bool, g.NodeCount())
	var comps [][]int
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			continue
		}
		comp := append([]int(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps
}
