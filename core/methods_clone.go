// File: methods_clone.go
// Role: Snapshots of a graph.
//
// Concurrency:
//   - Read locks on the source; the result is a fresh, independent Graph.

package core

// Clone returns a deep copy of the Graph: nodes, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		node := *n
		clone.nodes[id] = &node
		clone.adjacency[id] = make(map[int]string, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		edge := *e
		clone.edges[eid] = &edge
		clone.adjacency[e.From][e.To] = eid
		clone.adjacency[e.To][e.From] = eid
	}

	return clone
}
