// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodeIDs() return results sorted by ID ascending.
//
// Concurrency:
//   - Node catalog protected by muNode.
//   - Adjacency bootstrap under muEdgeAdj.

package core

import (
	"fmt"
	"sort"
)

// AddNode places a node. Nodes are immutable once placed, so re-adding an
// existing ID is an error rather than a no-op.
//
// Errors:
//   - ErrBadNodeID: n.ID < 0.
//   - ErrDuplicateNode: n.ID already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID < 0 {
		return fmt.Errorf("%w: %d", ErrBadNodeID, n.ID)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, n.ID)
	}
	node := n
	g.nodes[n.ID] = &node

	// Bootstrap the adjacency bucket so Neighbors on an isolated node is valid.
	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[n.ID]; !ok {
		g.adjacency[n.ID] = make(map[int]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether the node ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Nodes returns copies of all nodes sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	g.muNode.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	g.muNode.RLock()
	out := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.muNode.RUnlock()

	sort.Ints(out)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// FirstNodeID returns the lowest node ID, or false for an empty graph.
// Algorithms use it as the default source/root.
func (g *Graph) FirstNodeID() (int, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	first, found := 0, false
	for id := range g.nodes {
		if !found || id < first {
			first, found = id, true
		}
	}

	return first, found
}
