// Package bfs provides breadth-first search over a core.Graph and the
// connectivity gate that every pathviz algorithm run passes through.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result (Order, Depth).
//   - Connected / AreAllConnected answer "is every node reachable?".
//   - Components lists the connected components.
//
// Determinism
//
//	core.Graph.NeighborIDs returns IDs sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E log E) (neighbor lists are sorted per expansion)
//   - Memory: O(V)
//
// Usage
//
//	if !bfs.Connected(g) {
//		comps := bfs.Components(g)
//		// report len(comps) islands
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrNeighbors            if neighbor lookup fails.
package bfs
