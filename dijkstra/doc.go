// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on undirected graphs with positive integer weights, instrumented to record
// an animation of the run.
//
// Overview:
//
//   - Dijkstra settles nodes in order of increasing distance from the source.
//     Each settlement emits a visit-node step; each improvement of a
//     tentative distance emits a relax-edge step carrying the edge, the
//     improved node, and its new distance.
//   - The resulting animation.Sequence can be validated against the graph
//     and replayed with animation.Player.
//
// Determinism:
//
//   - Ties on distance are broken by the lowest node ID.
//   - Incident edges are examined in ascending order of the neighbor's ID.
//   - The same graph and source therefore always yield the same steps.
//
// Degenerate inputs:
//
//   - A graph with zero or one node yields an empty step sequence and no error.
//   - A graph in which some node is unreachable yields ErrDisconnected and no steps.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if the graph pointer is nil.
//   - ErrVertexNotFound:
//     Returned if an explicit Source is not a node of the graph.
//   - ErrDisconnected:
//     Returned if fewer than all nodes were settled.
//
// Usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil { ... }
//	for _, step := range res.Steps { fmt.Println(step) }
//	path, _ := res.PathTo(7)
package dijkstra
