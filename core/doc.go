// Package core provides the planar Graph used by every pathviz algorithm:
// positioned nodes joined by undirected, positively weighted edges.
//
// The Graph G = (V,E) enforces the invariants the generator and the
// algorithms rely on:
//
//   - Node IDs are non-negative integers, unique within the graph.
//   - Nodes are immutable once placed (no move, no removal).
//   - Edges are undirected; (u,v) and (v,u) are the same logical edge and
//     only one ordering may be stored. The stored ordering names the edge:
//     EdgeID(u,v) == "u-v".
//   - Edge weights are integers ≥ 1; self-loops are rejected.
//   - Every edge references two distinct, existing nodes.
//
// Why use core.Graph?
//
//   - Deterministic iteration: Nodes(), Edges(), Neighbors() all return sorted results,
//     which is what makes the animation step sequences reproducible.
//   - Thread-safe: separate sync.RWMutex for nodes (muNode) and edges+adjacency
//     (muEdgeAdj), so a graph can be assembled and read from several goroutines.
//   - Read-only contract for algorithms: dijkstra, prim_kruskal and bfs only
//     call query methods; Clone gives callers an independent snapshot.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                 // O(1)
//	HasNode(id int) bool                  // O(1)
//	Node(id int) (Node, error)            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64) (edgeID string, err error) // O(1)
//	HasEdge(u, v int) bool                // O(1), either orientation
//	Edge(id string) (Edge, error)         // O(1)
//
//	// Query
//	Nodes() []Node                        // O(V·log V), by ID
//	Edges() []Edge                        // O(E·log E), by (From,To)
//	Neighbors(id int) ([]Edge, error)     // O(d·log d), by (other endpoint, edge)
//	NeighborIDs(id int) ([]int, error)    // O(d·log d)
//
//	// Snapshot
//	Clone() *Graph                        // O(V+E)
//
// Errors:
//
//	ErrBadNodeID      – negative node ID
//	ErrDuplicateNode  – node ID already placed
//	ErrNodeNotFound   – missing node
//	ErrEdgeNotFound   – missing edge
//	ErrBadWeight      – weight < 1
//	ErrLoopNotAllowed – from == to
//	ErrDuplicateEdge  – an edge between the same pair exists (either orientation)
package core
