// Package core defines the central Graph, Node, and Edge types,
// and provides thread-safe primitives for building and querying planar graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muEdgeAdj for edges and adjacency). Lock order is always muNode -> muEdgeAdj.
package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/paulmach/orb"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeID indicates a negative node ID.
	ErrBadNodeID = errors.New("core: node ID must be non-negative")

	// ErrDuplicateNode indicates a node with the same ID was already placed.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight below MinWeight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge between the same pair of nodes already exists,
	// in either orientation.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// Node is a positioned vertex of the planar graph.
type Node struct {
	// ID uniquely identifies this Node within its Graph (≥ 0).
	ID int `json:"id"`

	// X is the horizontal canvas coordinate.
	X float64 `json:"x"`

	// Y is the vertical canvas coordinate.
	Y float64 `json:"y"`
}

// Point returns the node position as an orb.Point.
func (n Node) Point() orb.Point { return orb.Point{n.X, n.Y} }

// Edge is an undirected, weighted connection between two nodes.
//
// From and To record the orientation the edge was created with; the
// orientation only matters for the textual ID ("From-To").
type Edge struct {
	// ID is EdgeID(From, To).
	ID string `json:"id"`

	// Weight is the positive traversal cost.
	Weight int64 `json:"weight"`

	// From is the first endpoint ID.
	From int `json:"from"`

	// To is the second endpoint ID.
	To int `json:"to"`
}

// Other returns the endpoint opposite to id. The result is meaningless
// when id is not an endpoint of e; check with Has first.
func (e Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Has reports whether id is one of the endpoints of e.
func (e Edge) Has(id int) bool { return e.From == id || e.To == id }

// EdgeID renders the canonical textual identifier "<from>-<to>".
func EdgeID(from, to int) string {
	buf := make([]byte, 0, 8)
	buf = strconv.AppendInt(buf, int64(from), 10)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, int64(to), 10)

	return string(buf)
}

// LessEdge orders edges by their endpoint pair (From, then To) compared as
// integers. This is the "lowest edge id" order used for deterministic
// tie-breaking; it differs from string order, so "2-3" < "10-2".
func LessEdge(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}

	return a.To < b.To
}

// Graph is the core in-memory planar graph.
//
// muNode protects the node catalog; muEdgeAdj protects the edge catalog and adjacency.
type Graph struct {
	muNode    sync.RWMutex // guards nodes
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nodes map[int]*Node    // node ID → Node
	edges map[string]*Edge // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[int]map[int]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[int]map[int]string),
	}
}

// NewGraphFrom builds a Graph from node and edge lists, validating every
// invariant. Edges keep their stored orientation; the Edge.ID field of the
// input is ignored and recomputed from (From, To).
//
// Complexity: O(V + E).
func NewGraphFrom(nodes []Node, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
