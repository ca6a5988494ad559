// Package record is the persisted shape of a graph and the stores that keep it.
//
// A Record embeds full endpoint objects in each edge (firstNode/secondNode),
// which is what the browser renderer saves and loads. Graph and FromGraph
// convert between that shape and *core.Graph without loss.
package record

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/katalvlaran/pathviz/core"
)

// IDPrefix starts every generated record ID.
const IDPrefix = "graph-"

var (
	// ErrNotFound is returned by Store.Delete and Find for an unknown ID.
	ErrNotFound = errors.New("record: not found")
	// ErrInvalidRecord wraps structural and referential validation failures.
	ErrInvalidRecord = errors.New("record: invalid")
)

var validate = validator.New()

// Canvas is the drawing area the graph was generated for.
type Canvas struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

// Edge is the persisted edge: the endpoints are embedded, not referenced.
type Edge struct {
	ID         string    `json:"id" validate:"required"`
	Weight     int64     `json:"weight" validate:"min=1"`
	FirstNode  core.Node `json:"firstNode"`
	SecondNode core.Node `json:"secondNode"`
}

// Record is one saved graph.
type Record struct {
	ID     string      `json:"id"`
	Canvas Canvas      `json:"canvas"`
	Nodes  []core.Node `json:"nodes"`
	Edges  []Edge      `json:"edges" validate:"dive"`
}

// NewID returns a short random ID such as "graph-3f9a".
func NewID() string {
	return IDPrefix + uuid.New().String()[:4]
}

// FromGraph projects g into a Record. Nodes are sorted by ID and edges by
// (From, To), so equal graphs give equal records.
func FromGraph(id string, canvas Canvas, g *core.Graph) Record {
	nodes := g.Nodes()
	byID := make(map[int]core.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	edges := g.Edges()
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{
			ID:         e.ID,
			Weight:     e.Weight,
			FirstNode:  byID[e.From],
			SecondNode: byID[e.To],
		}
	}

	return Record{ID: id, Canvas: canvas, Nodes: nodes, Edges: out}
}

// Graph loads the record into a fresh *core.Graph. The content is validated
// first; an empty ID is accepted so unsaved drawings can be loaded.
func (r Record) Graph() (*core.Graph, error) {
	if err := r.validateContent(); err != nil {
		return nil, err
	}

	return r.build()
}

func (r Record) build() (*core.Graph, error) {
	edges := make([]core.Edge, len(r.Edges))
	for i, e := range r.Edges {
		edges[i] = core.Edge{ID: e.ID, Weight: e.Weight, From: e.FirstNode.ID, To: e.SecondNode.ID}
	}
	g, err := core.NewGraphFrom(r.Nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRecord, r.ID, err)
	}

	return g, nil
}

// Validate checks that the record can be stored: it has an ID, its fields
// satisfy their constraints, every edge is named after its endpoints and
// embeds nodes that exist in Nodes with the same coordinates. Duplicate nodes
// or edges are rejected.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}

	return r.validateContent()
}

func (r Record) validateContent() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	nodes := make(map[int]core.Node, len(r.Nodes))
	for _, n := range r.Nodes {
		nodes[n.ID] = n
	}
	for i, e := range r.Edges {
		if want := core.EdgeID(e.FirstNode.ID, e.SecondNode.ID); e.ID != want {
			return fmt.Errorf("%w: edge %d id %q, want %q", ErrInvalidRecord, i, e.ID, want)
		}
		for _, end := range []core.Node{e.FirstNode, e.SecondNode} {
			n, ok := nodes[end.ID]
			if !ok {
				return fmt.Errorf("%w: edge %s references unknown node %d", ErrInvalidRecord, e.ID, end.ID)
			}
			if n != end {
				return fmt.Errorf("%w: edge %s embeds stale node %d", ErrInvalidRecord, e.ID, end.ID)
			}
		}
	}

	// Duplicate IDs, bad weights and loops surface from the graph constructor.
	_, err := r.build()

	return err
}
