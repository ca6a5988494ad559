package animation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathviz/core"
)

// Tag names the kind of transition a Step describes.
type Tag string

const (
	TagVisitNode Tag = "visit-node"
	TagRelaxEdge Tag = "relax-edge"
	TagAddEdge   Tag = "add-edge"
)

// Sentinel errors reported by Sequence.Validate.
var (
	ErrUnknownTag   = errors.New("animation: unknown step tag")
	ErrMissingField = errors.New("animation: step field missing")
	ErrUnknownNode  = errors.New("animation: step references unknown node")
	ErrUnknownEdge  = errors.New("animation: step references unknown edge")
)

// Step is one animation event. Absent fields are nil / empty and omitted
// from JSON.
type Step struct {
	Tag      Tag      `json:"tag"`
	NodeID   *int     `json:"nodeId,omitempty"`
	EdgeID   string   `json:"edgeId,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
}

// VisitNode marks node id as visited / included.
func VisitNode(id int) Step {
	return Step{Tag: TagVisitNode, NodeID: &id}
}

// RelaxEdge records that node's tentative distance dropped to dist via edgeID.
func RelaxEdge(edgeID string, node int, dist float64) Step {
	return Step{Tag: TagRelaxEdge, EdgeID: edgeID, NodeID: &node, Distance: &dist}
}

// AddEdge records that edgeID joined the spanning tree.
func AddEdge(edgeID string) Step {
	return Step{Tag: TagAddEdge, EdgeID: edgeID}
}

// String renders the step on one line, e.g. "relax-edge 0-1 node=1 distance=4".
func (s Step) String() string {
	var b strings.Builder
	b.WriteString(string(s.Tag))
	if s.EdgeID != "" {
		b.WriteByte(' ')
		b.WriteString(s.EdgeID)
	}
	if s.NodeID != nil {
		b.WriteString(" node=")
		b.WriteString(strconv.Itoa(*s.NodeID))
	}
	if s.Distance != nil {
		b.WriteString(" distance=")
		b.WriteString(strconv.FormatFloat(*s.Distance, 'g', -1, 64))
	}

	return b.String()
}

// Sequence is the ordered output of one algorithm run.
type Sequence []Step

// Count returns how many steps carry tag.
func (seq Sequence) Count(tag Tag) int {
	n := 0
	for _, s := range seq {
		if s.Tag == tag {
			n++
		}
	}

	return n
}

// Validate checks that every step is well formed for its tag and refers only
// to nodes and edges present in g. A relax-edge node must be an endpoint of
// its edge. The first offending step is reported with its index.
func (seq Sequence) Validate(g *core.Graph) error {
	for i, s := range seq {
		if err := validateStep(g, s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Tag, err)
		}
	}

	return nil
}

func validateStep(g *core.Graph, s Step) error {
	switch s.Tag {
	case TagVisitNode:
		if s.NodeID == nil {
			return fmt.Errorf("%w: nodeId", ErrMissingField)
		}
		if !g.HasNode(*s.NodeID) {
			return fmt.Errorf("%w: %d", ErrUnknownNode, *s.NodeID)
		}
	case TagRelaxEdge:
		if s.NodeID == nil || s.Distance == nil || s.EdgeID == "" {
			return fmt.Errorf("%w: relax-edge needs edgeId, nodeId and distance", ErrMissingField)
		}
		e, err := g.Edge(s.EdgeID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownEdge, s.EdgeID)
		}
		if !e.Has(*s.NodeID) {
			return fmt.Errorf("%w: %d is not an endpoint of %s", ErrUnknownNode, *s.NodeID, s.EdgeID)
		}
	case TagAddEdge:
		if s.EdgeID == "" {
			return fmt.Errorf("%w: edgeId", ErrMissingField)
		}
		if _, err := g.Edge(s.EdgeID); err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownEdge, s.EdgeID)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTag, s.Tag)
	}

	return nil
}
