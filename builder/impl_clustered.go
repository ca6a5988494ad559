// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// impl_clustered.go: node placement and edge generation.
//
// Node placement:
//   - n uniform in [Nodes.Min, Nodes.Max].
//   - Clusters visited in order (start+i) mod 5 for a random start.
//   - Each cluster gets ⌊n/5⌋ nodes, plus one for the first n mod 5 visited.
//   - Per cluster: random initial angle in [0, fullCircle); before each node
//     the angle advances by minAngleStep + r·(fullCircle/(n/5) − minAngleStep).
//   - Position: center + (cos θ·radius·W, sin θ·radius·H).
//
// Edge generation:
//   - Random base offset b; candidates (nodes[(b+i)%n], nodes[(b+j)%n]).
//   - Per i the acceptance probability p starts at 1 and is divided by decay
//     on each accepted edge.
//   - A candidate is rejected if the pair is already joined, if it properly
//     crosses an accepted edge, or if a third node is too close to it.
//
// Determinism:
//   - Fixed draw order: n, start, per-cluster angles, base, then per pair
//     (r, weight) exactly as iterated.

package builder

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/geometry"
)

// placeNodes adds the clustered nodes to g and returns them indexed by ID.
func placeNodes(g *core.Graph, params Params, cfg builderConfig) ([]core.Node, error) {
	rng := cfg.rng
	n := params.Nodes.Min + rng.Intn(params.Nodes.Max-params.Nodes.Min+1)

	centers := clusterCenters(params.Width, params.Height)
	perCluster := n / clusterCount
	extra := n % clusterCount
	start := rng.Intn(clusterCount)
	maxStep := fullCircle / (float64(n) / clusterCount)
	rx := params.Width * cfg.clusterRadius
	ry := params.Height * cfg.clusterRadius

	nodes := make([]core.Node, 0, n)
	for i := 0; i < clusterCount; i++ {
		center := centers[(i+start)%clusterCount]
		count := perCluster
		if i < extra {
			count++
		}

		angle := rng.Float64() * fullCircle
		for j := 0; j < count; j++ {
			angle += rng.Float64()*(maxStep-minAngleStep) + minAngleStep
			node := core.Node{
				ID: len(nodes),
				X:  center[0] + math.Cos(angle)*rx,
				Y:  center[1] + math.Sin(angle)*ry,
			}
			if err := g.AddNode(node); err != nil {
				return nil, fmt.Errorf("%s: node %d: %v: %w", methodGenerate, node.ID, err, ErrConstructFailed)
			}
			nodes = append(nodes, node)
		}
	}

	return nodes, nil
}

// connector holds the per-run edge generation state.
type connector struct {
	g       *core.Graph
	nodes   []core.Node
	weights Range
	cfg     builderConfig

	nodeIndex *geometry.Index // every node position
	edgeIndex *geometry.Index // accepted edges, keyed by position in accepted
	accepted  [][2]orb.Point
}

// connectNodes runs the edge generation pass over nodes.
func connectNodes(g *core.Graph, nodes []core.Node, weights Range, cfg builderConfig) error {
	n := len(nodes)
	c := &connector{
		g:         g,
		nodes:     nodes,
		weights:   weights,
		cfg:       cfg,
		nodeIndex: geometry.NewIndex(),
		edgeIndex: geometry.NewIndex(),
	}
	for _, node := range nodes {
		c.nodeIndex.InsertPoint(node.ID, node.Point())
	}

	base := cfg.rng.Intn(n)
	for i := 0; i < n; i++ {
		p := 1.0
		for j := 0; j < n; j++ {
			if cfg.rng.Float64() > p || i == j {
				continue
			}
			weight := c.drawWeight()
			first := nodes[(base+i)%n]
			second := nodes[(base+j)%n]
			if !c.admissible(first, second) {
				continue
			}
			if _, err := g.AddEdge(first.ID, second.ID, weight); err != nil {
				return fmt.Errorf("%s: edge %s: %v: %w",
					methodGenerate, core.EdgeID(first.ID, second.ID), err, ErrConstructFailed)
			}
			c.edgeIndex.InsertSegment(len(c.accepted), first.Point(), second.Point())
			c.accepted = append(c.accepted, [2]orb.Point{first.Point(), second.Point()})
			p /= cfg.decay
		}
	}

	return nil
}

// drawWeight returns floor(r·Max)+1, raised to Min when Min exceeds it.
func (c *connector) drawWeight() int64 {
	w := int64(math.Floor(c.cfg.rng.Float64()*float64(c.weights.Max))) + 1
	if lo := int64(c.weights.Min); w < lo {
		w = lo
	}

	return w
}

// admissible reports whether first–second may be added: the pair is not yet
// joined, the segment crosses no accepted edge, and no third node is within
// the proximity threshold.
func (c *connector) admissible(first, second core.Node) bool {
	if c.g.HasEdge(first.ID, second.ID) {
		return false
	}

	a, b := first.Point(), second.Point()
	for _, k := range c.edgeIndex.Query(geometry.SegmentBound(a, b, 0)) {
		e := c.accepted[k]
		if geometry.SegmentsIntersect(a, b, e[0], e[1]) {
			return false
		}
	}

	for _, id := range c.nodeIndex.Query(geometry.SegmentBound(a, b, c.cfg.proximity)) {
		if id == first.ID || id == second.ID {
			continue
		}
		if geometry.TooClose(c.nodes[id].Point(), a, b, c.cfg.proximity) {
			return false
		}
	}

	return true
}
