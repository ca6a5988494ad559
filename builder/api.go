// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// api.go: public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: Generate(params, opts...). Validates, resolves config,
//     places nodes, connects them.
//   - Functional options resolve into an immutable builderConfig.
//   - Determinism: same params, options and seed ⇒ identical graphs.
//   - Safety: never panics; returns sentinel errors for invalid params.

package builder

import (
	"github.com/katalvlaran/pathviz/core"
)

const methodGenerate = "Generate"

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Params describes one generation request.
type Params struct {
	// Nodes is the node-count range; the count is drawn uniformly from it.
	Nodes Range
	// Weights is the edge-weight range. Weights are floor(r·Max)+1, raised
	// to Min when Min > 1.
	Weights Range
	// Width and Height are the canvas dimensions.
	Width, Height float64
}

// Generate builds a random clustered planar graph.
//
// Steps:
//  1. Validate params (ErrBadRange, ErrBadBounds).
//  2. Resolve options into builderConfig.
//  3. Place nodes in five clusters (IDs 0..n-1 in placement order).
//  4. Connect nodes under the crossing/proximity/duplicate constraints.
//
// The result may be disconnected; that is an expected outcome, not an error.
//
// Complexity: O(n²·(k + log n)) where k is the number of index hits per
// candidate edge.
func Generate(params Params, opts ...Option) (*core.Graph, error) {
	if err := validateNodes(params.Nodes); err != nil {
		return nil, err
	}
	if err := validateWeights(params.Weights); err != nil {
		return nil, err
	}
	if err := validateBounds(params.Width, params.Height); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	g := core.NewGraph()

	nodes, err := placeNodes(g, params, cfg)
	if err != nil {
		return nil, err
	}
	if err := connectNodes(g, nodes, params.Weights, cfg); err != nil {
		return nil, err
	}

	return g, nil
}
