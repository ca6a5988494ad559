// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng           = rand.New(rand.NewSource(DefaultSeed))
//   • proximity     = geometry.ProximityThreshold (40)
//   • clusterRadius = DefaultClusterRadius (0.1)
//   • decay         = DefaultDecay (4)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathviz/geometry"
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	// RNG for every random draw; never nil after newBuilderConfig.
	rng *rand.Rand
	// Minimum node clearance for an edge, in canvas units.
	proximity float64
	// Cluster radius as a fraction of width/height.
	clusterRadius float64
	// Divisor applied to the acceptance probability after each accepted edge.
	decay float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		proximity:     geometry.ProximityThreshold,
		clusterRadius: DefaultClusterRadius,
		decay:         DefaultDecay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
