// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes Generate by mutating a builderConfig before generation.
type Option func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProximity sets the minimum distance between an edge and any third
// node. Panics if d is negative or not finite; 0 disables the check except
// for nodes lying exactly on the segment.
func WithProximity(d float64) Option {
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		panic("builder: WithProximity(d<0)")
	}

	return func(c *builderConfig) {
		c.proximity = d
	}
}

// WithClusterRadius sets the cluster radius as a fraction of the canvas
// width/height. Panics unless 0 < f <= 0.5.
func WithClusterRadius(f float64) Option {
	if !(f > 0 && f <= 0.5) {
		panic("builder: WithClusterRadius(f∉(0,0.5])")
	}

	return func(c *builderConfig) {
		c.clusterRadius = f
	}
}

// WithDecay sets the divisor applied to a node's acceptance probability after
// each accepted edge. 1 keeps every candidate certain; larger values thin the
// graph faster. Panics if divisor < 1.
func WithDecay(divisor float64) Option {
	if !(divisor >= 1) || math.IsInf(divisor, 0) {
		panic("builder: WithDecay(divisor<1)")
	}

	return func(c *builderConfig) {
		c.decay = divisor
	}
}
