// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// constants.go: layout constants of the clustered generator.

package builder

const (
	// clusterCount is the number of cluster centers.
	clusterCount = 5

	// fullCircle is the angular span used for cluster layout (just under 2π).
	fullCircle = 6.2

	// minAngleStep is the lower bound of the random angular step between
	// consecutive nodes of a cluster, in radians.
	minAngleStep = 1.0

	// DefaultClusterRadius is the cluster radius as a fraction of the canvas
	// width (x axis) and height (y axis).
	DefaultClusterRadius = 0.1

	// DefaultDecay divides a node's acceptance probability after each edge
	// accepted from it.
	DefaultDecay = 4.0

	// MaxNodes caps the node count. Edge generation is O(n³) in the worst
	// case and the layout is tuned for small graphs.
	MaxNodes = 30

	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
)

// clusterCenters returns the five cluster centers for a w×h canvas:
// top-left, top-right, center, bottom-left, bottom-right.
func clusterCenters(w, h float64) [clusterCount][2]float64 {
	return [clusterCount][2]float64{
		{w / 6, h / 5},
		{w - w/5, h / 5},
		{w / 2, h / 2},
		{w / 5, h - h/5},
		{w - w/6, h - h/5},
	}
}
