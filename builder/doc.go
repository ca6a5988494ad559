// Package builder generates the random planar graphs pathviz animates.
//
// The generator places nodes in five loosely circular clusters and then
// connects them under three geometric constraints, so that the result can be
// drawn without visual ambiguity:
//
//   - no two edges cross in their interiors;
//   - no edge passes within the proximity threshold (40 units by default) of
//     a node that is not one of its endpoints;
//   - at most one edge joins any pair of nodes.
//
// Key components:
//
//   - Generate(params, opts...): the single public entry-point.
//   - Params / Range:            node-count range, weight range, canvas size.
//   - Option:                    functional options resolved into builderConfig.
//   - WithSeed / WithRand:       injectable randomness; the default is a
//     fixed-seed source so plain calls are reproducible.
//   - WithProximity, WithClusterRadius, WithDecay: geometry and density knobs.
//
// Guarantees:
//
//   - Determinism: same Params, options and seed ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Sentinel errors (ErrBadRange, ErrBadBounds) for invalid parameters.
//   - Connectivity is NOT guaranteed. Callers gate algorithm runs with
//     bfs.Connected and regenerate when needed.
//
// Complexity: O(n²) candidate pairs, each checked against nearby edges and
// nodes found through a geometry.Index. Intended for the small graphs
// (≈10–30 nodes) the visualizer shows.
package builder
