// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing site.
//   • Generate never panics; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrBadRange indicates an invalid node-count or weight range
// (min < 1 nodes, more than MaxNodes nodes, min > max, or max weight < 1).
var ErrBadRange = errors.New("builder: invalid range")

// ErrBadBounds indicates a non-positive canvas width or height.
var ErrBadBounds = errors.New("builder: invalid bounds")

// ErrConstructFailed indicates the graph rejected a node or edge the
// generator produced. It signals a generator bug, not bad input.
var ErrConstructFailed = errors.New("builder: construction failed")
