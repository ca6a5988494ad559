// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// validators.go: parameter contracts for Generate.
//
// Each function wraps the matching sentinel with the offending values.

package builder

import (
	"fmt"
	"math"
)

// validateNodes requires 1 ≤ Min ≤ Max ≤ MaxNodes.
func validateNodes(r Range) error {
	if r.Min < 1 {
		return fmt.Errorf("%s: nodes min=%d < 1: %w", methodGenerate, r.Min, ErrBadRange)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s: nodes min=%d > max=%d: %w", methodGenerate, r.Min, r.Max, ErrBadRange)
	}
	if r.Max > MaxNodes {
		return fmt.Errorf("%s: nodes max=%d > %d: %w", methodGenerate, r.Max, MaxNodes, ErrBadRange)
	}

	return nil
}

// validateWeights requires Max ≥ 1 and Min ≤ Max. A Min below 1 is allowed
// and has no effect: weights are always at least 1.
func validateWeights(r Range) error {
	if r.Max < 1 {
		return fmt.Errorf("%s: weights max=%d < 1: %w", methodGenerate, r.Max, ErrBadRange)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s: weights min=%d > max=%d: %w", methodGenerate, r.Min, r.Max, ErrBadRange)
	}

	return nil
}

// validateBounds requires a finite, positive canvas.
func validateBounds(w, h float64) error {
	if !(w > 0 && h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%s: canvas %gx%g: %w", methodGenerate, w, h, ErrBadBounds)
	}

	return nil
}
