// SPDX-License-Identifier: MIT
// Package: scmd
//
// Purpose:
//   - Canonical input checks shared by the preparers and generators.
//   - Return ErrInvalidParameter / ErrDimensionMismatch / ErrNilFactors so
//     call sites wrap them uniformly with an operation tag.

package scmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/mat"
)

// validatePositive rejects v <= 0, NaN and ±Inf.
func validatePositive(name string, a field.Axis, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%s[%v]=%g: %w", name, a, v, ErrInvalidParameter)
	}

	return nil
}

// validateNodeCount rejects an extent/spacing ratio that is not finite or
// would exceed MaxNodes nodes.
func validateNodeCount(a field.Axis, extent, spacing float64) error {
	r := extent / spacing
	if math.IsNaN(r) || math.IsInf(r, 0) || r > MaxNodes {
		return fmt.Errorf("nodes[%v]: extent=%g spacing=%g: %w", a, extent, spacing, ErrInvalidParameter)
	}

	return nil
}

// validateDims rejects non-positive node counts.
func validateDims(dims field.Dims) error {
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return fmt.Errorf("dims=%v: %w", [3]int(dims), ErrInvalidParameter)
	}

	return nil
}

// triOrder returns the order of L, or 0 for nil.
func triOrder(l *mat.TriDense) int {
	if l == nil || l.IsEmpty() {
		return 0
	}
	n, _ := l.Triangle()

	return n
}

// validateMatch compares a requested node count with a factor order.
func validateMatch(axes string, want, have int) error {
	if want != have {
		return fmt.Errorf("%s: dims %d, factor %d: %w", axes, want, have, ErrDimensionMismatch)
	}

	return nil
}
