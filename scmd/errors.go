// SPDX-License-Identifier: MIT
// Package scmd: sentinel error set.
// Every public function returns these sentinels, wrapped with an
// operation tag via %w, so callers match them with errors.Is.

package scmd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a non-positive or non-finite extent,
	// scale of fluctuation, spacing, distance or grid dimension.
	ErrInvalidParameter = errors.New("scmd: invalid parameter")

	// ErrDimensionMismatch indicates that Generate dims do not match the
	// sizes of the prepared factors.
	ErrDimensionMismatch = errors.New("scmd: dimension mismatch")

	// ErrDecomposition indicates that a correlation matrix could not be
	// Cholesky-factored. Returned errors are *DecompositionError.
	ErrDecomposition = errors.New("scmd: correlation matrix is not positive definite")

	// ErrNilFactors indicates that Generate received nil factors.
	ErrNilFactors = errors.New("scmd: nil factors")

	// ErrUnknownMethod indicates an unrecognized Method value or name.
	ErrUnknownMethod = errors.New("scmd: unknown method")
)

// DecompositionError reports which correlation matrix failed to factor
// and the parameters that produced it, so the caller can adjust the
// resolution or the scale of fluctuation.
type DecompositionError struct {
	Axes    string  // "x", "y", "z" or "xy" for the joint plane
	Nodes   int     // matrix order
	SOF     float64 // scale of fluctuation used
	Spacing float64 // node spacing along the axis (0 when unknown)
	Cond    float64 // estimated condition number; +Inf when factorization failed
}

// Error implements error.
func (e *DecompositionError) Error() string {
	return fmt.Sprintf("%v: axes=%s nodes=%d sof=%g spacing=%g cond=%g",
		ErrDecomposition, e.Axes, e.Nodes, e.SOF, e.Spacing, e.Cond)
}

// Unwrap makes errors.Is(err, ErrDecomposition) true.
func (e *DecompositionError) Unwrap() error { return ErrDecomposition }

// scmdErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func scmdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
