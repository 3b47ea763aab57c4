// SPDX-License-Identifier: MIT

// Package scmd - axis decomposer.
//
// Purpose:
//   - Build the pairwise distance matrix over one axis (or the joint XY plane).
//   - Map it through the correlation kernel.
//   - Cholesky-factor the result into a lower-triangular L with L·Lᵀ = R.
//
// Determinism:
//   - Fixed i→j fill order; gonum's Cholesky is deterministic for a given
//     BLAS implementation, so repeated calls yield identical factors.

package scmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/mat"
)

const (
	opDistanceMatrix      = "DistanceMatrix"
	opJointDistanceMatrix = "JointDistanceMatrix"
	opDecomposeAxis       = "DecomposeAxis"
	opCorrelationMatrix   = "CorrelationMatrix"
	opFactorize           = "Factorize"
)

// DistanceMatrix returns the n×n matrix |c[i] - c[j]|.
//
// Errors:
//   - ErrInvalidParameter for empty coords.
func DistanceMatrix(coords []float64) (*mat.SymDense, error) {
	n := len(coords)
	if n == 0 {
		return nil, scmdErrorf(opDistanceMatrix, fmt.Errorf("no coordinates: %w", ErrInvalidParameter))
	}
	d := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, math.Abs(coords[i]-coords[j]))
		}
	}

	return d, nil
}

// JointDistanceMatrix returns the Euclidean distance matrix over the XY
// plane with nodes enumerated x-major: node p = i*len(ys) + j sits at
// (xs[i], ys[j]). This is the order in which an nx×ny×nz field stores its
// (x,y) columns.
//
// Errors:
//   - ErrInvalidParameter when either axis is empty.
func JointDistanceMatrix(xs, ys []float64) (*mat.SymDense, error) {
	nx, ny := len(xs), len(ys)
	if nx == 0 || ny == 0 {
		return nil, scmdErrorf(opJointDistanceMatrix,
			fmt.Errorf("xs=%d ys=%d coordinates: %w", nx, ny, ErrInvalidParameter))
	}
	n := nx * ny
	d := mat.NewSymDense(n, nil)
	var p, q int
	var dx, dy float64
	for p = 0; p < n; p++ {
		for q = p + 1; q < n; q++ {
			dx = xs[p/ny] - xs[q/ny]
			dy = ys[p%ny] - ys[q%ny]
			d.SetSym(p, q, math.Hypot(dx, dy))
		}
	}

	return d, nil
}

// CorrelationMatrix applies fn elementwise to a distance matrix.
//
// Errors:
//   - ErrInvalidParameter from CorrelationFunc.Eval (bad sof, bad distance
//     or out-of-range kernel value).
func CorrelationMatrix(dist *mat.SymDense, sof float64, fn CorrelationFunc) (*mat.SymDense, error) {
	if fn == nil {
		fn = Exponential
	}
	n := dist.SymmetricDim()
	r := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, err := fn.Eval(dist.At(i, j), sof)
			if err != nil {
				return nil, scmdErrorf(opCorrelationMatrix, err)
			}
			r.SetSym(i, j, v)
		}
	}

	return r, nil
}

// Factorize computes the lower Cholesky factor of corr.
// It returns the factor and the estimated condition number, or ok=false
// when corr is not numerically positive definite or its condition number
// exceeds limit (limit <= 0 disables that check).
func Factorize(corr *mat.SymDense, limit float64) (l *mat.TriDense, cond float64, ok bool) {
	var chol mat.Cholesky
	if !chol.Factorize(corr) {
		return nil, math.Inf(1), false
	}
	cond = chol.Cond()
	if limit > 0 && !(cond <= limit) {
		return nil, cond, false
	}
	l = mat.NewTriDense(corr.SymmetricDim(), mat.Lower, nil)
	chol.LTo(l)

	return l, cond, true
}

// DecomposeAxis builds and factors the correlation matrix over coords
// for one axis.
//
// Errors:
//   - ErrInvalidParameter for an invalid axis, empty coords or bad sof.
//   - *DecompositionError (ErrDecomposition) when factoring fails.
func DecomposeAxis(axis field.Axis, coords []float64, sof float64, opts ...Option) (*mat.TriDense, error) {
	if !axis.Valid() || len(coords) == 0 {
		return nil, scmdErrorf(opDecomposeAxis, fmt.Errorf("axis=%v nodes=%d: %w", axis, len(coords), ErrInvalidParameter))
	}
	dist, err := DistanceMatrix(coords)
	if err != nil {
		return nil, scmdErrorf(opDecomposeAxis, err)
	}
	o := gatherOptions(opts...)

	return decompose(axis.String(), dist, sof, spacingOf(coords), o)
}

// decompose is the shared correlation → Cholesky path for single axes
// and the joint plane.
func decompose(axes string, dist *mat.SymDense, sof, spacing float64, o Options) (*mat.TriDense, error) {
	corr, err := CorrelationMatrix(dist, sof, o.corr)
	if err != nil {
		return nil, scmdErrorf(opDecomposeAxis, fmt.Errorf("%s: %w", axes, err))
	}
	l, cond, ok := Factorize(corr, o.condLimit)
	if !ok {
		return nil, scmdErrorf(opFactorize, &DecompositionError{
			Axes:    axes,
			Nodes:   corr.SymmetricDim(),
			SOF:     sof,
			Spacing: spacing,
			Cond:    cond,
		})
	}

	return l, nil
}

// spacingOf returns the gap between the first two coordinates, or 0.
func spacingOf(coords []float64) float64 {
	if len(coords) < 2 {
		return 0
	}

	return coords[1] - coords[0]
}
