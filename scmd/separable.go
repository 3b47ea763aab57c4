// SPDX-License-Identifier: MIT

// Package scmd - fully-separable variant.
//
// Prepare factors three independent per-axis correlation matrices.
// Generate applies them to an nx×ny×nz block of N(0,1) noise with a
// rotate-multiply cycle:
//
//	(nx,ny,nz) as nx×(ny·nz):  X ← Lx·X, rotate → (ny,nz,nx)
//	(ny,nz,nx) as ny×(nz·nx):  X ← Ly·X, rotate → (nz,nx,ny)
//	(nz,nx,ny) as nz×(nx·ny):  X ← Lz·X, rotate → (nx,ny,nz)
//
// The leading axis is always the one being correlated, and the third
// rotation restores the (x,y,z) layout. The resulting covariance is
// Rx ⊗ Ry ⊗ Rz with unit diagonal.

package scmd

import (
	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	opPrepareFull  = "PrepareFullySeparable"
	opGenerateFull = "GenerateFullySeparable"
)

// SeparableFactors holds one lower Cholesky factor per axis.
// Immutable after PrepareFullySeparable; Generate only reads it.
type SeparableFactors struct {
	Lx *mat.TriDense // nx×nx
	Ly *mat.TriDense // ny×ny
	Lz *mat.TriDense // nz×nz
}

// Compile-time assertion.
var _ Factors = (*SeparableFactors)(nil)

// Dims returns the node counts encoded in the factor orders.
func (f *SeparableFactors) Dims() field.Dims {
	return field.Dims{triOrder(f.Lx), triOrder(f.Ly), triOrder(f.Lz)}
}

// Generate is GenerateFullySeparable(f, dims, opts...).
func (f *SeparableFactors) Generate(dims field.Dims, opts ...Option) (*field.Field, error) {
	return GenerateFullySeparable(f, dims, opts...)
}

// PrepareFullySeparable validates g and factors the correlation matrix of
// each axis with that axis's own coordinates and scale of fluctuation.
//
// Errors:
//   - ErrInvalidParameter for a bad grid.
//   - *DecompositionError naming the failing axis.
//
// Complexity:
//   - Time O(nx³ + ny³ + nz³), Space O(nx² + ny² + nz²).
func PrepareFullySeparable(g Grid, opts ...Option) (*SeparableFactors, error) {
	if err := g.Validate(); err != nil {
		return nil, scmdErrorf(opPrepareFull, err)
	}
	o := gatherOptions(opts...)

	var ls [3]*mat.TriDense
	for _, a := range field.Axes {
		coords := nodes(nodeCount(g.Extent[a], g.Spacing[a]), g.Spacing[a])
		dist, err := DistanceMatrix(coords)
		if err != nil {
			return nil, scmdErrorf(opPrepareFull, err)
		}
		l, err := decompose(a.String(), dist, g.SOF[a], g.Spacing[a], o)
		if err != nil {
			return nil, scmdErrorf(opPrepareFull, err)
		}
		ls[a] = l
	}

	return &SeparableFactors{Lx: ls[field.AxisX], Ly: ls[field.AxisY], Lz: ls[field.AxisZ]}, nil
}

// GenerateFullySeparable draws one realization on an nx×ny×nz grid.
// dims must equal the factor orders exactly; nothing is reshaped or
// broadcast.
//
// Errors:
//   - ErrNilFactors, ErrInvalidParameter (dims <= 0), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·(nx+ny+nz)), Space O(n) for two n-cell buffers.
func GenerateFullySeparable(f *SeparableFactors, dims field.Dims, opts ...Option) (*field.Field, error) {
	if f == nil || f.Lx == nil || f.Ly == nil || f.Lz == nil {
		return nil, scmdErrorf(opGenerateFull, ErrNilFactors)
	}
	if err := validateDims(dims); err != nil {
		return nil, scmdErrorf(opGenerateFull, err)
	}
	have := f.Dims()
	for _, a := range field.Axes {
		if err := validateMatch(a.String(), dims[a], have[a]); err != nil {
			return nil, scmdErrorf(opGenerateFull, err)
		}
	}
	o := gatherOptions(opts...)

	cur, err := field.New(dims)
	if err != nil {
		return nil, scmdErrorf(opGenerateFull, err)
	}
	spare, err := field.New(dims)
	if err != nil {
		return nil, scmdErrorf(opGenerateFull, err)
	}
	fillNormal(cur.Data(), normalSource(o))

	for _, l := range [3]*mat.TriDense{f.Lx, f.Ly, f.Lz} {
		d := cur.Dims()
		mulLowerLeft(l, cur.Data(), d[0], d[1]*d[2])
		if err = spare.Reshape(field.Dims{d[1], d[2], d[0]}); err != nil {
			return nil, scmdErrorf(opGenerateFull, err)
		}
		if err = cur.RotateInto(spare); err != nil {
			return nil, scmdErrorf(opGenerateFull, err)
		}
		cur, spare = spare, cur
	}
	// Three rotations bring (nx,ny,nz) back to itself.

	return cur, nil
}

// mulLowerLeft computes X ← L·X in place, X being the rows×cols row-major
// matrix over data.
func mulLowerLeft(l *mat.TriDense, data []float64, rows, cols int) {
	x := blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: data}
	blas64.Trmm(blas.Left, blas.NoTrans, 1, l.RawTriangular(), x)
}
