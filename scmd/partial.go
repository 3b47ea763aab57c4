// SPDX-License-Identifier: MIT

// Package scmd - partially-separable variant.
//
// Prepare factors one joint correlation matrix over the XY plane
// (Euclidean distance, θ = SOF[0]) and one over Z (θ = SOF[2]).
// Generate draws U of shape (nx·ny)×nz and computes
//
//	X = Lxy · U · Lzᵀ
//
// so Cov(X[p,k], X[q,m]) = Rxy[p,q]·Rz[k,m]. Row p = i*ny + j of X is the
// (i,j) column of the field, so X's buffer is already the nx×ny×nz layout.
//
// Memory: the joint factor is (nx·ny)² values and dominates everything
// else; WithSinglePrecision halves it.

package scmd

import (
	"fmt"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

const (
	opPreparePartial  = "PreparePartiallySeparable"
	opGeneratePartial = "GeneratePartiallySeparable"
	axesXY            = "xy"
)

// PartialFactors holds the joint XY factor and the Z factor.
// Immutable after PreparePartiallySeparable; Generate only reads it.
type PartialFactors struct {
	// Lxy is the (nx·ny)×(nx·ny) joint factor; nil under WithSinglePrecision.
	Lxy *mat.TriDense
	// Lz is the nz×nz factor.
	Lz *mat.TriDense

	nx, ny int // plane shape the joint factor was built for (0 if unknown)

	single bool
	xy32   blas32.Triangular
	z32    blas32.Triangular
}

// Compile-time assertion.
var _ Factors = (*PartialFactors)(nil)

// Dims returns the node counts the factors were prepared for. For factors
// assembled by hand (no prepared plane shape) nx is the joint order and
// ny is 1.
func (f *PartialFactors) Dims() field.Dims {
	if f.nx > 0 && f.ny > 0 {
		return field.Dims{f.nx, f.ny, triOrder(f.Lz)}
	}

	return field.Dims{f.jointOrder(), 1, triOrder(f.Lz)}
}

// SinglePrecision reports whether the factors are stored as float32.
func (f *PartialFactors) SinglePrecision() bool { return f.single }

// Generate is GeneratePartiallySeparable(f, dims, opts...).
func (f *PartialFactors) Generate(dims field.Dims, opts ...Option) (*field.Field, error) {
	return GeneratePartiallySeparable(f, dims, opts...)
}

// jointOrder returns the order of the joint XY factor in either precision.
func (f *PartialFactors) jointOrder() int {
	if f.single {
		return f.xy32.N
	}

	return triOrder(f.Lxy)
}

// PreparePartiallySeparable validates g and factors the joint XY and the
// Z correlation matrices.
//
// Errors:
//   - ErrInvalidParameter for a bad grid.
//   - *DecompositionError with Axes "xy" or "z".
//
// Complexity:
//   - Time O((nx·ny)³ + nz³), Space O((nx·ny)² + nz²).
func PreparePartiallySeparable(g Grid, opts ...Option) (*PartialFactors, error) {
	if err := g.Validate(); err != nil {
		return nil, scmdErrorf(opPreparePartial, err)
	}
	o := gatherOptions(opts...)

	nx := nodeCount(g.Extent[field.AxisX], g.Spacing[field.AxisX])
	ny := nodeCount(g.Extent[field.AxisY], g.Spacing[field.AxisY])
	nz := nodeCount(g.Extent[field.AxisZ], g.Spacing[field.AxisZ])
	xs := nodes(nx, g.Spacing[field.AxisX])
	ys := nodes(ny, g.Spacing[field.AxisY])
	zs := nodes(nz, g.Spacing[field.AxisZ])

	dxy, err := JointDistanceMatrix(xs, ys)
	if err != nil {
		return nil, scmdErrorf(opPreparePartial, err)
	}
	dz, err := DistanceMatrix(zs)
	if err != nil {
		return nil, scmdErrorf(opPreparePartial, err)
	}
	lxy, err := decompose(axesXY, dxy, g.SOF[field.AxisX], g.Spacing[field.AxisX], o)
	if err != nil {
		return nil, scmdErrorf(opPreparePartial, err)
	}
	lz, err := decompose(field.AxisZ.String(), dz, g.SOF[field.AxisZ], g.Spacing[field.AxisZ], o)
	if err != nil {
		return nil, scmdErrorf(opPreparePartial, err)
	}

	pf := &PartialFactors{Lz: lz, nx: nx, ny: ny}
	if o.single {
		pf.single = true
		pf.xy32 = narrowLower(lxy)
		pf.z32 = narrowLower(lz)
		return pf, nil
	}
	pf.Lxy = lxy

	return pf, nil
}

// GeneratePartiallySeparable draws one realization on an nx×ny×nz grid.
// nx·ny must equal the joint factor order (and nx, ny must equal the
// prepared plane shape when known); nz must equal the Z factor order.
//
// Errors:
//   - ErrNilFactors, ErrInvalidParameter (dims <= 0), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·(nx·ny + nz)), Space O(n).
func GeneratePartiallySeparable(f *PartialFactors, dims field.Dims, opts ...Option) (*field.Field, error) {
	if f == nil || f.Lz == nil || (!f.single && f.Lxy == nil) {
		return nil, scmdErrorf(opGeneratePartial, ErrNilFactors)
	}
	if err := validateDims(dims); err != nil {
		return nil, scmdErrorf(opGeneratePartial, err)
	}
	nx, ny, nz := dims[0], dims[1], dims[2]
	if err := validateMatch(axesXY, nx*ny, f.jointOrder()); err != nil {
		return nil, scmdErrorf(opGeneratePartial, err)
	}
	if f.nx > 0 && (nx != f.nx || ny != f.ny) {
		return nil, scmdErrorf(opGeneratePartial,
			fmt.Errorf("xy: dims %d×%d, prepared %d×%d: %w", nx, ny, f.nx, f.ny, ErrDimensionMismatch))
	}
	if err := validateMatch(field.AxisZ.String(), nz, triOrder(f.Lz)); err != nil {
		return nil, scmdErrorf(opGeneratePartial, err)
	}
	o := gatherOptions(opts...)
	normal := normalSource(o)
	nxy := nx * ny

	if f.single {
		buf := make([]float32, nxy*nz)
		fillNormal32(buf, normal)
		u := blas32.General{Rows: nxy, Cols: nz, Stride: nz, Data: buf}
		blas32.Trmm(blas.Left, blas.NoTrans, 1, f.xy32, u)
		blas32.Trmm(blas.Right, blas.Trans, 1, f.z32, u)
		out := make([]float64, len(buf))
		for i, v := range buf {
			out[i] = float64(v)
		}
		fld, err := field.Wrap(dims, out)
		if err != nil {
			return nil, scmdErrorf(opGeneratePartial, err)
		}
		return fld, nil
	}

	fld, err := field.New(dims)
	if err != nil {
		return nil, scmdErrorf(opGeneratePartial, err)
	}
	fillNormal(fld.Data(), normal)
	u := blas64.General{Rows: nxy, Cols: nz, Stride: nz, Data: fld.Data()}
	blas64.Trmm(blas.Left, blas.NoTrans, 1, f.Lxy.RawTriangular(), u)
	blas64.Trmm(blas.Right, blas.Trans, 1, f.Lz.RawTriangular(), u)

	return fld, nil
}

// narrowLower copies the lower triangle of l into float32 storage.
func narrowLower(l *mat.TriDense) blas32.Triangular {
	raw := l.RawTriangular()
	n := raw.N
	data := make([]float32, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			data[i*n+j] = float32(raw.Data[i*raw.Stride+j])
		}
	}

	return blas32.Triangular{Uplo: blas.Lower, Diag: blas.NonUnit, N: n, Stride: n, Data: data}
}
