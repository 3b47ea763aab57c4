// SPDX-License-Identifier: MIT

// Package field - Dense 3D storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula (i*ny + j)*nz + k.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed i→j→k loop orders).
//   - Enforce a finite-value numeric policy on Set/Apply.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(1); Clone: O(n); Rotate: O(n) with one allocation.

package field

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxNew    = "New"
	ctxWrap   = "Wrap"
	ctxSlice  = "Slice"
	ctxFaces  = "Faces"
	ctxAffine = "Affine"
)

// ---------- Formatting literals ----------
const (
	_fmtSlabOpen  = "x=%d\n"
	_fmtRowOpen   = "["
	_fmtRowClose  = "]\n"
	_fmtSep       = ", "
	_fmtSlabBreak = "\n"
)

// fieldErrorf wraps an error with a uniform Field context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Field.<method>(i,j,k): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func fieldErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Axis names one of the three spatial axes of a Field.
type Axis int

const (
	// AxisX is the leading (slowest varying) axis.
	AxisX Axis = iota
	// AxisY is the middle axis.
	AxisY
	// AxisZ is the trailing (contiguous) axis.
	AxisZ
)

// Axes lists the axes in storage order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool { return a >= AxisX && a <= AxisZ }

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Dims holds node counts (nx, ny, nz).
type Dims [3]int

// Len returns nx*ny*nz.
// Complexity: O(1).
func (d Dims) Len() int { return d[0] * d[1] * d[2] }

// Validate returns ErrInvalidDimensions unless every count is positive.
func (d Dims) Validate() error {
	if d[0] <= 0 || d[1] <= 0 || d[2] <= 0 {
		return fmt.Errorf("Dims%v: %w", [3]int(d), ErrInvalidDimensions)
	}

	return nil
}

// String formats d as "nx×ny×nz".
func (d Dims) String() string {
	return fmt.Sprintf("%d×%d×%d", d[0], d[1], d[2])
}

// Field is a concrete row-major 3D array.
//   - dims holds (nx, ny, nz).
//   - data is a flat buffer of length nx*ny*nz (offset = (i*ny + j)*nz + k).
type Field struct {
	dims Dims      // node counts per axis (all > 0)
	data []float64 // contiguous row-major storage (len == dims.Len())
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Field)(nil)

// New creates a zero-filled Field of the given shape.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate all counts > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func New(dims Dims) (*Field, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("Field.%s: %w", ctxNew, err)
	}

	return &Field{dims: dims, data: make([]float64, dims.Len())}, nil
}

// Wrap builds a Field over an existing buffer without copying.
// The caller hands ownership of data to the Field.
//
// Errors:
//   - ErrInvalidDimensions when dims are non-positive or len(data) != dims.Len().
func Wrap(dims Dims, data []float64) (*Field, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("Field.%s: %w", ctxWrap, err)
	}
	if len(data) != dims.Len() {
		return nil, fmt.Errorf("Field.%s: len %d for %v: %w", ctxWrap, len(data), dims, ErrInvalidDimensions)
	}

	return &Field{dims: dims, data: data}, nil
}

// Dims returns the node counts (nx, ny, nz).
// Complexity: O(1).
func (f *Field) Dims() Dims { return f.dims }

// Len returns the number of cells.
// Complexity: O(1).
func (f *Field) Len() int { return len(f.data) }

// Data returns the backing row-major buffer. Writes through it bypass
// the numeric policy; generators use it to fill the field in bulk.
func (f *Field) Data() []float64 { return f.data }

// indexOf bounds-checks (i,j,k) and computes the flat offset.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
func (f *Field) indexOf(i, j, k int) (int, error) {
	if i < 0 || i >= f.dims[0] || j < 0 || j >= f.dims[1] || k < 0 || k >= f.dims[2] {
		return 0, ErrOutOfRange
	}

	return (i*f.dims[1]+j)*f.dims[2] + k, nil
}

// At returns the value at (i,j,k) or ErrOutOfRange.
// Complexity: O(1).
func (f *Field) At(i, j, k int) (float64, error) {
	off, err := f.indexOf(i, j, k)
	if err != nil {
		return 0, fieldErrorf(ctxAt, i, j, k, err)
	}

	return f.data[off], nil
}

// Set stores v at (i,j,k) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf when v is NaN or ±Inf.
//
// Complexity: O(1).
func (f *Field) Set(i, j, k int, v float64) error {
	off, err := f.indexOf(i, j, k)
	if err != nil {
		return fieldErrorf(ctxSet, i, j, k, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fieldErrorf(ctxSet, i, j, k, ErrNaNInf)
	}
	f.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: Time O(n), Space O(n).
func (f *Field) Clone() *Field {
	cp := make([]float64, len(f.data))
	copy(cp, f.data)

	return &Field{dims: f.dims, data: cp}
}

// String dumps the field as one nz-wide matrix per x slab.
func (f *Field) String() string {
	var b strings.Builder
	nx, ny, nz := f.dims[0], f.dims[1], f.dims[2]
	var i, j, k, base int
	for i = 0; i < nx; i++ {
		if i > 0 {
			b.WriteString(_fmtSlabBreak)
		}
		b.WriteString(fmt.Sprintf(_fmtSlabOpen, i))
		for j = 0; j < ny; j++ {
			b.WriteString(_fmtRowOpen)
			base = (i*ny + j) * nz
			for k = 0; k < nz; k++ {
				b.WriteString(fmt.Sprintf("%g", f.data[base+k]))
				if k+1 < nz {
					b.WriteString(_fmtSep)
				}
			}
			b.WriteString(_fmtRowClose)
		}
	}

	return b.String()
}

// Do calls fn for every cell in i→j→k order until fn returns false.
//
// Complexity:
//   - Time O(n), Space O(1).
func (f *Field) Do(fn func(i, j, k int, v float64) bool) {
	nx, ny, nz := f.dims[0], f.dims[1], f.dims[2]
	var i, j, k, off int
	for i = 0; i < nx; i++ {
		for j = 0; j < ny; j++ {
			for k = 0; k < nz; k++ {
				if !fn(i, j, k, f.data[off]) {
					return
				}
				off++
			}
		}
	}
}

// Apply replaces each cell with fn(i,j,k,v) in place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Rejects NaN/±Inf results with ErrNaNInf.
//   - Early error aborts; cells written before the error remain updated.
//
// Complexity:
//   - Time O(n), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, apply to a Clone and swap on success.
func (f *Field) Apply(fn func(i, j, k int, v float64) float64) error {
	nx, ny, nz := f.dims[0], f.dims[1], f.dims[2]
	var i, j, k, off int
	var nv float64
	for i = 0; i < nx; i++ {
		for j = 0; j < ny; j++ {
			for k = 0; k < nz; k++ {
				nv = fn(i, j, k, f.data[off])
				if math.IsNaN(nv) || math.IsInf(nv, 0) {
					return fieldErrorf(ctxApply, i, j, k, ErrNaNInf)
				}
				f.data[off] = nv
				off++
			}
		}
	}

	return nil
}
