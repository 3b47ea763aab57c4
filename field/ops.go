// SPDX-License-Identifier: MIT

// Package field - axis rotation and value transforms.
//
// Purpose:
//   - Rotate brings the second axis to the front: (a,b,c) → (b,c,a). Three
//     rotations restore the starting layout.
//   - Exp and Affine are the transforms a driver applies to a standard-normal
//     field before handing it to a consumer.

package field

import (
	"fmt"
	"math"
)

const (
	ctxRotate = "Rotate"
	ctxExp    = "Exp"
)

// Rotate returns a new Field with the axes cyclically permuted:
// out[j][k][i] = f[i][j][k], so dims (a,b,c) become (b,c,a).
//
// Implementation:
//   - Stage 1: allocate dst with rotated dims.
//   - Stage 2: delegate to RotateInto.
//
// Complexity:
//   - Time O(n), Space O(n).
func (f *Field) Rotate() *Field {
	d := f.dims
	dst := &Field{dims: Dims{d[1], d[2], d[0]}, data: make([]float64, len(f.data))}
	rotate(dst.data, f.data, d)

	return dst
}

// RotateInto writes the rotation of f into dst, reusing dst's buffer.
// dst must already have dims (b,c,a) for f dims (a,b,c) and must not share
// storage with f.
//
// Errors:
//   - ErrInvalidDimensions when dst has the wrong shape.
//
// Complexity:
//   - Time O(n), Space O(1).
func (f *Field) RotateInto(dst *Field) error {
	d := f.dims
	want := Dims{d[1], d[2], d[0]}
	if dst.dims != want {
		return fmt.Errorf("Field.%s: dst %v, want %v: %w", ctxRotate, dst.dims, want, ErrInvalidDimensions)
	}
	rotate(dst.data, f.data, d)

	return nil
}

// Reshape reinterprets the buffer under new dims of equal length, in place.
func (f *Field) Reshape(dims Dims) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	if dims.Len() != len(f.data) {
		return fmt.Errorf("Field.Reshape: %v to %v: %w", f.dims, dims, ErrInvalidDimensions)
	}
	f.dims = dims

	return nil
}

// rotate moves src (a,b,c) into dst (b,c,a). Row i of the a×(b·c) view of
// src becomes column i of the (b·c)×a view of dst.
func rotate(dst, src []float64, d Dims) {
	a, bc := d[0], d[1]*d[2]
	var i, jk, base int
	for i = 0; i < a; i++ {
		base = i * bc
		for jk = 0; jk < bc; jk++ {
			dst[jk*a+i] = src[base+jk]
		}
	}
}

// Exp replaces every value v with e^v (log-normal transform).
//
// Errors:
//   - ErrNaNInf if any value overflows.
func (f *Field) Exp() error {
	if err := f.Apply(func(_, _, _ int, v float64) float64 { return math.Exp(v) }); err != nil {
		return fmt.Errorf("Field.%s: %w", ctxExp, err)
	}

	return nil
}

// Affine maps every value v to mu + sigma*v, turning a standard-normal
// field into one with mean mu and standard deviation sigma.
//
// Errors:
//   - ErrBadSigma when sigma <= 0 or not finite.
//   - ErrNaNInf when mu is not finite.
func (f *Field) Affine(mu, sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return fmt.Errorf("Field.%s(%g,%g): %w", ctxAffine, mu, sigma, ErrBadSigma)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return fmt.Errorf("Field.%s(%g,%g): %w", ctxAffine, mu, sigma, ErrNaNInf)
	}
	var i int
	for i = range f.data {
		f.data[i] = mu + sigma*f.data[i]
	}

	return nil
}
