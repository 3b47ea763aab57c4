// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All exported functions return these sentinels (optionally wrapped with
// method context via %w); tests match them with errors.Is.

package field

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested shape has a non-positive extent.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrOutOfRange indicates that an (i,j,k) index lies outside the field.
	ErrOutOfRange = errors.New("field: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("field: NaN or Inf encountered")

	// ErrBadAxis indicates an axis other than AxisX, AxisY or AxisZ.
	ErrBadAxis = errors.New("field: unknown axis")

	// ErrBadView indicates a View outside Front, Back, Left, Right.
	ErrBadView = errors.New("field: unknown view")

	// ErrBadRaw indicates a malformed raw stream (bad header or short body).
	ErrBadRaw = errors.New("field: malformed raw data")

	// ErrBadSigma indicates a non-positive or non-finite standard deviation.
	ErrBadSigma = errors.New("field: sigma must be finite and > 0")
)
