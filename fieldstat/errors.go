// SPDX-License-Identifier: MIT

package fieldstat

import "errors"

var (
	// ErrEmpty indicates that no data has been accumulated.
	ErrEmpty = errors.New("fieldstat: no samples")
	// ErrDimensionMismatch indicates a field whose shape differs from the estimator's.
	ErrDimensionMismatch = errors.New("fieldstat: dimension mismatch")
	// ErrBadLag indicates a lag outside 1..maxLag or beyond the axis length.
	ErrBadLag = errors.New("fieldstat: lag out of range")
	// ErrBadAxis indicates an unknown axis.
	ErrBadAxis = errors.New("fieldstat: unknown axis")
)
