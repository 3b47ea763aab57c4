// SPDX-License-Identifier: MIT

package fieldstat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randfield/field"
)

// moments accumulates the sums behind a pooled Pearson correlation.
type moments struct {
	n, sx, sy, sxx, syy, sxy float64
}

func (m *moments) add(x, y float64) {
	m.n++
	m.sx += x
	m.sy += y
	m.sxx += x * x
	m.syy += y * y
	m.sxy += x * y
}

// pearson returns the pooled correlation, NaN when either side is constant.
func (m *moments) pearson() float64 {
	mx, my := m.sx/m.n, m.sy/m.n
	cov := m.sxy/m.n - mx*my
	vx := m.sxx/m.n - mx*mx
	vy := m.syy/m.n - my*my
	if vx <= 0 || vy <= 0 {
		return math.NaN()
	}

	return cov / math.Sqrt(vx*vy)
}

// Estimator pools independent realizations of one grid shape. It keeps
// running sums only, so memory does not grow with the number of fields.
// Not safe for concurrent use.
type Estimator struct {
	dims   field.Dims
	maxLag int
	count  int

	cells      float64
	sum, sumSq float64
	lags       [3][]moments // lags[axis][lag-1]
}

// NewEstimator creates an estimator for fields of shape dims that tracks
// lags 1..maxLag along every axis.
//
// Errors:
//   - field.ErrInvalidDimensions for non-positive dims.
//   - ErrBadLag for maxLag < 0.
func NewEstimator(dims field.Dims, maxLag int) (*Estimator, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if maxLag < 0 {
		return nil, fmt.Errorf("NewEstimator: maxLag=%d: %w", maxLag, ErrBadLag)
	}
	e := &Estimator{dims: dims, maxLag: maxLag}
	for _, a := range field.Axes {
		e.lags[a] = make([]moments, maxLag)
	}

	return e, nil
}

// Count returns the number of fields added.
func (e *Estimator) Count() int { return e.count }

// Add folds one realization into the running sums.
//
// Errors:
//   - ErrEmpty for a nil field.
//   - ErrDimensionMismatch when f's shape differs from the estimator's.
func (e *Estimator) Add(f *field.Field) error {
	if f == nil {
		return ErrEmpty
	}
	if f.Dims() != e.dims {
		return fmt.Errorf("Add: %v vs %v: %w", f.Dims(), e.dims, ErrDimensionMismatch)
	}
	data := f.Data()
	d := e.dims
	strides := [3]int{d[1] * d[2], d[2], 1}
	f.Do(func(i, j, k int, v float64) bool {
		e.sum += v
		e.sumSq += v * v
		pos := [3]int{i, j, k}
		off := (i*d[1]+j)*d[2] + k
		for a := range pos {
			for lag := 1; lag <= e.maxLag && pos[a]+lag < d[a]; lag++ {
				e.lags[a][lag-1].add(v, data[off+lag*strides[a]])
			}
		}
		return true
	})
	e.cells += float64(len(data))
	e.count++

	return nil
}

// Mean returns the pooled mean over every cell of every field.
func (e *Estimator) Mean() (float64, error) {
	if e.cells == 0 {
		return 0, ErrEmpty
	}

	return e.sum / e.cells, nil
}

// Variance returns the pooled unbiased variance over every cell of every
// field.
func (e *Estimator) Variance() (float64, error) {
	if e.cells < 2 {
		return 0, ErrEmpty
	}
	m := e.sum / e.cells

	return (e.sumSq - e.cells*m*m) / (e.cells - 1), nil
}

// Correlation returns the pooled Pearson correlation between values lag
// nodes apart along axis. NaN means one side was constant.
//
// Errors:
//   - ErrBadAxis, ErrBadLag, ErrEmpty (no pairs yet).
func (e *Estimator) Correlation(axis field.Axis, lag int) (float64, error) {
	if !axis.Valid() {
		return 0, fmt.Errorf("Correlation(%v): %w", axis, ErrBadAxis)
	}
	if lag < 1 || lag > e.maxLag || lag >= e.dims[axis] {
		return 0, fmt.Errorf("Correlation(%v,%d): %w", axis, lag, ErrBadLag)
	}
	m := e.lags[axis][lag-1]
	if m.n == 0 {
		return 0, ErrEmpty
	}

	return m.pearson(), nil
}
