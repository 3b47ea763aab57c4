// SPDX-License-Identifier: MIT

package fieldstat

import (
	"fmt"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the sample moments of a single field.
type Summary struct {
	Cells    int
	Mean     float64
	Variance float64 // unbiased sample variance
	Min, Max float64
}

// String formats s on one line.
func (s Summary) String() string {
	return fmt.Sprintf("cells=%d mean=%.4f var=%.4f min=%.4f max=%.4f", s.Cells, s.Mean, s.Variance, s.Min, s.Max)
}

// Summarize computes the moments of f over all its cells.
//
// Errors:
//   - ErrEmpty when f is nil.
func Summarize(f *field.Field) (Summary, error) {
	if f == nil || f.Len() == 0 {
		return Summary{}, ErrEmpty
	}
	data := f.Data()
	s := Summary{Cells: len(data), Min: floats.Min(data), Max: floats.Max(data)}
	if len(data) == 1 {
		s.Mean = data[0]
		return s, nil
	}
	s.Mean, s.Variance = stat.MeanVariance(data, nil)

	return s, nil
}
