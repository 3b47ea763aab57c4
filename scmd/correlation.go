// SPDX-License-Identifier: MIT

package scmd

import (
	"fmt"
	"math"
)

// CorrelationFunc maps a non-negative distance d and a positive scale of
// fluctuation sof to a correlation coefficient.
type CorrelationFunc func(d, sof float64) float64

// Exponential is the separable Markov kernel exp(-2d/θ).
func Exponential(d, sof float64) float64 {
	return math.Exp(-2 * d / sof)
}

// Eval checks the preconditions and evaluates fn.
//
// Errors:
//   - ErrInvalidParameter when sof <= 0, d < 0, either is non-finite, or
//     fn returns a value outside [-1, 1].
func (fn CorrelationFunc) Eval(d, sof float64) (float64, error) {
	if !(sof > 0) || math.IsInf(sof, 0) {
		return 0, fmt.Errorf("correlation: sof=%g: %w", sof, ErrInvalidParameter)
	}
	if !(d >= 0) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("correlation: distance=%g: %w", d, ErrInvalidParameter)
	}
	r := fn(d, sof)
	if math.IsNaN(r) || r < -1 || r > 1 {
		return 0, fmt.Errorf("correlation: rho(%g,%g)=%g: %w", d, sof, r, ErrInvalidParameter)
	}

	return r, nil
}
