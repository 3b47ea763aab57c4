// SPDX-License-Identifier: MIT

package scmd

import (
	"math/rand/v2"
)

// normalSource returns a standard-normal sampler for the configured source.
// One *rand.Rand wraps the source per Generate call, so a draw costs no
// allocation. A nil source falls back to the global math/rand/v2
// generator.
//
// The stream is identical to distuv.Normal{Mu: 0, Sigma: 1, Src: src},
// which wraps the source anew on every draw.
func normalSource(o Options) func() float64 {
	if o.src == nil {
		return rand.NormFloat64
	}

	return rand.New(o.src).NormFloat64
}

// fillNormal overwrites dst with independent standard-normal samples.
func fillNormal(dst []float64, draw func() float64) {
	for i := range dst {
		dst[i] = draw()
	}
}

// fillNormal32 draws the same sequence as fillNormal, narrowed to float32.
func fillNormal32(dst []float32, draw func() float64) {
	for i := range dst {
		dst[i] = float32(draw())
	}
}
