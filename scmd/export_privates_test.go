// SPDX-License-Identifier: MIT

package scmd

// Test bridge: exposes the noise sampler to scmd_test without widening the
// public API.

// FillNormalForTest fills dst with the noise Generate would draw for opts.
func FillNormalForTest(dst []float64, opts ...Option) {
	fillNormal(dst, normalSource(gatherOptions(opts...)))
}
