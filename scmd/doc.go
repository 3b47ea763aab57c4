// SPDX-License-Identifier: MIT

// Package scmd generates 3D normally-distributed random fields with a
// prescribed, per-axis scale of fluctuation using stepwise covariance
// matrix decomposition (SCMD).
//
// 🚀 What is SCMD?
//
//	Instead of factoring the full (nx·ny·nz)² covariance of a 3D grid,
//	SCMD factors small per-axis correlation matrices and applies them one
//	axis at a time to a block of independent standard-normal samples.
//	The result has a separable exponential correlation structure
//	ρ(d) = exp(-2d/θ) with its own θ per axis.
//
// ✨ Two variants:
//   - FullySeparable: three per-axis Cholesky factors (nx², ny², nz²).
//     Fastest and leanest; can show directional streaking in XY.
//   - PartiallySeparable: one joint XY factor ((nx·ny)²) plus a Z factor.
//     Isotropic in XY (single θ from axis 0); much more memory.
//
// ⚙️ Usage:
//
//	g := scmd.Grid{
//	  Extent:  [3]float64{20, 20, 20}, // physical size per axis
//	  SOF:     [3]float64{10, 10, 1},  // scale of fluctuation per axis
//	  Spacing: [3]float64{0.5, 0.5, 0.5},
//	}
//	lf, err := scmd.PrepareFullySeparable(g)      // once per grid
//	dims, _ := g.Dims()                           // 40×40×40
//	f, err := scmd.GenerateFullySeparable(lf, dims) // once per realization
//
// Prepare is a pure function of the grid and is safe to cache; Generate
// never mutates the factors and draws fresh noise on every call unless a
// seed is fixed with WithSeed.
//
// Errors:
//   - ErrInvalidParameter : non-positive extent, SOF, spacing or dims.
//   - ErrDimensionMismatch: Generate dims differ from the prepared grid.
//   - ErrDecomposition    : a correlation matrix is not numerically
//     positive definite (see *DecompositionError for the axis).
//
// Complexity:
//
//	Prepare:  O(nx³ + ny³ + nz³) separable, O((nx·ny)³ + nz³) partial
//	Generate: O(n·(nx+ny+nz)) separable, O(n·(nx·ny + nz)) partial, n = nx·ny·nz
//	Memory:   O(nx² + ny² + nz² + n) separable, O((nx·ny)² + n) partial
package scmd
