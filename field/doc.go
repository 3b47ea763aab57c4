// SPDX-License-Identifier: MIT

// Package field provides the dense three-dimensional array that random
// field generators write into and downstream consumers read from.
//
// The field package provides:
//
//   - Field, a row-major nx×ny×nz buffer with error-returning accessors
//     (At/Set) and a finite-value numeric policy.
//   - Rotate, the cyclic axis permutation (a,b,c) → (b,c,a) used by the
//     stepwise decomposition to bring the next axis to the front.
//   - Slice and Faces, which export 2D planes as gonum *mat.Dense so a
//     renderer can draw the marginal surfaces of a cube.
//   - Exp and Affine transforms (log-normal and N(μ,σ²) mapping).
//   - A raw little-endian binary format (WriteRaw/ReadRaw).
//
// Storage is a single []float64 of length nx*ny*nz with offset
// (i*ny + j)*nz + k, so a Field can be viewed as an nx×(ny·nz) matrix
// without copying.
package field
