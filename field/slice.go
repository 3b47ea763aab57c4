// SPDX-License-Identifier: MIT

// Package field - planar extraction for downstream consumers.
//
// Purpose:
//   - Slice copies one axis-aligned plane into a gonum *mat.Dense.
//   - Faces returns the three boundary planes visible from a corner of the
//     cube; a renderer draws these as the marginal surfaces of the field.

package field

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// View selects the corner of the cube the marginal faces are seen from.
type View int

const (
	// Front shows the x=0 and y=0 planes.
	Front View = iota
	// Back shows the x=nx-1 and y=ny-1 planes.
	Back
	// Left shows the x=0 and y=ny-1 planes.
	Left
	// Right shows the x=nx-1 and y=0 planes.
	Right
)

// String returns the lower-case view name.
func (v View) String() string {
	switch v {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// ParseView maps "front", "back", "left", "right" to a View.
func ParseView(s string) (View, error) {
	switch s {
	case "front":
		return Front, nil
	case "back":
		return Back, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("ParseView(%q): %w", s, ErrBadView)
	}
}

// Faces holds the three marginal planes for one View.
//   - Top is the z=0 plane (nx×ny), shared by every view.
//   - X is the plane x=XIndex (ny×nz).
//   - Y is the plane y=YIndex (nx×nz).
type Faces struct {
	Top    *mat.Dense
	X      *mat.Dense
	Y      *mat.Dense
	XIndex int
	YIndex int
}

// Slice copies the plane axis=idx into a new matrix.
//   - AxisX: ny×nz, m[j,k] = f[idx,j,k]
//   - AxisY: nx×nz, m[i,k] = f[i,idx,k]
//   - AxisZ: nx×ny, m[i,j] = f[i,j,idx]
//
// Errors:
//   - ErrBadAxis, ErrOutOfRange.
//
// Complexity:
//   - Time O(plane), Space O(plane).
func (f *Field) Slice(axis Axis, idx int) (*mat.Dense, error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("Field.%s(%v): %w", ctxSlice, axis, ErrBadAxis)
	}
	if idx < 0 || idx >= f.dims[axis] {
		return nil, fmt.Errorf("Field.%s(%v,%d): %w", ctxSlice, axis, idx, ErrOutOfRange)
	}
	nx, ny, nz := f.dims[0], f.dims[1], f.dims[2]
	var i, j, k int
	switch axis {
	case AxisX:
		buf := make([]float64, ny*nz)
		copy(buf, f.data[idx*ny*nz:(idx+1)*ny*nz])
		return mat.NewDense(ny, nz, buf), nil
	case AxisY:
		buf := make([]float64, nx*nz)
		for i = 0; i < nx; i++ {
			copy(buf[i*nz:(i+1)*nz], f.data[(i*ny+idx)*nz:(i*ny+idx+1)*nz])
		}
		return mat.NewDense(nx, nz, buf), nil
	default:
		buf := make([]float64, nx*ny)
		for i = 0; i < nx; i++ {
			for j = 0; j < ny; j++ {
				k = (i*ny+j)*nz + idx
				buf[i*ny+j] = f.data[k]
			}
		}
		return mat.NewDense(nx, ny, buf), nil
	}
}

// Faces extracts the marginal planes visible from view v.
//
// Errors:
//   - ErrBadView for an unknown view.
func (f *Field) Faces(v View) (Faces, error) {
	lastX, lastY := f.dims[0]-1, f.dims[1]-1
	var xi, yi int
	switch v {
	case Front:
		xi, yi = 0, 0
	case Back:
		xi, yi = lastX, lastY
	case Left:
		xi, yi = 0, lastY
	case Right:
		xi, yi = lastX, 0
	default:
		return Faces{}, fmt.Errorf("Field.%s(%v): %w", ctxFaces, v, ErrBadView)
	}

	top, err := f.Slice(AxisZ, 0)
	if err != nil {
		return Faces{}, fmt.Errorf("Field.%s: %w", ctxFaces, err)
	}
	xp, err := f.Slice(AxisX, xi)
	if err != nil {
		return Faces{}, fmt.Errorf("Field.%s: %w", ctxFaces, err)
	}
	yp, err := f.Slice(AxisY, yi)
	if err != nil {
		return Faces{}, fmt.Errorf("Field.%s: %w", ctxFaces, err)
	}

	return Faces{Top: top, X: xp, Y: yp, XIndex: xi, YIndex: yi}, nil
}
