// SPDX-License-Identifier: MIT

package scmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/floats"
)

// nodeTol absorbs floating-point noise in extent/spacing so that 20/0.5
// yields 40 nodes rather than 41.
const nodeTol = 1e-9

// MaxNodes caps the node count per axis. Correlation matrices are n×n, so
// anything near this is already far beyond memory.
const MaxNodes = math.MaxInt32

// Grid describes the physical domain and its correlation structure.
//
// Fields:
//   - Extent : physical size per axis (x, y, z).
//   - SOF    : scale of fluctuation per axis. A tiny θ on an axis of one
//     node collapses the field to 2D or 1D.
//   - Spacing: element size per axis.
//
// Nodes along an axis are 0, de, 2de, ... strictly below the extent.
type Grid struct {
	Extent  [3]float64
	SOF     [3]float64
	Spacing [3]float64
}

// Validate returns ErrInvalidParameter (naming the axis and value) unless
// every extent, SOF and spacing is positive and finite and every axis
// holds at most MaxNodes nodes.
func (g Grid) Validate() error {
	for _, a := range field.Axes {
		if err := validatePositive("extent", a, g.Extent[a]); err != nil {
			return err
		}
		if err := validatePositive("sof", a, g.SOF[a]); err != nil {
			return err
		}
		if err := validatePositive("spacing", a, g.Spacing[a]); err != nil {
			return err
		}
		if err := validateNodeCount(a, g.Extent[a], g.Spacing[a]); err != nil {
			return err
		}
	}

	return nil
}

// Dims returns the node count per axis.
func (g Grid) Dims() (field.Dims, error) {
	if err := g.Validate(); err != nil {
		return field.Dims{}, err
	}
	var d field.Dims
	for _, a := range field.Axes {
		d[a] = nodeCount(g.Extent[a], g.Spacing[a])
	}

	return d, nil
}

// Nodes returns the node coordinates along axis a.
func (g Grid) Nodes(a field.Axis) ([]float64, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("Nodes(%v): %w", a, ErrInvalidParameter)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return nodes(nodeCount(g.Extent[a], g.Spacing[a]), g.Spacing[a]), nil
}

// String formats the grid for diagnostics.
func (g Grid) String() string {
	return fmt.Sprintf("extent=%v sof=%v spacing=%v", g.Extent, g.SOF, g.Spacing)
}

// nodeCount is the length of 0, spacing, 2·spacing, ... strictly below
// extent, with a relative tolerance. Callers validate the ratio first
// (validateNodeCount); ratios below one still yield a single node.
func nodeCount(extent, spacing float64) int {
	r := extent / spacing
	n := int(math.Ceil(r - r*nodeTol))
	if n < 1 {
		n = 1
	}

	return n
}

// nodes returns 0, de, ..., (n-1)de.
func nodes(n int, de float64) []float64 {
	c := make([]float64, n)
	if n < 2 {
		// floats.Span needs at least two points.
		return c
	}
	floats.Span(c, 0, float64(n-1)*de)

	return c
}
