// SPDX-License-Identifier: MIT

package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidDimensions(t *testing.T) {
	for _, dims := range []field.Dims{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		_, err := field.New(dims)
		assert.ErrorIs(t, err, field.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNew_ZeroFilled(t *testing.T) {
	f, err := field.New(field.Dims{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 24, f.Len())
	assert.Equal(t, field.Dims{2, 3, 4}, f.Dims())
	for _, v := range f.Data() {
		assert.Zero(t, v)
	}
}

func TestWrap_LengthMismatch(t *testing.T) {
	_, err := field.Wrap(field.Dims{2, 2, 2}, make([]float64, 7))
	assert.ErrorIs(t, err, field.ErrInvalidDimensions)

	buf := make([]float64, 8)
	f, err := field.Wrap(field.Dims{2, 2, 2}, buf)
	require.NoError(t, err)
	require.NoError(t, f.Set(1, 1, 1, 3))
	assert.Equal(t, 3.0, buf[7], "Wrap must share the caller's buffer")
}

func TestAtSet_RowMajorOffset(t *testing.T) {
	f := mustIndexed(t, field.Dims{3, 4, 5})
	assert.Equal(t, 234.0, mustAt(t, f, 2, 3, 4))
	// (i*ny + j)*nz + k
	assert.Equal(t, 123.0, f.Data()[(1*4+2)*5+3])
}

func TestAtSet_Errors(t *testing.T) {
	f, err := field.New(field.Dims{2, 2, 2})
	require.NoError(t, err)

	_, err = f.At(2, 0, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = f.At(0, -1, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	assert.ErrorIs(t, f.Set(0, 0, 2, 1), field.ErrOutOfRange)
	assert.ErrorIs(t, f.Set(0, 0, 0, math.NaN()), field.ErrNaNInf)
	assert.ErrorIs(t, f.Set(0, 0, 0, math.Inf(-1)), field.ErrNaNInf)
}

func TestClone_Independent(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 2, 2})
	c := f.Clone()
	require.NoError(t, c.Set(0, 0, 0, -1))
	assert.Equal(t, 0.0, mustAt(t, f, 0, 0, 0))
	assert.Equal(t, -1.0, mustAt(t, c, 0, 0, 0))
}

func TestDo_OrderAndEarlyStop(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 2, 2})
	var seen []float64
	f.Do(func(_, _, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	assert.Equal(t, []float64{0, 1, 10}, seen)
}

func TestApply_RejectsNonFinite(t *testing.T) {
	f := mustIndexed(t, field.Dims{1, 1, 2})
	err := f.Apply(func(_, _, k int, v float64) float64 {
		if k == 1 {
			return math.Inf(1)
		}
		return v + 1
	})
	assert.ErrorIs(t, err, field.ErrNaNInf)
	assert.Equal(t, 1.0, mustAt(t, f, 0, 0, 0), "cells before the failure stay updated")
}

func TestDims_String(t *testing.T) {
	assert.Equal(t, "4×4×1", field.Dims{4, 4, 1}.String())
	assert.Equal(t, "y", field.AxisY.String())
	assert.False(t, field.Axis(3).Valid())
}

func TestString_Slabs(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 1, 2})
	assert.Equal(t, "x=0\n[0, 1]\n\nx=1\n[100, 101]\n", f.String())
}
