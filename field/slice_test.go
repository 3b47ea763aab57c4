// SPDX-License-Identifier: MIT

package field_test

import (
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_EachAxis(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 3, 4})

	x, err := f.Slice(field.AxisX, 1)
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, [2]int{3, 4}, [2]int{r, c})
	assert.Equal(t, 123.0, x.At(2, 3))

	y, err := f.Slice(field.AxisY, 2)
	require.NoError(t, err)
	r, c = y.Dims()
	assert.Equal(t, [2]int{2, 4}, [2]int{r, c})
	assert.Equal(t, 121.0, y.At(1, 1))

	z, err := f.Slice(field.AxisZ, 3)
	require.NoError(t, err)
	r, c = z.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, 113.0, z.At(1, 1))

	// copies, not views
	x.Set(0, 0, -5)
	assert.Equal(t, 100.0, mustAt(t, f, 1, 0, 0))
}

func TestSlice_Errors(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 3, 4})
	_, err := f.Slice(field.Axis(7), 0)
	assert.ErrorIs(t, err, field.ErrBadAxis)
	_, err = f.Slice(field.AxisZ, 4)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
}

func TestFaces_Views(t *testing.T) {
	f := mustIndexed(t, field.Dims{2, 3, 4})
	for _, tc := range []struct {
		view   field.View
		xi, yi int
	}{
		{field.Front, 0, 0},
		{field.Back, 1, 2},
		{field.Left, 0, 2},
		{field.Right, 1, 0},
	} {
		t.Run(tc.view.String(), func(t *testing.T) {
			faces, err := f.Faces(tc.view)
			require.NoError(t, err)
			assert.Equal(t, tc.xi, faces.XIndex)
			assert.Equal(t, tc.yi, faces.YIndex)
			assert.Equal(t, float64(100*tc.xi+10*2+3), faces.X.At(2, 3))
			assert.Equal(t, float64(100*1+10*tc.yi+3), faces.Y.At(1, 3))
			assert.Equal(t, 110.0, faces.Top.At(1, 1))
		})
	}

	_, err := f.Faces(field.View(9))
	assert.ErrorIs(t, err, field.ErrBadView)
}

func TestParseView(t *testing.T) {
	v, err := field.ParseView("left")
	require.NoError(t, err)
	assert.Equal(t, field.Left, v)
	_, err = field.ParseView("top")
	assert.ErrorIs(t, err, field.ErrBadView)
}
