// SPDX-License-Identifier: MIT
// Package field_test contains test helpers.

package field_test

import (
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/stretchr/testify/require"
)

// mustIndexed allocates a field whose cell (i,j,k) holds 100i + 10j + k,
// so every value encodes its own coordinates.
func mustIndexed(t testing.TB, dims field.Dims) *field.Field {
	t.Helper()
	f, err := field.New(dims)
	require.NoError(t, err)
	require.NoError(t, f.Apply(func(i, j, k int, _ float64) float64 {
		return float64(100*i + 10*j + k)
	}))

	return f
}

// mustAt reads (i,j,k) or fails the test.
func mustAt(t testing.TB, f *field.Field, i, j, k int) float64 {
	t.Helper()
	v, err := f.At(i, j, k)
	require.NoError(t, err)

	return v
}
