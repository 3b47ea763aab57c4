// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFaces_Front(t *testing.T) {
	// cell (i,j,k) holds 100i + 10j + k.
	f, err := field.New(field.Dims{2, 3, 2})
	require.NoError(t, err)
	require.NoError(t, f.Apply(func(i, j, k int, _ float64) float64 {
		return float64(100*i + 10*j + k)
	}))

	dir := t.TempDir()
	paths, err := writeFaces(f, field.Front, dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	in, err := os.Open(filepath.Join(dir, "top.csv"))
	require.NoError(t, err)
	defer in.Close()
	rows, err := csv.NewReader(in).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"0", "10", "20"}, {"100", "110", "120"}}, rows)
	assert.Equal(t, filepath.Join(dir, "x0.csv"), paths[1])
	assert.Equal(t, filepath.Join(dir, "y0.csv"), paths[2])
}

func TestWriteFaces_BadView(t *testing.T) {
	f, err := field.New(field.Dims{2, 2, 2})
	require.NoError(t, err)
	_, err = writeFaces(f, field.View(9), t.TempDir())
	assert.ErrorIs(t, err, field.ErrBadView)
}
