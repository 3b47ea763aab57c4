// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/katalvlaran/randfield/scmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	dims, err := cfg.Grid().Dims()
	require.NoError(t, err)
	assert.Equal(t, field.Dims{40, 40, 40}, dims)
}

func TestParseArgs_ConfigFile(t *testing.T) {
	cfg, err := parseArgs([]string{"-config", filepath.Join("testdata", "config.json")})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{4, 4, 2}, cfg.Extent)
	assert.Equal(t, [3]float64{1, 1, 0.5}, cfg.Spacing)
	assert.Equal(t, "partial", cfg.Method)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, 2.0, cfg.Sigma)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultView, cfg.View)
}

func TestParseArgs_FlagsOverrideFile(t *testing.T) {
	cfg, err := parseArgs([]string{
		"-config", filepath.Join("testdata", "config.json"),
		"-nz", "3", "-sof", "5", "-de", "1,1,1", "-method", "full", "-view", "left",
	})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{4, 4, 3}, cfg.Extent)
	assert.Equal(t, [3]float64{5, 5, 5}, cfg.SOF)
	assert.Equal(t, [3]float64{1, 1, 1}, cfg.Spacing)
	assert.Equal(t, "full", cfg.Method)
	assert.Equal(t, "left", cfg.View)
	require.NotNil(t, cfg.Seed, "unset flags must not clobber the file")
	assert.Equal(t, uint64(7), *cfg.Seed)
}

func TestParseArgs_Invalid(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"BadTriple", []string{"-sof", "1,2"}},
		{"NotANumber", []string{"-de", "x"}},
		{"ZeroExtent", []string{"-nx", "0"}},
		{"Method", []string{"-method", "fft"}},
		{"View", []string{"-view", "top"}},
		{"Sigma", []string{"-sigma", "0"}},
		{"Cond", []string{"-cond", "0.5"}},
		{"MissingFile", []string{"-config", "testdata/none.json"}},
		{"Positional", []string{"extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseArgs(tc.args)
			assert.Error(t, err)
		})
	}

	_, err := parseArgs([]string{"-nx", "-1"})
	assert.ErrorIs(t, err, scmd.ErrInvalidParameter)
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Options())

	seed := uint64(3)
	cfg.Seed, cfg.Single, cfg.CondLimit = &seed, true, 1e6
	assert.Len(t, cfg.Options(), 3)
}

func TestParseArgs_SeedZeroIsReproducible(t *testing.T) {
	cfg, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Nil(t, cfg.Seed)

	cfg, err = parseArgs([]string{"-seed", "0"})
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(0), *cfg.Seed)

	cfg, err = parseArgs([]string{"-config", filepath.Join("testdata", "seed_zero.json")})
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(0), *cfg.Seed)

	// Two runs with seed 0 write identical cubes.
	dir := t.TempDir()
	cfg.Out = filepath.Join(dir, "a.raw")
	require.NoError(t, run(cfg))
	cfg.Out = filepath.Join(dir, "b.raw")
	require.NoError(t, run(cfg))

	a, err := field.LoadRaw(filepath.Join(dir, "a.raw"))
	require.NoError(t, err)
	b, err := field.LoadRaw(filepath.Join(dir, "b.raw"))
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())
}

func TestRun_WritesRawAndFaces(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Extent = [3]float64{4, 3, 2}
	cfg.Spacing = [3]float64{1, 1, 1}
	cfg.SOF = [3]float64{2, 2, 1}
	seed := uint64(1)
	cfg.Seed = &seed
	cfg.Mu, cfg.Sigma, cfg.Exp = 1, 0.5, true
	cfg.Out = filepath.Join(dir, "cube", "field.raw")
	cfg.Faces = filepath.Join(dir, "faces")
	cfg.View = "back"
	require.NoError(t, cfg.Validate())
	require.NoError(t, run(cfg))

	f, err := field.LoadRaw(cfg.Out)
	require.NoError(t, err)
	assert.Equal(t, field.Dims{4, 3, 2}, f.Dims())
	f.Do(func(_, _, _ int, v float64) bool {
		assert.Greater(t, v, 0.0, "log-normal values are positive")
		return true
	})

	for _, name := range []string{"top.csv", "x3.csv", "y2.csv"} {
		assert.FileExists(t, filepath.Join(cfg.Faces, name))
	}
}

func TestRun_DecompositionFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extent = [3]float64{3, 3, 3}
	cfg.Spacing = [3]float64{1, 1, 1}
	cfg.SOF = [3]float64{1, 1e20, 1}
	cfg.Out = filepath.Join(t.TempDir(), "field.raw")

	err := run(cfg)
	assert.ErrorIs(t, err, scmd.ErrDecomposition)
	assert.NoFileExists(t, cfg.Out)
}
