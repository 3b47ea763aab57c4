// SPDX-License-Identifier: MIT
// Package scmd_test contains test helpers.

package scmd_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/randfield/field"
	"github.com/katalvlaran/randfield/fieldstat"
	"github.com/katalvlaran/randfield/scmd"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Tolerances for the Monte-Carlo checks. With a few hundred 8³
// realizations the pooled estimates sit well inside these bands.
const (
	momentTol = 0.15
	corrTol   = 0.1
	lagStep   = 1
)

// cube returns a grid of n nodes per axis with unit spacing.
func cube(n int, sof [3]float64) scmd.Grid {
	e := float64(n)
	return scmd.Grid{
		Extent:  [3]float64{e, e, e},
		SOF:     sof,
		Spacing: [3]float64{1, 1, 1},
	}
}

// requireFactorOf asserts l·lᵀ reproduces the exponential correlation
// matrix over coords.
func requireFactorOf(t *testing.T, l *mat.TriDense, coords []float64, sof float64) {
	t.Helper()
	dist, err := scmd.DistanceMatrix(coords)
	require.NoError(t, err)
	want, err := scmd.CorrelationMatrix(dist, sof, nil)
	require.NoError(t, err)

	var got mat.Dense
	got.Mul(l, l.T())
	require.True(t, mat.EqualApprox(&got, want, 1e-10), "L·Lᵀ differs:\n%v", mat.Formatted(&got))
}

// pool generates n realizations from one advancing source and folds them
// into an estimator tracking lag 1.
func pool(t *testing.T, fac scmd.Factors, n int, seed uint64) *fieldstat.Estimator {
	t.Helper()
	dims := fac.Dims()
	est, err := fieldstat.NewEstimator(dims, lagStep)
	require.NoError(t, err)

	src := rand.NewPCG(seed, 0)
	for i := 0; i < n; i++ {
		f, err := fac.Generate(dims, scmd.WithSource(src))
		require.NoError(t, err)
		require.NoError(t, est.Add(f))
	}

	return est
}

// requireLagCorrelation checks the pooled lag-1 correlation on axis a.
func requireLagCorrelation(t *testing.T, est *fieldstat.Estimator, a field.Axis, want float64) {
	t.Helper()
	got, err := est.Correlation(a, lagStep)
	require.NoError(t, err)
	require.InDelta(t, want, got, corrTol, "axis %v", a)
}
