// SPDX-License-Identifier: MIT

// Package randfield generates 3D random fields with a prescribed spatial
// correlation structure, for stochastic modelling of soil and rock
// properties.
//
// 🚀 What is randfield?
//
//	A small, pure-Go toolkit built on gonum that brings together:
//		• Grids: physical extent, element size and scale of fluctuation per axis
//		• SCMD: stepwise covariance matrix decomposition, fully or partially separable
//		• Fields: dense nx×ny×nz buffers with rotation, slicing and raw export
//		• Statistics: pooled moments and lagged correlation across realizations
//
// Under the hood, everything is organized under three subpackages:
//
//	field/    : Field, Dims, Axis, Rotate, Slice/Faces, Exp/Affine, raw I/O
//	scmd/     : Grid, correlation kernels, axis decomposition, both generators
//	fieldstat/: Summarize and the multi-realization Estimator
//
// and one command:
//
//	cmd/randfield: flag/JSON driven generator writing raw cubes and face CSVs
//
// Quick example:
//
//	g := scmd.Grid{
//	  Extent:  [3]float64{20, 20, 20},
//	  SOF:     [3]float64{10, 10, 1},
//	  Spacing: [3]float64{0.5, 0.5, 0.5},
//	}
//	lf, _ := scmd.Prepare(scmd.FullySeparable, g)
//	f, _ := lf.Generate(lf.Dims(), scmd.WithSeed(1))
//	_ = f.Affine(10, 2) // N(10, 2²) marginal
//
//	go install github.com/katalvlaran/randfield/cmd/randfield@latest
package randfield
