// SPDX-License-Identifier: MIT

// Package scmd: functional configuration for preparation and generation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Which phase reads which option:
//   - Prepare*:  WithCorrelation, WithConditionLimit, WithSinglePrecision.
//   - Generate*: WithSeed, WithSource.
package scmd

import (
	"math"
	"math/rand/v2"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultConditionLimit disables the condition-number guard; only an
	// outright Cholesky failure is reported.
	DefaultConditionLimit = 0.0

	// DefaultSinglePrecision keeps the partially-separable factors in float64.
	DefaultSinglePrecision = false

	// seedStream is the PCG stream selector paired with WithSeed.
	seedStream = 0x9E3779B97F4A7C15
)

// ---------- Internal panic messages ----------

const (
	panicNilCorrelation    = "scmd: WithCorrelation: fn must be non-nil"
	panicNilSource         = "scmd: WithSource: src must be non-nil"
	panicConditionLimitBad = "scmd: WithConditionLimit: limit must be finite and >= 1"
)

// Option mutates internal options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	corr      CorrelationFunc // correlation kernel (default Exponential)
	src       rand.Source     // noise source; nil means the global generator
	condLimit float64         // 0 disables the guard
	single    bool            // float32 storage for the partial factors
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		corr:      Exponential,
		condLimit: DefaultConditionLimit,
		single:    DefaultSinglePrecision,
	}
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithCorrelation replaces the correlation kernel. The kernel must be a
// stationary function of distance with fn(0, θ) == 1.
// Panics if fn is nil.
func WithCorrelation(fn CorrelationFunc) Option {
	if fn == nil {
		panic(panicNilCorrelation)
	}

	return func(o *Options) { o.corr = fn }
}

// WithSeed makes Generate reproducible: every call with the same seed
// draws the same noise.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.src = rand.NewPCG(seed, seedStream) }
}

// WithSource draws noise from src. The source is advanced by each
// Generate call, so successive calls produce different fields.
// Panics if src is nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// WithConditionLimit rejects factors whose estimated condition number
// exceeds limit, reporting them as *DecompositionError. Use it to catch
// near-singular grids that Cholesky still accepts.
// Panics unless limit is finite and >= 1.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		panic(panicConditionLimitBad)
	}

	return func(o *Options) { o.condLimit = limit }
}

// WithSinglePrecision stores the partially-separable factors as float32
// and runs that generator in float32, halving the dominant
// O((nx·ny)²) memory cost. Factoring itself stays in float64.
// Read by PreparePartiallySeparable only.
func WithSinglePrecision() Option {
	return func(o *Options) { o.single = true }
}
