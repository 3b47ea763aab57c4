// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/randfield/field"
	"github.com/katalvlaran/randfield/scmd"
)

// Defaults reproduce a 20 m cube at 0.5 m resolution with strong
// horizontal and weak vertical correlation.
const (
	DefaultExtent  = 20.0
	DefaultSpacing = 0.5
	DefaultMethod  = "full"
	DefaultOut     = "field.raw"
	DefaultView    = "front"
	DefaultSigma   = 1.0
)

var errConfig = errors.New("randfield: invalid configuration")

// Config is the run description, from JSON and/or flags.
type Config struct {
	Extent    [3]float64 `json:"extent"`
	SOF       [3]float64 `json:"sof"`
	Spacing   [3]float64 `json:"spacing"`
	Method    string     `json:"method"`
	Seed      *uint64    `json:"seed,omitempty"` // nil draws fresh noise every run
	Exp       bool       `json:"exp,omitempty"`
	Mu        float64    `json:"mu,omitempty"`
	Sigma     float64    `json:"sigma,omitempty"`
	Single    bool       `json:"single,omitempty"`
	CondLimit float64    `json:"condLimit,omitempty"`
	Out       string     `json:"out"`
	Faces     string     `json:"faces,omitempty"` // directory for face CSVs; empty skips them
	View      string     `json:"view,omitempty"`
}

// DefaultConfig returns the built-in run.
func DefaultConfig() Config {
	return Config{
		Extent:  [3]float64{DefaultExtent, DefaultExtent, DefaultExtent},
		SOF:     [3]float64{10, 10, 1},
		Spacing: [3]float64{DefaultSpacing, DefaultSpacing, DefaultSpacing},
		Method:  DefaultMethod,
		Sigma:   DefaultSigma,
		Out:     DefaultOut,
		View:    DefaultView,
	}
}

// Grid converts the config to an scmd.Grid.
func (c Config) Grid() scmd.Grid {
	return scmd.Grid{Extent: c.Extent, SOF: c.SOF, Spacing: c.Spacing}
}

// Options returns the scmd options the config asks for.
func (c Config) Options() []scmd.Option {
	var opts []scmd.Option
	if c.Seed != nil {
		opts = append(opts, scmd.WithSeed(*c.Seed))
	}
	if c.Single {
		opts = append(opts, scmd.WithSinglePrecision())
	}
	if c.CondLimit > 0 {
		opts = append(opts, scmd.WithConditionLimit(c.CondLimit))
	}

	return opts
}

// Validate checks everything that can be checked before factoring.
func (c Config) Validate() error {
	if err := c.Grid().Validate(); err != nil {
		return err
	}
	if _, err := scmd.ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := field.ParseView(c.View); err != nil {
		return err
	}
	if !(c.Sigma > 0) {
		return fmt.Errorf("sigma=%g: %w", c.Sigma, errConfig)
	}
	if c.CondLimit != 0 && !(c.CondLimit >= 1) {
		return fmt.Errorf("condLimit=%g: %w", c.CondLimit, errConfig)
	}
	if c.Out == "" {
		return fmt.Errorf("out is empty: %w", errConfig)
	}

	return nil
}

// loadConfig reads path over the defaults; keys missing from the file
// keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// triple is a flag.Value for "a,b,c" or a single value applied to all axes.
type triple [3]float64

func (t *triple) String() string {
	return fmt.Sprintf("%g,%g,%g", t[0], t[1], t[2])
}

func (t *triple) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 1 && len(parts) != 3 {
		return fmt.Errorf("want 1 or 3 comma-separated values, got %q", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	if len(parts) == 1 {
		vals[1], vals[2] = vals[0], vals[0]
	}
	*t = vals

	return nil
}

// parseArgs builds the run config: defaults, then the -config file, then
// every flag given explicitly on the command line.
func parseArgs(args []string) (Config, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("randfield", flag.ContinueOnError)

	cfgPath := fs.String("config", "", "JSON config file")
	nx := fs.Float64("nx", def.Extent[0], "extent along x (m)")
	ny := fs.Float64("ny", def.Extent[1], "extent along y (m)")
	nz := fs.Float64("nz", def.Extent[2], "extent along z (m)")
	sof := triple(def.SOF)
	fs.Var(&sof, "sof", "scale of fluctuation: θ or θx,θy,θz")
	de := triple(def.Spacing)
	fs.Var(&de, "de", "element size: de or dx,dy,dz")
	method := fs.String("method", def.Method, "full or partial")
	seed := fs.Uint64("seed", 0, "noise seed; omit for fresh noise every run")
	exp := fs.Bool("exp", false, "apply exp() for a log-normal field")
	mu := fs.Float64("mu", 0, "target mean before -exp")
	sigma := fs.Float64("sigma", def.Sigma, "target standard deviation before -exp")
	single := fs.Bool("single", false, "float32 factors for -method partial")
	cond := fs.Float64("cond", 0, "reject factors with condition number above this (0 = off)")
	out := fs.String("out", def.Out, "raw output file")
	faces := fs.String("faces", "", "directory for face CSV files")
	view := fs.String("view", def.View, "front, back, left or right")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *cfgPath != "" {
		var err error
		if cfg, err = loadConfig(*cfgPath); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nx":
			cfg.Extent[0] = *nx
		case "ny":
			cfg.Extent[1] = *ny
		case "nz":
			cfg.Extent[2] = *nz
		case "sof":
			cfg.SOF = sof
		case "de":
			cfg.Spacing = de
		case "method":
			cfg.Method = *method
		case "seed":
			cfg.Seed = seed
		case "exp":
			cfg.Exp = *exp
		case "mu":
			cfg.Mu = *mu
		case "sigma":
			cfg.Sigma = *sigma
		case "single":
			cfg.Single = *single
		case "cond":
			cfg.CondLimit = *cond
		case "out":
			cfg.Out = *out
		case "faces":
			cfg.Faces = *faces
		case "view":
			cfg.View = *view
		}
	})
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %v: %w", fs.Args(), errConfig)
	}

	return cfg, cfg.Validate()
}
