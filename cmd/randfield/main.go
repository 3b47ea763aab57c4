// SPDX-License-Identifier: MIT

// Command randfield generates one 3D random field and writes it as a raw
// little-endian cube, optionally with CSV exports of its marginal faces.
//
// Usage:
//
//	randfield [-config run.json] [-nx 20 -ny 20 -nz 20] [-sof 10,10,1]
//	          [-de 0.5] [-method full|partial] [-seed N] [-mu 0 -sigma 1]
//	          [-exp] [-single] [-cond LIMIT] [-out field.raw]
//	          [-faces dir -view front|back|left|right]
//
// Flags given on the command line override the config file.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/katalvlaran/randfield/field"
	"github.com/katalvlaran/randfield/fieldstat"
	"github.com/katalvlaran/randfield/scmd"
)

func main() {
	log.SetPrefix("randfield: ")
	log.SetFlags(0)

	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err = run(cfg); err != nil {
		var de *scmd.DecompositionError
		if errors.As(err, &de) {
			log.Printf("axis %s with %d nodes (sof=%g, de=%g) is not positive definite; reduce sof or coarsen de",
				de.Axes, de.Nodes, de.SOF, de.Spacing)
		}
		log.Fatalf("%v (%s)", err, cfg.Grid())
	}
}

// run prepares, generates, transforms and writes one realization.
func run(cfg Config) error {
	method, err := scmd.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	g := cfg.Grid()
	dims, err := g.Dims()
	if err != nil {
		return err
	}
	log.Printf("%s grid %v, %s", method, dims, g)

	fac, err := scmd.Prepare(method, g, cfg.Options()...)
	if err != nil {
		return err
	}
	f, err := fac.Generate(dims, cfg.Options()...)
	if err != nil {
		return err
	}
	if err = f.Affine(cfg.Mu, cfg.Sigma); err != nil {
		return err
	}
	if cfg.Exp {
		if err = f.Exp(); err != nil {
			return err
		}
	}

	s, err := fieldstat.Summarize(f)
	if err != nil {
		return err
	}
	log.Printf("field: %v", s)

	if err = f.SaveRaw(cfg.Out); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.Out)

	if cfg.Faces == "" {
		return nil
	}
	view, err := field.ParseView(cfg.View)
	if err != nil {
		return err
	}
	paths, err := writeFaces(f, view, cfg.Faces)
	if err != nil {
		return err
	}
	log.Printf("wrote %s faces %v", view, paths)

	return nil
}
