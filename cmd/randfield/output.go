// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/randfield/field"
	"gonum.org/v1/gonum/mat"
)

// writeFaces stores the three marginal planes of view v as CSV files
// top.csv, x<i>.csv and y<j>.csv under dir. It returns the paths written.
func writeFaces(f *field.Field, v field.View, dir string) ([]string, error) {
	faces, err := f.Faces(v)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	planes := []struct {
		name string
		m    *mat.Dense
	}{
		{"top.csv", faces.Top},
		{"x" + strconv.Itoa(faces.XIndex) + ".csv", faces.X},
		{"y" + strconv.Itoa(faces.YIndex) + ".csv", faces.Y},
	}
	paths := make([]string, 0, len(planes))
	for _, p := range planes {
		path := filepath.Join(dir, p.name)
		if err = writeCSV(path, p.m); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeCSV writes one matrix row per line.
func writeCSV(path string, m *mat.Dense) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	r, c := m.Dims()
	row := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err = w.Write(row); err != nil {
			_ = out.Close()
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
