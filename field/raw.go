// SPDX-License-Identifier: MIT

// Package field - raw binary export.
//
// Layout (little-endian):
//   - header: nx, ny, nz as int32
//   - body:   nx*ny*nz float64 values in row-major (i→j→k) order

package field

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// maxRawCells caps the cell count accepted by ReadRaw so a corrupt header
// cannot trigger a huge allocation.
const maxRawCells = 1 << 31

// WriteRaw writes the header and body to w.
func (f *Field) WriteRaw(w io.Writer) error {
	bw := bufio.NewWriter(w)
	hdr := [3]int32{int32(f.dims[0]), int32(f.dims[1]), int32(f.dims[2])}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, f.data); err != nil {
		return err
	}

	return bw.Flush()
}

// ReadRaw decodes a Field previously written by WriteRaw.
//
// Errors:
//   - ErrBadRaw for a non-positive or oversized header, or a short body.
//   - ErrNaNInf if the body holds non-finite values.
func ReadRaw(r io.Reader) (*Field, error) {
	br := bufio.NewReader(r)
	var hdr [3]int32
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("ReadRaw: header: %w: %v", ErrBadRaw, err)
	}
	dims := Dims{int(hdr[0]), int(hdr[1]), int(hdr[2])}
	if dims.Validate() != nil {
		return nil, fmt.Errorf("ReadRaw: dims %v: %w", dims, ErrBadRaw)
	}
	if int64(dims[0])*int64(dims[1])*int64(dims[2]) > maxRawCells {
		return nil, fmt.Errorf("ReadRaw: dims %v too large: %w", dims, ErrBadRaw)
	}
	data := make([]float64, dims.Len())
	if err := binary.Read(br, binary.LittleEndian, data); err != nil {
		return nil, fmt.Errorf("ReadRaw: body: %w: %v", ErrBadRaw, err)
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ReadRaw: cell %d: %w", i, ErrNaNInf)
		}
	}

	return &Field{dims: dims, data: data}, nil
}

// SaveRaw writes f to path, creating parent directories as needed.
func (f *Field) SaveRaw(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = f.WriteRaw(out); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// LoadRaw reads a Field from path.
func LoadRaw(path string) (*Field, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return ReadRaw(in)
}
