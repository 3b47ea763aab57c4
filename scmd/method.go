// SPDX-License-Identifier: MIT

package scmd

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/randfield/field"
)

const opPrepare = "Prepare"

// Method selects the decomposition variant.
type Method int

const (
	// FullySeparable decomposes x, y and z independently.
	FullySeparable Method = iota
	// PartiallySeparable decomposes the XY plane jointly and z separately.
	PartiallySeparable
)

// String returns "full" or "partial".
func (m Method) String() string {
	switch m {
	case FullySeparable:
		return "full"
	case PartiallySeparable:
		return "partial"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "full", "fully-separable", "partial" and
// "partially-separable" (case-insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "fully-separable":
		return FullySeparable, nil
	case "partial", "partially-separable":
		return PartiallySeparable, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
}

// Factors is the prepared, reusable state of either variant.
type Factors interface {
	// Dims returns the node counts the factors were prepared for.
	Dims() field.Dims
	// Generate draws one realization of the given shape.
	Generate(dims field.Dims, opts ...Option) (*field.Field, error)
}

// Prepare dispatches to PrepareFullySeparable or PreparePartiallySeparable.
func Prepare(m Method, g Grid, opts ...Option) (Factors, error) {
	// Assign through concrete types so a failed Prepare yields a nil interface.
	switch m {
	case FullySeparable:
		f, err := PrepareFullySeparable(g, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	case PartiallySeparable:
		f, err := PreparePartiallySeparable(g, opts...)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, scmdErrorf(opPrepare, fmt.Errorf("%v: %w", m, ErrUnknownMethod))
	}
}
