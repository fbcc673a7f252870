package sepconv

import (
	"errors"
	"fmt"
)

// Errors returned by filter expansion and the convolution engine.
var (
	ErrEmptyFilter       = errors.New("sepconv: empty filter")
	ErrOriginOutOfRange  = errors.New("sepconv: filter origin out of range")
	ErrUnknownSymmetry   = errors.New("sepconv: unknown symmetry")
	ErrDimensionMismatch = errors.New("sepconv: dimension mismatch")
)

// Symmetry describes how the stored weights expand into the effective
// filter. For the symmetric kinds, the stored weights are the left half of
// the filter with the rightmost element at the origin.
type Symmetry int

const (
	// General stores the full filter; no expansion happens.
	General Symmetry = iota

	// Even mirrors the weights without repeating the last element,
	// yielding an odd-length filter.
	Even

	// Odd mirrors and negates the weights without repeating the last
	// element.
	Odd

	// DupEven mirrors the weights including the last element, yielding an
	// even-length filter.
	DupEven

	// DupOdd mirrors, negates and duplicates the last element.
	DupOdd
)

var symmetryNames = map[Symmetry]string{
	General: "general",
	Even:    "even",
	Odd:     "odd",
	DupEven: "d-even",
	DupOdd:  "d-odd",
}

// String returns the canonical name of the symmetry.
func (s Symmetry) String() string {
	if n, ok := symmetryNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// ParseSymmetry returns the Symmetry named by s. The empty string selects
// General.
func ParseSymmetry(s string) (Symmetry, error) {
	switch s {
	case "", "general":
		return General, nil
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	case "d-even":
		return DupEven, nil
	case "d-odd":
		return DupOdd, nil
	default:
		return General, fmt.Errorf("%w: %q", ErrUnknownSymmetry, s)
	}
}

// Filter is the compact description of a 1D filter. Weights holds either
// the full filter (General) or its left half including the center (the
// symmetric kinds). Origin is an index into Weights; a negative Origin
// means "unset" and resolves to len(Weights)/2 for General filters. For
// symmetric filters the origin of the effective filter is always the
// rightmost stored element.
//
// Only the compact form is ever stored; Expand derives the effective filter
// on demand.
type Filter struct {
	Weights  []float64
	Origin   int
	Symmetry Symmetry
}

// NewFilter returns a general filter with an unset origin.
func NewFilter(weights ...float64) Filter {
	return Filter{Weights: weights, Origin: -1}
}

// IsNoOp reports whether applying the filter would leave the data unchanged:
// an empty weight array, or a single general weight of exactly 1. The engine
// skips no-op filters to avoid pointless boundary-extension work.
func (f Filter) IsNoOp() bool {
	if len(f.Weights) == 0 {
		return true
	}
	if len(f.Weights) != 1 || f.Weights[0] != 1 {
		return false
	}
	// A single weight of 1 also expands to the identity for the
	// non-duplicating symmetries.
	return f.Symmetry == General || f.Symmetry == Even || f.Symmetry == Odd
}

// Expand resolves the symmetry and returns the effective weights together
// with the index of the origin within them. Negation for the odd kinds
// happens here, before any multiply-accumulate.
func (f Filter) Expand() ([]float64, int, error) {
	n := len(f.Weights)
	if n == 0 {
		return nil, 0, ErrEmptyFilter
	}
	if f.Origin >= n {
		return nil, 0, fmt.Errorf("%w: origin %d, %d weights", ErrOriginOutOfRange, f.Origin, n)
	}

	switch f.Symmetry {
	case General:
		origin := f.Origin
		if origin < 0 {
			origin = n / 2
		}
		return append([]float64(nil), f.Weights...), origin, nil
	case Even, Odd:
		out := make([]float64, 2*n-1)
		copy(out, f.Weights)
		sign := 1.0
		if f.Symmetry == Odd {
			sign = -1
		}
		for i := 0; i < n-1; i++ {
			out[n+i] = sign * f.Weights[n-2-i]
		}
		return out, n - 1, nil
	case DupEven, DupOdd:
		out := make([]float64, 2*n)
		copy(out, f.Weights)
		sign := 1.0
		if f.Symmetry == DupOdd {
			sign = -1
		}
		for i := 0; i < n; i++ {
			out[n+i] = sign * f.Weights[n-1-i]
		}
		return out, n - 1, nil
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownSymmetry, int(f.Symmetry))
	}
}
