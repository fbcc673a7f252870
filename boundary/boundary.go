// Package boundary supplies out-of-domain samples for filters evaluated near
// array edges.
//
// A line is extended by a number of synthetic samples on each side according
// to a Condition. The default condition used throughout this module is
// Mirror, the symmetric mirror that duplicates the edge sample:
//
//	input:              a b c d
//	Mirror:     b a | a b c d | d c
//	AsymMirror: c b | a b c d | c b
//	Zero:       0 0 | a b c d | 0 0
//	Replicate:  a a | a b c d | d d
//	Periodic:   c d | a b c d | a b
//	Constant v: v v | a b c d | v v
package boundary

import (
	"errors"
	"fmt"
)

// Errors returned by the extension functions.
var (
	ErrUnknownCondition = errors.New("boundary: unknown boundary condition")
	ErrEmptyLine        = errors.New("boundary: empty line")
	ErrInvalidExtension = errors.New("boundary: negative extension length")
)

// Condition selects how out-of-domain samples are synthesized.
type Condition int

const (
	// Mirror reflects the signal around the edge, duplicating the edge
	// sample. This is the default condition.
	Mirror Condition = iota

	// AsymMirror reflects the signal around the edge sample itself,
	// without duplicating it.
	AsymMirror

	// Zero fills out-of-domain samples with zero.
	Zero

	// Replicate repeats the edge sample.
	Replicate

	// Periodic wraps the signal around.
	Periodic

	// Constant fills out-of-domain samples with a caller-supplied value.
	Constant
)

var conditionNames = map[Condition]string{
	Mirror:     "mirror",
	AsymMirror: "asym mirror",
	Zero:       "add zeros",
	Replicate:  "zero order",
	Periodic:   "periodic",
	Constant:   "add value",
}

// String returns the canonical name of the condition.
func (c Condition) String() string {
	if s, ok := conditionNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// Parse returns the Condition named by s. The empty string selects the
// default (Mirror).
func Parse(s string) (Condition, error) {
	switch s {
	case "", "mirror", "symmetric":
		return Mirror, nil
	case "asym mirror", "asymmetric":
		return AsymMirror, nil
	case "add zeros", "zero":
		return Zero, nil
	case "zero order", "replicate":
		return Replicate, nil
	case "periodic", "wrap":
		return Periodic, nil
	case "add value", "constant":
		return Constant, nil
	default:
		return Mirror, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
	}
}

// sampleAt resolves index i, which may lie outside [0, n), to a sample of
// line under the given condition. Extensions longer than the line fold
// repeatedly for the mirror and periodic conditions.
func sampleAt(line []float64, i int, c Condition, value float64) float64 {
	n := len(line)
	if i >= 0 && i < n {
		return line[i]
	}
	switch c {
	case Mirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return line[i]
	case AsymMirror:
		if n == 1 {
			return line[0]
		}
		period := 2*n - 2
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return line[i]
	case Zero:
		return 0
	case Replicate:
		if i < 0 {
			return line[0]
		}
		return line[n-1]
	case Periodic:
		i %= n
		if i < 0 {
			i += n
		}
		return line[i]
	case Constant:
		return value
	}
	return 0
}

// ExtendLine returns line extended by left samples before the first sample
// and right samples after the last, per the given condition. value is only
// used by the Constant condition. dst is reused when it has sufficient
// capacity.
func ExtendLine(dst, line []float64, left, right int, c Condition, value float64) ([]float64, error) {
	if len(line) == 0 {
		return nil, ErrEmptyLine
	}
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("%w: left %d, right %d", ErrInvalidExtension, left, right)
	}
	if _, ok := conditionNames[c]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCondition, int(c))
	}

	total := left + len(line) + right
	if cap(dst) < total {
		dst = make([]float64, total)
	}
	dst = dst[:total]

	for i := 0; i < left; i++ {
		dst[i] = sampleAt(line, i-left, c, value)
	}
	copy(dst[left:], line)
	for i := 0; i < right; i++ {
		dst[left+len(line)+i] = sampleAt(line, len(line)+i, c, value)
	}
	return dst, nil
}
