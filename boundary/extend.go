package boundary

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/array"
)

// ExtendArray returns a copy of in enlarged by left[d] samples at the low end
// and right[d] samples at the high end of every dimension d, filled per the
// per-dimension conditions. conds may hold a single condition, applied to
// every dimension. The output has normal strides.
//
// This lets offset-based neighborhood traversal run uniformly over the
// interior without per-sample domain checks.
func ExtendArray(in *array.Array, left, right []int, conds []Condition, value float64) (*array.Array, error) {
	nd := in.Dimensionality()
	if len(left) != nd || len(right) != nd {
		return nil, fmt.Errorf("%w: extension arrays must have %d entries", ErrInvalidExtension, nd)
	}
	conds, err := broadcastConditions(conds, nd)
	if err != nil {
		return nil, err
	}

	outSizes := make([]int, nd)
	for d := 0; d < nd; d++ {
		if left[d] < 0 || right[d] < 0 {
			return nil, fmt.Errorf("%w: dimension %d", ErrInvalidExtension, d)
		}
		outSizes[d] = left[d] + in.Size(d) + right[d]
	}
	out, err := array.NewTensor(in.TensorLength(), outSizes...)
	if err != nil {
		return nil, err
	}

	// Copy the input into the center of the output.
	for t := 0; t < in.TensorLength(); t++ {
		src := in.Component(t)
		dst := out.Component(t)
		copyRegion(dst, src, out, in, left, nd-1, 0, 0)
	}

	// Fill the border one dimension at a time. After dimension d is done,
	// the filled region covers the full extent of dimensions 0..d.
	line := make([]float64, 0)
	ext := make([]float64, 0)
	for d := 0; d < nd; d++ {
		if left[d] == 0 && right[d] == 0 {
			continue
		}
		for t := 0; t < out.TensorLength(); t++ {
			data := out.Component(t)
			stride := out.Stride(d)
			n := in.Size(d)
			if cap(line) < n {
				line = make([]float64, n)
			}
			line = line[:n]
			err := forEachFilledLine(out, in, left, d, func(base int) error {
				for i := 0; i < n; i++ {
					line[i] = data[base+(left[d]+i)*stride]
				}
				var lineErr error
				ext, lineErr = ExtendLine(ext, line, left[d], right[d], conds[d], value)
				if lineErr != nil {
					return lineErr
				}
				for i, v := range ext {
					data[base+i*stride] = v
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func broadcastConditions(conds []Condition, nd int) ([]Condition, error) {
	switch len(conds) {
	case 0:
		out := make([]Condition, nd)
		return out, nil // zero value is Mirror
	case 1:
		out := make([]Condition, nd)
		for d := range out {
			out[d] = conds[0]
		}
		return out, nil
	case nd:
		return append([]Condition(nil), conds...), nil
	default:
		return nil, fmt.Errorf("%w: %d conditions for %d dimensions", ErrUnknownCondition, len(conds), nd)
	}
}

// copyRegion recursively copies src (layout of in) into dst (layout of out)
// at the position shifted by left.
func copyRegion(dst, src []float64, out, in *array.Array, left []int, dim, srcOff, dstOff int) {
	if dim < 0 {
		dst[dstOff] = src[srcOff]
		return
	}
	for c := 0; c < in.Size(dim); c++ {
		copyRegion(dst, src, out, in, left, dim-1,
			srcOff+c*in.Stride(dim),
			dstOff+(left[dim]+c)*out.Stride(dim))
	}
}

// forEachFilledLine invokes fn with the base offset (coordinate 0 along axis)
// of every line along axis whose other coordinates lie in the region already
// filled: full extent for dimensions below axis, the original extent shifted
// by left for dimensions above.
func forEachFilledLine(out, in *array.Array, left []int, axis int, fn func(base int) error) error {
	nd := out.Dimensionality()
	counts := make([]int, nd)
	starts := make([]int, nd)
	for d := 0; d < nd; d++ {
		switch {
		case d == axis:
			counts[d] = 1
			starts[d] = 0
		case d < axis:
			counts[d] = out.Size(d)
			starts[d] = 0
		default:
			counts[d] = in.Size(d)
			starts[d] = left[d]
		}
	}
	total := 1
	for _, c := range counts {
		total *= c
	}
	for idx := 0; idx < total; idx++ {
		rem := idx
		base := 0
		for d := 0; d < nd; d++ {
			if d == axis {
				continue
			}
			c := rem % counts[d]
			rem /= counts[d]
			base += (starts[d] + c) * out.Stride(d)
		}
		if err := fn(base); err != nil {
			return err
		}
	}
	return nil
}
