package linfilter

import (
	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/boundary"
	"github.com/cwbudde/algo-ndfilter/neighborhood"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

// Uniform applies a mean filter over an arbitrary neighborhood. The input
// is boundary-extended so the neighborhood fits everywhere, the table is
// projected onto the extended array's layout, and every output sample is
// the average over the offset traversal.
func Uniform(in *array.Array, table *neighborhood.Table, conds []boundary.Condition, value float64) (*array.Array, error) {
	if table.Dimensionality() != in.Dimensionality() {
		return nil, neighborhood.ErrDimensionMismatch
	}
	if table.NumberOfPixels() == 0 {
		return nil, neighborhood.ErrEmptyTable
	}

	nd := in.Dimensionality()
	origin := table.Origin()
	sizes := table.Sizes()
	left := make([]int, nd)
	right := make([]int, nd)
	for d := 0; d < nd; d++ {
		left[d] = origin[d]
		right[d] = sizes[d] - 1 - origin[d]
	}

	ext, err := boundary.ExtendArray(in, left, right, conds, value)
	if err != nil {
		return nil, err
	}
	offsets, err := table.Prepare(ext)
	if err != nil {
		return nil, err
	}
	it, err := neighborhood.NewOffsetIterator(offsets)
	if err != nil {
		return nil, err
	}
	offs := make([]int, 0, offsets.NumberOfPixels())
	for it.Next() {
		offs = append(offs, it.Offset())
	}

	out, err := array.NewTensor(in.TensorLength(), in.Sizes()...)
	if err != nil {
		return nil, err
	}

	norm := 1 / float64(len(offs))
	n0 := in.Size(0)
	lines := in.LineCount(0)
	for t := 0; t < in.TensorLength(); t++ {
		src := ext.Component(t)
		dst := out.Component(t)
		for li := 0; li < lines; li++ {
			// Base offset of this line's first pixel in the extended array.
			extBase := left[0] * ext.Stride(0)
			rem := li
			for d := 1; d < nd; d++ {
				c := rem % in.Size(d)
				rem /= in.Size(d)
				extBase += (left[d] + c) * ext.Stride(d)
			}
			dstBase := out.LineStart(0, li)
			for i := 0; i < n0; i++ {
				center := extBase + i*ext.Stride(0)
				sum := 0.0
				for _, off := range offs {
					sum += src[center+off]
				}
				dst[dstBase+i*out.Stride(0)] = sum * norm
			}
		}
	}
	return out, nil
}

// UniformShape is Uniform over one of the default shapes of the given
// per-dimension diameters.
func UniformShape(in *array.Array, shape neighborhood.Shape, size []float64, conds []boundary.Condition, value float64) (*array.Array, error) {
	table, err := neighborhood.NewTable(shape, size, 0)
	if err != nil {
		return nil, err
	}
	return Uniform(in, table, conds, value)
}

// Smooth is a convenience wrapper applying Gaussian smoothing (order zero)
// with the given sigmas and the default method selection.
func Smooth(in *array.Array, sigmas []float64, opts ...sepconv.Option) (*array.Array, error) {
	return Gauss(in, sigmas, nil, "best", 0, opts...)
}
