package linfilter

import (
	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/boundary"
	"github.com/cwbudde/algo-ndfilter/neighborhood"
)

// GeneralConvolution applies a convolution with an arbitrary kernel by direct
// evaluation of the convolution sum. kernel is a scalar array of weights; its
// origin is the middle pixel, the one right of center for even extents, and
// zero-valued samples do not contribute. This is expensive for kernels with
// many non-zero weights; prefer the separable engine whenever the kernel
// factors into 1D filters.
func GeneralConvolution(in, kernel *array.Array, conds []boundary.Condition, value float64) (*array.Array, error) {
	nd := in.Dimensionality()
	if kernel.Dimensionality() != nd {
		return nil, neighborhood.ErrDimensionMismatch
	}
	if kernel.TensorLength() != 1 {
		return nil, array.ErrNotScalar
	}

	mask, err := array.NewBinary(kernel.Sizes()...)
	if err != nil {
		return nil, err
	}
	kdata := kernel.Data()
	for i, v := range kdata {
		mask.Data()[i] = v != 0
	}
	origin := make([]int, nd)
	for d := 0; d < nd; d++ {
		origin[d] = kernel.Size(d) / 2
	}
	table, err := neighborhood.NewTableFromMask(mask, origin, 0)
	if err != nil {
		return nil, err
	}
	if table.NumberOfPixels() == 0 {
		return nil, neighborhood.ErrEmptyTable
	}

	// A weight at relative coordinate c reads in(x - c), so the extension
	// extents are mirrored relative to the correlation case.
	sizes := table.Sizes()
	left := make([]int, nd)
	right := make([]int, nd)
	for d := 0; d < nd; d++ {
		left[d] = sizes[d] - 1 - origin[d]
		right[d] = origin[d]
	}

	ext, err := boundary.ExtendArray(in, left, right, conds, value)
	if err != nil {
		return nil, err
	}
	offsets, err := table.Prepare(ext)
	if err != nil {
		return nil, err
	}

	// Offsets and weights in lockstep traversal order.
	ci, err := neighborhood.NewIterator(table)
	if err != nil {
		return nil, err
	}
	oi, err := neighborhood.NewOffsetIterator(offsets)
	if err != nil {
		return nil, err
	}
	offs := make([]int, 0, offsets.NumberOfPixels())
	weights := make([]float64, 0, offsets.NumberOfPixels())
	abs := make([]int, nd)
	for ci.Next() && oi.Next() {
		for d, c := range ci.Coordinates() {
			abs[d] = c + origin[d]
		}
		offs = append(offs, oi.Offset())
		weights = append(weights, kernel.At(abs...))
	}

	out, err := array.NewTensor(in.TensorLength(), in.Sizes()...)
	if err != nil {
		return nil, err
	}

	n0 := in.Size(0)
	lines := in.LineCount(0)
	for t := 0; t < in.TensorLength(); t++ {
		src := ext.Component(t)
		dst := out.Component(t)
		for li := 0; li < lines; li++ {
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
				for k, off := range offs {
					sum += weights[k] * src[center-off]
				}
				dst[dstBase+i*out.Stride(0)] = sum
			}
		}
	}
	return out, nil
}
