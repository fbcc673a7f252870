package array

import (
	"errors"
	"fmt"
)

// Errors returned by array construction and access.
var (
	ErrInvalidSize       = errors.New("array: sizes must be positive")
	ErrDimensionMismatch = errors.New("array: dimension mismatch")
	ErrNotScalar         = errors.New("array: operation requires a scalar array")
	ErrInvalidTensor     = errors.New("array: tensor length must be positive")
)

// Array is an n-dimensional sample container with explicit strides.
//
// Samples are stored as float64 in a flat backing slice. Dimension 0 has the
// smallest stride in the default (normal) layout, so incrementing the first
// coordinate moves through adjacent memory. Tensor-valued arrays store one
// full spatial plane per tensor component.
type Array struct {
	sizes        []int
	strides      []int
	data         []float64
	tensorLen    int
	tensorStride int
}

// New returns a scalar array with the given sizes and normal strides.
// All samples are zero.
func New(sizes ...int) (*Array, error) {
	return NewTensor(1, sizes...)
}

// NewTensor returns a tensor array with tensorLen components per pixel.
// Components are stored as separate planes; Component gives access to one.
func NewTensor(tensorLen int, sizes ...int) (*Array, error) {
	if tensorLen < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTensor, tensorLen)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes given", ErrInvalidSize)
	}
	strides := make([]int, len(sizes))
	n := 1
	for d, sz := range sizes {
		if sz < 1 {
			return nil, fmt.Errorf("%w: size[%d] = %d", ErrInvalidSize, d, sz)
		}
		strides[d] = n
		n *= sz
	}
	return &Array{
		sizes:        append([]int(nil), sizes...),
		strides:      strides,
		data:         make([]float64, n*tensorLen),
		tensorLen:    tensorLen,
		tensorStride: n,
	}, nil
}

// Dimensionality returns the number of spatial dimensions.
func (a *Array) Dimensionality() int {
	return len(a.sizes)
}

// Sizes returns a copy of the per-dimension extents.
func (a *Array) Sizes() []int {
	return append([]int(nil), a.sizes...)
}

// Size returns the extent along dimension d.
func (a *Array) Size(d int) int {
	return a.sizes[d]
}

// Strides returns a copy of the per-dimension strides.
func (a *Array) Strides() []int {
	return append([]int(nil), a.strides...)
}

// Stride returns the stride along dimension d.
func (a *Array) Stride(d int) int {
	return a.strides[d]
}

// NumberOfSamples returns the number of spatial samples (per tensor component).
func (a *Array) NumberOfSamples() int {
	return a.tensorStride
}

// TensorLength returns the number of tensor components per pixel.
// It is 1 for scalar arrays.
func (a *Array) TensorLength() int {
	return a.tensorLen
}

// Data returns the backing slice. For tensor arrays it holds TensorLength
// consecutive planes of NumberOfSamples values each.
func (a *Array) Data() []float64 {
	return a.data
}

// Component returns the plane for tensor component t as a slice view.
// Mutations are visible through the array.
func (a *Array) Component(t int) []float64 {
	start := t * a.tensorStride
	return a.data[start : start+a.tensorStride]
}

// Offset returns the linear offset of the sample at the given coordinates
// within one tensor plane.
func (a *Array) Offset(coords ...int) int {
	off := 0
	for d, c := range coords {
		off += c * a.strides[d]
	}
	return off
}

// At returns the sample at the given coordinates (first tensor component).
func (a *Array) At(coords ...int) float64 {
	return a.data[a.Offset(coords...)]
}

// Set stores v at the given coordinates (first tensor component).
func (a *Array) Set(v float64, coords ...int) {
	a.data[a.Offset(coords...)] = v
}

// HasNormalStrides reports whether the array uses the default contiguous
// layout, with dimension 0 varying fastest.
func (a *Array) HasNormalStrides() bool {
	n := 1
	for d, sz := range a.sizes {
		if a.strides[d] != n {
			return false
		}
		n *= sz
	}
	return true
}

// SameLayout reports whether b has identical sizes and strides. Offset-based
// structures derived from this array are only valid for arrays with the same
// layout.
func (a *Array) SameLayout(b *Array) bool {
	if b == nil || len(a.sizes) != len(b.sizes) {
		return false
	}
	for d := range a.sizes {
		if a.sizes[d] != b.sizes[d] || a.strides[d] != b.strides[d] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the array. The copy has the same layout.
func (a *Array) Clone() *Array {
	out := &Array{
		sizes:        append([]int(nil), a.sizes...),
		strides:      append([]int(nil), a.strides...),
		data:         append([]float64(nil), a.data...),
		tensorLen:    a.tensorLen,
		tensorStride: a.tensorStride,
	}
	return out
}

// Fill sets every sample of every tensor component to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// LineCount returns the number of 1D lines along the given axis, per tensor
// component.
func (a *Array) LineCount(axis int) int {
	n := 1
	for d, sz := range a.sizes {
		if d != axis {
			n *= sz
		}
	}
	return n
}

// LineStart returns the offset of the first sample of line number index along
// axis, within one tensor plane. Lines are numbered in row-major order over
// the remaining dimensions, dimension 0 (or 1, if axis is 0) fastest.
func (a *Array) LineStart(axis, index int) int {
	off := 0
	for d, sz := range a.sizes {
		if d == axis {
			continue
		}
		off += (index % sz) * a.strides[d]
		index /= sz
	}
	return off
}

// CopyLine gathers the line along axis starting at offset base into dst.
// dst must have length Size(axis). plane selects the tensor component.
func (a *Array) CopyLine(dst []float64, plane, base, axis int) {
	data := a.Component(plane)
	stride := a.strides[axis]
	for i := range dst {
		dst[i] = data[base+i*stride]
	}
}

// SetLine scatters src into the line along axis starting at offset base.
// src must have length Size(axis). plane selects the tensor component.
func (a *Array) SetLine(src []float64, plane, base, axis int) {
	data := a.Component(plane)
	stride := a.strides[axis]
	for i, v := range src {
		data[base+i*stride] = v
	}
}
