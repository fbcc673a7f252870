package array

import "fmt"

// Binary is an n-dimensional boolean mask with the same geometry model as
// Array. It is used to describe arbitrary neighborhood shapes.
type Binary struct {
	sizes   []int
	strides []int
	data    []bool
}

// NewBinary returns a zero-valued (all false) mask with normal strides.
func NewBinary(sizes ...int) (*Binary, error) {
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
	return &Binary{
		sizes:   append([]int(nil), sizes...),
		strides: strides,
		data:    make([]bool, n),
	}, nil
}

// Dimensionality returns the number of dimensions.
func (b *Binary) Dimensionality() int {
	return len(b.sizes)
}

// Sizes returns a copy of the per-dimension extents.
func (b *Binary) Sizes() []int {
	return append([]int(nil), b.sizes...)
}

// Size returns the extent along dimension d.
func (b *Binary) Size(d int) int {
	return b.sizes[d]
}

// NumberOfSamples returns the total number of samples.
func (b *Binary) NumberOfSamples() int {
	return len(b.data)
}

// Offset returns the linear offset of the given coordinates.
func (b *Binary) Offset(coords ...int) int {
	off := 0
	for d, c := range coords {
		off += c * b.strides[d]
	}
	return off
}

// At returns the sample at the given coordinates.
func (b *Binary) At(coords ...int) bool {
	return b.data[b.Offset(coords...)]
}

// Set stores v at the given coordinates.
func (b *Binary) Set(v bool, coords ...int) {
	b.data[b.Offset(coords...)] = v
}

// Data returns the backing slice.
func (b *Binary) Data() []bool {
	return b.data
}

// CountTrue returns the number of true samples.
func (b *Binary) CountTrue() int {
	n := 0
	for _, v := range b.data {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same sizes and sample values.
func (b *Binary) Equal(other *Binary) bool {
	if other == nil || len(b.sizes) != len(other.sizes) {
		return false
	}
	for d := range b.sizes {
		if b.sizes[d] != other.sizes[d] {
			return false
		}
	}
	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
