package linfilter

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

// FiniteDifference computes derivatives with small fixed-coefficient
// kernels. orders holds one derivative order (0, 1 or 2) per dimension, or
// a single order broadcast to all. Order 0 applies the triangular smoothing
// [1 2 1]/4 if smooth is true, and leaves the dimension untouched otherwise.
// Order 1 is the central difference [-1 0 1]/2, order 2 the second
// difference [1 -2 1]. Note that applying order 1 twice is not the same as
// applying order 2 once.
func FiniteDifference(in *array.Array, orders []int, smooth bool, opts ...sepconv.Option) (*array.Array, error) {
	nd := in.Dimensionality()
	orders, err := broadcastInts(orders, nd)
	if err != nil {
		return nil, err
	}

	filters := make([]sepconv.Filter, nd)
	for d, order := range orders {
		switch order {
		case 0:
			if smooth {
				filters[d] = sepconv.Filter{Weights: []float64{0.25, 0.5}, Origin: -1, Symmetry: sepconv.Even}
			}
		case 1:
			filters[d] = sepconv.Filter{Weights: []float64{-0.5, 0}, Origin: -1, Symmetry: sepconv.Odd}
		case 2:
			filters[d] = sepconv.Filter{Weights: []float64{1, -2}, Origin: -1, Symmetry: sepconv.Even}
		default:
			return nil, fmt.Errorf("%w: %d (finite differences support 0 to 2)", ErrUnsupportedOrder, order)
		}
	}
	return sepconv.Convolve(in, filters, opts...)
}

// SobelGradient computes the generalized Sobel derivative: the central
// difference along dimension dim and triangular smoothing along every other
// dimension.
func SobelGradient(in *array.Array, dim int, opts ...sepconv.Option) (*array.Array, error) {
	nd := in.Dimensionality()
	if dim < 0 || dim >= nd {
		return nil, fmt.Errorf("%w: dimension %d for %d dimensions",
			sepconv.ErrDimensionMismatch, dim, nd)
	}
	orders := make([]int, nd)
	orders[dim] = 1
	return FiniteDifference(in, orders, true, opts...)
}
