package linfilter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

// Derivative computes a regularized derivative of the given per-dimension
// orders. method selects the implementation: "best", "fir", "ft" (Gaussian
// derivatives, see Gauss) or "finitediff".
func Derivative(in *array.Array, orders []int, sigmas []float64, method string, truncation float64, opts ...sepconv.Option) (*array.Array, error) {
	if method == "finitediff" {
		return FiniteDifference(in, orders, true, opts...)
	}
	return Gauss(in, sigmas, orders, method, truncation, opts...)
}

// derivativeAlong is a convenience for single-axis Gaussian derivatives.
func derivativeAlong(in *array.Array, dim, order int, sigmas []float64) (*array.Array, error) {
	nd := in.Dimensionality()
	if dim >= nd {
		return nil, fmt.Errorf("%w: dimension %d for %d dimensions",
			sepconv.ErrDimensionMismatch, dim, nd)
	}
	orders := make([]int, nd)
	orders[dim] = order
	return Gauss(in, sigmas, orders, "best", 0)
}

// Dx computes the first Gaussian derivative along dimension 0.
func Dx(in *array.Array, sigmas []float64) (*array.Array, error) {
	return derivativeAlong(in, 0, 1, sigmas)
}

// Dy computes the first Gaussian derivative along dimension 1.
func Dy(in *array.Array, sigmas []float64) (*array.Array, error) {
	return derivativeAlong(in, 1, 1, sigmas)
}

// Dz computes the first Gaussian derivative along dimension 2.
func Dz(in *array.Array, sigmas []float64) (*array.Array, error) {
	return derivativeAlong(in, 2, 1, sigmas)
}

// Dxx computes the second Gaussian derivative along dimension 0.
func Dxx(in *array.Array, sigmas []float64) (*array.Array, error) {
	return derivativeAlong(in, 0, 2, sigmas)
}

// Dyy computes the second Gaussian derivative along dimension 1.
func Dyy(in *array.Array, sigmas []float64) (*array.Array, error) {
	return derivativeAlong(in, 1, 2, sigmas)
}

// Dxy computes the mixed first Gaussian derivative along dimensions 0 and 1.
func Dxy(in *array.Array, sigmas []float64) (*array.Array, error) {
	nd := in.Dimensionality()
	if nd < 2 {
		return nil, fmt.Errorf("%w: mixed derivative needs 2 dimensions, have %d",
			sepconv.ErrDimensionMismatch, nd)
	}
	orders := make([]int, nd)
	orders[0] = 1
	orders[1] = 1
	return Gauss(in, sigmas, orders, "best", 0)
}

// Gradient computes the Gaussian gradient of a scalar array. The result is
// a tensor array with one component per dimension, component d holding the
// first derivative along dimension d.
func Gradient(in *array.Array, sigmas []float64, method string, truncation float64, opts ...sepconv.Option) (*array.Array, error) {
	if in.TensorLength() != 1 {
		return nil, array.ErrNotScalar
	}
	nd := in.Dimensionality()
	out, err := array.NewTensor(nd, in.Sizes()...)
	if err != nil {
		return nil, err
	}
	orders := make([]int, nd)
	for d := 0; d < nd; d++ {
		for i := range orders {
			orders[i] = 0
		}
		orders[d] = 1
		comp, err := Gauss(in, sigmas, orders, method, truncation, opts...)
		if err != nil {
			return nil, err
		}
		copy(out.Component(d), comp.Component(0))
	}
	return out, nil
}

// GradientMagnitude computes the Euclidean norm of the Gaussian gradient.
func GradientMagnitude(in *array.Array, sigmas []float64, method string, truncation float64, opts ...sepconv.Option) (*array.Array, error) {
	grad, err := Gradient(in, sigmas, method, truncation, opts...)
	if err != nil {
		return nil, err
	}
	out, err := array.New(in.Sizes()...)
	if err != nil {
		return nil, err
	}
	acc := out.Component(0)
	tmp := make([]float64, len(acc))
	for d := 0; d < grad.TensorLength(); d++ {
		comp := grad.Component(d)
		vecmath.MulBlock(tmp, comp, comp)
		vecmath.AddBlockInPlace(acc, tmp)
	}
	for i, v := range acc {
		acc[i] = math.Sqrt(v)
	}
	return out, nil
}

// Laplace computes the trace of the Hessian: the sum of the second Gaussian
// derivatives along every dimension.
func Laplace(in *array.Array, sigmas []float64, method string, truncation float64, opts ...sepconv.Option) (*array.Array, error) {
	if in.TensorLength() != 1 {
		return nil, array.ErrNotScalar
	}
	nd := in.Dimensionality()
	out, err := array.New(in.Sizes()...)
	if err != nil {
		return nil, err
	}
	acc := out.Component(0)
	orders := make([]int, nd)
	for d := 0; d < nd; d++ {
		for i := range orders {
			orders[i] = 0
		}
		orders[d] = 2
		comp, err := Gauss(in, sigmas, orders, method, truncation, opts...)
		if err != nil {
			return nil, err
		}
		vecmath.AddBlockInPlace(acc, comp.Component(0))
	}
	return out, nil
}
