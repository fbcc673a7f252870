// Package linfilter provides linear image filters built on the separable
// convolution engine: Gaussian smoothing and derivatives (FIR and Fourier
// implementations), finite differences, and uniform (mean) filters over
// arbitrary neighborhoods.
package linfilter

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ndfilter/sepconv"
)

// Errors returned by the filter constructors.
var (
	ErrInvalidSigma     = errors.New("linfilter: sigma must be positive")
	ErrUnsupportedOrder = errors.New("linfilter: unsupported derivative order")
	ErrUnknownMethod    = errors.New("linfilter: unknown method")
)

// DefaultTruncation is where the Gaussian kernel is cut off, in multiples of
// sigma. It is increased by half the derivative order.
const DefaultTruncation = 3.0

// GaussianKernel returns the compact FIR filter for a Gaussian of the given
// sigma, or one of its derivatives (order 0 to 3). The kernel is stored as a
// half filter with even symmetry for even orders and odd symmetry for odd
// orders.
//
// Kernels are moment-normalized: the smoothing kernel sums to one, and a
// derivative kernel of order p applied to the monomial x^p/p! responds with
// exactly one.
func GaussianKernel(sigma float64, order int, truncation float64) (sepconv.Filter, error) {
	if sigma <= 0 {
		return sepconv.Filter{}, fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}
	if order < 0 || order > 3 {
		return sepconv.Filter{}, fmt.Errorf("%w: %d (FIR supports 0 to 3)", ErrUnsupportedOrder, order)
	}
	if truncation <= 0 {
		truncation = DefaultTruncation
	}
	truncation += 0.5 * float64(order)

	half := int(math.Ceil(truncation * sigma))
	if half < order+1 {
		half = order + 1
	}

	// Work on the full effective filter, indexed j = -half..half, then keep
	// the left half as the compact form.
	full := sampleGaussianDerivative(sigma, order, half)
	switch order {
	case 0:
		sum := 0.0
		for _, v := range full {
			sum += v
		}
		scale(full, 1/sum)
	case 1:
		scale(full, 1/moment(full, half, 1))
	case 2:
		// Zero mean, then second moment 2 so the response to x^2/2 is 1.
		sum := 0.0
		for _, v := range full {
			sum += v
		}
		for i := range full {
			full[i] -= sum / float64(len(full))
		}
		scale(full, 2/moment(full, half, 2))
	case 3:
		// Remove the first-derivative component, then normalize the third
		// moment so the response to x^3/6 is 1.
		d1 := sampleGaussianDerivative(sigma, 1, half)
		scale(d1, 1/moment(d1, half, 1))
		m1 := moment(full, half, 1)
		for i := range full {
			full[i] -= m1 * d1[i]
		}
		scale(full, 6/moment(full, half, 3))
	}

	symmetry := sepconv.Even
	if order%2 == 1 {
		symmetry = sepconv.Odd
	}
	return sepconv.Filter{
		Weights:  full[:half+1],
		Origin:   -1,
		Symmetry: symmetry,
	}, nil
}

// sampleGaussianDerivative samples the order-th derivative of a Gaussian at
// integer positions -half..half.
func sampleGaussianDerivative(sigma float64, order, half int) []float64 {
	s2 := sigma * sigma
	out := make([]float64, 2*half+1)
	for j := -half; j <= half; j++ {
		x := float64(j)
		g := math.Exp(-x * x / (2 * s2))
		switch order {
		case 0:
			out[half+j] = g
		case 1:
			out[half+j] = -x / s2 * g
		case 2:
			out[half+j] = (x*x/s2 - 1) / s2 * g
		case 3:
			out[half+j] = (3*x/s2 - x*x*x/(s2*s2)) / s2 * g
		}
	}
	return out
}

// moment returns sum over j of j^p * w[half+j].
func moment(w []float64, half, p int) float64 {
	sum := 0.0
	for j := -half; j <= half; j++ {
		sum += math.Pow(float64(j), float64(p)) * w[half+j]
	}
	return sum
}

func scale(w []float64, s float64) {
	for i := range w {
		w[i] *= s
	}
}
