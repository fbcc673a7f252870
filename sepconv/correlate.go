package sepconv

import (
	"github.com/cwbudde/algo-vecmath"
)

// correlateLine computes the discrete correlation of the boundary-extended
// line against weights:
//
//	dst[i] = sum_k ext[i+k] * weights[k]
//
// ext must have length len(dst) + len(weights) - 1; the extension amounts on
// either side encode the filter origin. scratch must have length len(dst).
//
// For kernels of at least a few weights, the loop runs one weight at a time
// over the whole output so each step is a SIMD scale-and-accumulate over a
// contiguous block.
func correlateLine(dst, ext, weights, scratch []float64) {
	n := len(dst)
	for i := range dst {
		dst[i] = 0
	}

	const simdThreshold = 4
	if len(weights) >= simdThreshold {
		for k, w := range weights {
			vecmath.ScaleBlock(scratch, ext[k:k+n], w)
			vecmath.AddBlockInPlace(dst, scratch)
		}
		return
	}

	for k, w := range weights {
		src := ext[k : k+n]
		for i, v := range src {
			dst[i] += w * v
		}
	}
}
