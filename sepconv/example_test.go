package sepconv_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/boundary"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

func ExampleConvolve() {
	in, err := array.New(5)
	if err != nil {
		panic(err)
	}
	in.Set(4, 2)

	// A binomial smoothing kernel, stored as its left half.
	f := sepconv.Filter{Weights: []float64{0.25, 0.5}, Symmetry: sepconv.Even}
	out, err := sepconv.Convolve(in, []sepconv.Filter{f},
		sepconv.WithBoundary(boundary.Zero))
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Data())
	// Output:
	// [0 1 2 1 0]
}
