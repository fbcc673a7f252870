package linfilter_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/linfilter"
)

func ExampleSmooth() {
	in, err := array.New(64, 64)
	if err != nil {
		panic(err)
	}
	in.Fill(1)

	out, err := linfilter.Smooth(in, []float64{2})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.3f\n", out.At(32, 32))
	// Output:
	// 1.000
}

func ExampleFiniteDifference() {
	in, err := array.New(7)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 7; i++ {
		in.Set(float64(i*i), i)
	}

	out, err := linfilter.FiniteDifference(in, []int{2}, false)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Data()[1:6])
	// Output:
	// [2 2 2 2 2]
}
