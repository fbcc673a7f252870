package neighborhood_test

import (
	"fmt"

	"github.com/cwbudde/algo-ndfilter/neighborhood"
)

func ExampleNewTable() {
	tbl, err := neighborhood.NewTable(neighborhood.Diamond, []float64{5, 5}, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println("pixels:", tbl.NumberOfPixels())
	for _, run := range tbl.Runs() {
		fmt.Printf("run at %v, length %d\n", run.Coords, run.Length)
	}
	// Output:
	// pixels: 13
	// run at [0 -2], length 1
	// run at [-1 -1], length 3
	// run at [-2 0], length 5
	// run at [-1 1], length 3
	// run at [0 2], length 1
}

func ExampleIterator() {
	tbl, err := neighborhood.NewTable(neighborhood.Rectangular, []float64{3, 1}, 0)
	if err != nil {
		panic(err)
	}
	it, err := neighborhood.NewIterator(tbl)
	if err != nil {
		panic(err)
	}
	for it.Next() {
		fmt.Println(it.Coordinates())
	}
	// Output:
	// [-1 0]
	// [0 0]
	// [1 0]
}
