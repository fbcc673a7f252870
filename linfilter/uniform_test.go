package linfilter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/boundary"
	"github.com/cwbudde/algo-ndfilter/internal/testutil"
	"github.com/cwbudde/algo-ndfilter/neighborhood"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

func TestUniform1D(t *testing.T) {
	in, err := array.New(3)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	copy(in.Data(), []float64{1, 2, 3})

	table, err := neighborhood.NewTable(neighborhood.Rectangular, []float64{3}, 0)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	out, err := Uniform(in, table, []boundary.Condition{boundary.Zero}, 0)
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Data(), []float64{1, 2, 5. / 3}, 1e-14)
}

func TestUniformPreservesConstants(t *testing.T) {
	in := constantArray(t, 4, 9, 7)

	out, err := UniformShape(in, neighborhood.Elliptic, []float64{5, 5}, nil, 0)
	if err != nil {
		t.Fatalf("UniformShape: %v", err)
	}
	testutil.RequireArrayNearlyEqual(t, out, in, 1e-13)
}

func TestUniformDiamondImpulse(t *testing.T) {
	in := testutil.Impulse(t, []int{5, 5}, []int{2, 2})

	out, err := UniformShape(in, neighborhood.Diamond, []float64{3, 3},
		[]boundary.Condition{boundary.Zero}, 0)
	if err != nil {
		t.Fatalf("UniformShape: %v", err)
	}
	// The impulse spreads over the 5-pixel plus shape.
	fifth := 1. / 5
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0.0
			if abs(x-2)+abs(y-2) <= 1 {
				want = fifth
			}
			if got := out.At(x, y); math.Abs(got-want) > 1e-14 {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestUniformMatchesSeparableMean(t *testing.T) {
	in := testutil.DeterministicArray(t, 41, 8, 6)

	got, err := UniformShape(in, neighborhood.Rectangular, []float64{3, 3},
		[]boundary.Condition{boundary.Zero}, 0)
	if err != nil {
		t.Fatalf("UniformShape: %v", err)
	}

	// A rectangular mean is separable: a 1/3 box along each axis.
	box := sepconv.NewFilter(1./3, 1./3, 1./3)
	want, err := sepconv.Convolve(in, []sepconv.Filter{box},
		sepconv.WithBoundary(boundary.Zero))
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	testutil.RequireArrayNearlyEqual(t, got, want, 1e-12)
}

func TestUniformTensor(t *testing.T) {
	in, err := array.NewTensor(2, 4, 4)
	if err != nil {
		t.Fatalf("array.NewTensor: %v", err)
	}
	for i := range in.Component(0) {
		in.Component(0)[i] = 2
		in.Component(1)[i] = 6
	}

	out, err := UniformShape(in, neighborhood.Rectangular, []float64{3, 3}, nil, 0)
	if err != nil {
		t.Fatalf("UniformShape: %v", err)
	}
	for i := range out.Component(0) {
		if diff := math.Abs(out.Component(0)[i] - 2); diff > 1e-13 {
			t.Errorf("component 0 sample %d = %v", i, out.Component(0)[i])
		}
		if diff := math.Abs(out.Component(1)[i] - 6); diff > 1e-13 {
			t.Errorf("component 1 sample %d = %v", i, out.Component(1)[i])
		}
	}
}

func TestUniformErrors(t *testing.T) {
	in := testutil.Ramp(t, 5)

	table, err := neighborhood.NewTable(neighborhood.Rectangular, []float64{3, 3}, 0)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	if _, err := Uniform(in, table, nil, 0); !errors.Is(err, neighborhood.ErrDimensionMismatch) {
		t.Errorf("dimension mismatch: %v", err)
	}

	line, err := neighborhood.NewTable(neighborhood.Rectangular, []float64{3}, 0)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	empty, err := line.Crop([]int{5}, []int{6})
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if _, err := Uniform(in, empty, nil, 0); !errors.Is(err, neighborhood.ErrEmptyTable) {
		t.Errorf("empty table: %v", err)
	}
}

func TestSmooth(t *testing.T) {
	in := constantArray(t, 2.5, 12, 12)

	out, err := Smooth(in, []float64{1.5})
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	testutil.RequireArrayNearlyEqual(t, out, in, 1e-12)
}
