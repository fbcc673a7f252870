package linfilter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/internal/testutil"
	"github.com/cwbudde/algo-ndfilter/sepconv"
)

func TestFiniteDifferenceFirstOrder(t *testing.T) {
	in := testutil.Ramp(t, 9)

	out, err := FiniteDifference(in, []int{1}, false)
	if err != nil {
		t.Fatalf("FiniteDifference: %v", err)
	}
	// The central difference of a unit ramp is exactly one away from the
	// edges.
	data := out.Data()
	for i := 1; i < 8; i++ {
		if data[i] != 1 {
			t.Errorf("sample %d = %v, want 1", i, data[i])
		}
	}
}

func TestFiniteDifferenceSecondOrder(t *testing.T) {
	in, err := array.New(9)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	data := in.Data()
	for i := range data {
		data[i] = float64(i * i)
	}

	out, err := FiniteDifference(in, []int{2}, false)
	if err != nil {
		t.Fatalf("FiniteDifference: %v", err)
	}
	// [1 -2 1] recovers the exact second derivative of a parabola.
	res := out.Data()
	for i := 1; i < 8; i++ {
		if res[i] != 2 {
			t.Errorf("sample %d = %v, want 2", i, res[i])
		}
	}
}

func TestFiniteDifferenceSmoothing(t *testing.T) {
	in := constantArray(t, 7, 10, 10)

	out, err := FiniteDifference(in, nil, true)
	if err != nil {
		t.Fatalf("FiniteDifference: %v", err)
	}
	testutil.RequireArrayNearlyEqual(t, out, in, 1e-14)

	// Without smoothing, order zero is a pass-through.
	same, err := FiniteDifference(in, nil, false)
	if err != nil {
		t.Fatalf("FiniteDifference: %v", err)
	}
	testutil.RequireArrayNearlyEqual(t, same, in, 0)
}

func TestFiniteDifferenceUnsupportedOrder(t *testing.T) {
	in := testutil.Ramp(t, 5)

	if _, err := FiniteDifference(in, []int{3}, false); !errors.Is(err, ErrUnsupportedOrder) {
		t.Fatalf("order 3: %v", err)
	}
}

func TestSobelGradient(t *testing.T) {
	// f(x, y) = x: the Sobel derivative along dimension 0 is one, the
	// smoothing along dimension 1 changes nothing.
	in, err := array.New(9, 5)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			in.Set(float64(x), x, y)
		}
	}

	out, err := SobelGradient(in, 0)
	if err != nil {
		t.Fatalf("SobelGradient: %v", err)
	}
	for y := 0; y < 5; y++ {
		for x := 1; x < 8; x++ {
			if got := out.At(x, y); got != 1 {
				t.Errorf("(%d,%d) = %v, want 1", x, y, got)
			}
		}
	}

	if _, err := SobelGradient(in, 2); !errors.Is(err, sepconv.ErrDimensionMismatch) {
		t.Errorf("out of range dimension: %v", err)
	}
}
