// Package testutil provides deterministic test arrays and tolerance helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-ndfilter/array"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireArrayNearlyEqual fails t if the two arrays differ in geometry or if
// any sample pair exceeds eps.
func RequireArrayNearlyEqual(t *testing.T, got, want *array.Array, eps float64) {
	t.Helper()
	gs, ws := got.Sizes(), want.Sizes()
	if len(gs) != len(ws) {
		t.Fatalf("dimensionality mismatch: got %d, want %d", len(gs), len(ws))
	}
	for d := range gs {
		if gs[d] != ws[d] {
			t.Fatalf("size mismatch in dimension %d: got %d, want %d", d, gs[d], ws[d])
		}
	}
	if got.TensorLength() != want.TensorLength() {
		t.Fatalf("tensor length mismatch: got %d, want %d", got.TensorLength(), want.TensorLength())
	}
	RequireSliceNearlyEqual(t, got.Data(), want.Data(), eps)
}

// MaxAbsDiff returns the maximum absolute difference between two slices of
// equal length.
func MaxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

// DeterministicArray returns an array of the given sizes filled with
// reproducible pseudo-random samples in [-1, 1).
func DeterministicArray(t *testing.T, seed int64, sizes ...int) *array.Array {
	t.Helper()
	a, err := array.New(sizes...)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := a.Data()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return a
}

// Impulse returns an array of the given sizes holding a single 1 at pos.
func Impulse(t *testing.T, sizes []int, pos []int) *array.Array {
	t.Helper()
	a, err := array.New(sizes...)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	a.Set(1, pos...)
	return a
}

// Ramp returns a 1-D array holding 0, 1, 2, ... length-1.
func Ramp(t *testing.T, length int) *array.Array {
	t.Helper()
	a, err := array.New(length)
	if err != nil {
		t.Fatalf("array.New: %v", err)
	}
	data := a.Data()
	for i := range data {
		data[i] = float64(i)
	}
	return a
}
