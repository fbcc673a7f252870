package sepconv

import (
	"testing"

	"github.com/cwbudde/algo-ndfilter/array"
)

func benchmarkConvolve(b *testing.B, size, taps int) {
	in, err := array.New(size, size)
	if err != nil {
		b.Fatalf("array.New: %v", err)
	}
	data := in.Data()
	for i := range data {
		data[i] = float64(i%17) / 17
	}
	weights := make([]float64, taps)
	for i := range weights {
		weights[i] = 1 / float64(taps)
	}
	f := NewFilter(weights...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Convolve(in, []Filter{f}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvolve256x256Taps5(b *testing.B)  { benchmarkConvolve(b, 256, 5) }
func BenchmarkConvolve256x256Taps15(b *testing.B) { benchmarkConvolve(b, 256, 15) }
func BenchmarkConvolve512x512Taps5(b *testing.B)  { benchmarkConvolve(b, 512, 5) }
