package array

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestImageRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(10*x + y)})
		}
	}

	a, err := FromImage(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Size(0) != 4 || a.Size(1) != 3 {
		t.Fatalf("sizes = %v, want [4 3]", a.Sizes())
	}
	if a.At(3, 2) != 32 {
		t.Errorf("At(3,2) = %v, want 32", a.At(3, 2))
	}

	back, err := ToImage(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if back.GrayAt(x, y) != img.GrayAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, back.GrayAt(x, y), img.GrayAt(x, y))
			}
		}
	}
}

func TestToImageClamps(t *testing.T) {
	a, _ := New(2, 1)
	a.Set(-10, 0, 0)
	a.Set(300, 1, 0)
	img, err := ToImage(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.GrayAt(0, 0).Y != 0 {
		t.Errorf("negative value should clamp to 0, got %d", img.GrayAt(0, 0).Y)
	}
	if img.GrayAt(1, 0).Y != 255 {
		t.Errorf("large value should clamp to 255, got %d", img.GrayAt(1, 0).Y)
	}
}

func TestFromImageScaled(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}
	a, err := FromImageScaled(img, 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Size(0) != 4 || a.Size(1) != 4 {
		t.Fatalf("sizes = %v, want [4 4]", a.Sizes())
	}
	// A constant image stays constant under resampling.
	for _, v := range a.Data() {
		if v != 128 {
			t.Fatalf("sample = %v, want 128", v)
		}
	}
}

func TestToImageErrors(t *testing.T) {
	a1, _ := New(4)
	if _, err := ToImage(a1); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	a2, _ := NewTensor(2, 4, 4)
	if _, err := ToImage(a2); !errors.Is(err, ErrNotScalar) {
		t.Errorf("expected ErrNotScalar, got %v", err)
	}
}
