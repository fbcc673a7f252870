package array

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage converts img to a 2-D scalar array of grayscale intensities in
// the range [0, 255]. Dimension 0 is x, dimension 1 is y, matching the
// array's fast-to-slow stride order.
func FromImage(img image.Image) (*Array, error) {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, fmt.Errorf("%w: empty image bounds", ErrInvalidSize)
	}
	a, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			a.Set(float64(g.Y), x, y)
		}
	}
	return a, nil
}

// FromImageScaled converts img to a 2-D scalar array after resampling it to
// width x height with a Catmull-Rom kernel.
func FromImageScaled(img image.Image, width, height int) (*Array, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidSize, width, height)
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// ToImage renders a 2-D scalar array as a grayscale image. Samples are
// rounded and clamped to [0, 255].
func ToImage(a *Array) (*image.Gray, error) {
	if a.Dimensionality() != 2 {
		return nil, fmt.Errorf("%w: need 2 dimensions, have %d", ErrDimensionMismatch, a.Dimensionality())
	}
	if a.TensorLength() != 1 {
		return nil, fmt.Errorf("%w: tensor length %d", ErrNotScalar, a.TensorLength())
	}
	img := image.NewGray(image.Rect(0, 0, a.Size(0), a.Size(1)))
	for y := 0; y < a.Size(1); y++ {
		for x := 0; x < a.Size(0); x++ {
			v := a.At(x, y)
			switch {
			case v < 0:
				v = 0
			case v > 255:
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	}
	return img, nil
}
