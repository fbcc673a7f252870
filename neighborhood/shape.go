package neighborhood

import (
	"fmt"
	"math"
)

// Shape identifies a default neighborhood shape family. Each family is the
// unit ball of a norm, with the size array giving per-dimension diameters.
type Shape int

const (
	// Rectangular is the L-infinity ball: a full box. The diameter is
	// rounded to the nearest integer and may be even or odd.
	Rectangular Shape = iota

	// Elliptic is the L2 ball. The bounding box is always odd in size;
	// membership is tested against the unrounded diameter.
	Elliptic

	// Diamond is the L1 ball. The diameter is rounded to the nearest odd
	// integer.
	Diamond
)

var shapeNames = map[Shape]string{
	Rectangular: "rectangular",
	Elliptic:    "elliptic",
	Diamond:     "diamond",
}

// String returns the canonical name of the shape.
func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape returns the Shape named by s.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "rectangular":
		return Rectangular, nil
	case "elliptic":
		return Elliptic, nil
	case "diamond":
		return Diamond, nil
	default:
		return Rectangular, fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
}

// boundingBox returns the per-dimension extent of the shape's bounding box
// for the given diameters.
func (s Shape) boundingBox(size []float64) []int {
	ext := make([]int, len(size))
	for d, sz := range size {
		switch s {
		case Rectangular:
			ext[d] = int(math.Round(sz))
			if ext[d] < 1 {
				ext[d] = 1
			}
		default:
			// Odd extent for elliptic and diamond.
			ext[d] = 2*int(sz/2) + 1
		}
	}
	return ext
}

// contains tests membership of the coordinate (relative to the origin) for
// the shape with the given diameters. Rectangular membership is implied by
// the bounding box and never reaches this test.
func (s Shape) contains(coords []int, size []float64) bool {
	switch s {
	case Elliptic:
		sum := 0.0
		for d, c := range coords {
			r := size[d] / 2
			sum += float64(c) * float64(c) / (r * r)
		}
		return sum <= 1.0
	case Diamond:
		sum := 0.0
		for d, c := range coords {
			r := float64(2*int(size[d]/2)+1) / 2
			sum += math.Abs(float64(c)) / r
		}
		return sum <= 1.0
	default:
		return true
	}
}
