// Package neighborhood represents arbitrarily-shaped filter supports in any
// number of dimensions.
//
// A neighborhood is stored as a Table: an ordered list of runs, each a span
// of consecutive member pixels along one fixed processing dimension. Tables
// are built from a default shape (rectangular, elliptic, diamond) or from an
// arbitrary boolean mask, and can be projected onto a concrete array layout
// with Prepare, which turns coordinates into linear memory offsets.
//
// Tables and their offset projections are immutable after construction and
// safe for concurrent readers.
package neighborhood

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndfilter/array"
)

// Errors returned by table construction and traversal.
var (
	ErrUnknownShape       = errors.New("neighborhood: unknown shape")
	ErrInvalidSize        = errors.New("neighborhood: sizes must be positive")
	ErrDimensionMismatch  = errors.New("neighborhood: dimension mismatch")
	ErrOriginOutOfRange   = errors.New("neighborhood: origin outside mask")
	ErrEmptyTable         = errors.New("neighborhood: table has no pixels")
	ErrIncompatibleLayout = errors.New("neighborhood: offsets used with incompatible array layout")

	// ErrEmptySize is a dimension mismatch: a neighborhood needs at least
	// one dimension.
	ErrEmptySize = fmt.Errorf("%w: empty size array", ErrDimensionMismatch)
)

// Run is a maximal span of member pixels along the processing dimension.
// Coords holds the coordinates of the first pixel, relative to the
// neighborhood's origin.
type Run struct {
	Coords []int
	Length int
}

// Table describes a neighborhood in coordinate space, independent of any
// array. The zero value is an empty table; use the constructors.
type Table struct {
	runs    []Run
	sizes   []int // bounding box extents
	origin  []int // origin position within the bounding box
	nPixels int
	procDim int
}

// NewTable builds a table for one of the default shapes. size gives the
// per-dimension diameter of the neighborhood (not the radius). procDim is
// the dimension along which runs are laid out.
func NewTable(shape Shape, size []float64, procDim int) (*Table, error) {
	if len(size) == 0 {
		return nil, ErrEmptySize
	}
	if procDim < 0 || procDim >= len(size) {
		return nil, fmt.Errorf("%w: processing dimension %d for %d dimensions",
			ErrDimensionMismatch, procDim, len(size))
	}
	if _, ok := shapeNames[shape]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, int(shape))
	}
	for d, sz := range size {
		if sz <= 0 {
			return nil, fmt.Errorf("%w: size[%d] = %g", ErrInvalidSize, d, sz)
		}
	}

	sizes := shape.boundingBox(size)
	origin := make([]int, len(sizes))
	for d, sz := range sizes {
		origin[d] = sz / 2
	}

	t := &Table{
		sizes:   sizes,
		origin:  origin,
		procDim: procDim,
	}
	t.scan(func(coords []int) bool {
		return shape.contains(coords, size)
	})
	return t, nil
}

// NewTableFromMask builds a table from the true-valued samples of mask.
// origin gives the mask coordinates that map to the neighborhood origin; nil
// selects the geometric center (the pixel right of center for even extents).
func NewTableFromMask(mask *array.Binary, origin []int, procDim int) (*Table, error) {
	nd := mask.Dimensionality()
	if procDim < 0 || procDim >= nd {
		return nil, fmt.Errorf("%w: processing dimension %d for %d dimensions",
			ErrDimensionMismatch, procDim, nd)
	}
	if origin == nil {
		origin = make([]int, nd)
		for d := 0; d < nd; d++ {
			origin[d] = mask.Size(d) / 2
		}
	} else {
		if len(origin) != nd {
			return nil, fmt.Errorf("%w: origin has %d entries for %d dimensions",
				ErrDimensionMismatch, len(origin), nd)
		}
		for d, o := range origin {
			if o < 0 || o >= mask.Size(d) {
				return nil, fmt.Errorf("%w: origin[%d] = %d, extent %d",
					ErrOriginOutOfRange, d, o, mask.Size(d))
			}
		}
		origin = append([]int(nil), origin...)
	}

	t := &Table{
		sizes:   mask.Sizes(),
		origin:  origin,
		procDim: procDim,
	}
	abs := make([]int, nd)
	t.scan(func(coords []int) bool {
		for d := range coords {
			abs[d] = coords[d] + t.origin[d]
		}
		return mask.At(abs...)
	})
	return t, nil
}

// scan visits the bounding box in row-major order with the processing
// dimension innermost, merging member pixels into runs. member receives
// coordinates relative to the origin.
func (t *Table) scan(member func(coords []int) bool) {
	nd := len(t.sizes)
	procLen := t.sizes[t.procDim]
	outer := 1
	for d, sz := range t.sizes {
		if d != t.procDim {
			outer *= sz
		}
	}

	coords := make([]int, nd)
	for row := 0; row < outer; row++ {
		rem := row
		for d := 0; d < nd; d++ {
			if d == t.procDim {
				continue
			}
			coords[d] = rem%t.sizes[d] - t.origin[d]
			rem /= t.sizes[d]
		}

		runStart := 0
		inRun := false
		for i := 0; i < procLen; i++ {
			coords[t.procDim] = i - t.origin[t.procDim]
			if member(coords) {
				if !inRun {
					runStart = i
					inRun = true
				}
			} else if inRun {
				t.appendRun(coords, runStart, i)
				inRun = false
			}
		}
		if inRun {
			t.appendRun(coords, runStart, procLen)
		}
	}
}

// appendRun records the run [start, end) along the processing dimension for
// the row identified by coords (its procDim entry is overwritten).
func (t *Table) appendRun(coords []int, start, end int) {
	c := append([]int(nil), coords...)
	c[t.procDim] = start - t.origin[t.procDim]
	t.runs = append(t.runs, Run{Coords: c, Length: end - start})
	t.nPixels += end - start
}

// Runs returns the run list. The returned slice and its coordinate arrays
// must not be modified.
func (t *Table) Runs() []Run {
	return t.runs
}

// Dimensionality returns the number of dimensions of the neighborhood.
func (t *Table) Dimensionality() int {
	return len(t.sizes)
}

// Sizes returns a copy of the bounding box extents.
func (t *Table) Sizes() []int {
	return append([]int(nil), t.sizes...)
}

// Origin returns a copy of the origin position within the bounding box.
func (t *Table) Origin() []int {
	return append([]int(nil), t.origin...)
}

// NumberOfPixels returns the total number of member pixels.
func (t *Table) NumberOfPixels() int {
	return t.nPixels
}

// ProcessingDimension returns the dimension along which runs are laid out.
func (t *Table) ProcessingDimension() int {
	return t.procDim
}

// Mask renders the neighborhood as a boolean array of the bounding box size.
// It is the inverse of NewTableFromMask up to the choice of origin.
func (t *Table) Mask() (*array.Binary, error) {
	mask, err := array.NewBinary(t.sizes...)
	if err != nil {
		return nil, err
	}
	coords := make([]int, len(t.sizes))
	for _, run := range t.runs {
		for d, c := range run.Coords {
			coords[d] = c + t.origin[d]
		}
		for i := 0; i < run.Length; i++ {
			mask.Set(true, coords...)
			coords[t.procDim]++
		}
	}
	return mask, nil
}

// Crop returns a new table holding only the pixels inside the inclusive
// coordinate box [min, max] (relative to the origin). Runs are clipped; the
// bounding box is recomputed from the surviving pixels. The result may be
// empty.
func (t *Table) Crop(min, max []int) (*Table, error) {
	nd := len(t.sizes)
	if len(min) != nd || len(max) != nd {
		return nil, fmt.Errorf("%w: bounds must have %d entries", ErrDimensionMismatch, nd)
	}

	out := &Table{procDim: t.procDim}
	for _, run := range t.runs {
		keep := true
		for d, c := range run.Coords {
			if d == t.procDim {
				continue
			}
			if c < min[d] || c > max[d] {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		start := run.Coords[t.procDim]
		end := start + run.Length
		if start < min[t.procDim] {
			start = min[t.procDim]
		}
		if end > max[t.procDim]+1 {
			end = max[t.procDim] + 1
		}
		if end <= start {
			continue
		}
		c := append([]int(nil), run.Coords...)
		c[t.procDim] = start
		out.runs = append(out.runs, Run{Coords: c, Length: end - start})
		out.nPixels += end - start
	}

	out.sizes = make([]int, nd)
	out.origin = make([]int, nd)
	if out.nPixels == 0 {
		return out, nil
	}

	lo := make([]int, nd)
	hi := make([]int, nd)
	for d := range lo {
		lo[d] = out.runs[0].Coords[d]
		hi[d] = out.runs[0].Coords[d]
	}
	for _, run := range out.runs {
		for d, c := range run.Coords {
			last := c
			if d == t.procDim {
				last = c + run.Length - 1
			}
			if c < lo[d] {
				lo[d] = c
			}
			if last > hi[d] {
				hi[d] = last
			}
		}
	}
	for d := range out.sizes {
		out.sizes[d] = hi[d] - lo[d] + 1
		out.origin[d] = -lo[d]
	}
	return out, nil
}

// Prepare projects the table onto the memory layout of a. Run coordinates
// become linear offsets computed from a's strides; the stride along the
// processing dimension is stored once.
//
// The array must be at least as large as the neighborhood's bounding box.
// Beyond that, the result is only valid for arrays with exactly the layout
// of a; this is a caller-enforced precondition.
func (t *Table) Prepare(a *array.Array) (*Offsets, error) {
	if a.Dimensionality() != len(t.sizes) {
		return nil, fmt.Errorf("%w: table has %d dimensions, array has %d",
			ErrDimensionMismatch, len(t.sizes), a.Dimensionality())
	}
	for d, sz := range t.sizes {
		if a.Size(d) < sz {
			return nil, fmt.Errorf("%w: neighborhood extent %d exceeds array extent %d in dimension %d",
				ErrIncompatibleLayout, sz, a.Size(d), d)
		}
	}
	out := &Offsets{
		runs:    make([]OffsetRun, len(t.runs)),
		sizes:   append([]int(nil), t.sizes...),
		origin:  append([]int(nil), t.origin...),
		nPixels: t.nPixels,
		procDim: t.procDim,
		stride:  a.Stride(t.procDim),
	}
	for i, run := range t.runs {
		out.runs[i] = OffsetRun{Offset: a.Offset(run.Coords...), Length: run.Length}
	}
	return out, nil
}
