package neighborhood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ndfilter/array"
)

func runLengthSum(t *Table) int {
	sum := 0
	for _, run := range t.Runs() {
		sum += run.Length
	}
	return sum
}

func TestNewTableRectangular(t *testing.T) {
	tbl, err := NewTable(Rectangular, []float64{3, 3}, 0)
	require.NoError(t, err)

	assert.Equal(t, 9, tbl.NumberOfPixels())
	assert.Equal(t, runLengthSum(tbl), tbl.NumberOfPixels())
	assert.Equal(t, []int{3, 3}, tbl.Sizes())
	assert.Equal(t, []int{1, 1}, tbl.Origin())
	assert.Equal(t, 0, tbl.ProcessingDimension())
	// One full-width run per row.
	require.Len(t, tbl.Runs(), 3)
	for _, run := range tbl.Runs() {
		assert.Equal(t, 3, run.Length)
		assert.Equal(t, -1, run.Coords[0])
	}
}

func TestNewTableDiamond(t *testing.T) {
	tbl, err := NewTable(Diamond, []float64{3, 3}, 0)
	require.NoError(t, err)

	// A diameter-3 diamond is the plus shape.
	assert.Equal(t, 5, tbl.NumberOfPixels())
	require.Len(t, tbl.Runs(), 3)
	assert.Equal(t, []int{0, -1}, tbl.Runs()[0].Coords)
	assert.Equal(t, 1, tbl.Runs()[0].Length)
	assert.Equal(t, []int{-1, 0}, tbl.Runs()[1].Coords)
	assert.Equal(t, 3, tbl.Runs()[1].Length)
	assert.Equal(t, []int{0, 1}, tbl.Runs()[2].Coords)
	assert.Equal(t, 1, tbl.Runs()[2].Length)
}

func TestNewTableElliptic(t *testing.T) {
	tbl, err := NewTable(Elliptic, []float64{5, 5}, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 5}, tbl.Sizes())
	// Diameter-5 disk: rows of 3, 5, 5, 5, 3.
	assert.Equal(t, 21, tbl.NumberOfPixels())

	mask, err := tbl.Mask()
	require.NoError(t, err)
	assert.Equal(t, tbl.NumberOfPixels(), mask.CountTrue())
	// Corners are outside the disk.
	assert.False(t, mask.At(0, 0))
	assert.False(t, mask.At(4, 4))
	assert.True(t, mask.At(2, 2))
}

func TestNewTableEvenRectangle(t *testing.T) {
	tbl, err := NewTable(Rectangular, []float64{2, 4}, 0)
	require.NoError(t, err)

	assert.Equal(t, 8, tbl.NumberOfPixels())
	assert.Equal(t, []int{2, 4}, tbl.Sizes())
	// For even extents, the origin is the pixel right of center.
	assert.Equal(t, []int{1, 2}, tbl.Origin())
}

func TestNewTableProcessingDimension(t *testing.T) {
	tbl, err := NewTable(Diamond, []float64{3, 3}, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, tbl.ProcessingDimension())
	assert.Equal(t, 5, tbl.NumberOfPixels())
	// Runs now extend along dimension 1.
	require.Len(t, tbl.Runs(), 3)
	assert.Equal(t, 3, tbl.Runs()[1].Length)
}

func TestNewTableErrors(t *testing.T) {
	_, err := NewTable(Rectangular, nil, 0)
	assert.ErrorIs(t, err, ErrEmptySize)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewTable(Rectangular, []float64{3, -1}, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = NewTable(Shape(42), []float64{3}, 0)
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, err = NewTable(Rectangular, []float64{3, 3}, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestParseShape(t *testing.T) {
	for _, name := range []string{"rectangular", "elliptic", "diamond"} {
		shape, err := ParseShape(name)
		require.NoError(t, err)
		assert.Equal(t, name, shape.String())
	}
	_, err := ParseShape("circle")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestMaskRoundTrip(t *testing.T) {
	// An L-shaped mask.
	mask, err := array.NewBinary(3, 3)
	require.NoError(t, err)
	mask.Set(true, 0, 0)
	mask.Set(true, 0, 1)
	mask.Set(true, 0, 2)
	mask.Set(true, 1, 2)
	mask.Set(true, 2, 2)

	tbl, err := NewTableFromMask(mask, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, tbl.NumberOfPixels())
	assert.Equal(t, []int{1, 1}, tbl.Origin())

	back, err := tbl.Mask()
	require.NoError(t, err)
	assert.True(t, back.Equal(mask))
}

func TestNewTableFromMaskMergesRuns(t *testing.T) {
	// Two separate spans in one row must become two runs.
	mask, err := array.NewBinary(5, 1)
	require.NoError(t, err)
	mask.Set(true, 0, 0)
	mask.Set(true, 1, 0)
	mask.Set(true, 3, 0)

	tbl, err := NewTableFromMask(mask, nil, 0)
	require.NoError(t, err)
	require.Len(t, tbl.Runs(), 2)
	assert.Equal(t, 2, tbl.Runs()[0].Length)
	assert.Equal(t, 1, tbl.Runs()[1].Length)
	assert.Equal(t, 3, tbl.NumberOfPixels())
}

func TestNewTableFromMaskOrigin(t *testing.T) {
	mask, err := array.NewBinary(3, 3)
	require.NoError(t, err)
	mask.Set(true, 0, 0)

	tbl, err := NewTableFromMask(mask, []int{0, 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, tbl.Runs()[0].Coords)

	_, err = NewTableFromMask(mask, []int{3, 0}, 0)
	assert.ErrorIs(t, err, ErrOriginOutOfRange)

	_, err = NewTableFromMask(mask, []int{0}, 0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCrop(t *testing.T) {
	tbl, err := NewTable(Rectangular, []float64{5, 5}, 0)
	require.NoError(t, err)
	require.Equal(t, 25, tbl.NumberOfPixels())

	cropped, err := tbl.Crop([]int{-1, -1}, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 9, cropped.NumberOfPixels())
	assert.Equal(t, []int{3, 3}, cropped.Sizes())
	assert.Equal(t, []int{1, 1}, cropped.Origin())
	assert.Equal(t, tbl.ProcessingDimension(), cropped.ProcessingDimension())
}

func TestCropToEmpty(t *testing.T) {
	tbl, err := NewTable(Rectangular, []float64{3, 3}, 0)
	require.NoError(t, err)

	cropped, err := tbl.Crop([]int{5, 5}, []int{6, 6})
	require.NoError(t, err)
	assert.Equal(t, 0, cropped.NumberOfPixels())
	assert.Empty(t, cropped.Runs())

	_, err = NewIterator(cropped)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestCropErrors(t *testing.T) {
	tbl, err := NewTable(Rectangular, []float64{3, 3}, 0)
	require.NoError(t, err)

	_, err = tbl.Crop([]int{0}, []int{1, 1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
