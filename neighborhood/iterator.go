package neighborhood

// Iterator visits every pixel of a table in run order, run by run and within
// each run by increasing processing-dimension coordinate. It borrows the
// table: the table must outlive the iterator, and one iterator must not be
// shared between goroutines. Many iterators over one shared table are safe.
//
//	it, err := neighborhood.NewIterator(t)
//	...
//	for it.Next() {
//		coords := it.Coordinates()
//	}
type Iterator struct {
	table   *Table
	run     int
	index   int
	started bool
	coords  []int
}

// NewIterator returns an iterator positioned before the first pixel.
// It fails with ErrEmptyTable if the table has no pixels.
func NewIterator(t *Table) (*Iterator, error) {
	if t.nPixels == 0 {
		return nil, ErrEmptyTable
	}
	return &Iterator{table: t, coords: make([]int, len(t.sizes))}, nil
}

// Next advances to the next pixel. It returns false once every pixel has
// been visited.
func (it *Iterator) Next() bool {
	t := it.table
	if !it.started {
		it.started = true
		copy(it.coords, t.runs[0].Coords)
		return true
	}
	if it.run >= len(t.runs) {
		return false
	}
	it.index++
	if it.index < t.runs[it.run].Length {
		it.coords[t.procDim]++
		return true
	}
	it.index = 0
	it.run++
	if it.run >= len(t.runs) {
		return false
	}
	copy(it.coords, t.runs[it.run].Coords)
	return true
}

// Coordinates returns the coordinates of the current pixel, relative to the
// neighborhood origin. The slice is reused by Next; copy it to retain it.
func (it *Iterator) Coordinates() []int {
	return it.coords
}

// Reset repositions the iterator before the first pixel.
func (it *Iterator) Reset() {
	it.run = 0
	it.index = 0
	it.started = false
}

// OffsetIterator visits every pixel of an Offsets projection in run order,
// yielding linear offsets. The same borrowing rules as Iterator apply.
type OffsetIterator struct {
	offsets *Offsets
	run     int
	index   int
	started bool
	offset  int
}

// NewOffsetIterator returns an iterator positioned before the first pixel.
// It fails with ErrEmptyTable if the projection has no pixels.
func NewOffsetIterator(o *Offsets) (*OffsetIterator, error) {
	if o.nPixels == 0 {
		return nil, ErrEmptyTable
	}
	return &OffsetIterator{offsets: o}, nil
}

// Next advances to the next pixel. It returns false once every pixel has
// been visited.
func (it *OffsetIterator) Next() bool {
	o := it.offsets
	if !it.started {
		it.started = true
		it.offset = o.runs[0].Offset
		return true
	}
	if it.run >= len(o.runs) {
		return false
	}
	it.index++
	if it.index < o.runs[it.run].Length {
		it.offset += o.stride
		return true
	}
	it.index = 0
	it.run++
	if it.run >= len(o.runs) {
		return false
	}
	it.offset = o.runs[it.run].Offset
	return true
}

// Offset returns the linear offset of the current pixel relative to the
// neighborhood origin.
func (it *OffsetIterator) Offset() int {
	return it.offset
}

// Reset repositions the iterator before the first pixel.
func (it *OffsetIterator) Reset() {
	it.run = 0
	it.index = 0
	it.started = false
}
