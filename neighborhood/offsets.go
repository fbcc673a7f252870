package neighborhood

// OffsetRun is a span of consecutive member pixels expressed in memory-layout
// space: Offset is the linear offset of the first pixel relative to the
// neighborhood origin, and successive pixels are Stride() apart.
type OffsetRun struct {
	Offset int
	Length int
}

// Offsets is the projection of a Table onto one array's memory layout,
// produced by Table.Prepare. It is structurally identical to its parent
// table but stores offsets instead of coordinates.
//
// An Offsets value is only valid for arrays whose sizes and strides exactly
// match the array it was prepared for. It cannot detect misuse; the caller
// must guard this precondition (see ErrIncompatibleLayout for the cases that
// are detectable at Prepare time).
type Offsets struct {
	runs    []OffsetRun
	sizes   []int
	origin  []int
	nPixels int
	procDim int
	stride  int
}

// Runs returns the offset run list. The returned slice must not be modified.
func (o *Offsets) Runs() []OffsetRun {
	return o.runs
}

// Dimensionality returns the number of dimensions of the neighborhood.
func (o *Offsets) Dimensionality() int {
	return len(o.sizes)
}

// Sizes returns a copy of the bounding box extents.
func (o *Offsets) Sizes() []int {
	return append([]int(nil), o.sizes...)
}

// Origin returns a copy of the origin position within the bounding box.
func (o *Offsets) Origin() []int {
	return append([]int(nil), o.origin...)
}

// NumberOfPixels returns the total number of member pixels.
func (o *Offsets) NumberOfPixels() int {
	return o.nPixels
}

// ProcessingDimension returns the dimension along which runs are laid out.
func (o *Offsets) ProcessingDimension() int {
	return o.procDim
}

// Stride returns the array stride along the processing dimension, the step
// between consecutive pixels within a run.
func (o *Offsets) Stride() int {
	return o.stride
}
