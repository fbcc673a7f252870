// Package sepconv implements separable n-dimensional convolution.
//
// A convolution is described by one compact 1D Filter per dimension. Filters
// with a symmetry store only half of their weights; Expand derives the
// effective filter. The engine applies one axis pass per filter: every line
// along the axis is copied out, extended with the configured boundary
// condition, correlated against the expanded weights and written back.
//
// Axis passes run in ascending dimension order and each pass distributes its
// lines over a bounded set of goroutines, so results are reproducible
// regardless of parallelism.
package sepconv
