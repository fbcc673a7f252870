package sepconv

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-ndfilter/array"
	"github.com/cwbudde/algo-ndfilter/boundary"
	"github.com/cwbudde/algo-ndfilter/internal/linebuf"
)

var pool = linebuf.NewPool()

// pass is one fully-resolved axis pass of the separable convolution.
type pass struct {
	axis    int
	weights []float64
	origin  int
	cond    boundary.Condition
}

// Convolve applies a separable convolution: one 1D filter per dimension,
// each via correlation against boundary-extended lines. filters must hold
// either one filter, broadcast to every dimension, or exactly one filter
// per dimension. Dimensions whose process flag is false, or whose filter is
// a no-op, pass through unchanged.
//
// Axes are processed in ascending index order so results are reproducible
// bit for bit across runs. Lines within one axis pass are processed in
// parallel; passes themselves are sequential. Tensor components are
// filtered independently.
func Convolve(in *array.Array, filters []Filter, opts ...Option) (*array.Array, error) {
	return ConvolveContext(context.Background(), in, filters, opts...)
}

// ConvolveContext is Convolve with caller-controlled cancellation. The
// context is checked between axis passes and between line batches within a
// pass.
func ConvolveContext(ctx context.Context, in *array.Array, filters []Filter, opts ...Option) (*array.Array, error) {
	nd := in.Dimensionality()
	if len(filters) != 1 && len(filters) != nd {
		return nil, fmt.Errorf("%w: %d filters for %d dimensions",
			ErrDimensionMismatch, len(filters), nd)
	}
	cfg := applyOptions(opts)

	conds, err := broadcastConditions(cfg.conds, nd)
	if err != nil {
		return nil, err
	}
	process, err := broadcastProcess(cfg.process, nd)
	if err != nil {
		return nil, err
	}

	var passes []pass
	for d := 0; d < nd; d++ {
		f := filters[0]
		if len(filters) > 1 {
			f = filters[d]
		}
		if !process[d] || f.IsNoOp() {
			continue
		}
		weights, origin, err := f.Expand()
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		passes = append(passes, pass{axis: d, weights: weights, origin: origin, cond: conds[d]})
	}
	if len(passes) == 0 {
		return in.Clone(), nil
	}

	workers := cfg.parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	current := in
	for _, p := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := array.NewTensor(in.TensorLength(), in.Sizes()...)
		if err != nil {
			return nil, err
		}
		if err := runPass(ctx, out, current, p, cfg.boundaryValue, workers); err != nil {
			return nil, err
		}
		current = out
	}
	return current, nil
}

// runPass filters every line of every tensor component along p.axis from src
// into dst. Lines are split into contiguous chunks, one goroutine per chunk,
// writing disjoint output regions.
func runPass(ctx context.Context, dst, src *array.Array, p pass, value float64, workers int) error {
	n := src.Size(p.axis)
	lines := src.LineCount(p.axis)
	left := p.origin
	right := len(p.weights) - 1 - p.origin

	if workers > lines {
		workers = lines
	}
	chunk := (lines + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for t := 0; t < src.TensorLength(); t++ {
		for start := 0; start < lines; start += chunk {
			end := start + chunk
			if end > lines {
				end = lines
			}
			g.Go(func() error {
				line := pool.Get(n)
				out := pool.Get(n)
				scratch := pool.Get(n)
				defer pool.Put(line)
				defer pool.Put(out)
				defer pool.Put(scratch)
				var ext []float64
				for li := start; li < end; li++ {
					if li%64 == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}
					src.CopyLine(*line, t, src.LineStart(p.axis, li), p.axis)
					var err error
					ext, err = boundary.ExtendLine(ext, *line, left, right, p.cond, value)
					if err != nil {
						return err
					}
					correlateLine(*out, ext, p.weights, *scratch)
					dst.SetLine(*out, t, dst.LineStart(p.axis, li), p.axis)
				}
				return nil
			})
		}
	}
	return g.Wait()
}

func broadcastConditions(conds []boundary.Condition, nd int) ([]boundary.Condition, error) {
	switch len(conds) {
	case 0:
		return make([]boundary.Condition, nd), nil // zero value is Mirror
	case 1:
		out := make([]boundary.Condition, nd)
		for d := range out {
			out[d] = conds[0]
		}
		return out, nil
	case nd:
		return conds, nil
	default:
		return nil, fmt.Errorf("%w: %d boundary conditions for %d dimensions",
			ErrDimensionMismatch, len(conds), nd)
	}
}

func broadcastProcess(process []bool, nd int) ([]bool, error) {
	switch len(process) {
	case 0:
		out := make([]bool, nd)
		for d := range out {
			out[d] = true
		}
		return out, nil
	case 1:
		out := make([]bool, nd)
		for d := range out {
			out[d] = process[0]
		}
		return out, nil
	case nd:
		return process, nil
	default:
		return nil, fmt.Errorf("%w: %d process flags for %d dimensions",
			ErrDimensionMismatch, len(process), nd)
	}
}
