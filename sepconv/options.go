package sepconv

import (
	"github.com/cwbudde/algo-ndfilter/boundary"
)

// config collects the tunable parts of a convolution call.
type config struct {
	conds         []boundary.Condition
	boundaryValue float64
	process       []bool
	parallelism   int
}

// Option mutates the engine configuration.
type Option func(*config)

// WithBoundary sets the per-dimension boundary conditions. A single
// condition is broadcast to every dimension. The default is mirror.
func WithBoundary(conds ...boundary.Condition) Option {
	return func(cfg *config) {
		cfg.conds = conds
	}
}

// WithBoundaryValue sets the value used by the constant boundary condition.
func WithBoundaryValue(v float64) Option {
	return func(cfg *config) {
		cfg.boundaryValue = v
	}
}

// WithProcess selects which dimensions are filtered. Unselected dimensions
// pass through unchanged. The default is all dimensions.
func WithProcess(flags ...bool) Option {
	return func(cfg *config) {
		cfg.process = flags
	}
}

// WithParallelism bounds the number of goroutines used per axis pass.
// Zero or negative selects GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(cfg *config) {
		cfg.parallelism = n
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
