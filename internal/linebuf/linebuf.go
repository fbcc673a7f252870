// Package linebuf provides sync.Pool-based reuse of scratch line buffers for
// the per-line convolution loops.
package linebuf

import "sync"

// Pool recycles float64 line buffers to reduce GC pressure when many short
// lines are processed in parallel.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				s := make([]float64, 0)
				return &s
			},
		},
	}
}

// Get returns a buffer of the requested length. Contents are unspecified;
// callers must overwrite before reading. Return it via Put when done.
func (p *Pool) Get(length int) *[]float64 {
	b := p.pool.Get().(*[]float64)
	if cap(*b) < length {
		*b = make([]float64, length)
	}
	*b = (*b)[:length]
	return b
}

// Put returns a buffer to the pool. The caller must not use it afterwards.
func (p *Pool) Put(b *[]float64) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
