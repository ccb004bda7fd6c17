package render

import "sync"

// rowPool recycles per-row scratch buffers across tasks and frames.
type rowPool struct {
	pool sync.Pool
}

func newRowPool() *rowPool {
	return &rowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]bool, 0)
				return &row
			},
		},
	}
}

func (p *rowPool) Get(width int) *[]bool {
	row := p.pool.Get().(*[]bool)
	if cap(*row) < width {
		*row = make([]bool, width)
	}
	*row = (*row)[:width]
	return row
}

func (p *rowPool) Put(row *[]bool) {
	p.pool.Put(row)
}
