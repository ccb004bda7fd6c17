package render

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/scaler"
	"golang.org/x/sync/errgroup"
)

// Stats describes one finished frame.
type Stats struct {
	Elapsed   time.Duration
	Rows      int
	Pixels    int
	Threshold int
	Cached    bool
	CacheHits uint64
}

// HitRate is the fraction of pixels served from the cache.
func (s Stats) HitRate() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(s.Pixels)
}

type Engine struct {
	workers int
	rows    *rowPool

	// mu serializes grid writes.
	mu sync.Mutex
}

// New returns an engine running at most workers rows at once. workers <= 0
// uses runtime.GOMAXPROCS(0).
func New(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{workers: workers, rows: newRowPool()}
}

func (e *Engine) Workers() int { return e.workers }

// Render evaluates every pixel of g. sx and sy map column and row indices
// to the real and imaginary parts of c. A nil cache evaluates every pixel
// directly.
func (e *Engine) Render(g *bits.Grid, sx, sy scaler.Scaler, threshold int, cache mandel.Cache) Stats {
	start := time.Now()
	width, height := g.Width(), g.Height()

	var hits atomic.Uint64
	var eg errgroup.Group
	eg.SetLimit(e.workers)

	for py := 0; py < height; py++ {
		eg.Go(func() error {
			buf := e.rows.Get(width)
			defer e.rows.Put(buf)
			row := *buf

			y0 := sy.Scale(float64(py))
			var rowHits uint64
			for px := range row {
				x0 := sx.Scale(float64(px))

				var inside bool
				if cache != nil {
					var hit bool
					inside, hit = mandel.Lookup(cache, x0, y0, threshold)
					if hit {
						rowHits++
					}
				} else {
					inside = mandel.InSet(x0, y0, threshold)
				}
				row[px] = !inside
			}
			if rowHits > 0 {
				hits.Add(rowHits)
			}

			e.mu.Lock()
			g.SetRow(py, row)
			e.mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return Stats{
		Elapsed:   time.Since(start),
		Rows:      height,
		Pixels:    width * height,
		Threshold: threshold,
		Cached:    cache != nil,
		CacheHits: hits.Load(),
	}
}
