package metrics

import (
	"time"

	"github.com/san-kum/mandelterm/internal/render"
)

// Metric accumulates a value over a sequence of frames.
type Metric interface {
	Name() string
	Observe(s render.Stats)
	Value() float64
	Reset()
}

// Defaults returns the metrics the bench command reports.
func Defaults() []Metric {
	return []Metric{NewFrameTime(), NewPeakFrameTime(), NewCacheHitRate(), NewThroughput()}
}

// FrameTime is the mean frame time in milliseconds.
type FrameTime struct {
	total  time.Duration
	frames int
}

func NewFrameTime() *FrameTime { return &FrameTime{} }

func (f *FrameTime) Name() string { return "frame_ms" }

func (f *FrameTime) Observe(s render.Stats) {
	f.total += s.Elapsed
	f.frames++
}

func (f *FrameTime) Value() float64 {
	if f.frames == 0 {
		return 0
	}
	return float64(f.total) / float64(f.frames) / float64(time.Millisecond)
}

func (f *FrameTime) Reset() {
	f.total = 0
	f.frames = 0
}

// PeakFrameTime is the slowest frame in milliseconds.
type PeakFrameTime struct {
	peak time.Duration
}

func NewPeakFrameTime() *PeakFrameTime { return &PeakFrameTime{} }

func (p *PeakFrameTime) Name() string { return "peak_ms" }

func (p *PeakFrameTime) Observe(s render.Stats) {
	if s.Elapsed > p.peak {
		p.peak = s.Elapsed
	}
}

func (p *PeakFrameTime) Value() float64 { return float64(p.peak) / float64(time.Millisecond) }

func (p *PeakFrameTime) Reset() { p.peak = 0 }

// CacheHitRate is the share of pixels served from the cache, counted over
// cached frames only.
type CacheHitRate struct {
	hits   uint64
	pixels int
}

func NewCacheHitRate() *CacheHitRate { return &CacheHitRate{} }

func (c *CacheHitRate) Name() string { return "cache_hit_rate" }

func (c *CacheHitRate) Observe(s render.Stats) {
	if !s.Cached {
		return
	}
	c.hits += s.CacheHits
	c.pixels += s.Pixels
}

func (c *CacheHitRate) Value() float64 {
	if c.pixels == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.pixels)
}

func (c *CacheHitRate) Reset() {
	c.hits = 0
	c.pixels = 0
}

// Throughput is pixels per second over all observed frames.
type Throughput struct {
	pixels  int
	elapsed time.Duration
}

func NewThroughput() *Throughput { return &Throughput{} }

func (t *Throughput) Name() string { return "pixels_per_sec" }

func (t *Throughput) Observe(s render.Stats) {
	t.pixels += s.Pixels
	t.elapsed += s.Elapsed
}

func (t *Throughput) Value() float64 {
	if t.elapsed <= 0 {
		return 0
	}
	return float64(t.pixels) / t.elapsed.Seconds()
}

func (t *Throughput) Reset() {
	t.pixels = 0
	t.elapsed = 0
}
