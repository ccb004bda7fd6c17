// Package session holds the interactive state that persists between frames:
// the two axis scalers, the iteration threshold and the pan cache.
//
// A Session is created empty and picks its default view on the first frame,
// once the grid size is known. Input handlers mutate it through Pan, ZoomIn,
// ZoomOut and the threshold methods; Frame then recomputes the whole grid.
//
// Session is NOT thread-safe. It is driven by one input loop.
package session

import (
	"log/slog"

	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/scaler"
)

// Action is the kind of change that led to the next frame.
type Action int

const (
	ActionRedraw Action = iota
	ActionPan
	ActionZoom
	ActionThreshold
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionPan:
		return "pan"
	case ActionZoom:
		return "zoom"
	case ActionThreshold:
		return "threshold"
	case ActionResize:
		return "resize"
	default:
		return "redraw"
	}
}

type Options struct {
	Threshold int
	View      config.View
	Workers   int
	// Cache is consulted on pan frames only. nil disables caching.
	Cache  mandel.Cache
	Logger *slog.Logger
}

// DefaultOptions mirrors config.DefaultConfig with an unbounded cache.
func DefaultOptions() Options {
	return Options{
		Threshold: config.DefaultThreshold,
		View:      config.FullView,
		Cache:     mandel.NewShardedCache(0),
	}
}

type Session struct {
	view      config.View
	threshold int
	cache     mandel.Cache
	engine    *render.Engine
	log       *slog.Logger

	ready  bool
	sx, sy scaler.Scaler

	last   Action
	stale  bool
	frames int
}

func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	threshold := opts.Threshold
	if threshold < 0 {
		threshold = 0
	}
	return &Session{
		view:      opts.View,
		threshold: threshold,
		cache:     opts.Cache,
		engine:    render.New(opts.Workers),
		log:       log,
		stale:     true,
	}
}

// init fits the view onto the shorter grid side.
func (s *Session) init(g *bits.Grid) {
	side := float64(min(g.Width(), g.Height()))
	s.sx = scaler.MustNew(0, side, s.view.XMin, s.view.XMax)
	s.sy = scaler.MustNew(0, side, s.view.YMin, s.view.YMax)
	s.ready = true
	s.log.Debug("view initialized", "side", side, "x", s.sx.String(), "y", s.sy.String())
}

func (s *Session) Ready() bool        { return s.ready }
func (s *Session) Threshold() int     { return s.threshold }
func (s *Session) Frames() int        { return s.frames }
func (s *Session) LastAction() Action { return s.last }

func (s *Session) Scalers() (x, y scaler.Scaler) { return s.sx, s.sy }

func (s *Session) Workers() int { return s.engine.Workers() }

// CacheLen is the number of memoized points, 0 without a cache.
func (s *Session) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// Center is the logical coordinate at the middle of the initial view side.
func (s *Session) Center() (x, y float64) {
	if !s.ready {
		return (s.view.XMin + s.view.XMax) / 2, (s.view.YMin + s.view.YMax) / 2
	}
	return s.sx.Center(), s.sy.Center()
}

// Pan moves the view by dx, dy pixels times mult. It reports false before
// the first frame.
func (s *Session) Pan(dx, dy, mult int) bool {
	if !s.ready {
		return false
	}
	if dx != 0 {
		s.sx = s.sx.Offset(float64(dx*mult) * s.sx.Scalar())
	}
	if dy != 0 {
		s.sy = s.sy.Offset(float64(dy*mult) * s.sy.Scalar())
	}
	s.last = ActionPan
	return true
}

func (s *Session) ZoomIn(steps int) bool {
	if !s.ready {
		return false
	}
	for i := 0; i < steps; i++ {
		s.sx = s.sx.ZoomIn()
		s.sy = s.sy.ZoomIn()
	}
	s.last = ActionZoom
	return true
}

func (s *Session) ZoomOut(steps int) bool {
	if !s.ready {
		return false
	}
	for i := 0; i < steps; i++ {
		s.sx = s.sx.ZoomOut()
		s.sy = s.sy.ZoomOut()
	}
	s.last = ActionZoom
	return true
}

func (s *Session) RaiseThreshold(n int) bool {
	if !s.ready {
		return false
	}
	s.setThreshold(s.threshold + n)
	return true
}

// LowerThreshold saturates at zero.
func (s *Session) LowerThreshold(n int) bool {
	if !s.ready {
		return false
	}
	s.setThreshold(max(s.threshold-n, 0))
	return true
}

// setThreshold purges the cache because its keys do not carry the threshold.
func (s *Session) setThreshold(t int) {
	if t != s.threshold && s.cache != nil {
		s.cache.Purge()
	}
	s.threshold = t
	s.last = ActionThreshold
}

// Jump switches to view on the next frame.
func (s *Session) Jump(view config.View) {
	s.view = view
	s.ready = false
	s.last = ActionRedraw
}

// Reset returns to the current preset view on the next frame.
func (s *Session) Reset() {
	s.ready = false
	s.last = ActionRedraw
}

// Resize changes the grid to width x height. Every bit is stale until the
// next Frame, which will not use the cache.
func (s *Session) Resize(g *bits.Grid, width, height int) {
	g.Resize(width, height, false)
	s.stale = true
	s.last = ActionResize
}

// Frame recomputes every bit of g. Only a pan on an unchanged grid goes
// through the cache; zooms and threshold changes rarely revisit a key.
func (s *Session) Frame(g *bits.Grid) render.Stats {
	if g.Area() == 0 {
		return render.Stats{Threshold: s.threshold}
	}
	if !s.ready {
		s.init(g)
	}

	var cache mandel.Cache
	if s.last == ActionPan && !s.stale {
		cache = s.cache
	}

	g.Clear()
	stats := s.engine.Render(g, s.sx, s.sy, s.threshold, cache)
	s.stale = false
	s.frames++

	s.log.Debug("frame",
		"n", s.frames,
		"action", s.last.String(),
		"size", [2]int{g.Width(), g.Height()},
		"elapsed", stats.Elapsed,
		"threshold", stats.Threshold,
		"cached", stats.Cached,
		"cache_hits", stats.CacheHits,
		"cache_size", s.CacheLen(),
	)
	return stats
}
