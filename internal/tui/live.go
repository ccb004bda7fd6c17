package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/mandelterm/internal/automation"
	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer plays tour frames to a plain terminal without taking over
// input. Frames arriving faster than frameRate are skipped.
type LiveRenderer struct {
	out       io.Writer
	grid      *bits.Grid
	frameRate int
	lastFrame time.Time
	shown     int
}

func NewLiveRenderer(out io.Writer, grid *bits.Grid, frameRate int) *LiveRenderer {
	return &LiveRenderer{out: out, grid: grid, frameRate: frameRate}
}

// OnFrame is an automation observer.
func (r *LiveRenderer) OnFrame(res automation.FrameResult) {
	if r.frameRate > 0 && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.shown++

	var b strings.Builder
	b.WriteString(clearScreen)
	for _, line := range viz.Lines(r.grid) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "step %d %-9s %v threshold=%d cache_hits=%d\n",
		res.Step, res.Action, res.Stats.Elapsed.Round(time.Microsecond), res.Stats.Threshold, res.Stats.CacheHits)

	io.WriteString(r.out, b.String())
}

// Shown is the number of frames actually drawn.
func (r *LiveRenderer) Shown() int { return r.shown }

func (r *LiveRenderer) Start() { io.WriteString(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { io.WriteString(r.out, showCursor) }
