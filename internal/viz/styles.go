package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#1a1a2e"))

	StatusLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Background(lipgloss.Color("#1a1a2e"))

	StatusValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Background(lipgloss.Color("#1a1a2e")).
			Bold(true)

	StatusBusy = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Background(lipgloss.Color("#1a1a2e")).
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Background(lipgloss.Color("#1a1a2e")).
		Italic(true)
)

// Status is what the explorer reports after a frame.
type Status struct {
	Elapsed   time.Duration
	Threshold int
	CacheHits uint64
	CacheSize int
	Center    [2]float64
	Scalar    float64
}

// Title is the plain-text window title for a finished frame.
func (s Status) Title() string {
	return fmt.Sprintf("Finished processing in %v threshold=%d cache_hits=%d", s.Elapsed, s.Threshold, s.CacheHits)
}

// StatusLine renders s as a single styled line cut to width cells.
func StatusLine(s Status, width int) string {
	if width <= 0 {
		return ""
	}

	field := func(label, value string) string {
		return StatusLabel.Render(" "+label+" ") + StatusValue.Render(value)
	}

	parts := []string{
		field("time", s.Elapsed.Round(time.Microsecond).String()),
		field("iter", fmt.Sprintf("%d", s.Threshold)),
		field("hits", fmt.Sprintf("%d", s.CacheHits)),
		field("cache", fmt.Sprintf("%d", s.CacheSize)),
		field("at", fmt.Sprintf("%+.6g%+.6gi", s.Center[0], s.Center[1])),
		field("px", fmt.Sprintf("%.3g", s.Scalar)),
		KeyHint.Render("  wasd pan  =/- zoom  up/down iter  alt x10  q quit"),
	}

	line := ansi.Truncate(strings.Join(parts, StatusBar.Render(" ")), width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += StatusBar.Render(strings.Repeat(" ", pad))
	}
	return line
}

// BusyLine is shown while a frame is being computed.
func BusyLine(width int) string {
	if width <= 0 {
		return ""
	}
	return StatusBar.Render(ansi.Truncate(StatusBusy.Render(" Calculating...")+strings.Repeat(" ", width), width, ""))
}
