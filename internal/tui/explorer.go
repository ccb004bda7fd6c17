package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/mandelterm/internal/bits"
	"github.com/san-kum/mandelterm/internal/config"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
	"github.com/san-kum/mandelterm/internal/session"
	"github.com/san-kum/mandelterm/internal/viz"
)

type frameMsg struct {
	stats render.Stats
	lines []string
}

// model owns the session and grid. While a frame is computing, input is
// queued and applied once it lands, so the session is never touched from two
// goroutines.
type model struct {
	session   *session.Session
	grid      *bits.Grid
	keys      config.KeyConfig
	statusBar bool
	log       *slog.Logger

	width  int
	height int

	busy    bool
	pending []tea.Msg
	lines   []string
	status  viz.Status
}

func newModel(cfg *config.Config, log *slog.Logger) (model, error) {
	if log == nil {
		log = slog.Default()
	}
	cache, err := mandel.NewCache(cfg.Cache.Kind, cfg.Cache.Size)
	if err != nil {
		return model{}, err
	}
	s := session.New(session.Options{
		Threshold: cfg.Threshold,
		View:      cfg.View,
		Workers:   cfg.Workers,
		Cache:     cache,
		Logger:    log,
	})
	return model{
		session:   s,
		grid:      bits.New(0, 0),
		keys:      cfg.Keys,
		statusBar: cfg.StatusBar,
		log:       log,
	}, nil
}

func (m model) Init() tea.Cmd { return tea.SetWindowTitle("mandelterm") }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.busy = false
		m.lines = msg.lines
		m.status = m.statusFor(msg.stats)
		cmds := []tea.Cmd{tea.SetWindowTitle(m.status.Title())}

		pending := m.pending
		m.pending = nil
		dirty := false
		for _, p := range pending {
			if isQuit(p) {
				return m, tea.Quit
			}
			dirty = m.apply(p) || dirty
		}
		if dirty {
			cmds = append(cmds, m.startFrame())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg, tea.WindowSizeMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
		if m.busy {
			m.pending = append(m.pending, msg)
			return m, nil
		}
		if m.apply(msg) {
			return m, m.startFrame()
		}
	}
	return m, nil
}

func isQuit(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch k.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

// apply feeds one input into the session and reports whether it needs a
// new frame.
func (m *model) apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		rows := msg.Height
		if m.statusBar && rows > 0 {
			rows--
		}
		w, h := viz.GridSize(msg.Width, rows)
		m.session.Resize(m.grid, w, h)
		return true
	case tea.KeyMsg:
		return m.key(msg)
	}
	return false
}

func (m *model) key(msg tea.KeyMsg) bool {
	k := tea.Key(msg)
	fast := k.Alt
	k.Alt = false

	mult := func(n int) int {
		if fast && n > 0 {
			return n
		}
		return 1
	}

	s := m.session
	switch k.String() {
	case "w":
		return s.Pan(0, -1, mult(m.keys.FastPan))
	case "s":
		return s.Pan(0, 1, mult(m.keys.FastPan))
	case "a":
		return s.Pan(-1, 0, mult(m.keys.FastPan))
	case "d":
		return s.Pan(1, 0, mult(m.keys.FastPan))
	case "=", "+":
		return s.ZoomIn(mult(m.keys.FastZoom))
	case "-":
		return s.ZoomOut(mult(m.keys.FastZoom))
	case "up":
		return s.RaiseThreshold(mult(m.keys.FastThreshold))
	case "down":
		return s.LowerThreshold(mult(m.keys.FastThreshold))
	case "r":
		if !s.Ready() {
			return false
		}
		s.Reset()
		return true
	}
	return false
}

func (m *model) startFrame() tea.Cmd {
	m.busy = true
	s, g := m.session, m.grid
	return func() tea.Msg {
		stats := s.Frame(g)
		return frameMsg{stats: stats, lines: viz.Lines(g)}
	}
}

func (m model) statusFor(stats render.Stats) viz.Status {
	x, y := m.session.Center()
	sx, _ := m.session.Scalers()
	return viz.Status{
		Elapsed:   stats.Elapsed,
		Threshold: stats.Threshold,
		CacheHits: stats.CacheHits,
		CacheSize: m.session.CacheLen(),
		Center:    [2]float64{x, y},
		Scalar:    sx.Scalar(),
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(strings.Join(m.lines, "\n"))
	if !m.statusBar || m.width == 0 {
		return b.String()
	}

	if len(m.lines) > 0 {
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString(viz.BusyLine(m.width))
	} else {
		b.WriteString(viz.StatusLine(m.status, m.width))
	}
	return b.String()
}

// RunInteractive runs the explorer in the alternate screen until the user
// quits.
func RunInteractive(cfg *config.Config, log *slog.Logger) error {
	m, err := newModel(cfg, log)
	if err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
