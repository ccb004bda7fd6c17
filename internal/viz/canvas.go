package viz

import (
	"strings"

	"github.com/san-kum/mandelterm/internal/bits"
)

// Sub-cell resolution of one terminal cell.
const (
	CellWidth  = 2
	CellHeight = 3
)

// GridSize returns the grid dimensions backing a cols x rows terminal area.
func GridSize(cols, rows int) (width, height int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols * CellWidth, rows * CellHeight
}

// Canvas owns the grid behind a fixed-size block of terminal cells.
type Canvas struct {
	Cols, Rows int
	grid       *bits.Grid
}

func NewCanvas(cols, rows int) *Canvas {
	w, h := GridSize(cols, rows)
	return &Canvas{Cols: max(cols, 0), Rows: max(rows, 0), grid: bits.New(w, h)}
}

func (c *Canvas) Grid() *bits.Grid { return c.grid }

// Resize changes the cell dimensions. All grid bits are stale afterwards.
func (c *Canvas) Resize(cols, rows int) {
	w, h := GridSize(cols, rows)
	c.Cols, c.Rows = max(cols, 0), max(rows, 0)
	c.grid.Resize(w, h, false)
}

func (c *Canvas) Lines() []string { return Lines(c.grid) }

func (c *Canvas) String() string { return strings.Join(c.Lines(), "\n") }

// Lines encodes g one terminal row at a time, left to right. A trailing
// column or rows that do not fill a whole cell are dropped.
func Lines(g *bits.Grid) []string {
	cols := g.Width() / CellWidth
	rows := g.Height() / CellHeight

	lines := make([]string, rows)
	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.Reset()
		b.Grow(cols * 4)
		y := row * CellHeight
		for col := 0; col < cols; col++ {
			x := col * CellWidth
			b.WriteRune(Sextant(
				bit(g, x, y), bit(g, x+1, y),
				bit(g, x, y+1), bit(g, x+1, y+1),
				bit(g, x, y+2), bit(g, x+1, y+2),
			))
		}
		lines[row] = b.String()
	}
	return lines
}

func bit(g *bits.Grid, x, y int) bool {
	v, _ := g.Get(x, y)
	return v
}
