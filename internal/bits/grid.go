package bits

import (
	"errors"
	"fmt"
	mbits "math/bits"
)

// ErrOutOfRange is the panic value for writes outside the grid.
var ErrOutOfRange = errors.New("bits: coordinate out of range")

const wordSize = 64

type Grid struct {
	width  int
	height int
	n      int
	words  []uint64
}

func New(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("bits: negative size %dx%d", width, height))
	}
	n := width * height
	return &Grid{
		width:  width,
		height: height,
		n:      n,
		words:  make([]uint64, wordsFor(n)),
	}
}

func wordsFor(n int) int { return (n + wordSize - 1) / wordSize }

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Area is the length of the bit sequence, always Width()*Height().
func (g *Grid) Area() int { return g.n }

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get reports the bit at (x, y). ok is false when (x, y) lies outside the grid.
func (g *Grid) Get(x, y int) (v bool, ok bool) {
	if !g.InBounds(x, y) {
		return false, false
	}
	return g.bit(y*g.width + x), true
}

// Set writes the bit at (x, y). Out-of-range coordinates are a caller bug
// and panic.
func (g *Grid) Set(x, y int, v bool) {
	if !g.InBounds(x, y) {
		panic(fmt.Errorf("%w: Set(%d, %d) on %dx%d grid", ErrOutOfRange, x, y, g.width, g.height))
	}
	g.setBit(y*g.width+x, v)
}

// SetRow writes a full row. len(row) must equal Width().
func (g *Grid) SetRow(y int, row []bool) {
	if y < 0 || y >= g.height || len(row) != g.width {
		panic(fmt.Errorf("%w: SetRow(%d) with %d values on %dx%d grid", ErrOutOfRange, y, len(row), g.width, g.height))
	}
	base := y * g.width
	for x, v := range row {
		g.setBit(base+x, v)
	}
}

func (g *Grid) Clear() {
	for i := range g.words {
		g.words[i] = 0
	}
}

func (g *Grid) Fill() {
	for i := range g.words {
		g.words[i] = ^uint64(0)
	}
	g.trimTail()
}

// Count returns the number of set bits.
func (g *Grid) Count() int {
	c := 0
	for _, w := range g.words {
		c += mbits.OnesCount64(w)
	}
	return c
}

// Resize changes the dimensions in place. Shrinking truncates the bit
// sequence from the end, growing appends fill. Old bits keep their linear
// index, not their (x, y), so callers must recompute the whole grid.
func (g *Grid) Resize(width, height int, fill bool) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("bits: negative size %dx%d", width, height))
	}
	old := g.n
	n := width * height
	g.width, g.height = width, height

	need := wordsFor(n)
	switch {
	case need <= len(g.words):
		g.words = g.words[:need]
	case need <= cap(g.words):
		tail := g.words[len(g.words):need]
		for i := range tail {
			tail[i] = 0
		}
		g.words = g.words[:need]
	default:
		words := make([]uint64, need)
		copy(words, g.words)
		g.words = words
	}
	g.n = n

	if n < old {
		g.trimTail()
		return
	}
	if fill {
		for i := old; i < n; i++ {
			g.setBit(i, true)
		}
	}
}

// String renders the grid as rows of '#' and '.', mostly for tests.
func (g *Grid) String() string {
	b := make([]byte, 0, g.n+g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.bit(y*g.width + x) {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}

func (g *Grid) bit(i int) bool {
	return g.words[i/wordSize]&(1<<uint(i%wordSize)) != 0
}

func (g *Grid) setBit(i int, v bool) {
	mask := uint64(1) << uint(i%wordSize)
	if v {
		g.words[i/wordSize] |= mask
	} else {
		g.words[i/wordSize] &^= mask
	}
}

// trimTail zeroes the unused bits of the last word so Count and a later
// grow never see stale bits.
func (g *Grid) trimTail() {
	if r := g.n % wordSize; r != 0 {
		g.words[len(g.words)-1] &= (uint64(1) << uint(r)) - 1
	}
}
