// Package viz turns a bi-level [bits.Grid] into terminal text.
//
// Each terminal cell shows a 2x3 block of grid bits as one glyph from the
// Unicode sextant set (U+1FB00..U+1FB3B) plus the four block elements that
// cover the remaining patterns:
//
//	1 2      top-left     top-right
//	3 4  ->  middle-left  middle-right
//	5 6      bottom-left  bottom-right
//
// A terminal of C columns and R rows therefore needs a 2C x 3R grid, see
// [GridSize].
//
// The package also holds the lipgloss styles for the explorer status bar.
package viz
