// Package bits provides a packed bi-level bitmap addressed by (x, y).
//
// A [Grid] stores width*height bits in row-major order, 64 bits per word.
// It is sized for sextant rendering: a terminal of C columns and R rows is
// backed by a 2C x 3R grid, see package viz.
//
// # Resizing
//
// [Grid.Resize] only adjusts the length of the bit sequence: it truncates
// from the end when shrinking and appends a fill value when growing. It
// does not keep the 2D meaning of old bits, so every bit must be rewritten
// before it is read again.
//
// # Thread Safety
//
// Grid is NOT thread-safe. Concurrent writers must serialize through a
// single lock; rows share words, so they cannot be split per goroutine.
package bits
