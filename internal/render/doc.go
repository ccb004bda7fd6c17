// Package render fills a [bits.Grid] with escape-time results.
//
// The [Engine] evaluates one task per grid row on a bounded worker pool
// sized to the available CPUs. Each task computes y0 once, walks its
// columns sequentially and commits the finished row under the engine's
// single write lock; rows share packed words, so the grid itself cannot be
// split between goroutines.
//
// A set bit means the point escaped: the set interior renders as
// background and the boundary detail as foreground glyphs.
//
// Frames are not cancellable. Render returns only after every row is
// written.
package render
