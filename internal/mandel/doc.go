// Package mandel provides the escape-time test for the Mandelbrot set and
// the memo caches used while panning.
//
// The evaluator is a pure function of (x0, y0, threshold):
//
//	inside := mandel.InSet(x0, y0, 500)
//
// # Caches
//
// A [Cache] maps an exact coordinate pair to a membership result. Keys
// compare the IEEE-754 bit patterns, so -0 and +0 are distinct and no
// tolerance is applied. That is only useful because panning shifts the
// window by whole multiples of the pixel step: most pixels of the new frame
// land on exactly the same coordinate as a pixel of an earlier one.
//
// Cache entries do not record the threshold. Owners must [Cache.Purge]
// whenever the threshold changes.
//
// # Thread Safety
//
// All Cache implementations are safe for concurrent use. Two goroutines
// that miss the same key both evaluate and both insert; since the result
// is deterministic the second insert is a harmless overwrite.
package mandel
