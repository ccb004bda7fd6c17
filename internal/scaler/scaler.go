// Package scaler maps integer pixel indices onto a real-valued axis.
//
// A Scaler is an immutable affine transform from a fixed pixel domain
// [originalMin, originalMax] onto a target window [targetMin, targetMax].
// Panning and zooming return a freshly built Scaler so that the per-pixel
// step is always recomputed from the window and never accumulates drift.
package scaler

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateDomain is returned when the pixel domain has zero width.
var ErrDegenerateDomain = errors.New("scaler: original domain has zero width")

type Scaler struct {
	originalMin, originalMax float64
	targetMin, targetMax     float64
	scalar                   float64
}

func New(originalMin, originalMax, targetMin, targetMax float64) (Scaler, error) {
	if originalMax == originalMin {
		return Scaler{}, fmt.Errorf("%w: [%g, %g]", ErrDegenerateDomain, originalMin, originalMax)
	}
	return build(originalMin, originalMax, targetMin, targetMax), nil
}

// MustNew is New for callers that guarantee a non-degenerate domain.
func MustNew(originalMin, originalMax, targetMin, targetMax float64) Scaler {
	s, err := New(originalMin, originalMax, targetMin, targetMax)
	if err != nil {
		panic(err)
	}
	return s
}

func build(originalMin, originalMax, targetMin, targetMax float64) Scaler {
	return Scaler{
		originalMin: originalMin,
		originalMax: originalMax,
		targetMin:   targetMin,
		targetMax:   targetMax,
		scalar:      (targetMax - targetMin) / (originalMax - originalMin),
	}
}

// Scale maps a pixel index to its logical coordinate.
func (s Scaler) Scale(n float64) float64 {
	n -= s.originalMin
	n *= s.scalar
	n += s.targetMin
	return n
}

// Offset shifts the target window by amount. The step size is unchanged.
func (s Scaler) Offset(amount float64) Scaler {
	return build(s.originalMin, s.originalMax, s.targetMin+amount, s.targetMax+amount)
}

// ZoomIn narrows the window by half a step at each end.
func (s Scaler) ZoomIn() Scaler {
	half := s.scalar / 2
	return build(s.originalMin, s.originalMax, s.targetMin+half, s.targetMax-half)
}

// ZoomOut widens the window by half a step at each end.
func (s Scaler) ZoomOut() Scaler {
	half := s.scalar / 2
	return build(s.originalMin, s.originalMax, s.targetMin-half, s.targetMax+half)
}

// Scalar is the logical distance between adjacent pixels.
func (s Scaler) Scalar() float64 { return s.scalar }

func (s Scaler) Target() (min, max float64) { return s.targetMin, s.targetMax }

func (s Scaler) Domain() (min, max float64) { return s.originalMin, s.originalMax }

func (s Scaler) Center() float64 { return (s.targetMin + s.targetMax) / 2 }

// Valid reports whether the transform still produces finite coordinates.
func (s Scaler) Valid() bool {
	return !math.IsNaN(s.scalar) && !math.IsInf(s.scalar, 0) && s.scalar != 0
}

func (s Scaler) String() string {
	return fmt.Sprintf("[%g, %g] -> [%g, %g] (x%g)", s.originalMin, s.originalMax, s.targetMin, s.targetMax, s.scalar)
}
