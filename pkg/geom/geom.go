// Package geom provides the geometry value types shared by the layout core:
// sizes, points, vectors, and axis-aligned rectangles, plus the pixel-snapping
// rounding step every constraint is built on.
package geom

import (
	"fmt"
	"math"
)

// Size is an ordered (width, height) pair. Values that survive constraint
// validation are finite and non-negative, but Size itself does not enforce
// that; validation belongs to the layer that consumes the value.
type Size struct {
	Width  float64
	Height float64
}

// Expand rounds each component away from zero to the nearest integer, so the
// result lands on a pixel-aligned boundary. Expand is idempotent and
// monotonic. NaN components propagate unchanged.
func (s Size) Expand() Size {
	return Size{
		Width:  expand(s.Width),
		Height: expand(s.Height),
	}
}

// Clamp restricts s componentwise to [min, max]. NaN components of s resolve
// to the corresponding bound, so clamping against finite bounds always lands
// inside the bounds.
func (s Size) Clamp(min, max Size) Size {
	return Size{
		Width:  fmin(fmax(s.Width, min.Width), max.Width),
		Height: fmin(fmax(s.Height, min.Height), max.Height),
	}
}

// IsFinite reports whether both components are finite and not NaN.
func (s Size) IsFinite() bool {
	return !math.IsInf(s.Width, 0) && !math.IsInf(s.Height, 0) && !s.IsNaN()
}

// IsNaN reports whether either component is NaN.
func (s Size) IsNaN() bool {
	return math.IsNaN(s.Width) || math.IsNaN(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// expand rounds away from zero, carrying the sign of v. expand(0) is 0.
func expand(v float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(v)), v)
}

// fmax returns the larger operand; a NaN operand is ignored in favor of the
// other.
func fmax(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a > b:
		return a
	}
	return b
}

// fmin returns the smaller operand; a NaN operand is ignored in favor of the
// other.
func fmin(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	case a < b:
		return a
	}
	return b
}

// Point is an absolute 2D coordinate.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an axis-aligned box given by its min (X0, Y0) and max (X1, Y1)
// corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect builds a Rect from two corner coordinate pairs. The coordinates are
// stored as given; callers are expected to pass X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromOriginSize builds the Rect covering size starting at origin.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width,
		Y1: origin.Y + size.Height,
	}
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size {
	return Size{Width: r.X1 - r.X0, Height: r.Y1 - r.Y0}
}

// Origin returns the min corner.
func (r Rect) Origin() Point {
	return Point{X: r.X0, Y: r.Y0}
}
