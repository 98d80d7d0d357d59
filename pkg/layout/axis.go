// Package layout implements the constraint core of the widget tree: the axis
// abstraction, the generic per-axis pair, the content-fill policy consumed by
// the measurement pass, and the box constraints consumed by the layout pass.
//
// The two-pass protocol itself (measure, then layout) is defined in package
// widget; this package supplies the values that flow through it.
package layout

import (
	"strut/pkg/geom"
)

// Axis identifies one of the two directions in visual space. Widgets most
// often use it to describe the direction in which they grow as children are
// added. All horizontal/vertical branching in the module lives in the Axis
// methods (and the axis-indexed accessors of BiAxial); other code goes
// through them.
type Axis int

const (
	// Horizontal is the x axis.
	Horizontal Axis = iota
	// Vertical is the y axis.
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Cross returns the axis perpendicular to this one. Cross is an involution:
// a.Cross().Cross() == a.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Major extracts the magnitude of size along this axis.
func (a Axis) Major(size geom.Size) float64 {
	if a == Horizontal {
		return size.Width
	}
	return size.Height
}

// Minor extracts the magnitude of size along the perpendicular axis.
func (a Axis) Minor(size geom.Size) float64 {
	return a.Cross().Major(size)
}

// MajorSpan extracts the (near, far) extent of rect along this axis.
func (a Axis) MajorSpan(rect geom.Rect) (float64, float64) {
	if a == Horizontal {
		return rect.X0, rect.X1
	}
	return rect.Y0, rect.Y1
}

// MinorSpan extracts the (near, far) extent of rect along the perpendicular
// axis.
func (a Axis) MinorSpan(rect geom.Rect) (float64, float64) {
	return a.Cross().MajorSpan(rect)
}

// MajorPos extracts the coordinate of pos along this axis.
func (a Axis) MajorPos(pos geom.Point) float64 {
	if a == Horizontal {
		return pos.X
	}
	return pos.Y
}

// MinorPos extracts the coordinate of pos along the perpendicular axis.
func (a Axis) MinorPos(pos geom.Point) float64 {
	return a.Cross().MajorPos(pos)
}

// MajorVec extracts the component of vec along this axis.
func (a Axis) MajorVec(vec geom.Vec2) float64 {
	if a == Horizontal {
		return vec.X
	}
	return vec.Y
}

// MinorVec extracts the component of vec along the perpendicular axis.
func (a Axis) MinorVec(vec geom.Vec2) float64 {
	return a.Cross().MajorVec(vec)
}

// Pack arranges axis-relative major and minor measurements back into an
// absolute (x, y) pair.
func (a Axis) Pack(major, minor float64) (x, y float64) {
	if a == Horizontal {
		return major, minor
	}
	return minor, major
}

// Constraints derives new constraints whose target along this axis is major,
// carrying the perpendicular target over from bc unchanged. This is how a
// container turns an allocated major-axis amount into a concrete per-child
// constraint.
func (a Axis) Constraints(bc Constraints, major float64) Constraints {
	x, y := a.Pack(major, a.Minor(bc.Size()))
	return NewConstraints(geom.Size{Width: x, Height: y})
}
