package layout

import (
	"fmt"
	"math"

	"strut/pkg/geom"
)

// Constraints is the target size a parent communicates to a child for one
// layout pass. It wraps exactly one Size, the exact target: Constrain always
// answers with it, so in its current form Constraints is an exact-size
// directive rather than a min/max range. Call sites depend on that, so the
// exact-size semantics must be preserved.
//
// The target is always rounded away from zero to integers (geom.Size.Expand)
// so layout lands on pixel boundaries. Values are created by a parent per
// pass, consumed by the child's layout call, and discarded; they are compared
// by value only, never cached.
type Constraints struct {
	exact geom.Size
}

// NewConstraints builds constraints with the given target size. The size is
// expanded, so constraints built here cannot violate the rounding invariant.
func NewConstraints(size geom.Size) Constraints {
	return Constraints{exact: size.Expand()}
}

// Size returns the exact target.
func (c Constraints) Size() geom.Size {
	return c.exact
}

// Constrain clamps size to the constraints. The candidate is expanded and
// then clamped between the exact target and itself, so the result is always
// the exact target regardless of the candidate.
func (c Constraints) Constrain(size geom.Size) geom.Size {
	return size.Expand().Clamp(c.exact, c.exact)
}

// Shrink removes diff from the target, flooring each component at zero. Used
// to peel insets (borders, padding) off a target before delegating to inner
// content. The diff is expanded first.
func (c Constraints) Shrink(diff geom.Size) Constraints {
	diff = diff.Expand()
	return NewConstraints(geom.Size{
		Width:  geom.Max(c.exact.Width-diff.Width, 0),
		Height: geom.Max(c.exact.Height-diff.Height, 0),
	})
}

// Contains reports whether size fits componentwise within the target. No
// expansion is applied; this is the one query that can distinguish a
// candidate from the target.
func (c Constraints) Contains(size geom.Size) bool {
	return size.Width <= c.exact.Width && size.Height <= c.exact.Height
}

// ConstrainAspectRatio finds the Size within [0, exact] per axis whose
// proportions are as close as possible to aspectRatio (height/width). Among
// equally good ratios it prefers the candidate whose width is nearest the
// supplied width: width 0 picks the smallest such Size, +Inf the largest.
//
// A solution always exists inside [0, exact]; degenerate inputs yield a
// degenerate but well-defined Size.
func (c Constraints) ConstrainAspectRatio(aspectRatio, width float64) geom.Size {
	// Everything here is linear, so despite appearances the work is small.
	ideal := geom.Size{Width: width, Height: width * aspectRatio}

	// The remaining search works on magnitudes only.
	aspectRatio = math.Abs(aspectRatio)
	width = math.Abs(width)

	if c.Contains(ideal) {
		return ideal
	}

	// Ratios of the box at its two boundary edges: approaching zero height,
	// and exactly at the far corner. When the requested ratio line crosses
	// the box, the nearest point is where the line enters or exits.
	ratioAtMinHeight := 0.0
	ratioAtMaxBoth := c.exact.Height / c.exact.Width

	switch {
	case aspectRatio < ratioAtMinHeight:
		// Unreachable after the Abs above; kept as the boundary fallback.
		return geom.Size{Width: c.exact.Width, Height: 0}
	case width < 0:
		// Unreachable after the Abs above; degenerate point on the
		// min-height edge.
		return geom.Size{Width: 0 / aspectRatio, Height: 0}
	case aspectRatio > ratioAtMaxBoth:
		// The ratio line exits through the max-height edge.
		return geom.Size{Width: c.exact.Height / aspectRatio, Height: c.exact.Height}
	}
	// The ratio line exits through the max-width edge.
	return geom.Size{Width: c.exact.Width, Height: c.exact.Width * aspectRatio}
}

func (c Constraints) String() string {
	return fmt.Sprintf("Constraints(%v)", c.exact)
}
