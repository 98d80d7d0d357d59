package widget

import (
	"math"

	"strut/pkg/geom"
	"strut/pkg/layout"
)

// Fixed is a leaf with a fixed intrinsic size. Its content cannot wrap or
// stretch, so Min and Max measurements coincide, a constrain policy caps the
// extent, and MaxStretch still reports the intrinsic extent.
type Fixed struct {
	size geom.Size
}

// NewFixed creates a leaf with the given intrinsic size.
func NewFixed(size geom.Size) *Fixed {
	return &Fixed{size: size}
}

func (w *Fixed) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	intrinsic := axis.Major(w.size)
	policy := fill.ValueForAxis(axis)
	if limit, ok := policy.Limit(); ok {
		return geom.Min(intrinsic, limit)
	}
	return intrinsic
}

func (w *Fixed) Layout(bc layout.Constraints) geom.Size {
	bc.DebugCheck("Fixed")
	return bc.Constrain(w.size)
}

// Spacer is empty stretchable space. It occupies nothing under Min and Max,
// fills a constrain limit exactly, and reports positive infinity under
// MaxStretch because it can grow without limit.
type Spacer struct{}

func (Spacer) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	policy := fill.ValueForAxis(axis)
	switch policy.Kind() {
	case layout.FillKindMaxStretch:
		return math.Inf(1)
	case layout.FillKindConstrain:
		limit, _ := policy.Limit()
		return limit
	}
	return 0
}

func (Spacer) Layout(bc layout.Constraints) geom.Size {
	return bc.Constrain(geom.Size{})
}
