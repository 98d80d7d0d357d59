package widget

import (
	"strut/pkg/geom"
	"strut/pkg/layout"
)

// AspectRatio forces its child into fixed proportions, ratio = height/width.
// It is the one container here that does not route its own size through
// Constrain: keeping the ratio matters more than hitting the target exactly,
// and the aspect-ratio solver already guarantees the result fits inside it.
type AspectRatio struct {
	ratio float64
	child *ChildPod
}

// NewAspectRatio wraps child at the given height/width ratio.
func NewAspectRatio(ratio float64, child Widget) *AspectRatio {
	return &AspectRatio{ratio: ratio, child: NewChildPod(child)}
}

// Child exposes the retained child handle.
func (ar *AspectRatio) Child() *ChildPod { return ar.child }

// Measure answers with the bound the fill policy implies for the ratio when
// one exists, and falls back to the child's own measurement otherwise.
func (ar *AspectRatio) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	if bound, ok := layout.FillAspectRatio(fill, ar.ratio, axis); ok {
		return bound
	}
	return ar.child.Measure(axis, fill)
}

// Layout solves for the best-ratio size within the target, preferring the
// target's own width, and gives the child exactly that size.
func (ar *AspectRatio) Layout(bc layout.Constraints) geom.Size {
	bc.DebugCheck("AspectRatio")
	size := bc.ConstrainAspectRatio(ar.ratio, bc.Size().Width)
	ar.child.LayoutAt(layout.NewConstraints(size), geom.Point{})
	return size
}
