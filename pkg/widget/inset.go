package widget

import (
	"strut/pkg/geom"
	"strut/pkg/layout"
)

// Inset wraps one child in a uniform border of empty space. During
// measurement the inner fill is shrunk by the space the inset consumes;
// during layout the target is shrunk the same way before delegating.
type Inset struct {
	amount float64
	child  *ChildPod
}

// NewInset wraps child with amount empty space on every side.
func NewInset(amount float64, child Widget) *Inset {
	return &Inset{amount: geom.Max(amount, 0), child: NewChildPod(child)}
}

// Child exposes the retained child handle.
func (in *Inset) Child() *ChildPod { return in.child }

// Measure reports the child's extent under the shrunk fill plus the inset on
// both sides.
func (in *Inset) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	consumed := 2 * in.amount
	inner := layout.ShrinkFills(fill, layout.NewBiAxial(consumed, consumed))
	return in.child.Measure(axis, inner) + consumed
}

// Layout peels the inset off the target, lays the child out in the rest, and
// offsets it by the inset.
func (in *Inset) Layout(bc layout.Constraints) geom.Size {
	bc.DebugCheck("Inset")
	consumed := 2 * in.amount
	inner := bc.Shrink(geom.Size{Width: consumed, Height: consumed})
	in.child.LayoutAt(inner, geom.Point{X: in.amount, Y: in.amount})
	return bc.Constrain(bc.Size())
}
