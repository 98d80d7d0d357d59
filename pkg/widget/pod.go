package widget

import (
	"fmt"

	"github.com/google/uuid"

	"strut/pkg/geom"
	"strut/pkg/layout"
)

// ChildPod is the retained handle a container owns per child: the child
// widget, the origin the container assigned it, and the size its last layout
// call returned. The owning container is the only writer of the origin.
//
// Each pod carries a stable identity used to label constraint diagnostics.
type ChildPod struct {
	id     uuid.UUID
	widget Widget
	origin geom.Point
	size   geom.Size
}

// NewChildPod wraps w in a fresh pod.
func NewChildPod(w Widget) *ChildPod {
	return &ChildPod{id: uuid.New(), widget: w}
}

// ID returns the pod's stable identity.
func (p *ChildPod) ID() uuid.UUID { return p.id }

// Widget returns the wrapped widget.
func (p *ChildPod) Widget() Widget { return p.widget }

// Origin returns the position assigned by the owning container during its
// last layout pass.
func (p *ChildPod) Origin() geom.Point { return p.origin }

// Size returns the size the child reported from its last layout pass.
func (p *ChildPod) Size() geom.Size { return p.size }

// Frame returns the rectangle the child occupies in its parent's coordinate
// space.
func (p *ChildPod) Frame() geom.Rect {
	return geom.RectFromOriginSize(p.origin, p.size)
}

// Measure forwards the measurement pass to the child.
func (p *ChildPod) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	return p.widget.Measure(axis, fill)
}

// LayoutAt validates bc, runs the child's layout pass, and records the
// child's size and assigned origin.
func (p *ChildPod) LayoutAt(bc layout.Constraints, origin geom.Point) geom.Size {
	bc.DebugCheck(p.label())
	p.size = p.widget.Layout(bc)
	p.origin = origin
	return p.size
}

func (p *ChildPod) label() string {
	return fmt.Sprintf("child %s", p.id)
}
