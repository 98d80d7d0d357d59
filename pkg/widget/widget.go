// Package widget defines the two-pass layout protocol that binds the
// constraint core into the component tree, plus the container primitives
// that exercise it.
//
// Layout is a synchronous recursive traversal in two passes. The measurement
// pass asks each widget for its intrinsic extent along one axis under a
// ContentFill policy; it is pure and places nothing. The layout pass hands
// each widget a concrete Constraints target; the widget returns its final
// Size and, if it is a container, assigns each child a position. Calls are
// strictly nested, parent before children; no state crosses widget
// boundaries except the fill and constraints flowing down and the Size
// flowing up.
package widget

import (
	"strut/pkg/geom"
	"strut/pkg/layout"
)

// Widget is implemented by every node in the tree.
type Widget interface {
	// Measure reports the widget's desired extent along axis given the fill
	// policy on both axes. It must be a pure function of the widget's
	// current content and the supplied fill; no placement or mutation side
	// effects are permitted.
	Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64

	// Layout computes the widget's final size under the given constraints
	// and, for containers, places each child once the child's own Layout
	// call has returned. Callers are entitled to treat the returned Size as
	// authoritative.
	Layout(bc layout.Constraints) geom.Size
}
