package widget

import (
	"strut/pkg/geom"
	"strut/pkg/layout"
)

// Flex lays children out along one axis. Fixed children take the extent they
// measure; weighted children split whatever major-axis space remains in
// proportion to their weights. Every child receives the container's full
// minor-axis target.
type Flex struct {
	axis     layout.Axis
	spacing  float64
	children []flexEntry
}

type flexEntry struct {
	pod    *ChildPod
	weight float64
}

// NewFlex creates an empty flex container growing along axis.
func NewFlex(axis layout.Axis) *Flex {
	return &Flex{axis: axis}
}

// SetSpacing sets the gap inserted between adjacent children.
func (f *Flex) SetSpacing(spacing float64) *Flex {
	f.spacing = geom.Max(spacing, 0)
	return f
}

// AddFixed appends a child sized by its own measurement.
func (f *Flex) AddFixed(w Widget) *Flex {
	f.children = append(f.children, flexEntry{pod: NewChildPod(w)})
	return f
}

// AddFlexed appends a child that shares leftover major-axis space in
// proportion to weight. Non-positive weights degrade to fixed children.
func (f *Flex) AddFlexed(w Widget, weight float64) *Flex {
	f.children = append(f.children, flexEntry{pod: NewChildPod(w), weight: geom.Max(weight, 0)})
	return f
}

// Children exposes the retained child handles, in insertion order.
func (f *Flex) Children() []*ChildPod {
	pods := make([]*ChildPod, len(f.children))
	for i, c := range f.children {
		pods[i] = c.pod
	}
	return pods
}

// Measure aggregates child measurements: on the major axis children stack,
// so extents sum (after the fill is shrunk by the spacing the container has
// already consumed); on the cross axis the widest child wins.
func (f *Flex) Measure(axis layout.Axis, fill layout.BiAxial[layout.ContentFill]) float64 {
	if len(f.children) == 0 {
		return 0
	}
	if axis == f.axis {
		gaps := f.spacing * float64(len(f.children)-1)
		childFill := layout.ShrinkFills(fill, layout.NewByAxis(gaps, 0, f.axis))
		total := gaps
		for _, c := range f.children {
			total += c.pod.Measure(axis, childFill)
		}
		return total
	}
	widest := 0.0
	for _, c := range f.children {
		widest = geom.Max(widest, c.pod.Measure(axis, fill))
	}
	return widest
}

// Layout measures fixed children under the constrained fill derived from bc,
// splits the remaining major extent across weighted children, then lays each
// child out under per-child constraints and places it.
func (f *Flex) Layout(bc layout.Constraints) geom.Size {
	bc.DebugCheck("Flex")
	if len(f.children) == 0 {
		return bc.Constrain(geom.Size{})
	}

	avail := f.axis.Major(bc.Size())
	gaps := f.spacing * float64(len(f.children)-1)
	fill := layout.NewByAxis(
		layout.FillConstrain(geom.Max(avail-gaps, 0)),
		layout.FillConstrain(f.axis.Minor(bc.Size())),
		f.axis,
	)

	majors := make([]float64, len(f.children))
	allocated := 0.0
	totalWeight := 0.0
	for i, c := range f.children {
		if c.weight > 0 {
			totalWeight += c.weight
			continue
		}
		majors[i] = c.pod.Measure(f.axis, fill)
		allocated += majors[i]
	}
	if totalWeight > 0 {
		remaining := geom.Max(avail-gaps-allocated, 0)
		for i, c := range f.children {
			if c.weight > 0 {
				majors[i] = remaining * c.weight / totalWeight
			}
		}
	}

	offset := 0.0
	for i, c := range f.children {
		childBC := f.axis.Constraints(bc, majors[i])
		x, y := f.axis.Pack(offset, 0)
		size := c.pod.LayoutAt(childBC, geom.Point{X: x, Y: y})
		offset += f.axis.Major(size) + f.spacing
	}

	return bc.Constrain(bc.Size())
}
