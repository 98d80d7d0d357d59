package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strut/pkg/geom"
	"strut/pkg/layout"
)

func TestAspectRatioLayout(t *testing.T) {
	ar := NewAspectRatio(1, NewFixed(geom.Size{Width: 10, Height: 10}))

	// A wide target is cut down to the largest square inside it. The
	// returned size deliberately differs from the target: AspectRatio does
	// not route through Constrain.
	bc := layout.NewConstraints(geom.Size{Width: 100, Height: 50})
	size := ar.Layout(bc)
	require.Equal(t, geom.Size{Width: 50, Height: 50}, size)
	assert.True(t, bc.Contains(size))

	child := ar.Child()
	assert.Equal(t, geom.Size{Width: 50, Height: 50}, child.Size())
	assert.Equal(t, geom.Point{}, child.Origin())
}

func TestAspectRatioMeasure(t *testing.T) {
	ar := NewAspectRatio(1, NewFixed(geom.Size{Width: 10, Height: 10}))

	// With both axes constrained the policy implies a bound.
	both := layout.NewBiAxial(layout.FillConstrain(80), layout.FillConstrain(40))
	got, ok := layout.FillAspectRatio(both, 1, layout.Horizontal)
	require.True(t, ok)
	assert.Equal(t, got, ar.Measure(layout.Horizontal, both))

	// Without one, measurement falls through to the child.
	free := layout.NewBiAxial(layout.FillMax(), layout.FillMax())
	assert.Equal(t, 10.0, ar.Measure(layout.Horizontal, free))
}

func TestAspectRatioNestedInFlex(t *testing.T) {
	// A flex row gives its weighted child a 60x40 slot; the aspect-ratio
	// wrapper keeps the child square inside it.
	ar := NewAspectRatio(1, NewFixed(geom.Size{Width: 5, Height: 5}))
	f := NewFlex(layout.Horizontal).
		AddFixed(NewFixed(geom.Size{Width: 20, Height: 40})).
		AddFlexed(ar, 1)

	f.Layout(layout.NewConstraints(geom.Size{Width: 80, Height: 40}))

	pods := f.Children()
	require.Len(t, pods, 2)
	// The container records the size the child actually reported, not the
	// slot it was offered.
	assert.Equal(t, geom.Size{Width: 40, Height: 40}, pods[1].Size())
	assert.Equal(t, geom.Point{X: 20, Y: 0}, pods[1].Origin())

	assert.Equal(t, geom.Size{Width: 40, Height: 40}, ar.Child().Size())
}
