package layout

import (
	"fmt"

	"strut/pkg/geom"
)

// BiAxial stores one value of any type per axis. It is the universal carrier
// for per-axis data: sizes, fill policies, shrink amounts. It owns both
// values outright and performs no validation; validity is the concern of T.
type BiAxial[T any] struct {
	Horizontal T
	Vertical   T
}

// NewBiAxial pairs a horizontal and a vertical value.
func NewBiAxial[T any](horizontal, vertical T) BiAxial[T] {
	return BiAxial[T]{Horizontal: horizontal, Vertical: vertical}
}

// NewByAxis builds a pair from axis-relative values: major goes on axis,
// minor on its cross axis. It is the inverse of ValueForAxis composed with
// axis selection.
func NewByAxis[T any](major, minor T, axis Axis) BiAxial[T] {
	if axis == Horizontal {
		return BiAxial[T]{Horizontal: major, Vertical: minor}
	}
	return BiAxial[T]{Horizontal: minor, Vertical: major}
}

// ValueForAxis reads the slot for the given axis.
func (b BiAxial[T]) ValueForAxis(axis Axis) T {
	if axis == Horizontal {
		return b.Horizontal
	}
	return b.Vertical
}

// SetForAxis returns a copy with the slot for the given axis replaced. The
// other slot is never perturbed.
func (b BiAxial[T]) SetForAxis(axis Axis, value T) BiAxial[T] {
	if axis == Horizontal {
		b.Horizontal = value
	} else {
		b.Vertical = value
	}
	return b
}

// Raw exposes the pair as (horizontal, vertical) for interop with geometry
// types.
func (b BiAxial[T]) Raw() (T, T) {
	return b.Horizontal, b.Vertical
}

func (b BiAxial[T]) String() string {
	return fmt.Sprintf("BiAxial<%v, %v>", b.Horizontal, b.Vertical)
}

// SizePair converts a Size into its per-axis float pair.
func SizePair(size geom.Size) BiAxial[float64] {
	return BiAxial[float64]{Horizontal: size.Width, Vertical: size.Height}
}
