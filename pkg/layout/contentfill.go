package layout

import (
	"fmt"
	"math"

	"strut/pkg/geom"
)

// FillKind discriminates the ContentFill variants.
type FillKind uint8

const (
	// FillKindMin shrinks to the minimum size the content can occupy without
	// violating its own wrapping rules.
	FillKindMin FillKind = iota + 1
	// FillKindMax grows to the maximum size the content can occupy without
	// wrapping.
	FillKindMax
	// FillKindConstrain bounds the content by a specific limit on that axis.
	FillKindConstrain
	// FillKindMaxStretch is unbounded; measurement may legitimately report
	// positive infinity when the content itself can grow without limit.
	FillKindMaxStretch
)

// ContentFill is the per-axis sizing policy consumed during the measurement
// pass. Values are immutable; methods return new values.
//
// ContentFill is comparable with ==. The limit carried by the constrain
// variant must never be NaN; NaN would break both equality and hashing.
type ContentFill struct {
	kind  FillKind
	limit float64
}

// FillMin is the minimum intrinsic size policy.
func FillMin() ContentFill { return ContentFill{kind: FillKindMin} }

// FillMax is the maximum intrinsic size policy.
func FillMax() ContentFill { return ContentFill{kind: FillKindMax} }

// FillMaxStretch is the unbounded policy.
func FillMaxStretch() ContentFill { return ContentFill{kind: FillKindMaxStretch} }

// FillConstrain bounds the axis by limit. The limit is driven toward zero
// under repeated shrinking but never below it.
func FillConstrain(limit float64) ContentFill {
	return ContentFill{kind: FillKindConstrain, limit: limit}
}

// Kind returns the variant tag.
func (f ContentFill) Kind() FillKind { return f.kind }

// Limit returns the constrain limit and whether this is the constrain
// variant.
func (f ContentFill) Limit() (float64, bool) {
	return f.limit, f.kind == FillKindConstrain
}

// Shrink reduces a constrain limit by amount, clamped at zero. The other
// variants are fixed points. A negative amount is treated as zero so that
// shrinking can never grow a limit.
func (f ContentFill) Shrink(amount float64) ContentFill {
	if f.kind != FillKindConstrain {
		return f
	}
	amount = geom.Max(amount, 0)
	return FillConstrain(geom.Max(f.limit-amount, 0))
}

// Hash folds the variant into a 64-bit value. The three payload-free
// variants hash to fixed tags; the constrain variant additionally folds the
// IEEE-754 bit pattern of its limit.
func (f ContentFill) Hash() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	h = (h ^ uint64(f.kind)) * prime64
	if f.kind == FillKindConstrain {
		h = (h ^ math.Float64bits(f.limit)) * prime64
	}
	return h
}

func (f ContentFill) String() string {
	switch f.kind {
	case FillKindMin:
		return "Min"
	case FillKindMax:
		return "Max"
	case FillKindConstrain:
		return fmt.Sprintf("Constrain(%g)", f.limit)
	case FillKindMaxStretch:
		return "MaxStretch"
	}
	return "ContentFill(invalid)"
}

// BothAxesConstrained reports whether both slots of fill carry a limit.
func BothAxesConstrained(fill BiAxial[ContentFill]) bool {
	return fill.Horizontal.kind == FillKindConstrain && fill.Vertical.kind == FillKindConstrain
}

// HorizontalConstrained reports whether the horizontal slot carries a limit.
func HorizontalConstrained(fill BiAxial[ContentFill]) bool {
	return fill.Horizontal.kind == FillKindConstrain
}

// FillAspectRatio returns the bound, if any, that fill places on the extent
// of axis for content that wants proportions aspectRatio = height/width.
//
// With both axes constrained the binding side follows from comparing the
// box's own ratio against the requested one; with one axis constrained the
// limit applies only when that axis is queried. The second return is false
// when the policy implies no bound.
func FillAspectRatio(fill BiAxial[ContentFill], aspectRatio float64, axis Axis) (float64, bool) {
	h, hConstrained := fill.Horizontal.Limit()
	v, vConstrained := fill.Vertical.Limit()
	switch {
	case hConstrained && vConstrained:
		constraintRatio := h / v
		if constraintRatio > aspectRatio {
			// The box is relatively taller than requested: height binds.
			if axis == Vertical {
				return h, true
			}
			return h / aspectRatio, true
		}
		if axis == Horizontal {
			return h, true
		}
		return aspectRatio * v, true
	case hConstrained && axis == Horizontal:
		return h, true
	case vConstrained && axis == Vertical:
		return v, true
	}
	return 0, false
}

// ShrinkFills applies ContentFill.Shrink per axis with the matching delta.
func ShrinkFills(fill BiAxial[ContentFill], deltas BiAxial[float64]) BiAxial[ContentFill] {
	return NewBiAxial(
		fill.Horizontal.Shrink(deltas.Horizontal),
		fill.Vertical.Shrink(deltas.Vertical),
	)
}
