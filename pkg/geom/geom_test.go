package geom

import (
	"math"
	"testing"
)

func TestSizeExpand(t *testing.T) {
	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"already integral", Size{Width: 5, Height: 3}, Size{Width: 5, Height: 3}},
		{"rounds up", Size{Width: 1.2, Height: 3.7}, Size{Width: 2, Height: 4}},
		{"rounds away from zero for negatives", Size{Width: -1.2, Height: -3.7}, Size{Width: -2, Height: -4}},
		{"zero stays zero", Size{}, Size{}},
		{"infinity passes through", Size{Width: math.Inf(1), Height: 2.5}, Size{Width: math.Inf(1), Height: 3}},
	}

	for _, tt := range tests {
		got := tt.in.Expand()
		if got != tt.want {
			t.Errorf("%s: Expand(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestSizeExpandIdempotent(t *testing.T) {
	sizes := []Size{
		{Width: 1.2, Height: 3.7},
		{Width: -0.1, Height: 99.99},
		{Width: 0, Height: 0},
		{Width: 12345, Height: 0.5},
	}
	for _, s := range sizes {
		once := s.Expand()
		twice := once.Expand()
		if once != twice {
			t.Errorf("Expand not idempotent for %v: %v then %v", s, once, twice)
		}
	}
}

func TestSizeExpandPropagatesNaN(t *testing.T) {
	s := Size{Width: math.NaN(), Height: 2}.Expand()
	if !math.IsNaN(s.Width) {
		t.Errorf("expected NaN width to propagate, got %v", s.Width)
	}
	if s.Height != 2 {
		t.Errorf("expected height 2, got %v", s.Height)
	}
}

func TestSizeClamp(t *testing.T) {
	lo := Size{Width: 10, Height: 10}
	hi := Size{Width: 20, Height: 20}

	tests := []struct {
		in   Size
		want Size
	}{
		{Size{Width: 15, Height: 15}, Size{Width: 15, Height: 15}},
		{Size{Width: 5, Height: 25}, Size{Width: 10, Height: 20}},
		{Size{Width: 100, Height: 0}, Size{Width: 20, Height: 10}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(lo, hi); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	// NaN components resolve to the bounds instead of escaping the clamp.
	got := Size{Width: math.NaN(), Height: math.NaN()}.Clamp(lo, hi)
	if got != (Size{Width: 10, Height: 10}) {
		t.Errorf("Clamp(NaN) = %v, want %v", got, lo)
	}
}

func TestSizeValidity(t *testing.T) {
	if !(Size{Width: 1, Height: 2}).IsFinite() {
		t.Error("finite size reported as not finite")
	}
	if (Size{Width: math.Inf(1), Height: 2}).IsFinite() {
		t.Error("infinite size reported as finite")
	}
	if !(Size{Width: math.NaN(), Height: 2}).IsNaN() {
		t.Error("NaN size not detected")
	}
}

func TestRect(t *testing.T) {
	r := NewRect(1, 2, 4, 7)
	if got := r.Size(); got != (Size{Width: 3, Height: 5}) {
		t.Errorf("Size() = %v, want 3x5", got)
	}
	if got := r.Origin(); got != (Point{X: 1, Y: 2}) {
		t.Errorf("Origin() = %v, want (1, 2)", got)
	}

	r2 := RectFromOriginSize(Point{X: 10, Y: 20}, Size{Width: 5, Height: 6})
	if r2 != NewRect(10, 20, 15, 26) {
		t.Errorf("RectFromOriginSize = %v", r2)
	}
}

func TestScalarHelpers(t *testing.T) {
	if Max(3, 5) != 5 || Max(5.5, 2.5) != 5.5 {
		t.Error("Max wrong")
	}
	if Min(3, 5) != 3 || Min(5.5, 2.5) != 2.5 {
		t.Error("Min wrong")
	}
	if Clamp(7, 0, 5) != 5 || Clamp(-1, 0, 5) != 0 || Clamp(3, 0, 5) != 3 {
		t.Error("Clamp wrong")
	}
}
