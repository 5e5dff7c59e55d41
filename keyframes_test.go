package kinetic

import (
	"errors"
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestKeyframesFadeInOut(t *testing.T) {
	k := MustKeyframes([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0})

	tests := []struct {
		p, want float64
	}{
		{0.1, 0.5},
		{0.5, 1},
		{0.9, 0.5},
		{1.0, 0},
		{0, 0},
		{0.2, 1},
		{0.8, 1},
	}
	for _, tt := range tests {
		if got := k.Evaluate(tt.p); math.Abs(got-tt.want) > eps {
			t.Errorf("Evaluate(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestKeyframesClamp(t *testing.T) {
	k := MustKeyframes([]float64{0.1, 0.5, 0.9}, []float64{3, 7, -2})
	for _, p := range []float64{-100, -1, 0, 0.1, math.Inf(-1), math.NaN()} {
		if got := k.Evaluate(p); got != 3 {
			t.Errorf("Evaluate(%v) = %v, want first value 3", p, got)
		}
	}
	for _, p := range []float64{0.9, 1, 2, math.Inf(1)} {
		if got := k.Evaluate(p); got != -2 {
			t.Errorf("Evaluate(%v) = %v, want last value -2", p, got)
		}
	}
}

func TestKeyframesExactBreakpoint(t *testing.T) {
	k := MustKeyframes([]float64{0, 0.3, 0.7, 1}, []float64{0.3, 1, 1, 0.3})
	for i, bp := range k.Breakpoints() {
		if got := k.Evaluate(bp); got != k.Values()[i] {
			t.Errorf("Evaluate(%v) = %v, want %v", bp, got, k.Values()[i])
		}
	}
}

func TestKeyframesTwoEntriesLinear(t *testing.T) {
	k := MustKeyframes([]float64{0, 1}, []float64{8, 0})
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := 8 - 8*p
		if got := k.Evaluate(p); math.Abs(got-want) > eps {
			t.Errorf("Evaluate(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestKeyframesInvalid(t *testing.T) {
	tests := []struct {
		name   string
		bp, vs []float64
	}{
		{"empty", nil, nil},
		{"single", []float64{0}, []float64{1}},
		{"length mismatch", []float64{0, 1}, []float64{1}},
		{"equal breakpoints", []float64{0, 0.5, 0.5, 1}, []float64{0, 1, 1, 0}},
		{"decreasing", []float64{0, 0.8, 0.2, 1}, []float64{0, 1, 1, 0}},
		{"nan breakpoint", []float64{0, math.NaN()}, []float64{0, 1}},
		{"inf value", []float64{0, 1}, []float64{0, math.Inf(1)}},
	}
	for _, tt := range tests {
		if _, err := NewKeyframes(tt.bp, tt.vs); !errors.Is(err, ErrInvalidKeyframes) {
			t.Errorf("%s: error = %v, want ErrInvalidKeyframes", tt.name, err)
		}
	}
}

func TestMustKeyframesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustKeyframes should panic on an invalid table")
		}
	}()
	MustKeyframes([]float64{1, 0}, []float64{0, 1})
}

func TestKeyframesCopiesInput(t *testing.T) {
	bp := []float64{0, 1}
	vs := []float64{0, 10}
	k := MustKeyframes(bp, vs)
	bp[1] = 100
	vs[1] = -10
	if got := k.Evaluate(0.5); got != 5 {
		t.Errorf("Evaluate after mutating input = %v, want 5", got)
	}
	k.Values()[0] = 42
	if got := k.Evaluate(0); got != 0 {
		t.Errorf("Values() exposed internal slice: Evaluate(0) = %v", got)
	}
	if k.Len() != 2 {
		t.Errorf("Len = %d, want 2", k.Len())
	}
}

func TestKeyframesWithEase(t *testing.T) {
	k := MustKeyframes([]float64{0, 1}, []float64{0, 1})
	eased := k.WithEase(ease.InQuad)
	if got := eased.Evaluate(0.5); math.Abs(got-0.25) > 1e-6 {
		t.Errorf("InQuad at 0.5 = %v, want 0.25", got)
	}
	if got := k.Evaluate(0.5); got != 0.5 {
		t.Errorf("WithEase modified the original: %v", got)
	}
	if got := eased.WithEase(nil).Evaluate(0.5); got != 0.5 {
		t.Errorf("WithEase(nil) = %v, want linear 0.5", got)
	}
}

func TestStyleMapNeutralChannels(t *testing.T) {
	var m StyleMap
	if !m.Empty() {
		t.Error("zero StyleMap should be Empty")
	}
	if got := m.Evaluate(0.3); got != StyleNeutral {
		t.Errorf("empty map style = %+v, want neutral", got)
	}
}

func TestStyleMapIndependentChannels(t *testing.T) {
	m := StyleMap{
		Opacity:    MustKeyframes([]float64{0, 0.3, 0.7, 1}, []float64{0.3, 1, 1, 0.3}),
		TranslateY: MustKeyframes([]float64{0, 0.3, 0.7, 1}, []float64{50, 0, 0, 50}),
		Blur:       MustKeyframes([]float64{0, 0.5, 1}, []float64{8, 0, 8}),
	}
	s := m.Evaluate(0.15)
	if math.Abs(s.Opacity-0.65) > eps {
		t.Errorf("Opacity = %v, want 0.65", s.Opacity)
	}
	if math.Abs(s.TranslateY-25) > eps {
		t.Errorf("TranslateY = %v, want 25", s.TranslateY)
	}
	if math.Abs(s.Blur-5.6) > eps {
		t.Errorf("Blur = %v, want 5.6", s.Blur)
	}
	if s.Scale != 1 || s.TranslateX != 0 {
		t.Errorf("unset channels = scale %v translateX %v, want 1 and 0", s.Scale, s.TranslateX)
	}
}
