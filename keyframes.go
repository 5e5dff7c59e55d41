package kinetic

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Keyframes is an immutable piecewise-linear mapping from progress to a
// value. Breakpoints are strictly increasing; there are at least two.
type Keyframes struct {
	breakpoints []float64
	values      []float64
	ease        ease.TweenFunc
}

// NewKeyframes validates and copies a breakpoint/value table. Tables are
// never reordered: out-of-order breakpoints are an error.
func NewKeyframes(breakpoints, values []float64) (*Keyframes, error) {
	if len(breakpoints) != len(values) {
		return nil, fmt.Errorf("kinetic: %d breakpoints but %d values: %w",
			len(breakpoints), len(values), ErrInvalidKeyframes)
	}
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("kinetic: keyframes need at least 2 entries, got %d: %w",
			len(breakpoints), ErrInvalidKeyframes)
	}
	for i, b := range breakpoints {
		if !isFinite(b) || !isFinite(values[i]) {
			return nil, fmt.Errorf("kinetic: keyframe %d is not finite: %w", i, ErrInvalidKeyframes)
		}
		if i > 0 && b <= breakpoints[i-1] {
			return nil, fmt.Errorf("kinetic: breakpoint %d (%v) not greater than %v: %w",
				i, b, breakpoints[i-1], ErrInvalidKeyframes)
		}
	}
	return &Keyframes{
		breakpoints: append([]float64(nil), breakpoints...),
		values:      append([]float64(nil), values...),
	}, nil
}

// MustKeyframes is like NewKeyframes but panics on an invalid table. It is
// intended for tables written as literals.
func MustKeyframes(breakpoints, values []float64) *Keyframes {
	k, err := NewKeyframes(breakpoints, values)
	if err != nil {
		panic(err)
	}
	return k
}

// WithEase returns a copy of k that shapes each segment with fn. A nil fn
// restores plain linear interpolation.
func (k *Keyframes) WithEase(fn ease.TweenFunc) *Keyframes {
	out := *k
	out.ease = fn
	return &out
}

// Len returns the number of entries.
func (k *Keyframes) Len() int { return len(k.breakpoints) }

// Breakpoints returns a copy of the breakpoints.
func (k *Keyframes) Breakpoints() []float64 {
	return append([]float64(nil), k.breakpoints...)
}

// Values returns a copy of the values.
func (k *Keyframes) Values() []float64 {
	return append([]float64(nil), k.values...)
}

// Evaluate maps p through the table. p is clamped to the first and last
// breakpoints; NaN maps to the first value.
func (k *Keyframes) Evaluate(p float64) float64 {
	bp, vals := k.breakpoints, k.values
	n := len(bp)
	if !(p > bp[0]) {
		return vals[0]
	}
	if p >= bp[n-1] {
		return vals[n-1]
	}
	i := sort.SearchFloat64s(bp, p)
	if bp[i] == p {
		return vals[i]
	}
	lo := i - 1
	frac := (p - bp[lo]) / (bp[i] - bp[lo])
	if k.ease != nil {
		frac = float64(k.ease(float32(frac), 0, 1, 1))
	}
	return vals[lo] + (vals[i]-vals[lo])*frac
}

// StyleMap evaluates one Keyframes table per style channel. Nil channels
// keep their StyleNeutral value.
type StyleMap struct {
	Opacity    *Keyframes
	Blur       *Keyframes
	TranslateX *Keyframes
	TranslateY *Keyframes
	Scale      *Keyframes
}

// Evaluate returns the style at progress p. Channels are independent.
func (m StyleMap) Evaluate(p float64) Style {
	s := StyleNeutral
	if m.Opacity != nil {
		s.Opacity = m.Opacity.Evaluate(p)
	}
	if m.Blur != nil {
		s.Blur = m.Blur.Evaluate(p)
	}
	if m.TranslateX != nil {
		s.TranslateX = m.TranslateX.Evaluate(p)
	}
	if m.TranslateY != nil {
		s.TranslateY = m.TranslateY.Evaluate(p)
	}
	if m.Scale != nil {
		s.Scale = m.Scale.Evaluate(p)
	}
	return s
}

// Empty reports whether no channel is configured.
func (m StyleMap) Empty() bool {
	return m.Opacity == nil && m.Blur == nil && m.TranslateX == nil &&
		m.TranslateY == nil && m.Scale == nil
}
