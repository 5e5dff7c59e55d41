package kinetic

import "math"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Grow returns r expanded by margin on every side. A negative margin shrinks
// the rectangle; the size never drops below zero.
func (r Rect) Grow(margin float64) Rect {
	out := Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
	if out.Width < 0 {
		out.X += out.Width / 2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y += out.Height / 2
		out.Height = 0
	}
	return out
}

func (r Rect) finite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

// Style is the set of visual values produced for one element per frame.
// Blur is a radius in pixels, translations are in pixels.
type Style struct {
	Opacity    float64
	Blur       float64
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// StyleNeutral is the style of an element with no effect applied.
var StyleNeutral = Style{Opacity: 1, Scale: 1}

// DisclosureState is the phase of a Disclosure.
type DisclosureState uint8

const (
	DisclosureClosed  DisclosureState = iota // container collapsed, no children shown
	DisclosureOpening                        // container growing, children entering
	DisclosureOpen                           // fully expanded
	DisclosureClosing                        // children exiting, container still expanded
)

func (s DisclosureState) String() string {
	switch s {
	case DisclosureClosed:
		return "closed"
	case DisclosureOpening:
		return "opening"
	case DisclosureOpen:
		return "open"
	case DisclosureClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// TypewriterPhase is the phase of a Typewriter cycle.
type TypewriterPhase uint8

const (
	PhaseTyping     TypewriterPhase = iota // adding one character per TypeDelay
	PhasePauseFull                         // full word shown
	PhaseDeleting                          // removing one character per DeleteDelay
	PhasePauseEmpty                        // nothing shown, next word selected
)

func (p TypewriterPhase) String() string {
	switch p {
	case PhaseTyping:
		return "typing"
	case PhasePauseFull:
		return "pause-full"
	case PhaseDeleting:
		return "deleting"
	case PhasePauseEmpty:
		return "pause-empty"
	default:
		return "unknown"
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
