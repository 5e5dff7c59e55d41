package kinetic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Offset pins a point on the tracked element to a point on the viewport.
// Both fields are fractions along the scroll axis: 0 is the start (top)
// edge, 1 the end (bottom) edge.
type Offset struct {
	Element  float64
	Viewport float64
}

// Common offsets. The default tracking range runs from OffsetStartEnd (the
// element's top meets the viewport's bottom) to OffsetEndStart (the
// element's bottom meets the viewport's top).
var (
	OffsetStartEnd   = Offset{Element: 0, Viewport: 1}
	OffsetEndStart   = Offset{Element: 1, Viewport: 0}
	OffsetStartStart = Offset{Element: 0, Viewport: 0}
	OffsetEndEnd     = Offset{Element: 1, Viewport: 1}
)

// ParseOffset parses an "<element> <viewport>" pair such as "start end".
// Each edge is one of start, center, end, or a fraction like 0.25.
func ParseOffset(s string) (Offset, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Offset{}, fmt.Errorf("kinetic: parse offset %q: %w", s, ErrInvalidOffset)
	}
	el, err := parseEdge(fields[0])
	if err != nil {
		return Offset{}, fmt.Errorf("kinetic: parse offset %q: %w", s, err)
	}
	vp, err := parseEdge(fields[1])
	if err != nil {
		return Offset{}, fmt.Errorf("kinetic: parse offset %q: %w", s, err)
	}
	return Offset{Element: el, Viewport: vp}, nil
}

func parseEdge(s string) (float64, error) {
	switch s {
	case "start":
		return 0, nil
	case "center":
		return 0.5, nil
	case "end":
		return 1, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		return 0, ErrInvalidOffset
	}
	return v, nil
}

// String formats the offset in the form accepted by ParseOffset.
func (o Offset) String() string {
	return formatEdge(o.Element) + " " + formatEdge(o.Viewport)
}

func formatEdge(v float64) string {
	switch v {
	case 0:
		return "start"
	case 0.5:
		return "center"
	case 1:
		return "end"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Measurer reports a bounding box in a coordinate space shared by the
// tracked element and its viewport. ok is false when the box cannot be
// measured, e.g. the element is detached.
type Measurer interface {
	Measure() (bounds Rect, ok bool)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func() (Rect, bool)

// Measure calls f.
func (f MeasureFunc) Measure() (Rect, bool) { return f() }

// FixedBounds is a Measurer that always reports the same rectangle.
type FixedBounds Rect

// Measure returns the rectangle.
func (b FixedBounds) Measure() (Rect, bool) { return Rect(b), true }

// ProgressSample is one progress reading. Value is unclamped: it runs from 0
// at the entry offset to 1 at the exit offset and leaves that range outside
// it. Time never decreases between samples of the same tracker.
type ProgressSample struct {
	Value float64
	Time  time.Duration
}

// ProgressTracker converts the position of an element relative to its
// viewport into a progress value. Bounds are re-measured on every sample.
type ProgressTracker struct {
	element  Measurer
	viewport Measurer
	entry    Offset
	exit     Offset

	last   ProgressSample
	frozen bool
	log    *zap.Logger
}

// NewProgressTracker creates a tracker using the default range, from
// OffsetStartEnd to OffsetEndStart.
func NewProgressTracker(element, viewport Measurer) *ProgressTracker {
	return NewProgressTrackerOffsets(element, viewport, OffsetStartEnd, OffsetEndStart)
}

// NewProgressTrackerOffsets creates a tracker with an explicit entry/exit
// range.
func NewProgressTrackerOffsets(element, viewport Measurer, entry, exit Offset) *ProgressTracker {
	return &ProgressTracker{
		element:  element,
		viewport: viewport,
		entry:    entry,
		exit:     exit,
		log:      zap.NewNop(),
	}
}

// Offsets returns the entry and exit offsets.
func (t *ProgressTracker) Offsets() (entry, exit Offset) {
	return t.entry, t.exit
}

// Last returns the most recent sample.
func (t *ProgressTracker) Last() ProgressSample {
	return t.last
}

// Frozen reports whether the last sample was held because the element or
// viewport could not be measured.
func (t *ProgressTracker) Frozen() bool {
	return t.frozen
}

// Sample measures the element and returns the current progress at time now.
// When either box is unmeasurable, or the range is degenerate, the previous
// value is held.
func (t *ProgressTracker) Sample(now time.Duration) ProgressSample {
	if now < t.last.Time {
		now = t.last.Time
	}
	v, ok := t.measure()
	if !ok {
		if !t.frozen {
			t.log.Warn("progress tracker frozen: element not measurable",
				zap.Float64("last", t.last.Value))
		}
		t.frozen = true
		t.last.Time = now
		return t.last
	}
	t.frozen = false
	t.last = ProgressSample{Value: v, Time: now}
	return t.last
}

func (t *ProgressTracker) measure() (float64, bool) {
	if t.element == nil || t.viewport == nil {
		return 0, false
	}
	el, ok := t.element.Measure()
	if !ok || !el.finite() {
		return 0, false
	}
	vp, ok := t.viewport.Measure()
	if !ok || !vp.finite() {
		return 0, false
	}
	entryEdge := edgePosition(t.entry, el, vp)
	exitEdge := edgePosition(t.exit, el, vp)
	span := entryEdge - exitEdge
	if span == 0 {
		return 0, false
	}
	v := (entryEdge - el.Y) / span
	if !isFinite(v) {
		return 0, false
	}
	return v, true
}

// edgePosition is the element top at which o's element point lines up with
// o's viewport point.
func edgePosition(o Offset, el, vp Rect) float64 {
	return vp.Y + o.Viewport*vp.Height - o.Element*el.Height
}

// InView reports whether element intersects viewport grown by margin. A
// negative margin requires the element to be that far inside the viewport.
func InView(element, viewport Rect, margin float64) bool {
	vp := viewport.Grow(margin)
	if vp.Width == 0 || vp.Height == 0 {
		return false
	}
	return element.Intersects(vp)
}
