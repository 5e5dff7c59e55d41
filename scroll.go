package kinetic

import "time"

// ScrollConfig configures a ScrollEffect. Start from DefaultScrollConfig:
// the zero Offset is a valid "start start" offset, not "unset".
type ScrollConfig struct {
	Entry  Offset
	Exit   Offset
	Spring *SpringConfig // nil disables smoothing
	Styles StyleMap
}

// DefaultScrollConfig tracks from OffsetStartEnd to OffsetEndStart without
// smoothing and with no style channels.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{Entry: OffsetStartEnd, Exit: OffsetEndStart}
}

// ScrollEffect maps an element's scroll progress to a Style: the tracker
// samples, the optional spring smooths, and the style map interpolates.
type ScrollEffect struct {
	tracker *ProgressTracker
	spring  *Spring
	styles  StyleMap

	primed   bool
	progress float64
	style    Style
	sub      *Subscription
	disposed bool
}

// NewScrollEffect creates an effect for element inside viewport.
func NewScrollEffect(element, viewport Measurer, cfg ScrollConfig) (*ScrollEffect, error) {
	e := &ScrollEffect{
		tracker: NewProgressTrackerOffsets(element, viewport, cfg.Entry, cfg.Exit),
		styles:  cfg.Styles,
	}
	if cfg.Spring != nil {
		sp, err := NewSpring(*cfg.Spring, 0)
		if err != nil {
			return nil, err
		}
		e.spring = sp
	}
	e.style = cfg.Styles.Evaluate(0)
	return e, nil
}

// Update samples the tracker at now, advances the spring by dt seconds and
// returns the new style. The spring starts at rest on the first sample.
func (e *ScrollEffect) Update(now time.Duration, dt float64) Style {
	if e.disposed {
		return e.style
	}
	p := e.tracker.Sample(now).Value
	if e.spring != nil {
		if !e.primed {
			e.spring.Jump(p)
		}
		p = e.spring.Step(p, dt)
	}
	e.primed = true
	e.progress = p
	e.style = e.styles.Evaluate(p)
	return e.style
}

// Style returns the style computed by the last Update.
func (e *ScrollEffect) Style() Style { return e.style }

// Progress returns the smoothed, unclamped progress of the last Update.
func (e *ScrollEffect) Progress() float64 { return e.progress }

// Tracker returns the underlying tracker.
func (e *ScrollEffect) Tracker() *ProgressTracker { return e.tracker }

// Spring returns the smoothing spring, or nil.
func (e *ScrollEffect) Spring() *Spring { return e.spring }

// Dispose stops frame updates. The last style stays readable.
func (e *ScrollEffect) Dispose() {
	e.disposed = true
	e.sub.Cancel()
}
