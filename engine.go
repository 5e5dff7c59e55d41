package kinetic

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// EventType identifies a kind of engine event.
type EventType uint8

const (
	EventDisclosureChanged EventType = iota // a Disclosure changed state
	EventItemRevealed                       // a StaggeredReveal item revealed
	EventTypewriterText                     // a Typewriter's display text changed
)

func (t EventType) String() string {
	switch t {
	case EventDisclosureChanged:
		return "disclosure-changed"
	case EventItemRevealed:
		return "item-revealed"
	case EventTypewriterText:
		return "typewriter-text"
	default:
		return "unknown"
	}
}

// Event describes a state change in a component created through an Engine.
type Event struct {
	Type   EventType
	Source string        // name the component was registered under
	Time   time.Duration // timeline time of the change
	// Disclosure fields (valid for EventDisclosureChanged)
	From DisclosureState
	To   DisclosureState
	// Reveal fields (valid for EventItemRevealed)
	Index int
	// Typewriter fields (valid for EventTypewriterText)
	Text string
}

// EventSink receives engine events, e.g. to forward them to an ECS.
type EventSink interface {
	EmitEvent(event Event)
}

// emitter carries the identity, logger and sink a component reports through.
type emitter struct {
	name string
	log  *zap.Logger
	sink EventSink
	now  func() time.Duration
}

func newEmitter() emitter {
	return emitter{log: zap.NewNop()}
}

func (e *emitter) emit(ev Event) {
	if e.sink == nil {
		return
	}
	ev.Source = e.name
	if e.now != nil {
		ev.Time = e.now()
	}
	e.sink.EmitEvent(ev)
}

// FrameFunc is called once per engine frame with the frame delta in seconds.
type FrameFunc func(dt float64)

// Subscription is a registered FrameFunc.
type Subscription struct {
	fn     FrameFunc
	active bool
}

// Cancel stops further calls. It is safe to call more than once and from
// inside the subscribed function.
func (s *Subscription) Cancel() {
	if s != nil {
		s.active = false
	}
}

// Active reports whether the subscription still receives frames.
func (s *Subscription) Active() bool {
	return s != nil && s.active
}

type disposer interface {
	Dispose()
}

// Engine drives the components of one view: it owns the coarse Timeline
// and the per-frame subscriber list. There is no global engine; hosts call
// Update themselves, once per rendered frame. An Engine is not safe for
// concurrent use.
type Engine struct {
	timeline *Timeline
	log      *zap.Logger
	sink     EventSink

	subs     []*Subscription
	owned    []disposer
	frame    uint64
	disposed bool
}

// NewEngine creates an engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		timeline: NewTimeline(),
		log:      logger,
	}
}

// SetEventSink sets the sink that receives events from components created
// after the call. Pass nil to disable forwarding.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// Timeline returns the engine's clock.
func (e *Engine) Timeline() *Timeline {
	return e.timeline
}

// Now returns the engine's timeline time.
func (e *Engine) Now() time.Duration {
	return e.timeline.Now()
}

// Frame returns the number of Update calls processed.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *zap.Logger {
	return e.log
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

// Subscribe registers fn to run on every Update, after due timers fire.
func (e *Engine) Subscribe(fn FrameFunc) *Subscription {
	s := &Subscription{fn: fn, active: !e.disposed}
	if s.active {
		e.subs = append(e.subs, s)
	}
	return s
}

// MaxFrameDelta is the largest delta, in seconds, passed to frame
// subscribers. The timeline still advances by the full delta.
const MaxFrameDelta = 0.04

// Update advances the timeline by dt seconds, then runs frame subscribers
// in subscription order with dt capped at MaxFrameDelta. Negative deltas
// are treated as zero.
func (e *Engine) Update(dt float64) {
	if e.disposed {
		return
	}
	if !(dt > 0) {
		dt = 0
	}
	e.frame++
	e.timeline.Advance(secondsToDuration(dt))

	frameDT := math.Min(dt, MaxFrameDelta)
	n := len(e.subs)
	for i := 0; i < n && !e.disposed; i++ {
		if s := e.subs[i]; s.active {
			s.fn(frameDT)
		}
	}
	if e.disposed {
		return
	}

	// Drop cancelled subscriptions, keeping any added during this frame.
	live := e.subs[:0]
	for _, s := range e.subs {
		if s.active {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(e.subs); i++ {
		e.subs[i] = nil
	}
	e.subs = live
}

// Dispose tears down every component created through the engine and cancels
// all subscriptions. No callback runs after Dispose returns.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	for _, d := range e.owned {
		d.Dispose()
	}
	e.owned = nil
	for _, s := range e.subs {
		s.active = false
	}
	e.subs = nil
	e.disposed = true
	e.log.Debug("engine disposed", zap.Uint64("frames", e.frame),
		zap.Int("droppedTimers", e.timeline.Pending()))
	e.timeline.clear()
}

func (e *Engine) emitterFor(kind, name string) emitter {
	return emitter{
		name: name,
		log:  e.log.With(zap.String("component", kind), zap.String("name", name)),
		sink: e.sink,
		now:  e.timeline.Now,
	}
}

func (e *Engine) own(d disposer) {
	e.owned = append(e.owned, d)
}

// NewDisclosure creates a Disclosure on the engine's timeline.
func (e *Engine) NewDisclosure(name string, cfg DisclosureConfig) (*Disclosure, error) {
	d, err := NewDisclosure(e.timeline, cfg)
	if err != nil {
		return nil, err
	}
	d.emitter = e.emitterFor("disclosure", name)
	e.own(d)
	return d, nil
}

// NewReveal creates a StaggeredReveal whose item tweens advance on engine
// frames.
func (e *Engine) NewReveal(name string, cfg RevealConfig) (*StaggeredReveal, error) {
	r, err := NewStaggeredReveal(e.timeline, cfg)
	if err != nil {
		return nil, err
	}
	r.emitter = e.emitterFor("reveal", name)
	r.sub = e.Subscribe(r.Update)
	e.own(r)
	return r, nil
}

// NewTypewriter creates a Typewriter on the engine's timeline. It does not
// start until Start is called.
func (e *Engine) NewTypewriter(name string, cfg TypewriterConfig) (*Typewriter, error) {
	t, err := NewTypewriter(e.timeline, cfg)
	if err != nil {
		return nil, err
	}
	t.emitter = e.emitterFor("typewriter", name)
	e.own(t)
	return t, nil
}

// NewScrollEffect creates a ScrollEffect sampled on every engine frame.
func (e *Engine) NewScrollEffect(name string, element, viewport Measurer, cfg ScrollConfig) (*ScrollEffect, error) {
	s, err := NewScrollEffect(element, viewport, cfg)
	if err != nil {
		return nil, err
	}
	s.tracker.log = e.emitterFor("scroll", name).log
	s.sub = e.Subscribe(func(dt float64) {
		s.Update(e.timeline.Now(), dt)
	})
	e.own(s)
	return s, nil
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
