package kinetic

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DisclosureConfig holds the timings of a Disclosure.
type DisclosureConfig struct {
	ItemCount  int           // children that animate out on close
	Stagger    time.Duration // delay between consecutive children
	ItemExit   time.Duration // exit animation length of one child
	Grow       time.Duration // container expand time on open
	EnterDelay time.Duration // delay before the first child enters
}

// DefaultDisclosureConfig returns the floating menu timings: six items
// staggered by 100ms with a 200ms exit, a 400ms grow and a 500ms enter delay.
func DefaultDisclosureConfig() DisclosureConfig {
	return DisclosureConfig{
		ItemCount:  6,
		Stagger:    100 * time.Millisecond,
		ItemExit:   200 * time.Millisecond,
		Grow:       400 * time.Millisecond,
		EnterDelay: 500 * time.Millisecond,
	}
}

// Validate rejects negative counts and durations.
func (c DisclosureConfig) Validate() error {
	if c.ItemCount < 0 {
		return fmt.Errorf("kinetic: disclosure item count %d: %w", c.ItemCount, ErrInvalidTiming)
	}
	return nonNegative("disclosure",
		namedDuration{"stagger", c.Stagger},
		namedDuration{"itemExit", c.ItemExit},
		namedDuration{"grow", c.Grow},
		namedDuration{"enterDelay", c.EnterDelay})
}

// CollapseWait returns how long a container must stay expanded after close
// so that n children, staggered by stagger and each taking exit to leave,
// have all finished exiting.
func CollapseWait(n int, stagger, exit time.Duration) time.Duration {
	if n < 0 {
		n = 0
	}
	return time.Duration(n)*stagger + exit
}

// Disclosure sequences an expandable container and its children through
// Closed, Opening, Open and Closing. Opening and Closing advance on their
// own after a scheduled delay; Closing lasts until every child has exited,
// and only the Closing to Closed change signals the container to shrink.
type Disclosure struct {
	cfg     DisclosureConfig
	tl      *Timeline
	state   DisclosureState
	pending *Timer

	closeAt   time.Duration
	observers []func(from, to DisclosureState)
	disposed  bool
	emitter
}

// NewDisclosure creates a closed disclosure scheduled on tl.
func NewDisclosure(tl *Timeline, cfg DisclosureConfig) (*Disclosure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Disclosure{cfg: cfg, tl: tl, emitter: newEmitter()}, nil
}

// State returns the current state.
func (d *Disclosure) State() DisclosureState { return d.state }

// Config returns the timings.
func (d *Disclosure) Config() DisclosureConfig { return d.cfg }

// OnChange registers fn to run after every state change.
func (d *Disclosure) OnChange(fn func(from, to DisclosureState)) {
	d.observers = append(d.observers, fn)
}

// WaitTime returns the delay between Close and the container shrinking.
func (d *Disclosure) WaitTime() time.Duration {
	return CollapseWait(d.cfg.ItemCount, d.cfg.Stagger, d.cfg.ItemExit)
}

// ItemEnterDelay returns when child i starts entering, relative to Open.
func (d *Disclosure) ItemEnterDelay(i int) time.Duration {
	return d.cfg.EnterDelay + time.Duration(i)*d.cfg.Stagger
}

// ItemExitDelay returns when child i starts exiting, relative to Close.
func (d *Disclosure) ItemExitDelay(i int) time.Duration {
	return time.Duration(i) * d.cfg.Stagger
}

// ItemExitComplete returns when child i has fully exited, relative to Close.
func (d *Disclosure) ItemExitComplete(i int) time.Duration {
	return d.ItemExitDelay(i) + d.cfg.ItemExit
}

// Open starts expanding a closed disclosure. It reports whether the call
// had an effect; in any other state it does nothing.
func (d *Disclosure) Open() bool {
	if d.disposed || d.state != DisclosureClosed {
		return false
	}
	d.set(DisclosureOpening)
	d.pending = d.tl.After(d.cfg.Grow, func() {
		d.pending = nil
		d.set(DisclosureOpen)
	})
	return true
}

// Close starts collapsing an open disclosure. Children exit first; the
// state reaches Closed WaitTime after the call. Calling Close in any state
// other than Open, including Closing, does nothing and does not extend the
// wait.
func (d *Disclosure) Close() bool {
	if d.disposed || d.state != DisclosureOpen {
		return false
	}
	wait := d.WaitTime()
	d.closeAt = d.tl.Now() + wait
	d.set(DisclosureClosing)
	d.pending = d.tl.After(wait, func() {
		d.pending = nil
		d.set(DisclosureClosed)
	})
	return true
}

// Toggle opens a closed disclosure or closes an open one.
func (d *Disclosure) Toggle() bool {
	switch d.state {
	case DisclosureClosed:
		return d.Open()
	case DisclosureOpen:
		return d.Close()
	default:
		return false
	}
}

// CloseAt returns the timeline time at which the pending close completes.
// ok is false unless the disclosure is Closing.
func (d *Disclosure) CloseAt() (at time.Duration, ok bool) {
	return d.closeAt, d.state == DisclosureClosing
}

// Dispose cancels any pending transition. The state is left as is and no
// further changes happen.
func (d *Disclosure) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.observers = nil
}

func (d *Disclosure) set(to DisclosureState) {
	from := d.state
	d.state = to
	d.log.Debug("disclosure transition",
		zap.Stringer("from", from), zap.Stringer("to", to), zap.Duration("at", d.tl.Now()))
	d.emit(Event{Type: EventDisclosureChanged, From: from, To: to})
	for _, fn := range d.observers {
		fn(from, to)
	}
}
