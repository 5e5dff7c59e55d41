package kinetic

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// RevealConfig configures a StaggeredReveal. Item i reveals at
// BaseDelay + i*PerItemDelay after the container first becomes visible,
// then tweens its style from From to To over Duration.
type RevealConfig struct {
	Items        int
	BaseDelay    time.Duration
	PerItemDelay time.Duration
	Duration     time.Duration
	From         Style
	To           Style
	Ease         ease.TweenFunc // nil means ease.OutCubic
}

// DefaultRevealConfig returns the card reveal used by the project and blog
// lists: 200ms between items, each fading in from 20px below with a 10px
// blur over 500ms.
func DefaultRevealConfig(items int) RevealConfig {
	return RevealConfig{
		Items:        items,
		PerItemDelay: 200 * time.Millisecond,
		Duration:     500 * time.Millisecond,
		From:         Style{Opacity: 0, Blur: 10, TranslateY: 20, Scale: 1},
		To:           StyleNeutral,
	}
}

// Validate rejects negative counts and durations.
func (c RevealConfig) Validate() error {
	if c.Items < 0 {
		return fmt.Errorf("kinetic: reveal item count %d: %w", c.Items, ErrInvalidTiming)
	}
	return nonNegative("reveal",
		namedDuration{"baseDelay", c.BaseDelay},
		namedDuration{"perItemDelay", c.PerItemDelay},
		namedDuration{"duration", c.Duration})
}

// RevealItem is the public view of one item.
type RevealItem struct {
	Index    int
	Delay    time.Duration
	Revealed bool
}

type revealItem struct {
	delay    time.Duration
	revealed bool
	timer    *Timer
	tweens   [5]*gween.Tween
	style    Style
	settled  bool
}

// StaggeredReveal reveals a list of items one after another the first time
// its container becomes visible. Each item reveals at most once; later
// visibility changes are ignored.
type StaggeredReveal struct {
	cfg       RevealConfig
	tl        *Timeline
	items     []revealItem
	visible   bool
	triggered bool
	revealed  int
	onReveal  []func(index int)
	sub       *Subscription
	disposed  bool
	emitter
}

// NewStaggeredReveal creates a reveal scheduled on tl. Item tweens advance
// through Update, which an Engine calls every frame.
func NewStaggeredReveal(tl *Timeline, cfg RevealConfig) (*StaggeredReveal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.OutCubic
	}
	r := &StaggeredReveal{
		cfg:     cfg,
		tl:      tl,
		items:   make([]revealItem, cfg.Items),
		emitter: newEmitter(),
	}
	for i := range r.items {
		r.items[i].delay = cfg.BaseDelay + time.Duration(i)*cfg.PerItemDelay
		r.items[i].style = cfg.From
	}
	return r, nil
}

// Len returns the number of items.
func (r *StaggeredReveal) Len() int { return len(r.items) }

// Triggered reports whether the container has ever become visible.
func (r *StaggeredReveal) Triggered() bool { return r.triggered }

// OnReveal registers fn to run when an item reveals.
func (r *StaggeredReveal) OnReveal(fn func(index int)) {
	r.onReveal = append(r.onReveal, fn)
}

// SetVisible reports the container's current visibility. The first
// not-visible to visible change schedules every item; nothing else does.
func (r *StaggeredReveal) SetVisible(visible bool) {
	was := r.visible
	r.visible = visible
	if r.disposed || r.triggered || !visible || was {
		return
	}
	r.triggered = true
	r.log.Debug("reveal triggered", zap.Int("items", len(r.items)), zap.Duration("at", r.tl.Now()))
	for i := range r.items {
		i := i
		r.items[i].timer = r.tl.After(r.items[i].delay, func() { r.reveal(i) })
	}
}

func (r *StaggeredReveal) reveal(i int) {
	it := &r.items[i]
	it.timer = nil
	if it.revealed {
		return
	}
	it.revealed = true
	r.revealed++

	d := float32(r.cfg.Duration.Seconds())
	if d > 0 {
		from, to := r.cfg.From, r.cfg.To
		it.tweens[0] = gween.New(float32(from.Opacity), float32(to.Opacity), d, r.cfg.Ease)
		it.tweens[1] = gween.New(float32(from.Blur), float32(to.Blur), d, r.cfg.Ease)
		it.tweens[2] = gween.New(float32(from.TranslateX), float32(to.TranslateX), d, r.cfg.Ease)
		it.tweens[3] = gween.New(float32(from.TranslateY), float32(to.TranslateY), d, r.cfg.Ease)
		it.tweens[4] = gween.New(float32(from.Scale), float32(to.Scale), d, r.cfg.Ease)
	} else {
		it.style = r.cfg.To
		it.settled = true
	}

	r.emit(Event{Type: EventItemRevealed, Index: i})
	for _, fn := range r.onReveal {
		fn(i)
	}
}

// Update advances the style tweens of revealed items by dt seconds.
func (r *StaggeredReveal) Update(dt float64) {
	if r.disposed {
		return
	}
	for i := range r.items {
		it := &r.items[i]
		if !it.revealed || it.settled {
			continue
		}
		var v [5]float32
		done := true
		for c, tw := range it.tweens {
			val, finished := tw.Update(float32(dt))
			v[c] = val
			if !finished {
				done = false
			}
		}
		if done {
			it.style = r.cfg.To
			it.settled = true
			continue
		}
		it.style = Style{
			Opacity:    float64(v[0]),
			Blur:       float64(v[1]),
			TranslateX: float64(v[2]),
			TranslateY: float64(v[3]),
			Scale:      float64(v[4]),
		}
	}
}

// Revealed reports whether item i has revealed. Out-of-range indices report
// false.
func (r *StaggeredReveal) Revealed(i int) bool {
	if i < 0 || i >= len(r.items) {
		return false
	}
	return r.items[i].revealed
}

// ItemStyle returns item i's current style: From before it reveals, the
// tweened value while animating, To once settled.
func (r *StaggeredReveal) ItemStyle(i int) Style {
	if i < 0 || i >= len(r.items) {
		return r.cfg.From
	}
	return r.items[i].style
}

// Items returns a snapshot of every item.
func (r *StaggeredReveal) Items() []RevealItem {
	out := make([]RevealItem, len(r.items))
	for i, it := range r.items {
		out[i] = RevealItem{Index: i, Delay: it.delay, Revealed: it.revealed}
	}
	return out
}

// Done reports whether every item has revealed.
func (r *StaggeredReveal) Done() bool {
	return r.revealed == len(r.items)
}

// Dispose cancels every unfired reveal and stops tween updates.
func (r *StaggeredReveal) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for i := range r.items {
		if t := r.items[i].timer; t != nil {
			t.Stop()
			r.items[i].timer = nil
		}
	}
	r.sub.Cancel()
	r.onReveal = nil
}
