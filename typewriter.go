package kinetic

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TypewriterConfig configures a Typewriter.
type TypewriterConfig struct {
	Words       []string
	TypeDelay   time.Duration // per added character
	DeleteDelay time.Duration // per removed character
	PauseFull   time.Duration // hold on the complete word
	PauseEmpty  time.Duration // hold on the empty string before the next word
}

// DefaultTypewriterConfig returns the hero timings: 150ms per typed
// character, 75ms per deleted one, 2s on the full word and 500ms empty.
func DefaultTypewriterConfig(words ...string) TypewriterConfig {
	return TypewriterConfig{
		Words:       words,
		TypeDelay:   150 * time.Millisecond,
		DeleteDelay: 75 * time.Millisecond,
		PauseFull:   2 * time.Second,
		PauseEmpty:  500 * time.Millisecond,
	}
}

// Validate requires at least one word, no empty words, positive per
// character delays and non-negative pauses.
func (c TypewriterConfig) Validate() error {
	if len(c.Words) == 0 {
		return fmt.Errorf("kinetic: typewriter: %w", ErrNoWords)
	}
	for i, w := range c.Words {
		if w == "" {
			return fmt.Errorf("kinetic: typewriter word %d is empty: %w", i, ErrNoWords)
		}
	}
	if c.TypeDelay <= 0 {
		return fmt.Errorf("kinetic: typewriter typeDelay %v must be positive: %w", c.TypeDelay, ErrInvalidTiming)
	}
	if c.DeleteDelay <= 0 {
		return fmt.Errorf("kinetic: typewriter deleteDelay %v must be positive: %w", c.DeleteDelay, ErrInvalidTiming)
	}
	return nonNegative("typewriter",
		namedDuration{"pauseFull", c.PauseFull},
		namedDuration{"pauseEmpty", c.PauseEmpty})
}

// TypewriterState is a snapshot of a Typewriter.
type TypewriterState struct {
	WordIndex int
	CharCount int
	Phase     TypewriterPhase
}

// Typewriter cycles through words forever, typing each one character at a
// time, holding it, deleting it and holding the empty string. Every step is
// one timer callback, so a stopped typewriter never holds a half-applied
// step.
type Typewriter struct {
	cfg     TypewriterConfig
	words   [][]rune
	tl      *Timeline
	state   TypewriterState
	pending *Timer

	running  bool
	disposed bool
	onText   []func(text string)
	emitter
}

// NewTypewriter creates a stopped typewriter at word 0 with nothing typed.
func NewTypewriter(tl *Timeline, cfg TypewriterConfig) (*Typewriter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	words := make([][]rune, len(cfg.Words))
	for i, w := range cfg.Words {
		words[i] = []rune(w)
	}
	cfg.Words = append([]string(nil), cfg.Words...)
	return &Typewriter{cfg: cfg, words: words, tl: tl, emitter: newEmitter()}, nil
}

// State returns the current state.
func (t *Typewriter) State() TypewriterState { return t.state }

// Running reports whether a step is scheduled.
func (t *Typewriter) Running() bool { return t.running }

// Text returns the characters currently displayed.
func (t *Typewriter) Text() string {
	return string(t.words[t.state.WordIndex][:t.state.CharCount])
}

// Word returns the word currently being typed or deleted.
func (t *Typewriter) Word() string {
	return t.cfg.Words[t.state.WordIndex]
}

// Cursor reports whether a blinking cursor is lit at time now.
func (t *Typewriter) Cursor(now time.Duration) bool {
	const half = 600 * time.Millisecond
	return (now/half)%2 == 0
}

// OnText registers fn to run whenever the displayed text changes.
func (t *Typewriter) OnText(fn func(text string)) {
	t.onText = append(t.onText, fn)
}

// Start schedules the next step from the current state. It does nothing if
// already running or disposed.
func (t *Typewriter) Start() {
	if t.disposed || t.running {
		return
	}
	t.running = true
	t.schedule()
}

// Stop cancels the pending step, keeping the current state.
func (t *Typewriter) Stop() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
	t.running = false
}

// Restart stops the typewriter, clears it back to word 0 and starts again.
func (t *Typewriter) Restart() {
	if t.disposed {
		return
	}
	t.Stop()
	changed := t.state.CharCount != 0
	t.state = TypewriterState{}
	if changed {
		t.textChanged()
	}
	t.Start()
}

// Dispose stops the typewriter permanently.
func (t *Typewriter) Dispose() {
	t.Stop()
	t.disposed = true
	t.onText = nil
}

func (t *Typewriter) schedule() {
	w := t.words[t.state.WordIndex]
	switch t.state.Phase {
	case PhaseTyping:
		if t.state.CharCount < len(w) {
			t.after(t.cfg.TypeDelay, func() {
				t.state.CharCount++
				t.textChanged()
			})
			return
		}
		t.enter(PhasePauseFull)
	case PhasePauseFull:
		t.after(t.cfg.PauseFull, func() { t.setPhase(PhaseDeleting) })
	case PhaseDeleting:
		if t.state.CharCount > 0 {
			t.after(t.cfg.DeleteDelay, func() {
				t.state.CharCount--
				t.textChanged()
			})
			return
		}
		t.state.WordIndex = (t.state.WordIndex + 1) % len(t.words)
		t.enter(PhasePauseEmpty)
	case PhasePauseEmpty:
		t.after(t.cfg.PauseEmpty, func() { t.setPhase(PhaseTyping) })
	}
}

// enter switches phase and schedules the phase's first step.
func (t *Typewriter) enter(p TypewriterPhase) {
	t.setPhase(p)
	t.schedule()
}

func (t *Typewriter) setPhase(p TypewriterPhase) {
	t.state.Phase = p
	t.log.Debug("typewriter phase", zap.Stringer("phase", p), zap.Int("word", t.state.WordIndex))
}

// after runs step after d, then schedules whatever follows it unless a text
// observer stopped or restarted the typewriter in the meantime.
func (t *Typewriter) after(d time.Duration, step func()) {
	t.pending = t.tl.After(d, func() {
		t.pending = nil
		step()
		if t.running && t.pending == nil {
			t.schedule()
		}
	})
}

func (t *Typewriter) textChanged() {
	text := t.Text()
	t.emit(Event{Type: EventTypewriterText, Text: text})
	for _, fn := range t.onText {
		fn(text)
	}
}
