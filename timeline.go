package kinetic

import (
	"container/heap"
	"fmt"
	"time"
)

// Timer is a callback scheduled on a Timeline.
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	index int // heap index, -1 once fired or stopped
	tl    *Timeline
}

// Stop cancels the timer. It reports whether the call prevented the callback
// from running; false means it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 || t.tl == nil {
		return false
	}
	heap.Remove(&t.tl.queue, t.index)
	t.fn = nil
	return true
}

// Due returns the timeline time at which the timer fires.
func (t *Timer) Due() time.Duration {
	return t.due
}

// Timeline is a cooperative clock for deferred callbacks. Nothing runs on its
// own: the host calls Advance, typically once per frame, and due callbacks
// run synchronously on the caller's goroutine. A Timeline is not safe for
// concurrent use.
type Timeline struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewTimeline creates a timeline at time zero.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the current timeline time. Inside a callback it equals that
// callback's due time.
func (tl *Timeline) Now() time.Duration {
	return tl.now
}

// Pending returns the number of scheduled timers that have not fired.
func (tl *Timeline) Pending() int {
	return len(tl.queue)
}

// After schedules fn to run once d has elapsed on the timeline. Negative
// durations are treated as zero; such callbacks run on the next Advance.
func (tl *Timeline) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{due: tl.now + d, seq: tl.seq, fn: fn, tl: tl}
	tl.seq++
	heap.Push(&tl.queue, t)
	return t
}

// Advance moves the clock forward by d, running every callback that becomes
// due in order of due time, then scheduling order. Callbacks scheduled while
// advancing run in the same pass if they fall due before the new time.
func (tl *Timeline) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	end := tl.now + d
	for len(tl.queue) > 0 && tl.queue[0].due <= end {
		t := heap.Pop(&tl.queue).(*Timer)
		tl.now = t.due
		fn := t.fn
		t.fn = nil
		if fn != nil {
			fn()
		}
	}
	tl.now = end
}

// clear drops every pending timer without running it.
func (tl *Timeline) clear() {
	for _, t := range tl.queue {
		t.index = -1
		t.fn = nil
	}
	tl.queue = nil
}

// timerQueue is a min-heap of timers ordered by (due, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

type namedDuration struct {
	name string
	d    time.Duration
}

func nonNegative(kind string, ds ...namedDuration) error {
	for _, nd := range ds {
		if nd.d < 0 {
			return fmt.Errorf("kinetic: %s %s %v: %w", kind, nd.name, nd.d, ErrInvalidTiming)
		}
	}
	return nil
}
