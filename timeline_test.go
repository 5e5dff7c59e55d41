package kinetic

import (
	"testing"
	"time"
)

func TestTimelineFiresInDueOrder(t *testing.T) {
	tl := NewTimeline()
	var order []int
	tl.After(30*time.Millisecond, func() { order = append(order, 3) })
	tl.After(10*time.Millisecond, func() { order = append(order, 1) })
	tl.After(20*time.Millisecond, func() { order = append(order, 2) })

	tl.Advance(25 * time.Millisecond)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order after 25ms = %v, want [1 2]", order)
	}
	tl.Advance(5 * time.Millisecond)
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("order after 30ms = %v, want [1 2 3]", order)
	}
	if tl.Now() != 30*time.Millisecond {
		t.Errorf("Now = %v, want 30ms", tl.Now())
	}
}

func TestTimelineSameDueKeepsScheduleOrder(t *testing.T) {
	tl := NewTimeline()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		tl.After(time.Millisecond, func() { order = append(order, i) })
	}
	tl.Advance(time.Millisecond)
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestTimelineNowInsideCallback(t *testing.T) {
	tl := NewTimeline()
	var seen time.Duration
	tl.After(40*time.Millisecond, func() { seen = tl.Now() })
	tl.Advance(time.Second)
	if seen != 40*time.Millisecond {
		t.Errorf("Now inside callback = %v, want 40ms", seen)
	}
}

func TestTimelineNestedScheduling(t *testing.T) {
	tl := NewTimeline()
	var fired []time.Duration
	tl.After(10*time.Millisecond, func() {
		fired = append(fired, tl.Now())
		tl.After(10*time.Millisecond, func() { fired = append(fired, tl.Now()) })
	})
	tl.Advance(25 * time.Millisecond)
	if len(fired) != 2 {
		t.Fatalf("fired %d callbacks, want 2", len(fired))
	}
	if fired[1] != 20*time.Millisecond {
		t.Errorf("nested callback at %v, want 20ms", fired[1])
	}
}

func TestTimerStop(t *testing.T) {
	tl := NewTimeline()
	ran := false
	timer := tl.After(time.Millisecond, func() { ran = true })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer should return true")
	}
	if timer.Stop() {
		t.Error("second Stop should return false")
	}
	tl.Advance(time.Second)
	if ran {
		t.Error("stopped timer ran")
	}
	if tl.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", tl.Pending())
	}
}

func TestTimerStopAfterFire(t *testing.T) {
	tl := NewTimeline()
	timer := tl.After(0, func() {})
	tl.Advance(0)
	if timer.Stop() {
		t.Error("Stop after fire should return false")
	}
	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("Stop on nil timer should return false")
	}
}

func TestTimerStopMiddleOfQueue(t *testing.T) {
	tl := NewTimeline()
	var order []int
	tl.After(1*time.Millisecond, func() { order = append(order, 1) })
	mid := tl.After(2*time.Millisecond, func() { order = append(order, 2) })
	tl.After(3*time.Millisecond, func() { order = append(order, 3) })
	mid.Stop()
	tl.Advance(10 * time.Millisecond)
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Errorf("order = %v, want [1 3]", order)
	}
}

func TestTimelineNegativeDelay(t *testing.T) {
	tl := NewTimeline()
	tl.Advance(5 * time.Millisecond)
	timer := tl.After(-time.Second, func() {})
	if timer.Due() != 5*time.Millisecond {
		t.Errorf("Due = %v, want 5ms", timer.Due())
	}
	tl.Advance(-time.Second)
	if tl.Now() != 5*time.Millisecond {
		t.Errorf("negative Advance moved clock to %v", tl.Now())
	}
	if tl.Pending() != 0 {
		t.Error("zero-delay timer should fire on the next Advance")
	}
}
