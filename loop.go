package kinetic

import (
	"context"
	"time"
)

// DefaultFrameInterval is the frame period Loop uses when given zero.
const DefaultFrameInterval = time.Second / 60

// Loop drives e from wall-clock time on the calling goroutine, calling
// Update once per interval with the measured delta, until ctx is done. It
// returns ctx.Err(). Hosts with their own frame loop (ebiten, a browser
// bridge) call Engine.Update directly instead.
func Loop(ctx context.Context, e *Engine, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			e.Update(dt)
			if e.Disposed() {
				return nil
			}
		}
	}
}
