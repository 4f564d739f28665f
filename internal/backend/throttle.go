package backend

import "time"

// throttle coalesces a burst of notifications into one signal delivered
// interval after the first notification of the burst.
type throttle struct {
	interval time.Duration
	timer    *time.Timer
}

func newThrottle(interval time.Duration) *throttle {
	if interval < 0 {
		interval = 0
	}
	return &throttle{interval: interval}
}

// note arms the throttle unless a signal is already pending.
func (t *throttle) note() {
	if t.timer != nil {
		return
	}
	t.timer = time.NewTimer(t.interval)
}

// ready returns the pending signal channel, or nil when idle so a select
// case on it never fires.
func (t *throttle) ready() <-chan time.Time {
	if t.timer == nil {
		return nil
	}
	return t.timer.C
}

// reset returns the throttle to idle after its signal was consumed.
func (t *throttle) reset() {
	t.timer = nil
}

func (t *throttle) stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
