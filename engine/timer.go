package engine

import "time"

// IntervalTimer fires a callback at a fixed interval when ticked from the main loop
// Rescheduling is next = now + interval, late ticks are not drift-corrected
type IntervalTimer struct {
	callback func()
	interval time.Duration
	next     time.Time
}

// Set registers callback to fire every interval starting one interval after now
// A nil callback or non-positive interval clears the timer
func (t *IntervalTimer) Set(now time.Time, interval time.Duration, callback func()) {
	if callback == nil || interval <= 0 {
		t.Clear()
		return
	}
	t.callback = callback
	t.interval = interval
	t.next = now.Add(interval)
}

// Clear unregisters the callback
func (t *IntervalTimer) Clear() {
	t.callback = nil
	t.interval = 0
	t.next = time.Time{}
}

// Active reports whether a callback is registered
func (t *IntervalTimer) Active() bool {
	return t.callback != nil
}

// Tick invokes the callback if now has reached the deadline
// Returns true when the callback fired
func (t *IntervalTimer) Tick(now time.Time) bool {
	if t.callback == nil || now.Before(t.next) {
		return false
	}
	t.callback()
	t.next = now.Add(t.interval)
	return true
}
