package arcana

import "time"

// Timer is a one-shot callback scheduled with [Scene.After].
type Timer struct {
	remaining float64 // seconds
	fn        func()
	stopped   bool
}

// Stop prevents the timer from firing. Reports whether it was still pending.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// After schedules fn to run once delay of simulated time has passed. Time
// advances with each [Scene.Advance], so a delay shorter than one tick fires
// on the next tick.
func (s *Scene) After(delay time.Duration, fn func()) *Timer {
	t := &Timer{remaining: delay.Seconds(), fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// advanceTimers fires due timers in scheduling order. Timers scheduled by a
// firing callback wait for the next tick.
func (s *Scene) advanceTimers(dt float64) {
	pending := len(s.timers)
	if pending == 0 {
		return
	}
	n := 0
	for i := 0; i < pending; i++ {
		t := s.timers[i]
		if t.stopped {
			continue
		}
		t.remaining -= dt
		if t.remaining <= 0 {
			t.stopped = true
			t.fn()
			continue
		}
		s.timers[n] = t
		n++
	}
	// Keep timers appended by callbacks.
	n += copy(s.timers[n:], s.timers[pending:])
	clear(s.timers[n:])
	s.timers = s.timers[:n]
}
