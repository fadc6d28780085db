package arcana

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestAfterFiresOnceWhenDue(t *testing.T) {
	s := NewScene()
	calls := 0
	s.After(100*time.Millisecond, func() { calls++ })

	s.Advance(0.05)
	if calls != 0 {
		t.Fatalf("fired early after 50ms")
	}
	s.Advance(0.05)
	if calls != 1 {
		t.Fatalf("calls = %d after 100ms, want 1", calls)
	}
	s.Advance(1)
	if calls != 1 {
		t.Errorf("calls = %d, timer should fire once", calls)
	}
	if len(s.timers) != 0 {
		t.Errorf("timers = %d, want 0 after firing", len(s.timers))
	}
}

func TestAfterShortDelayFiresNextTick(t *testing.T) {
	s := NewScene()
	fired := false
	s.After(5*time.Millisecond, func() { fired = true })
	s.Advance(1.0 / 60)
	if !fired {
		t.Error("5ms timer should fire on the next 60Hz tick")
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScene()
	fired := false
	tm := s.After(10*time.Millisecond, func() { fired = true })

	if !tm.Stop() {
		t.Error("Stop on a pending timer should report true")
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}
	s.Advance(1)
	if fired {
		t.Error("stopped timer fired")
	}

	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("Stop on nil timer should report false")
	}
}

func TestTimersFireInOrder(t *testing.T) {
	s := NewScene()
	var order []string
	s.After(20*time.Millisecond, func() { order = append(order, "b") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(500*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(0.1)
	if !equalStrings(order, []string{"b", "a"}) {
		t.Errorf("order = %v, want [b a] (scheduling order)", order)
	}
	if len(s.timers) != 1 {
		t.Errorf("timers = %d, want 1 pending", len(s.timers))
	}
}

func TestTimerScheduledFromCallbackWaits(t *testing.T) {
	s := NewScene()
	var order []string
	s.After(0, func() {
		order = append(order, "first")
		s.After(0, func() { order = append(order, "second") })
	})

	s.Advance(0.01)
	if !equalStrings(order, []string{"first"}) {
		t.Fatalf("order = %v, want [first]", order)
	}
	s.Advance(0.01)
	if !equalStrings(order, []string{"first", "second"}) {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestAdvanceRunsTimersBeforeTweens(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	var seen float64 = -1
	s.Animator().Start(TweenPosition(n, 100, 0, 0.1, ease.Linear))
	s.After(0, func() { seen = n.X })

	s.Advance(0.05)
	if seen != 0 {
		t.Errorf("timer saw X = %v, want 0 (tween not yet stepped)", seen)
	}
	if n.X <= 0 {
		t.Errorf("X = %v, tween should have stepped", n.X)
	}
}
