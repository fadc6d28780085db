package arcana

import "testing"

func TestInjectClick(t *testing.T) {
	s := NewScene()
	n := box("n", 0, 0)
	s.Root().AddChild(n)

	var tapped bool
	n.OnTap = func(ctx PointerContext) {
		tapped = true
		if ctx.Node != n {
			t.Error("expected n")
		}
	}

	s.InjectClick(50, 50)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.Pending())
	}

	// Frame 1: press
	s.processInjectedInput()
	if s.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.Pending())
	}
	if tapped {
		t.Error("tap should not fire on press frame")
	}

	// Frame 2: release fires the tap
	s.processInjectedInput()
	if s.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", s.Pending())
	}
	if !tapped {
		t.Error("tap should fire on release frame")
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewScene()
	n := box("n", 0, 0)
	s.Root().AddChild(n)

	var events []string
	n.OnPointerDown = func(PointerContext) { events = append(events, "down") }
	n.OnPointerMove = func(PointerContext) { events = append(events, "move") }
	n.OnPointerUpOutside = func(PointerContext) { events = append(events, "upoutside") }

	// Press at (10,10), three moves, release at (200,200) outside n.
	s.InjectDrag(10, 10, 200, 200, 5)
	if s.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", s.Pending())
	}
	for s.Pending() > 0 {
		s.processInjectedInput()
	}

	want := []string{"down", "move", "move", "move", "upoutside"}
	if !equalStrings(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 100, 100, 1)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", s.Pending())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewScene()

	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectHover(35, 45)
	s.InjectRelease(50, 60)

	if len(s.injectQueue) != 4 {
		t.Fatalf("expected 4 events, got %d", len(s.injectQueue))
	}
	q := s.injectQueue
	if !q[0].pressed || q[0].screenX != 10 {
		t.Error("first event should be press at (10,20)")
	}
	if !q[1].pressed || q[1].screenX != 30 {
		t.Error("second event should be move at (30,40)")
	}
	if q[2].pressed || q[2].screenY != 45 {
		t.Error("third event should be hover at (35,45)")
	}
	if q[3].pressed || q[3].screenX != 50 {
		t.Error("fourth event should be release at (50,60)")
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := NewScene()
	n := box("n", 0, 0)
	s.Root().AddChild(n)

	var downFired bool
	s.On(EventPointerDown, func(ctx PointerContext) {
		downFired = true
		if ctx.GlobalX != 50 || ctx.GlobalY != 50 || ctx.PointerID != 0 {
			t.Errorf("ctx = %+v, want pointer 0 at (50,50)", ctx)
		}
	})

	s.InjectPress(50, 50)
	if !s.processInjectedInput() {
		t.Error("expected processInjectedInput to consume an event")
	}
	if !downFired {
		t.Error("pointer down should have fired")
	}
	if !s.PointerDown(0) {
		t.Error("pointer 0 should be held")
	}
}

func TestProcessInjectedInputEmptyQueue(t *testing.T) {
	s := NewScene()
	if s.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}
}
