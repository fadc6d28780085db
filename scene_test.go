package arcana

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.Root() == nil {
		t.Fatal("root should not be nil")
	}
	if s.Root().Name != "root" || s.Root().Type != NodeTypeContainer {
		t.Errorf("root = %q type %d", s.Root().Name, s.Root().Type)
	}
	if !s.Root().Interactable {
		t.Error("root should be interactable so children can be hit")
	}
	if s.Animator() == nil || s.Logger() == nil {
		t.Error("animator and logger should be set")
	}
	if s.Frame() != 0 {
		t.Errorf("Frame = %d, want 0", s.Frame())
	}
}

func TestResizeCallsBackOnChange(t *testing.T) {
	s := NewScene()
	var calls [][2]int
	s.SetResizeFunc(func(w, h int) { calls = append(calls, [2]int{w, h}) })

	s.Resize(800, 600)
	s.Resize(800, 600)
	s.Resize(1024, 768)

	if len(calls) != 2 {
		t.Fatalf("resize calls = %v, want 2", calls)
	}
	if calls[1] != [2]int{1024, 768} {
		t.Errorf("last resize = %v", calls[1])
	}
	if w, h := s.Size(); w != 1024 || h != 768 {
		t.Errorf("Size = %dx%d", w, h)
	}
}

func TestAdvanceStepsTweens(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	s.Root().AddChild(n)
	s.Animator().Start(TweenAlpha(n, 0, 0.1, ease.Linear))

	s.Advance(0.05)
	if n.Alpha <= 0 || n.Alpha >= 1 {
		t.Errorf("Alpha = %v mid-tween", n.Alpha)
	}
	s.Advance(0.05)
	if n.Alpha != 0 {
		t.Errorf("Alpha = %v, want 0", n.Alpha)
	}
	if s.Animator().Len() != 0 {
		t.Error("finished tween should be pruned")
	}
}

func TestUpdateRunsUpdateFunc(t *testing.T) {
	s := NewScene()
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || s.Frame() != 1 {
		t.Errorf("calls = %d frame = %d, want 1 and 1", calls, s.Frame())
	}

	boom := errors.New("boom")
	s.SetUpdateFunc(func() error { return boom })
	if err := s.Update(); !errors.Is(err, boom) {
		t.Errorf("Update err = %v, want boom", err)
	}
}

func TestUpdateTerminatesAfterScript(t *testing.T) {
	s := NewScene()
	runner, err := LoadScript([]byte("exit: true\nsteps: [{action: screenshot, label: only}]"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(runner)

	if err := s.Update(); err != nil {
		t.Fatalf("first Update = %v, want nil so the screenshot frame draws", err)
	}
	if len(s.screenshotQueue) != 1 {
		t.Fatalf("screenshot queue = %v", s.screenshotQueue)
	}
	s.screenshotQueue = s.screenshotQueue[:0]
	if err := s.Update(); err != ebiten.Termination {
		t.Errorf("second Update = %v, want ebiten.Termination", err)
	}
}
