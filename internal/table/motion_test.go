package table

import (
	"math"
	"testing"
	"time"

	"github.com/phanxgames/arcana"
)

func TestMotionDuration(t *testing.T) {
	m := DefaultMotion()
	tests := []struct {
		name     string
		distance float64
		want     time.Duration
	}{
		{"zero clamps to min", 0, 200 * time.Millisecond},
		{"short hop clamps to min", 500, 200 * time.Millisecond},
		{"scaled", 800, 240 * time.Millisecond},
		{"reference distance", 1000, 300 * time.Millisecond},
		{"beyond reference caps scale", 5000, 300 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Duration(tt.distance); got != tt.want {
				t.Errorf("Duration(%v) = %v, want %v", tt.distance, got, tt.want)
			}
		})
	}
}

func TestMotionDurationMonotonicAndClamped(t *testing.T) {
	m := Motion{Base: 2 * time.Second, Min: 200 * time.Millisecond, Max: time.Second, Reference: 1000}
	prev := time.Duration(0)
	for d := 0.0; d <= 1500; d += 25 {
		got := m.Duration(d)
		if got < m.Min || got > m.Max {
			t.Fatalf("Duration(%v) = %v outside [%v, %v]", d, got, m.Min, m.Max)
		}
		if got < prev {
			t.Fatalf("Duration(%v) = %v shorter than %v for a smaller distance", d, got, prev)
		}
		prev = got
	}
	if m.Duration(1000) != time.Second {
		t.Errorf("long base should clamp to Max, got %v", m.Duration(1000))
	}
}

func TestAnimateToPosition(t *testing.T) {
	anim := arcana.NewAnimator()
	n := arcana.NewContainer("card")
	AnimateToPosition(anim, n, 600, 800, 300*time.Millisecond)

	if !anim.Animating(&n.X) || !anim.Animating(&n.Y) {
		t.Fatal("position should be animating")
	}
	// 1000 units away: 300ms.
	for i := 0; i < 17; i++ {
		anim.Update(1.0 / 60)
	}
	if n.X >= 600 {
		t.Errorf("X = %v, move finished before 300ms", n.X)
	}
	for i := 0; i < 3; i++ {
		anim.Update(1.0 / 60)
	}
	if math.Abs(n.X-600) > 1e-3 || math.Abs(n.Y-800) > 1e-3 {
		t.Errorf("position = (%v, %v), want (600, 800)", n.X, n.Y)
	}
}

func TestAnimateReplacesRunningMove(t *testing.T) {
	anim := arcana.NewAnimator()
	n := arcana.NewContainer("card")
	m := DefaultMotion()
	m.Animate(anim, n, 100, 0)
	anim.Update(0.05)
	m.Animate(anim, n, 0, 100)
	for i := 0; i < 60; i++ {
		anim.Update(1.0 / 60)
	}
	if math.Abs(n.X) > 1e-3 || math.Abs(n.Y-100) > 1e-3 {
		t.Errorf("position = (%v, %v), want the second target (0, 100)", n.X, n.Y)
	}
	if anim.Len() != 0 {
		t.Errorf("Len = %d, want 0", anim.Len())
	}
}
