package table

import (
	"math"
	"time"

	"github.com/phanxgames/arcana"
	"github.com/tanema/gween/ease"
)

// Motion scales move durations with distance: short hops stay snappy and
// long ones never look instant.
type Motion struct {
	Base      time.Duration // duration of a move of Reference units or more, before clamping
	Min       time.Duration
	Max       time.Duration
	Reference float64
}

// DefaultMotion returns 300ms base, clamped to [200ms, 1s], over 1000 units.
func DefaultMotion() Motion {
	return Motion{
		Base:      300 * time.Millisecond,
		Min:       200 * time.Millisecond,
		Max:       time.Second,
		Reference: 1000,
	}
}

// Duration returns clamp(Base*min(distance/Reference, 1), Min, Max).
func (m Motion) Duration(distance float64) time.Duration {
	scale := 1.0
	if m.Reference > 0 {
		scale = math.Min(math.Abs(distance)/m.Reference, 1)
	}
	d := time.Duration(float64(m.Base) * scale)
	return min(max(d, m.Min), m.Max)
}

// Animate starts a decelerating move of n to (x, y) on anim. Any tween
// already moving n is replaced.
func (m Motion) Animate(anim *arcana.Animator, n *arcana.Node, x, y float64) {
	d := m.Duration(n.Position().Dist(arcana.Vec2{X: x, Y: y}))
	anim.Start(arcana.TweenPosition(n, x, y, float32(d.Seconds()), ease.OutCubic))
}

// AnimateToPosition moves n to (x, y) over a distance-scaled duration with
// the default clamps and the given base. It does not wait for the move.
func AnimateToPosition(anim *arcana.Animator, n *arcana.Node, x, y float64, base time.Duration) {
	m := DefaultMotion()
	m.Base = base
	m.Animate(anim, n, x, y)
}
