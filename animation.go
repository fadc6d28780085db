package arcana

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, ...) and either hand it to an [Animator] or call Update(dt)
// yourself each frame.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	live   [4]bool
	target *Node
	Done   bool

	// OnComplete runs once when every field reaches its end value. It does
	// not run for groups cancelled by Stop or by a newer tween claiming all
	// of their fields.
	OnComplete func()
}

// Target returns the node the group writes to.
func (g *TweenGroup) Target() *Node { return g.target }

// Update advances all tweens by dt seconds and writes values to the target
// fields. Fields released to a newer tween are advanced but not written.
// Returns true on the call that finishes the group.
func (g *TweenGroup) Update(dt float32) bool {
	if g.Done {
		return false
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if g.live[i] {
			*g.fields[i] = float64(val)
		}
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return allDone
}

// release stops the group writing f. Reports whether any field is still live.
func (g *TweenGroup) release(f *float64) bool {
	remaining := false
	for i := 0; i < g.count; i++ {
		if g.fields[i] == f {
			g.live[i] = false
		}
		if g.live[i] {
			remaining = true
		}
	}
	return remaining
}

func newGroup(node *Node, duration float32, fn ease.TweenFunc, pairs ...fieldTo) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: node}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(*p.field), float32(p.to), duration, fn)
		g.fields[i] = p.field
		g.live[i] = true
	}
	return g
}

type fieldTo struct {
	field *float64
	to    float64
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTo{&node.X, toX}, fieldTo{&node.Y, toY})
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTo{&node.ScaleX, toSX}, fieldTo{&node.ScaleY, toSY})
}

// TweenScaleX animates node.ScaleX only.
func TweenScaleX(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTo{&node.ScaleX, to})
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTo{&node.Alpha, to})
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newGroup(node, duration, fn, fieldTo{&node.Rotation, to})
}

// Animator ticks tween groups once per frame and enforces that at most one
// group writes any given field. Starting a group takes its fields away from
// older groups; a group left with nothing to write is cancelled.
type Animator struct {
	active []*TweenGroup
	owners map[*float64]*TweenGroup
	done   []*TweenGroup
}

// NewAnimator returns an empty Animator.
func NewAnimator() *Animator {
	return &Animator{owners: make(map[*float64]*TweenGroup)}
}

// Start registers g and claims its fields. Returns g for chaining.
func (a *Animator) Start(g *TweenGroup) *TweenGroup {
	for i := 0; i < g.count; i++ {
		f := g.fields[i]
		if old, ok := a.owners[f]; ok && old != g {
			if !old.release(f) {
				a.cancel(old)
			}
		}
		a.owners[f] = g
	}
	a.active = append(a.active, g)
	return g
}

// Stop cancels whatever is animating each of the given fields. Other fields
// of the same groups keep animating.
func (a *Animator) Stop(fields ...*float64) {
	for _, f := range fields {
		old, ok := a.owners[f]
		if !ok {
			continue
		}
		delete(a.owners, f)
		if !old.release(f) {
			a.cancel(old)
		}
	}
}

// StopPosition cancels any tween driving n.X or n.Y.
func (a *Animator) StopPosition(n *Node) {
	a.Stop(&n.X, &n.Y)
}

// Animating reports whether some group currently owns f.
func (a *Animator) Animating(f *float64) bool {
	_, ok := a.owners[f]
	return ok
}

// Len returns the number of running groups.
func (a *Animator) Len() int {
	return len(a.active)
}

func (a *Animator) cancel(g *TweenGroup) {
	g.Done = true
	for i := 0; i < g.count; i++ {
		if a.owners[g.fields[i]] == g {
			delete(a.owners, g.fields[i])
		}
	}
}

// Update advances every running group by dt seconds. Completion callbacks
// run after all groups have been advanced, so a callback may start new
// tweens on the same fields.
func (a *Animator) Update(dt float32) {
	n := 0
	for _, g := range a.active {
		if g.Done {
			continue
		}
		if g.Update(dt) {
			for i := 0; i < g.count; i++ {
				if a.owners[g.fields[i]] == g {
					delete(a.owners, g.fields[i])
				}
			}
			a.done = append(a.done, g)
			continue
		}
		a.active[n] = g
		n++
	}
	clear(a.active[n:])
	a.active = a.active[:n]

	done := a.done
	a.done = a.done[:0]
	for i, g := range done {
		done[i] = nil
		if g.OnComplete != nil {
			g.OnComplete()
		}
	}
}
