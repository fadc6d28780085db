package arcana

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	seen      bool // lastX/lastY hold a real position
	lastX     float64
	lastY     float64
	hitNode   *Node       // node the press landed on; receives held moves and the release
	hoverNode *Node       // last node the pointer was hovering over (for enter/leave)
	button    MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	byEvent [EventPointerLeave + 1][]pointerHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.byEvent[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			h.reg.byEvent[h.event] = s[:len(s)-1]
			return
		}
	}
}

// On registers a scene-level callback for evt. Scene-level callbacks run
// before the node's own callback and also see events with no target node.
func (s *Scene) On(evt EventType, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.byEvent[evt] = append(s.handlers.byEvent[evt], pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: evt}
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the sprite's image bounds.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := n.Size()
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.orderedChildren() {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// HitTest returns the topmost interactable node under the given point.
func (s *Scene) HitTest(x, y float64) *Node {
	return s.hitTest(x, y)
}

// --- Input processing ---

// processInput is called from Scene.Update() to handle all mouse and touch
// input. Injected events replace the real mouse for the frame they are
// consumed in.
func (s *Scene) processInput() {
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	// Detect which button is pressed. If pointer is already down, the stored
	// button is kept to avoid changing mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active. A lifted finger
	// also stops hovering.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			if ps.hoverNode != nil {
				s.fire(EventPointerLeave, ps.hoverNode, i, ps.lastX, ps.lastY, MouseButtonLeft, false)
			}
			*ps = pointerState{}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// FeedPointer runs one step of the pointer state machine for pointerID at
// (x, y) with the primary button held or not. It is what the real mouse and
// touch readers call every frame, exposed for scripted input and tests.
func (s *Scene) FeedPointer(pointerID int, x, y float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	s.processPointer(pointerID, x, y, pressed, MouseButtonLeft)
}

// PointerDown reports whether pointerID currently has a button held.
func (s *Scene) PointerDown(pointerID int) bool {
	if pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	return s.pointers[pointerID].down
}

// processPointer runs the pointer state machine for a single pointer.
//
// A press captures the node it lands on. While held, that node keeps the
// hover and receives every move. The release goes to the same node as
// pointerup when the pointer is still over it, or pointerupoutside when it
// is not, and a pointerup is followed by a tap.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	moved := !ps.seen || wx != ps.lastX || wy != ps.lastY
	ps.seen = true

	hit := s.hitTest(wx, wy)
	hover := hit
	if ps.down && ps.hitNode != nil {
		hover = ps.hitNode
	}

	// Fire hover enter/leave when the hovered node changes.
	if hover != ps.hoverNode {
		if ps.hoverNode != nil {
			s.fire(EventPointerLeave, ps.hoverNode, pointerID, wx, wy, button, ps.down)
		}
		if hover != nil {
			s.fire(EventPointerEnter, hover, pointerID, wx, wy, button, ps.down)
		}
		ps.hoverNode = hover
	}

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button and node for this interaction.
		ps.down = true
		ps.button = button
		ps.hitNode = hit
		ps.lastX = wx
		ps.lastY = wy
		s.fire(EventPointerDown, hit, pointerID, wx, wy, button, true)

	case !pressed && ps.down:
		pressedNode := ps.hitNode
		button = ps.button
		ps.down = false
		ps.hitNode = nil
		ps.lastX = wx
		ps.lastY = wy

		switch {
		case pressedNode == nil:
			s.fire(EventPointerUp, hit, pointerID, wx, wy, button, false)
		case hit == pressedNode:
			s.fire(EventPointerUp, pressedNode, pointerID, wx, wy, button, false)
			s.fire(EventTap, pressedNode, pointerID, wx, wy, button, false)
		default:
			s.fire(EventPointerUpOutside, pressedNode, pointerID, wx, wy, button, false)
		}

	case pressed && ps.down:
		if moved {
			s.fire(EventPointerMove, ps.hitNode, pointerID, wx, wy, ps.button, true)
		}
		ps.lastX = wx
		ps.lastY = wy

	default:
		if moved {
			s.fire(EventPointerMove, hit, pointerID, wx, wy, button, false)
		}
		ps.lastX = wx
		ps.lastY = wy
	}
}

// --- Event dispatch ---

func (s *Scene) fire(evt EventType, node *Node, pointerID int, wx, wy float64, button MouseButton, pressed bool) {
	var lx, ly float64
	var userData any
	if node != nil {
		lx, ly = node.WorldToLocal(wx, wy)
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID, Pressed: pressed,
	}
	if s.debug && evt != EventPointerMove {
		name := ""
		if node != nil {
			name = node.Name
		}
		s.logger.Debug("pointer event",
			zap.Stringer("event", evt),
			zap.String("node", name),
			zap.Int("pointer", pointerID),
			zap.Float64("x", wx),
			zap.Float64("y", wy),
		)
	}
	// Scene-level handlers first.
	for _, h := range s.handlers.byEvent[evt] {
		h.fn(ctx)
	}
	if node == nil {
		return
	}
	if cb := node.callback(evt); cb != nil {
		cb(ctx)
	}
}

// callback returns the per-node callback for evt, or nil.
func (n *Node) callback(evt EventType) func(PointerContext) {
	switch evt {
	case EventPointerDown:
		return n.OnPointerDown
	case EventPointerUp:
		return n.OnPointerUp
	case EventPointerUpOutside:
		return n.OnPointerUpOutside
	case EventPointerMove:
		return n.OnPointerMove
	case EventTap:
		return n.OnTap
	case EventPointerEnter:
		return n.OnPointerEnter
	case EventPointerLeave:
		return n.OnPointerLeave
	}
	return nil
}
