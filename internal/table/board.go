package table

import (
	"fmt"
	"time"

	"github.com/phanxgames/arcana"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Rand is the random source the board draws hover tilts from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Config tunes how cards respond to the pointer.
type Config struct {
	// DragThreshold is how far a held card must move from where the press
	// began before the press counts as a drag rather than a tap.
	DragThreshold float64
	// SwapRadius is the greatest distance between two cards' live positions
	// at release for them to trade slots.
	SwapRadius float64
	// SettleDelay is how long after release the drag state is cleared.
	SettleDelay time.Duration

	HoverScale    float64
	HoverTilt     float64 // hover rotation is drawn from [-HoverTilt/2, HoverTilt/2]
	HoverDuration time.Duration

	DragAlpha         float64
	DragAlphaDuration time.Duration
	DragScale         float64
	DragScaleDuration time.Duration
	SettleDuration    time.Duration

	// FlipHalf is the duration of each half of a flip.
	FlipHalf time.Duration

	Motion Motion
	// Fit scales the grid down so it fits the window on Recenter.
	Fit bool
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DragThreshold:     12,
		SwapRadius:        125,
		SettleDelay:       5 * time.Millisecond,
		HoverScale:        1.035,
		HoverTilt:         0.1,
		HoverDuration:     300 * time.Millisecond,
		DragAlpha:         0.8,
		DragAlphaDuration: 200 * time.Millisecond,
		DragScale:         0.95,
		DragScaleDuration: 300 * time.Millisecond,
		SettleDuration:    300 * time.Millisecond,
		FlipHalf:          150 * time.Millisecond,
		Motion:            DefaultMotion(),
		Fit:               true,
	}
}

// Visual is the drawable content of one card. Front and Back are laid out
// in card space, (0,0) to the card size. Mask is optional and clips both.
type Visual struct {
	Front *arcana.Node
	Back  *arcana.Node
	Mask  *arcana.Node
}

// Board owns the cards of one grid and drives their drag, swap, flip and
// hover behavior.
type Board struct {
	scene  *arcana.Scene
	anim   *arcana.Animator
	layout Layout
	cfg    Config
	rng    Rand
	log    *zap.Logger

	grid       *arcana.Node
	cards      []*Card
	placements []Placement

	// OnSwap runs after two cards trade slots.
	OnSwap func(Swap)
}

// NewBoard creates an empty board whose grid container is added to the
// scene root. A nil logger disables logging.
func NewBoard(scene *arcana.Scene, layout Layout, cfg Config, rng Rand, log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	grid := arcana.NewContainer("grid")
	grid.Interactable = true
	scene.Root().AddChild(grid)
	return &Board{
		scene:  scene,
		anim:   scene.Animator(),
		layout: layout,
		cfg:    cfg,
		rng:    rng,
		log:    log,
		grid:   grid,
	}
}

// Grid returns the container holding the cards.
func (b *Board) Grid() *arcana.Node {
	return b.grid
}

// Layout returns the board's slot layout.
func (b *Board) Layout() Layout {
	return b.layout
}

// Cards returns the cards in index order.
func (b *Board) Cards() []*Card {
	return b.cards
}

// Card returns card i, or nil if there is none.
func (b *Board) Card(i int) *Card {
	if i < 0 || i >= len(b.cards) {
		return nil
	}
	return b.cards[i]
}

// AddCard places a new card in the next free slot. It returns an error when
// every slot is taken.
func (b *Board) AddCard(name string, v Visual) (*Card, error) {
	i := len(b.cards)
	if i >= b.layout.Len() {
		return nil, fmt.Errorf("table: no free slot for %q, layout has %d", name, b.layout.Len())
	}
	w, h := b.layout.CardSize()
	anchor := b.layout.Anchor(i)

	n := arcana.NewContainer(name)
	n.SetPivot(w/2, h/2)
	n.SetPosition(anchor.X, anchor.Y)
	n.Interactable = true
	n.HitShape = arcana.HitRect{Width: w, Height: h}
	n.UserData = i

	faces := arcana.NewContainer(name + "/faces")
	faces.SetPivot(w/2, h/2)
	faces.SetPosition(w/2, h/2)
	front, back := v.Front, v.Back
	if front == nil {
		front = arcana.NewContainer(name + "/front")
	}
	if back == nil {
		back = arcana.NewContainer(name + "/back")
	}
	back.Visible = false
	faces.AddChild(front)
	faces.AddChild(back)
	if v.Mask != nil {
		faces.SetMask(v.Mask)
	}
	n.AddChild(faces)

	n.OnPointerDown = b.onPointerDown
	n.OnPointerMove = b.onPointerMove
	n.OnPointerUp = b.onPointerUp
	n.OnPointerUpOutside = b.onPointerUp
	n.OnTap = b.onTap
	n.OnPointerEnter = b.onPointerEnter
	n.OnPointerLeave = b.onPointerLeave

	c := &Card{
		Index:       i,
		Name:        name,
		CurrentSlot: i,
		Node:        n,
		faces:       faces,
		front:       front,
		back:        back,
		pointer:     -1,
	}
	b.cards = append(b.cards, c)
	b.grid.AddChild(n)
	return c, nil
}

// cardFor returns the card an event was delivered to, or nil.
func (b *Board) cardFor(ctx arcana.PointerContext) *Card {
	i, ok := ctx.UserData.(int)
	if !ok {
		return nil
	}
	return b.Card(i)
}

// gridLocal converts the event position into grid space.
func (b *Board) gridLocal(ctx arcana.PointerContext) arcana.Vec2 {
	x, y := b.grid.WorldToLocal(ctx.GlobalX, ctx.GlobalY)
	return arcana.Vec2{X: x, Y: y}
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// --- Drag ---

func (b *Board) onPointerDown(ctx arcana.PointerContext) {
	c := b.cardFor(ctx)
	if c == nil || c.held() {
		return
	}
	b.anim.StopPosition(c.Node)
	pos := c.Position()
	c.DragOffset = b.gridLocal(ctx).Sub(pos)
	c.dragStart = pos
	c.Dragging = false
	c.state = PotentialDrag
	c.pointer = ctx.PointerID
	c.session++
	c.Node.BringToFront()
}

func (b *Board) onPointerMove(ctx arcana.PointerContext) {
	if !ctx.Pressed {
		return
	}
	c := b.cardFor(ctx)
	if c == nil || !c.held() || c.pointer != ctx.PointerID {
		return
	}
	pos := b.gridLocal(ctx).Sub(c.DragOffset)
	c.Node.SetPosition(pos.X, pos.Y)
	if c.state == Dragging || pos.Dist(c.dragStart) <= b.cfg.DragThreshold {
		return
	}
	c.Dragging = true
	c.state = Dragging
	b.anim.Start(arcana.TweenAlpha(c.Node, b.cfg.DragAlpha, seconds(b.cfg.DragAlphaDuration), ease.OutCubic))
	b.anim.Start(arcana.TweenScale(c.Node, b.cfg.DragScale, b.cfg.DragScale, seconds(b.cfg.DragScaleDuration), ease.OutQuad))
}

func (b *Board) onPointerUp(ctx arcana.PointerContext) {
	c := b.cardFor(ctx)
	if c == nil || !c.held() || c.pointer != ctx.PointerID {
		return
	}
	c.state = Settling
	c.pointer = -1
	b.applyDrop(c)

	session := c.session
	b.scene.After(b.cfg.SettleDelay, func() { b.settle(c, session) })
}

// applyDrop swaps c with the first card near enough, or sends it home.
func (b *Board) applyDrop(c *Card) {
	b.placements = b.placements[:0]
	for _, o := range b.cards {
		b.placements = append(b.placements, Placement{
			Index: o.Index,
			Slot:  o.CurrentSlot,
			Pos:   o.Position(),
			Held:  o != c && o.held(),
		})
	}

	swap, ok := ResolveDrop(c.Index, b.placements, b.cfg.SwapRadius)
	if !ok {
		home := b.layout.Anchor(c.CurrentSlot)
		b.cfg.Motion.Animate(b.anim, c.Node, home.X, home.Y)
		b.log.Debug("snap back", zap.String("card", c.Name), zap.Int("slot", c.CurrentSlot))
		return
	}

	p := b.cards[swap.Partner]
	c.CurrentSlot, p.CurrentSlot = swap.PartnerSlot, swap.DraggedSlot
	to := b.layout.Anchor(swap.PartnerSlot)
	b.cfg.Motion.Animate(b.anim, c.Node, to.X, to.Y)
	to = b.layout.Anchor(swap.DraggedSlot)
	b.cfg.Motion.Animate(b.anim, p.Node, to.X, to.Y)

	b.log.Debug("swap",
		zap.String("card", c.Name),
		zap.String("partner", p.Name),
		zap.Int("from", swap.DraggedSlot),
		zap.Int("to", swap.PartnerSlot),
	)
	if b.OnSwap != nil {
		b.OnSwap(swap)
	}
}

// settle ends the drag of the press numbered session. A newer press on the
// card makes it a no-op.
func (b *Board) settle(c *Card, session uint64) {
	if c.session != session || c.state != Settling {
		return
	}
	c.Dragging = false
	c.state = Idle
	rest := 1.0
	if c.hovered {
		rest = b.cfg.HoverScale
	}
	d := seconds(b.cfg.SettleDuration)
	b.anim.Start(arcana.TweenAlpha(c.Node, 1, d, ease.OutCubic))
	b.anim.Start(arcana.TweenScale(c.Node, rest, rest, d, ease.OutQuad))
}

// --- Flip ---

func (b *Board) onTap(ctx arcana.PointerContext) {
	if c := b.cardFor(ctx); c != nil {
		b.Flip(c)
	}
}

// Flip turns c over: the faces shrink to zero width, the visible face
// swaps, then they grow back. Reports false without doing anything while c
// is being dragged or is already flipping.
func (b *Board) Flip(c *Card) bool {
	if c.Dragging || c.face == Shrinking || c.face == Growing {
		return false
	}
	half := seconds(b.cfg.FlipHalf)
	c.face = Shrinking
	shrink := arcana.TweenScaleX(c.faces, 0, half, ease.OutQuad)
	shrink.OnComplete = func() {
		c.Flipped = !c.Flipped
		c.front.Visible = !c.Flipped
		c.back.Visible = c.Flipped
		c.face = Growing
		grow := arcana.TweenScaleX(c.faces, 1, half, ease.OutQuad)
		grow.OnComplete = func() {
			if c.Flipped {
				c.face = FaceDown
			} else {
				c.face = FaceUp
			}
		}
		b.anim.Start(grow)
	}
	b.anim.Start(shrink)
	b.log.Debug("flip", zap.String("card", c.Name), zap.Bool("to_back", !c.Flipped))
	return true
}

// --- Hover ---

func (b *Board) onPointerEnter(ctx arcana.PointerContext) {
	c := b.cardFor(ctx)
	if c == nil {
		return
	}
	c.hovered = true
	c.Node.SetZIndex(2)
	d := seconds(b.cfg.HoverDuration)
	tilt := 0.0
	if b.rng != nil {
		tilt = (b.rng.Float64() - 0.5) * b.cfg.HoverTilt
	}
	if !c.held() {
		b.anim.Start(arcana.TweenScale(c.Node, b.cfg.HoverScale, b.cfg.HoverScale, d, ease.OutCubic))
	}
	b.anim.Start(arcana.TweenRotation(c.Node, tilt, d, ease.OutCubic))
}

func (b *Board) onPointerLeave(ctx arcana.PointerContext) {
	c := b.cardFor(ctx)
	if c == nil {
		return
	}
	c.hovered = false
	c.Node.SetZIndex(1)
	d := seconds(b.cfg.HoverDuration)
	if !c.held() {
		b.anim.Start(arcana.TweenScale(c.Node, 1, 1, d, ease.OutCubic))
	}
	b.anim.Start(arcana.TweenRotation(c.Node, 0, d, ease.OutCubic))
}

// --- Layout ---

// Recenter centers the grid in a w×h window. With Fit set the grid is also
// scaled down uniformly until it fits; it is never scaled up.
func (b *Board) Recenter(w, h int) {
	gw, gh := b.layout.Size()
	b.grid.SetPivot(gw/2, gh/2)
	b.grid.SetPosition(float64(w)/2, float64(h)/2)
	s := 1.0
	if b.cfg.Fit && gw > 0 && gh > 0 && w > 0 && h > 0 {
		s = min(1, float64(w)/gw, float64(h)/gh)
	}
	b.grid.SetScale(s, s)
}

// Slots returns each card's current slot in index order.
func (b *Board) Slots() []int {
	slots := make([]int, len(b.cards))
	for i, c := range b.cards {
		slots[i] = c.CurrentSlot
	}
	return slots
}
