package table

import "github.com/phanxgames/arcana"

// FlipState tracks a card's face through a flip.
type FlipState uint8

const (
	FaceUp FlipState = iota
	Shrinking
	FaceDown
	Growing
)

var flipNames = [...]string{"face-up", "shrinking", "face-down", "growing"}

func (s FlipState) String() string {
	if int(s) < len(flipNames) {
		return flipNames[s]
	}
	return "unknown"
}

// DragState tracks a card through one pointer session.
type DragState uint8

const (
	Idle DragState = iota
	PotentialDrag
	Dragging
	Settling
)

var dragNames = [...]string{"idle", "potential-drag", "dragging", "settling"}

func (s DragState) String() string {
	if int(s) < len(dragNames) {
		return dragNames[s]
	}
	return "unknown"
}

// Card is the mutable record of one card on the board. Index is stable and
// equals the slot the card started in.
type Card struct {
	Index       int
	Name        string
	CurrentSlot int
	// Dragging is set once a press moves past the drag threshold and stays
	// set until the settle delay after release.
	Dragging   bool
	DragOffset arcana.Vec2
	Flipped    bool

	// Node is the card's outer node. Its position is the card's live
	// position in the grid.
	Node *arcana.Node

	faces *arcana.Node // scaled horizontally by flips
	front *arcana.Node
	back  *arcana.Node

	face      FlipState
	state     DragState
	pointer   int         // pointer holding the card, -1 when free
	dragStart arcana.Vec2 // position when the press began
	hovered   bool
	session   uint64 // bumped on every press; guards settle timers
}

// Position returns the card's live position.
func (c *Card) Position() arcana.Vec2 {
	return c.Node.Position()
}

// Face returns where the card is in its flip cycle.
func (c *Card) Face() FlipState {
	return c.face
}

// State returns where the card is in its drag cycle.
func (c *Card) State() DragState {
	return c.state
}

// Faces returns the inner node holding the front and back.
func (c *Card) Faces() *arcana.Node {
	return c.faces
}

// held reports whether a pointer currently holds the card.
func (c *Card) held() bool {
	return c.state == PotentialDrag || c.state == Dragging
}
