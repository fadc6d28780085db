package table

import "github.com/phanxgames/arcana"

// Placement is a card as ResolveDrop sees it.
type Placement struct {
	Index int
	Slot  int
	Pos   arcana.Vec2
	// Held marks a card another pointer is holding. Held cards are never
	// swap partners.
	Held bool
}

// Swap describes two cards trading slots. The slots are the ones each card
// held before the swap.
type Swap struct {
	Dragged     int
	Partner     int
	DraggedSlot int
	PartnerSlot int
}

// ResolveDrop decides what happens when card dragged is released. The first
// other placement, in slice order, whose live position lies within radius
// of the dragged card's live position becomes the partner. Reports false
// when there is no partner or dragged is not among placements.
func ResolveDrop(dragged int, placements []Placement, radius float64) (Swap, bool) {
	var d *Placement
	for i := range placements {
		if placements[i].Index == dragged {
			d = &placements[i]
			break
		}
	}
	if d == nil {
		return Swap{}, false
	}
	for _, p := range placements {
		if p.Index == dragged || p.Held {
			continue
		}
		if d.Pos.Dist(p.Pos) <= radius {
			return Swap{
				Dragged:     dragged,
				Partner:     p.Index,
				DraggedSlot: d.Slot,
				PartnerSlot: p.Slot,
			}, true
		}
	}
	return Swap{}, false
}
