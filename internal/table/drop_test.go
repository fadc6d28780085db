package table

import (
	"testing"

	"github.com/phanxgames/arcana"
)

func gridPlacements(l Layout) []Placement {
	ps := make([]Placement, l.Len())
	for i := range ps {
		ps[i] = Placement{Index: i, Slot: i, Pos: l.Anchor(i)}
	}
	return ps
}

func TestResolveDropSwapsWithCardUnderneath(t *testing.T) {
	l := NewLayout(6, 3, 305, 550, 18, 24)
	ps := gridPlacements(l)
	ps[0].Pos = l.Anchor(3)

	swap, ok := ResolveDrop(0, ps, 125)
	if !ok {
		t.Fatal("expected a swap")
	}
	want := Swap{Dragged: 0, Partner: 3, DraggedSlot: 0, PartnerSlot: 3}
	if swap != want {
		t.Errorf("swap = %+v, want %+v", swap, want)
	}
}

func TestResolveDropRadius(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		want   bool
	}{
		{"inside", 100, true},
		{"on the radius", 125, true},
		{"just outside", 125.01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := []Placement{
				{Index: 0, Slot: 0, Pos: arcana.Vec2{X: tt.offset}},
				{Index: 1, Slot: 1},
			}
			if _, ok := ResolveDrop(0, ps, 125); ok != tt.want {
				t.Errorf("swap = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestResolveDropFirstMatchWins(t *testing.T) {
	ps := []Placement{
		{Index: 0, Slot: 4, Pos: arcana.Vec2{X: 0}},
		{Index: 1, Slot: 1, Pos: arcana.Vec2{X: 100}}, // farther, but first
		{Index: 2, Slot: 2, Pos: arcana.Vec2{X: 10}},
	}
	swap, ok := ResolveDrop(0, ps, 125)
	if !ok || swap.Partner != 1 {
		t.Fatalf("swap = %+v %v, want partner 1", swap, ok)
	}
	if swap.DraggedSlot != 4 || swap.PartnerSlot != 1 {
		t.Errorf("slots = %d/%d, want 4/1", swap.DraggedSlot, swap.PartnerSlot)
	}
}

func TestResolveDropSkipsHeldCards(t *testing.T) {
	ps := []Placement{
		{Index: 0, Slot: 0},
		{Index: 1, Slot: 1, Held: true},
		{Index: 2, Slot: 2, Pos: arcana.Vec2{X: 50}},
	}
	swap, ok := ResolveDrop(0, ps, 125)
	if !ok || swap.Partner != 2 {
		t.Errorf("swap = %+v %v, want partner 2", swap, ok)
	}
}

func TestResolveDropNoPartner(t *testing.T) {
	l := NewLayout(6, 3, 305, 550, 18, 24)
	ps := gridPlacements(l)
	ps[0].Pos = arcana.Vec2{X: 300, Y: 575} // in the gutter between four cards
	if swap, ok := ResolveDrop(0, ps, 125); ok {
		t.Errorf("unexpected swap %+v", swap)
	}
}

func TestResolveDropUnknownCard(t *testing.T) {
	ps := []Placement{{Index: 0}, {Index: 1}}
	if _, ok := ResolveDrop(7, ps, 125); ok {
		t.Error("an untracked card never swaps")
	}
}
