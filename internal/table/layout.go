package table

import (
	"fmt"

	"github.com/phanxgames/arcana"
)

// Layout holds the fixed anchor of every slot in a grid, row-major. Anchors
// are card centers in the grid container's local space and never change
// after construction.
type Layout struct {
	anchors  []arcana.Vec2
	columns  int
	cardW    float64
	cardH    float64
	spacingX float64
	spacingY float64
}

// NewLayout computes the anchors for count slots laid out in columns
// columns. Panics if columns is not positive or count is negative.
func NewLayout(count, columns int, cardW, cardH, spacingX, spacingY float64) Layout {
	if columns <= 0 {
		panic(fmt.Sprintf("table: columns must be positive, got %d", columns))
	}
	if count < 0 {
		panic(fmt.Sprintf("table: negative slot count %d", count))
	}
	l := Layout{
		anchors:  make([]arcana.Vec2, count),
		columns:  columns,
		cardW:    cardW,
		cardH:    cardH,
		spacingX: spacingX,
		spacingY: spacingY,
	}
	for i := range l.anchors {
		col := i % columns
		row := i / columns
		l.anchors[i] = arcana.Vec2{
			X: float64(col)*(cardW+spacingX) + cardW/2,
			Y: float64(row)*(cardH+spacingY) + cardH/2,
		}
	}
	return l
}

// Anchor returns the anchor of slot. Panics if slot is out of range.
func (l Layout) Anchor(slot int) arcana.Vec2 {
	return l.anchors[slot]
}

// Len returns the number of slots.
func (l Layout) Len() int {
	return len(l.anchors)
}

// CardSize returns the card dimensions the layout was built for.
func (l Layout) CardSize() (w, h float64) {
	return l.cardW, l.cardH
}

// Size returns the extent of the occupied grid, from the top-left corner of
// slot 0 to the bottom-right corner of the last row and column.
func (l Layout) Size() (w, h float64) {
	n := len(l.anchors)
	if n == 0 {
		return 0, 0
	}
	cols := min(n, l.columns)
	rows := (n + l.columns - 1) / l.columns
	w = float64(cols)*(l.cardW+l.spacingX) - l.spacingX
	h = float64(rows)*(l.cardH+l.spacingY) - l.spacingY
	return w, h
}
