package arcana

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRect draws a filled axis-aligned rectangle onto dst.
func FillRect(dst *ebiten.Image, x, y, w, h float64, c Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c.toRGBA(), true)
}

// FillRoundedRect draws a filled rectangle with circular corners of radius r
// onto dst. The radius is clamped to half the shorter side. Intended for
// opaque colors: the pieces overlap.
func FillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		FillRect(dst, x, y, w, h, c)
		return
	}
	clr := c.toRGBA()
	// Cross of two rects, then the four corners.
	vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-2*r), float32(h), clr, true)
	vector.DrawFilledRect(dst, float32(x), float32(y+r), float32(w), float32(h-2*r), clr, true)
	for _, p := range [4][2]float64{
		{x + r, y + r},
		{x + w - r, y + r},
		{x + r, y + h - r},
		{x + w - r, y + h - r},
	} {
		vector.DrawFilledCircle(dst, float32(p[0]), float32(p[1]), float32(r), clr, true)
	}
}

// StrokeRoundedRect outlines the rounded rectangle (x, y, w, h, r) with a
// line of the given width centered on the path. The area inside the line is
// painted with inside, which should match whatever lies underneath.
func StrokeRoundedRect(dst *ebiten.Image, x, y, w, h, r, width float64, stroke, inside Color) {
	half := width / 2
	FillRoundedRect(dst, x-half, y-half, w+width, h+width, r+half, stroke)
	FillRoundedRect(dst, x+half, y+half, w-width, h-width, math.Max(0, r-half), inside)
}

// NewRoundedRectImage returns a w×h image holding a filled rounded rectangle.
func NewRoundedRectImage(w, h, r float64, c Color) *ebiten.Image {
	img := ebiten.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	FillRoundedRect(img, 0, 0, w, h, r, c)
	return img
}

// NewCircleImage returns a square image holding a filled circle of radius r.
func NewCircleImage(r float64, c Color) *ebiten.Image {
	size := max(int(math.Ceil(r*2)), 1)
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, float32(r), float32(r), float32(r), c.toRGBA(), true)
	return img
}
