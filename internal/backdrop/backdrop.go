// Package backdrop draws the table's background: a radial gradient under a
// field of small stars, rebuilt whenever the window size changes.
package backdrop

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/arcana"
	"go.uber.org/zap"
)

// Rand is the random source stars are placed with.
type Rand interface {
	Float64() float64
}

// Config describes the backdrop.
type Config struct {
	Stars int
	Inner arcana.Color // gradient color at the center
	Outer arcana.Color // gradient color at max(w, h)/2 and beyond
}

// DefaultConfig returns a purple gradient under 200 stars.
func DefaultConfig() Config {
	inner, _ := arcana.ParseHexColor("#55305e")
	outer, _ := arcana.ParseHexColor("#120110")
	return Config{Stars: 200, Inner: inner, Outer: outer}
}

// Star is one dot of the star field.
type Star struct {
	X, Y   float64
	Radius float64 // 0.5 to 2
	Alpha  float64
}

// Backdrop owns the background nodes.
type Backdrop struct {
	cfg      Config
	rng      Rand
	log      *zap.Logger
	node     *arcana.Node
	gradient *arcana.Node
	field    *arcana.Node
	stars    []Star
	w, h     int
}

// New returns a backdrop with no images yet; call Resize to build them.
// A nil logger disables logging.
func New(cfg Config, rng Rand, log *zap.Logger) *Backdrop {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Backdrop{
		cfg:      cfg,
		rng:      rng,
		log:      log,
		node:     arcana.NewContainer("backdrop"),
		gradient: arcana.NewSprite("backdrop/gradient", nil),
		field:    arcana.NewSprite("backdrop/stars", nil),
	}
	b.node.AddChild(b.gradient)
	b.node.AddChild(b.field)
	return b
}

// Node returns the container to add beneath everything else.
func (b *Backdrop) Node() *arcana.Node {
	return b.node
}

// Stars returns the current star field.
func (b *Backdrop) Stars() []Star {
	return b.stars
}

// Resize rebuilds the gradient and scatters a new star field over w×h.
// Repeated calls with the same size do nothing.
func (b *Backdrop) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == b.w && h == b.h) {
		return
	}
	b.w, b.h = w, h
	b.stars = NewStars(b.cfg.Stars, float64(w), float64(h), b.rng)

	if old := b.gradient.Image; old != nil {
		old.Deallocate()
	}
	b.gradient.SetImage(ebiten.NewImageFromImage(Gradient(w, h, b.cfg.Inner, b.cfg.Outer)))

	if old := b.field.Image; old != nil {
		old.Deallocate()
	}
	field := ebiten.NewImage(w, h)
	DrawStars(field, b.stars)
	b.field.SetImage(field)

	b.log.Debug("backdrop rebuilt", zap.Int("width", w), zap.Int("height", h), zap.Int("stars", len(b.stars)))
}

// Gradient returns a w×h image shading from inner at the center to outer
// at a radius of max(w, h)/2.
func Gradient(w, h int, inner, outer arcana.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Max(float64(w), float64(h)) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			img.SetNRGBA(x, y, toNRGBA(inner.Lerp(outer, math.Min(d/radius, 1))))
		}
	}
	return img
}

func toNRGBA(c arcana.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(c.A * 255)),
	}
}

// NewStars scatters n stars uniformly over w×h.
func NewStars(n int, w, h float64, rng Rand) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Radius: rng.Float64()*1.5 + 0.5,
			Alpha:  rng.Float64(),
		}
	}
	return stars
}

// DrawStars draws stars as white dots onto dst.
func DrawStars(dst *ebiten.Image, stars []Star) {
	for _, s := range stars {
		a := uint8(s.Alpha * 255)
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Radius), color.RGBA{a, a, a, a}, true)
	}
}
