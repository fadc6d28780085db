package arcana

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// affineGeoM converts an [a, b, c, d, tx, ty] matrix to an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// drawNode draws n and its subtree onto dst. parent maps the parent's local
// space to dst pixels.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	m := multiplyAffine(parent, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		return
	}
	if n.mask != nil {
		s.drawMasked(dst, n, m, alpha)
		return
	}
	s.drawContent(dst, n, m, alpha)
}

// drawContent draws n's own image followed by its children in ZIndex order.
func (s *Scene) drawContent(dst *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	if n.Type == NodeTypeSprite && n.Image != nil {
		s.drawImage(dst, n.Image, m, n.Color, alpha)
	}
	for _, child := range n.orderedChildren() {
		s.drawNode(dst, child, m, alpha)
	}
}

// drawImage draws img with transform m, tinted by c and faded by alpha.
// Colors are premultiplied here.
func (s *Scene) drawImage(dst, img *ebiten.Image, m [6]float64, c Color, alpha float64) {
	var op ebiten.DrawImageOptions
	op.GeoM = affineGeoM(m)
	a := c.A * alpha
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
	s.stats.drawCalls++
}

// toRGBA converts a Color to a color.Color (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
