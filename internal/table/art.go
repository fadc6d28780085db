package table

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/arcana"
)

// Style holds the shared look of every card.
type Style struct {
	Width, Height float64
	Radius        float64
	Paper         arcana.Color // front background
	Ink           arcana.Color // outline, rule and name
	Backing       arcana.Color // back background
	// Font renders card names. Names are omitted when nil.
	Font *arcana.TTFFont
}

// DefaultStyle returns the cream-and-ink look for w×h cards.
func DefaultStyle(w, h float64, font *arcana.TTFFont) Style {
	return Style{
		Width:   w,
		Height:  h,
		Radius:  16,
		Paper:   arcana.Color{R: 0xf2 / 255.0, G: 0xeb / 255.0, B: 0xe2 / 255.0, A: 1},
		Ink:     arcana.Color{R: 0x11 / 255.0, G: 0x12 / 255.0, B: 0x22 / 255.0, A: 1},
		Backing: arcana.Color{R: 0x30 / 255.0, G: 0x19 / 255.0, B: 0x34 / 255.0, A: 1},
		Font:    font,
	}
}

const (
	artInset     = 11 // artwork offset from the card edge
	outlineInset = 10
	outlineWidth = 2
	artRadius    = 14
	labelLift    = 32 // label center above the bottom edge
	labelTilt    = 0.0025
)

// RareBack reports whether a card should get the rare back, which happens
// once in odds draws.
func RareBack(rng Rand, odds int) bool {
	if odds <= 1 {
		return true
	}
	return rng.IntN(odds) == 0
}

// NewVisual builds the front, back and rounded mask of one card. artwork is
// drawn under the outline scaled to the inner width; back is centered.
func NewVisual(st Style, name string, artwork, back *ebiten.Image, rng Rand) Visual {
	return Visual{
		Front: newFront(st, name, artwork, rng),
		Back:  newBack(st, name, back),
		Mask:  arcana.NewSprite(name+"/mask", arcana.NewRoundedRectImage(st.Width, st.Height, st.Radius, arcana.ColorWhite)),
	}
}

func newFront(st Style, name string, artwork *ebiten.Image, rng Rand) *arcana.Node {
	w, h := st.Width, st.Height
	front := arcana.NewContainer(name + "/front")

	paper := ebiten.NewImage(int(w), int(h))
	arcana.FillRoundedRect(paper, 0, 0, w, h, st.Radius, st.Paper)
	arcana.StrokeRoundedRect(paper,
		outlineInset, outlineInset, w-2*outlineInset, h-2*outlineInset,
		st.Radius-6, outlineWidth, st.Ink, st.Paper)
	front.AddChild(arcana.NewSprite(name+"/paper", paper))

	if artwork != nil {
		innerW := w - 2*artInset
		aw, ah := float64(artwork.Bounds().Dx()), float64(artwork.Bounds().Dy())
		s := innerW / aw
		art := arcana.NewSprite(name+"/art", artwork)
		art.SetPosition(artInset, artInset)
		art.SetScale(s, s)

		// The mask lives in the artwork's unscaled space.
		mask := arcana.NewSprite(name+"/art-mask",
			arcana.NewRoundedRectImage(innerW, h-2*artInset, artRadius, arcana.ColorWhite))
		mask.SetScale(1/s, 1/s)
		art.SetMask(mask)
		front.AddChild(art)

		rule := arcana.NewSprite(name+"/rule", arcana.NewRoundedRectImage(innerW, 2, 0, st.Ink))
		rule.SetPosition(artInset, artInset+ah*s-2)
		front.AddChild(rule)
	}

	if st.Font != nil {
		label := arcana.NewLabel(name+"/label", name, st.Font, st.Ink)
		label.SetPosition(w/2, h-labelLift)
		if rng != nil {
			label.SetRotation((rng.Float64() - 0.5) * labelTilt)
		}
		front.AddChild(label)
	}
	return front
}

func newBack(st Style, name string, img *ebiten.Image) *arcana.Node {
	back := arcana.NewContainer(name + "/back")
	back.AddChild(arcana.NewSprite(name+"/backing",
		arcana.NewRoundedRectImage(st.Width, st.Height, st.Radius, st.Backing)))
	if img != nil {
		art := arcana.NewSprite(name+"/back-art", img)
		bw, bh := art.Size()
		art.SetPivot(bw/2, bh/2)
		art.SetPosition(st.Width/2, st.Height/2)
		back.AddChild(art)
	}
	return back
}
