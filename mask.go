package arcana

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// maskBlend keeps the destination only where the source (the mask) has alpha.
var maskBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorSourceAlpha,
	BlendFactorDestinationAlpha: ebiten.BlendFactorSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// SetMask sets a mask node for this node. The mask node's alpha channel
// determines which parts of this node are visible. The mask node is NOT
// part of the scene tree; its transforms are relative to the masked node.
func (n *Node) SetMask(maskNode *Node) {
	n.mask = maskNode
}

// ClearMask removes the mask from this node.
func (n *Node) ClearMask() {
	n.mask = nil
}

// GetMask returns the current mask node, or nil if no mask is set.
func (n *Node) GetMask() *Node {
	return n.mask
}

// drawMasked renders n's content into an offscreen image covering the mask's
// bounds in n's local space, clips it with the mask, then draws the result
// onto dst through m.
func (s *Scene) drawMasked(dst *ebiten.Image, n *Node, m [6]float64, alpha float64) {
	bounds, ok := subtreeBounds(n.mask, computeLocalTransform(n.mask))
	if !ok {
		return
	}
	bx := math.Floor(bounds.X)
	by := math.Floor(bounds.Y)
	w := int(math.Ceil(bounds.X+bounds.Width-bx)) + 1
	h := int(math.Ceil(bounds.Y+bounds.Height-by)) + 1

	// RT pixel (0,0) corresponds to local (bx, by).
	offset := translation(-bx, -by)

	rt := s.rtPool.Acquire(w, h)
	s.drawContent(rt, n, offset, 1)

	maskRT := s.rtPool.Acquire(w, h)
	s.drawNode(maskRT, n.mask, offset, 1)
	var op ebiten.DrawImageOptions
	op.Blend = maskBlend
	rt.DrawImage(maskRT, &op)
	s.rtPool.Release(maskRT)

	s.drawImage(dst, rt, multiplyAffine(m, translation(bx, by)), ColorWhite, alpha)
	s.rtDeferred = append(s.rtDeferred, rt)
	s.stats.offscreen++
}

// subtreeBounds computes the bounding rectangle of n's images and its
// descendants' under transform m. Reports false when nothing has an image.
func subtreeBounds(n *Node, m [6]float64) (Rect, bool) {
	var r Rect
	first := true
	subtreeBoundsWalk(n, m, &r, &first)
	return r, !first
}

func subtreeBoundsWalk(n *Node, m [6]float64, bounds *Rect, first *bool) {
	if w, h := n.Size(); w > 0 && h > 0 {
		aabb := transformedAABB(m, w, h)
		if *first {
			*bounds = aabb
			*first = false
		} else {
			*bounds = unionRect(*bounds, aabb)
		}
	}
	for _, child := range n.children {
		subtreeBoundsWalk(child, multiplyAffine(m, computeLocalTransform(child)), bounds, first)
	}
}

// transformedAABB returns the axis-aligned box of the rectangle (0,0,w,h)
// under m.
func transformedAABB(m [6]float64, w, h float64) Rect {
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = transformPoint(m, 0, 0)
	xs[1], ys[1] = transformPoint(m, w, 0)
	xs[2], ys[2] = transformPoint(m, 0, h)
	xs[3], ys[3] = transformPoint(m, w, h)
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = min(minX, xs[i])
		maxX = max(maxX, xs[i])
		minY = min(minY, ys[i])
		maxY = max(maxY, ys[i])
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func unionRect(a, b Rect) Rect {
	x0 := min(a.X, b.X)
	y0 := min(a.Y, b.Y)
	x1 := max(a.X+a.Width, b.X+b.Width)
	y1 := max(a.Y+a.Height, b.Y+b.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// --- Render texture pool ---

// renderTexturePool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. After warmup, Acquire/Release are zero-alloc.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// Idle returns the number of pooled images waiting for reuse.
func (p *renderTexturePool) Idle() int {
	n := 0
	for _, stack := range p.buckets {
		n += len(stack)
	}
	return n
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
