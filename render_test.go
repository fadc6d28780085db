package arcana

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAffineGeoM(t *testing.T) {
	m := [6]float64{2, 0.5, -1, 3, 10, 20}
	g := affineGeoM(m)
	x, y := g.Apply(1, 1)
	wx, wy := transformPoint(m, 1, 1)
	if x != wx || y != wy {
		t.Errorf("GeoM.Apply(1,1) = (%v,%v), want (%v,%v)", x, y, wx, wy)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want colorRGBA
	}{
		{"opaque white", ColorWhite, colorRGBA{255, 255, 255, 255}},
		{"half red", Color{1, 0, 0, 0.5}, colorRGBA{127, 0, 0, 127}},
		{"clamped", Color{2, -1, 0, 1}, colorRGBA{255, 0, 0, 255}},
		{"transparent", Color{1, 1, 1, 0}, colorRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.toRGBA(); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRGBAExpands(t *testing.T) {
	r, g, b, a := colorRGBA{255, 128, 0, 255}.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

// Nodes skipped by drawNode never touch dst, so a nil destination is safe.
func TestDrawNodeSkipsHiddenAndTransparent(t *testing.T) {
	s := NewScene()
	hidden := NewSprite("hidden", ebiten.NewImage(8, 8))
	hidden.Visible = false
	faded := NewContainer("faded")
	faded.SetAlpha(0)
	faded.AddChild(NewSprite("inner", ebiten.NewImage(8, 8)))
	s.Root().AddChild(hidden)
	s.Root().AddChild(faded)
	s.Root().AddChild(NewContainer("empty"))

	s.drawNode(nil, s.root, identityTransform, 1)
	if s.stats.drawCalls != 0 {
		t.Errorf("drawCalls = %d, want 0", s.stats.drawCalls)
	}
}

// --- Benchmarks ---

func BenchmarkDrawTree(b *testing.B) {
	s := NewScene()
	screen := ebiten.NewImage(640, 480)
	img := NewRoundedRectImage(32, 48, 4, ColorWhite)
	for i := 0; i < 100; i++ {
		n := NewSprite("s", img)
		n.X = float64(i%10) * 40
		n.Y = float64(i/10) * 50
		n.SetRotation(float64(i) * 0.01)
		s.Root().AddChild(n)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Draw(screen)
	}
	b.StopTimer()
	if s.stats.drawCalls != 100 {
		b.Fatalf("drawCalls = %d, want 100", s.stats.drawCalls)
	}
}
