package arcana

import (
	"math"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left of", 9, 40, false},
		{"below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Color ---

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", ColorWhite},
		{"000000", Color{0, 0, 0, 1}},
		{"#ff000080", Color{1, 0, 0, 128.0 / 255}},
		{"  #00ff00 ", Color{0, 1, 0, 1}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "#1234567"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", in)
		}
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0, 1}
	b := Color{1, 0.5, 0, 0}
	got := a.Lerp(b, 0.5)
	want := Color{0.5, 0.25, 0, 0.5}
	if got != want {
		t.Errorf("Lerp = %v, want %v", got, want)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints should match inputs")
	}
}

// --- Vec2 ---

func TestVec2(t *testing.T) {
	a := Vec2{4, 6}
	b := Vec2{1, 2}
	if got := a.Sub(b); got != (Vec2{3, 4}) {
		t.Errorf("Sub = %v, want {3 4}", got)
	}
	if got := a.Sub(b).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := b.Dist(a); math.Abs(got-5) > epsilon {
		t.Errorf("Dist = %v, want 5", got)
	}
}

// --- EventType ---

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		evt  EventType
		want string
	}{
		{EventPointerDown, "pointerdown"},
		{EventPointerUpOutside, "pointerupoutside"},
		{EventTap, "pointertap"},
		{EventPointerEnter, "pointerover"},
		{EventPointerLeave, "pointerout"},
		{EventType(200), "event(200)"},
	}
	for _, tt := range tests {
		if got := tt.evt.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.evt, got, tt.want)
		}
	}
}
