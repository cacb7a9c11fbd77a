package gdan

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
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"top edge", 50, 20, true},
		{"bottom edge", 50, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"fully contained", Rect{20, 20, 10, 10}, true},
		{"containing", Rect{0, 0, 200, 200}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"adjacent bottom", Rect{10, 110, 50, 50}, true},
		{"adjacent left", Rect{-50, 10, 60, 50}, true},
		{"adjacent top", Rect{10, -50, 50, 60}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint left", Rect{-100, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
		{"disjoint below", Rect{10, 111, 50, 50}, false},
		{"same rect", Rect{10, 10, 100, 100}, true},
		{"zero-size at corner", Rect{110, 110, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}
func TestRectCenter(t *testing.T) {
	x, y := Rect{10, 20, 100, 50}.Center()
	if x != 60 || y != 45 {
		t.Errorf("Center = (%v, %v), want (60, 45)", x, y)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    Color
	}{
		{"red", 0, 1, 0.5, ColorRed},
		{"green", 120, 1, 0.5, ColorGreen},
		{"blue", 240, 1, 0.5, ColorBlue},
		{"wraps", 360, 1, 0.5, ColorRed},
		{"negative hue", -120, 1, 0.5, ColorBlue},
		{"white", 77, 0.5, 1, ColorWhite},
		{"black", 200, 1, 0, ColorBlack},
		{"gray", 10, 0, 0.5, Gray(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSL(tt.h, tt.s, tt.l); !colorNear(got, tt.want) {
				t.Errorf("HSL(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestColorLerp(t *testing.T) {
	got := ColorBlack.Lerp(ColorWhite, 0.25)
	if !colorNear(got, Color{0.25, 0.25, 0.25, 1}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := ColorRed.Lerp(ColorBlue, 1); got != ColorBlue {
		t.Errorf("Lerp(1) = %v, want %v", got, ColorBlue)
	}
	if got := ColorRed.WithAlpha(0.5); got.A != 0.5 || got.R != 1 {
		t.Errorf("WithAlpha = %v", got)
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	// Premultiplied: 1*0.5*255, 0.5*0.5*255.
	if c.R != 128 || c.G != 64 || c.B != 0 || c.A != 128 {
		t.Errorf("toRGBA = %v, want {128 64 0 128}", c)
	}
	if c := (Color{2, -1, 0, 1}).toRGBA(); c.R != 255 || c.G != 0 {
		t.Errorf("out of range channels not clamped: %v", c)
	}
	r, _, _, a := ColorWhite.RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x, %x, want ffff", r, a)
	}
}

func TestTextAlignValues(t *testing.T) {
	if TextAlignLeft != 0 || TextAlignCenter != 1 || TextAlignRight != 2 {
		t.Errorf("TextAlign values = %d %d %d", TextAlignLeft, TextAlignCenter, TextAlignRight)
	}
}

func BenchmarkRectContains(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Contains(50, 40)
	}
}
