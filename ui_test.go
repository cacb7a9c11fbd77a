package gdan

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAnchorPoint(t *testing.T) {
	tests := []struct {
		anchor Anchor
		x, y   float64
	}{
		{AnchorCenter, 640, 360},
		{AnchorTopLeft, 0, 0},
		{AnchorTop, 640, 0},
		{AnchorTopRight, 1280, 0},
		{AnchorLeft, 0, 360},
		{AnchorRight, 1280, 360},
		{AnchorBottomLeft, 0, 720},
		{AnchorBottom, 640, 720},
		{AnchorBottomRight, 1280, 720},
	}
	for _, tt := range tests {
		x, y := tt.anchor.Point(1280, 720)
		if x != tt.x || y != tt.y {
			t.Errorf("anchor %d: Point = (%v, %v), want (%v, %v)", tt.anchor, x, y, tt.x, tt.y)
		}
	}
}

func TestButtonRect(t *testing.T) {
	b := ButtonData{Anchor: AnchorCenter, OffsetY: -100, Width: 150, Height: 65}
	require.Equal(t, Rect{X: 565, Y: 227.5, Width: 150, Height: 65}, b.Rect(1280, 720))

	b = ButtonData{Anchor: AnchorTopRight, OffsetX: -100, OffsetY: 50, Width: 120, Height: 50}
	require.Equal(t, Rect{X: 1120, Y: 25, Width: 120, Height: 50}, b.Rect(1280, 720))
}

func TestButtonHitArea(t *testing.T) {
	b := ButtonData{Anchor: AnchorBottom, OffsetY: -25, Width: 120, Height: 50}
	hit := b.HitArea(1280, 720)
	require.Equal(t, HitRect{X: 580, Y: 670, Width: 120, Height: 50}, hit)
	require.True(t, hit.Contains(580, 670), "edges count")
	require.True(t, hit.Contains(640, 695))
	require.False(t, hit.Contains(579, 695))
	require.False(t, hit.Contains(640, 721))
}

func TestSpawnButtonDefaults(t *testing.T) {
	w := donburi.NewWorld()
	e := SpawnButton(w, ButtonData{Width: 10, Height: 10, Label: "x"})
	b := Button.Get(w.Entry(e))
	require.Equal(t, DefaultButtonStyle(), b.Style)
	require.Equal(t, 24.0, b.FontSize)
	require.Equal(t, Gray(0.9), b.LabelColor)
	require.Equal(t, InteractionNone, b.Interaction)
	require.Equal(t, b.Style.Background[InteractionNone], b.Background)
	require.Equal(t, b.Style.Border[InteractionNone], b.BorderColor)

	te := SpawnText(w, TextData{Content: "hi"}, testTag)
	txt := Text.Get(w.Entry(te))
	require.Equal(t, 20.0, txt.Size)
	require.Equal(t, ColorWhite, txt.Color)
	require.True(t, w.Entry(te).HasComponent(testTag))
}

func TestButtonInteraction(t *testing.T) {
	a, src := newTestApp(t)
	e := SpawnButton(a.World, ButtonData{Width: 150, Height: 65, Border: 5})
	b := Button.Get(a.World.Entry(e))

	src.x, src.y = 10, 10
	require.NoError(t, a.Step(testDT))
	require.Equal(t, InteractionNone, b.Interaction)

	src.x, src.y = 640, 360
	require.NoError(t, a.Step(testDT))
	require.Equal(t, InteractionHovered, b.Interaction)

	src.buttons[MouseButtonLeft] = true
	require.NoError(t, a.Step(testDT))
	require.Equal(t, InteractionPressed, b.Interaction)

	// The fade runs to the pressed colors.
	for range 10 {
		require.NoError(t, a.Step(testDT))
	}
	want := DefaultButtonStyle()
	require.InDelta(t, want.Background[InteractionPressed].G, b.Background.G, 1e-6)
	require.InDelta(t, want.Border[InteractionPressed].R, b.BorderColor.R, 1e-6)
	require.InDelta(t, 0, b.BorderColor.G, 1e-6)

	src.buttons[MouseButtonLeft] = false
	src.x = 0
	require.NoError(t, a.Step(testDT))
	require.Equal(t, InteractionNone, b.Interaction)
}

func TestButtonPressedEvent(t *testing.T) {
	a, _ := newTestApp(t)
	SpawnButton(a.World, ButtonData{Width: 150, Height: 65, Action: "map"})
	SpawnButton(a.World, ButtonData{OffsetY: 200, Width: 150, Height: 65, Action: "game"})

	var got []string
	OnButton(a.World, "map", func(donburi.World) { got = append(got, "map") })
	OnButton(a.World, "game", func(donburi.World) { got = append(got, "game") })

	a.Input.InjectClick(640, 360)
	for range 3 {
		require.NoError(t, a.Step(testDT))
	}
	require.Equal(t, []string{"map"}, got)

	// Pressing outside and sliding over a button does not click it.
	a.Input.InjectDrag(0, 0, 640, 560, 4)
	for range 5 {
		require.NoError(t, a.Step(testDT))
	}
	require.Equal(t, []string{"map"}, got)

	a.Input.InjectClick(640, 560)
	for range 3 {
		require.NoError(t, a.Step(testDT))
	}
	require.Equal(t, []string{"map", "game"}, got)
}

func TestAppFontCached(t *testing.T) {
	a, _ := newTestApp(t)
	f := a.Font(24)
	require.Same(t, f, a.Font(24))
	require.NotSame(t, f, a.Font(32))
	require.Equal(t, 24.0, f.Size())
}

func TestDrawUI(t *testing.T) {
	a, _ := newTestApp(t)
	SpawnButton(a.World, ButtonData{Width: 150, Height: 65, Border: 5, Label: "Map"})
	SpawnText(a.World, TextData{Anchor: AnchorTop, OffsetY: 20, Content: "Main", Align: TextAlignCenter})
	require.NoError(t, a.Step(testDT))
	require.NotPanics(t, func() { drawButtons(a, ebiten.NewImage(1280, 720)) })
	require.NotPanics(t, func() { drawTexts(a, ebiten.NewImage(1280, 720)) })
}

func TestInteractionString(t *testing.T) {
	require.Equal(t, "None", InteractionNone.String())
	require.Equal(t, "Hovered", InteractionHovered.String())
	require.Equal(t, "Pressed", InteractionPressed.String())
}
