// Package rule is the gizmo showcase screen.
package rule

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/gdan"
)

const (
	// RoundGroup is the gizmo group the circles and arcs are drawn with.
	RoundGroup = "round"

	minLineWidth = 1
	maxLineWidth = 50
)

// RuleMenu tags everything the screen spawns.
var RuleMenu = donburi.NewTag().SetName("RuleMenu")

// Plugin registers the rule screen.
func Plugin(a *gdan.App) {
	in := gdan.InState(gdan.StateRuleMenu)
	a.AddSystems(gdan.OnEnter(gdan.StateRuleMenu), setup)
	a.AddSystems(gdan.Update, adjustLineWidth, drawRule, drawCursor).RunIf(in)
	a.AddSystems(gdan.OnExit(gdan.StateRuleMenu), gdan.Despawn(RuleMenu), resetGizmos)
}

func setup(a *gdan.App) {
	gdan.Logf("rule: setup")
	gdan.SpawnText(a.World, gdan.TextData{
		Anchor:  gdan.AnchorTopLeft,
		OffsetX: 10,
		OffsetY: 10,
		Content: "Up/Down: line width  Left/Right: round line width",
		Size:    18,
	}, RuleMenu)
}

func resetGizmos(a *gdan.App) {
	a.Gizmos.Config = gdan.DefaultGizmoConfig()
	a.Gizmos.Group(RoundGroup).Config = gdan.DefaultGizmoConfig()
}

func adjustLineWidth(a *gdan.App) {
	in := a.Input
	switch {
	case in.JustPressed(ebiten.KeyArrowUp):
		stepWidth(&a.Gizmos.Config, 1)
	case in.JustPressed(ebiten.KeyArrowDown):
		stepWidth(&a.Gizmos.Config, -1)
	case in.JustPressed(ebiten.KeyArrowRight):
		stepWidth(&a.Gizmos.Group(RoundGroup).Config, 1)
	case in.JustPressed(ebiten.KeyArrowLeft):
		stepWidth(&a.Gizmos.Group(RoundGroup).Config, -1)
	}
}

func stepWidth(c *gdan.GizmoConfig, d float32) {
	c.LineWidth = min(max(c.LineWidth+d, minLineWidth), maxLineWidth)
	gdan.Logf("rule: line width %.0f", c.LineWidth)
}

func drawRule(a *gdan.App) {
	DrawGizmos(a.Gizmos, a.Time.Elapsed())
}

// DrawGizmos queues one frame of the showcase at t seconds.
func DrawGizmos(g *gdan.Gizmos, t float64) {
	s := math.Sin(t) * 50
	g.Line2D(mgl64.Vec2{0, -s}, mgl64.Vec2{-80, -80}, gdan.ColorRed)
	g.Ray2D(mgl64.Vec2{0, s}, mgl64.Vec2{80, 80}, gdan.ColorGreen)

	g.LineStripGradient2D([]gdan.ColoredPoint{
		{P: mgl64.Vec2{0, 300}, Color: gdan.ColorBlue},
		{P: mgl64.Vec2{-255, -155}, Color: gdan.ColorRed},
		{P: mgl64.Vec2{255, -155}, Color: gdan.ColorGreen},
		{P: mgl64.Vec2{0, 300}, Color: gdan.ColorBlue},
	})

	g.Rect2D(mgl64.Vec2{}, t/3, mgl64.Vec2{300, 300}, gdan.ColorBlack)

	round := g.Group(RoundGroup)
	round.Circle2D(mgl64.Vec2{}, 120, gdan.ColorBlack)
	round.Ellipse2D(mgl64.Vec2{}, math.Mod(t, 2*math.Pi), mgl64.Vec2{100, 200}, 0, gdan.ColorYellowGreen)
	round.CircleSegments2D(mgl64.Vec2{}, 300, 64, gdan.ColorNavy)
	round.Arc2D(mgl64.Vec2{}, s/10, math.Pi/2, 350, gdan.ColorOrangeRed)

	tip := mgl64.Vec2{math.Cos(-s/10 + math.Pi/2), math.Sin(-s/10 + math.Pi/2)}.Mul(50)
	g.Arrow2D(mgl64.Vec2{}, tip, gdan.ColorYellow)
}

// drawCursor rings the world point under the cursor while it is inside the
// window.
func drawCursor(a *gdan.App) {
	x, y := a.Input.Cursor()
	w, h := a.Size()
	if !(gdan.Rect{Width: w, Height: h}).Contains(x, y) {
		return
	}
	wx, wy := a.Camera.ScreenToWorld(x, y)
	a.Gizmos.Circle2D(mgl64.Vec2{wx, wy}, 10, gdan.ColorWhite)
}
