// Package mapview is the tiled satellite map screen.
package mapview

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
)

const (
	minScale    = 0.3
	maxScale    = 1.5
	scaleStep   = 0.1
	panSpeed    = 600     // screen pixels per second
	panFast     = 3       // Shift
	panSlow     = 1.0 / 3 // Ctrl
	homeSeconds = 0.6
	greetEvery  = 5
)

// MapInfo describes the tile grid and the current scale.
type MapInfo struct {
	Scale             float64
	UnitX, UnitY      float64
	LabelX, LabelY    int
	SatelliteMapLevel int
	MeterPerPixel     float64
}

// DefaultMapInfo is the level 21 grid of 3 x 4 tiles of 1440 x 810 pixels.
func DefaultMapInfo() MapInfo {
	return MapInfo{
		Scale:             0.5,
		UnitX:             1440,
		UnitY:             810,
		LabelX:            3,
		LabelY:            4,
		SatelliteMapLevel: 21,
		MeterPerPixel:     0.0746,
	}
}

// TilePath returns the asset path of the tile in column x, row y.
func (m *MapInfo) TilePath(x, y int) string {
	return fmt.Sprintf("wg/ncly/level%d/%d-%d.png", m.SatelliteMapLevel, x+1, y+1)
}

// TileRect returns the world rectangle covered by tile (x, y). Tiles are
// centered on (x*UnitX, y*UnitY).
func (m *MapInfo) TileRect(x, y int) gdan.Rect {
	return gdan.Rect{
		X:      float64(x)*m.UnitX - m.UnitX/2,
		Y:      float64(y)*m.UnitY - m.UnitY/2,
		Width:  m.UnitX,
		Height: m.UnitY,
	}
}

// Bounds returns the world rectangle covered by all tiles.
func (m *MapInfo) Bounds() gdan.Rect {
	return gdan.Rect{
		X:      -m.UnitX / 2,
		Y:      -m.UnitY / 2,
		Width:  float64(m.LabelX) * m.UnitX,
		Height: float64(m.LabelY) * m.UnitY,
	}
}

// Center returns the world center of the grid.
func (m *MapInfo) Center() (x, y float64) {
	b := m.Bounds()
	return b.Center()
}

// ApplyWheel steps the scale by one tenth per wheel event within
// [0.3, 1.5]. It reports whether the scale changed.
func (m *MapInfo) ApplyWheel(dy float64) bool {
	switch {
	case dy > 0 && m.Scale < maxScale-1e-9:
		m.Scale = math.Round((m.Scale+scaleStep)*10) / 10
	case dy < 0 && m.Scale > minScale+1e-9:
		m.Scale = math.Round((m.Scale-scaleStep)*10) / 10
	default:
		return false
	}
	return true
}

// MetersPerScreenPixel returns the ground distance one screen pixel covers.
func (m *MapInfo) MetersPerScreenPixel() float64 {
	return m.MeterPerPixel / m.Scale
}

// MouseCoords keeps the last two cursor positions in world space.
type MouseCoords struct {
	PreX, PreY float64
	X, Y       float64
}

// TileData is one map tile.
type TileData struct {
	Col, Row int
	Path     string
}

var (
	// Info is the MapInfo resource.
	Info       = donburi.NewComponentType[MapInfo]()
	// Mouse is the MouseCoords resource.
	Mouse      = donburi.NewComponentType[MouseCoords]()
	// GreetTimer paces the periodic status line.
	GreetTimer = donburi.NewComponentType[gdan.Timer]()
	// Tile marks map tiles.
	Tile       = donburi.NewComponentType[TileData]()

	// MapMenu tags everything the screen spawns.
	MapMenu = donburi.NewTag().SetName("MapMenu")
	// MapNC marks the level 21 satellite tiles.
	MapNC   = donburi.NewTag().SetName("MapNC")
	header  = donburi.NewTag().SetName("MapHeader")
)

// Plugin registers the map screen.
func Plugin(a *gdan.App) {
	in := gdan.InState(gdan.StateMapMenu)
	a.AddSystems(gdan.OnEnter(gdan.StateMapMenu), setup)
	a.AddSystems(gdan.Update, scaleMap, panMap, trackMouse, updateHeader, greet).RunIf(in)
	a.AddSystems(gdan.OnExit(gdan.StateMapMenu), gdan.Despawn(MapMenu), teardown)
	a.AddRenderers(gdan.LayerWorld, drawTiles).RunIf(in)
}

func setup(a *gdan.App) {
	gdan.Logf("map: setup")
	info := gdan.SetResource(a.World, Info, DefaultMapInfo())
	gdan.SetResource(a.World, Mouse, MouseCoords{})
	gdan.SetResource(a.World, GreetTimer, gdan.NewTimer(greetEvery, gdan.TimerRepeating))

	for x := 0; x < info.LabelX; x++ {
		for y := 0; y < info.LabelY; y++ {
			e := a.World.Create(Tile, MapNC, MapMenu)
			Tile.SetValue(a.World.Entry(e), TileData{Col: x, Row: y, Path: info.TilePath(x, y)})
		}
	}

	cx, cy := info.Center()
	a.Camera.SetBounds(info.Bounds())
	a.Camera.SetZoom(info.Scale)
	a.Camera.SetPosition(cx, cy)

	gdan.SpawnText(a.World, gdan.TextData{
		Anchor:  gdan.AnchorTopLeft,
		OffsetX: 10,
		OffsetY: 10,
		Content: "show map",
		Size:    24,
	}, MapMenu, header)
}

func teardown(a *gdan.App) {
	gdan.RemoveResource(a.World, Info)
	gdan.RemoveResource(a.World, Mouse)
	gdan.RemoveResource(a.World, GreetTimer)
}

func scaleMap(a *gdan.App) {
	info := gdan.MustResource(a.World, Info)
	_, dy := a.Input.Wheel()
	if !info.ApplyWheel(dy) {
		return
	}
	a.Camera.SetZoom(info.Scale)
	gdan.Logf("map: scale %.1f", info.Scale)
}

func panMap(a *gdan.App) {
	in := a.Input
	if in.Dragging() && in.MousePressed(gdan.MouseButtonLeft) {
		dx, dy := in.CursorDelta()
		a.Camera.Pan(dx, dy)
	}

	step := panSpeed * a.Time.Delta() * PanFactor(in.Modifiers())
	var dx, dy float64
	if in.AnyPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		dx += step
	}
	if in.AnyPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		dx -= step
	}
	if in.AnyPressed(ebiten.KeyArrowUp, ebiten.KeyW) {
		dy += step
	}
	if in.AnyPressed(ebiten.KeyArrowDown, ebiten.KeyS) {
		dy -= step
	}
	if dx != 0 || dy != 0 {
		a.Camera.Pan(dx, dy)
	}

	if in.JustPressed(ebiten.KeyHome) {
		info := gdan.MustResource(a.World, Info)
		info.Scale = DefaultMapInfo().Scale
		cx, cy := info.Center()
		a.Camera.ScrollZoomTo(cx, cy, info.Scale, homeSeconds, ease.InOutQuad)
		gdan.Logf("map: home, scale %.1f", info.Scale)
	}
}

// PanFactor scales the keyboard pan speed: Shift pans faster, Ctrl slower.
func PanFactor(mods gdan.KeyModifiers) float64 {
	switch {
	case mods&gdan.ModShift != 0:
		return panFast
	case mods&gdan.ModCtrl != 0:
		return panSlow
	default:
		return 1
	}
}

func trackMouse(a *gdan.App) {
	m := gdan.MustResource(a.World, Mouse)
	m.PreX, m.PreY = m.X, m.Y
	m.X, m.Y = a.Camera.ScreenToWorld(a.Input.Cursor())
}

var headerQuery = query.NewQuery(filter.Contains(header, gdan.Text))

func updateHeader(a *gdan.App) {
	info := gdan.MustResource(a.World, Info)
	m := gdan.MustResource(a.World, Mouse)
	content := fmt.Sprintf("show map  scale %.1f  cursor (%.0f, %.0f)  %.4f m/px",
		info.Scale, m.X, m.Y, info.MetersPerScreenPixel())
	headerQuery.Each(a.World, func(e *donburi.Entry) {
		gdan.Text.Get(e).Content = content
	})
}

func greet(a *gdan.App) {
	t := gdan.MustResource(a.World, GreetTimer)
	if !t.Tick(a.Time.Delta()).JustFinished() {
		return
	}
	info := gdan.MustResource(a.World, Info)
	gdan.Logf("map: level %d, scale %.1f, camera (%.0f, %.0f)",
		info.SatelliteMapLevel, info.Scale, a.Camera.X, a.Camera.Y)
}

var tileQuery = query.NewQuery(filter.Contains(Tile))

func drawTiles(a *gdan.App, screen *ebiten.Image) {
	info, ok := gdan.GetResource(a.World, Info)
	if !ok {
		return
	}
	tileQuery.Each(a.World, func(e *donburi.Entry) {
		t := Tile.Get(e)
		r := info.TileRect(t.Col, t.Row)
		if !a.Camera.IsVisible(r) {
			return
		}
		img := a.Assets.Image(t.Path)
		b := img.Bounds()
		world := [6]float64{
			r.Width / float64(b.Dx()), 0,
			0, r.Height / float64(b.Dy()),
			r.X, r.Y,
		}
		gdan.DrawImage(screen, img, world, a.Camera)
	})
}
