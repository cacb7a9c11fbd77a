// Package game is the bounding volume test harness screen: six shapes with
// their bounding volumes, tested every frame against a moving probe.
package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
)

const (
	summarySize   = 26
	summaryMargin = 10
)

// Config is the harness configuration.
type Config struct {
	// InitialMode is the test mode a fresh screen starts in.
	InitialMode bounding.TestMode
}

// DefaultConfig starts in RayCast.
func DefaultConfig() Config {
	return Config{InitialMode: bounding.DefaultTestMode}
}

// ShapeData holds the shape of an entity. Replace it with Set so the volume
// is recomputed.
type ShapeData struct {
	shape   bounding.Shape
	version uint64
}

// NewShape wraps s.
func NewShape(s bounding.Shape) ShapeData { return ShapeData{shape: s, version: 1} }

// Shape returns the current shape.
func (d *ShapeData) Shape() bounding.Shape { return d.shape }

// Set replaces the shape.
func (d *ShapeData) Set(s bounding.Shape) {
	d.shape = s
	d.version++
}

// Version increases on every Set.
func (d *ShapeData) Version() uint64 { return d.version }

// DesiredVolumeData is the kind of volume an entity wants maintained.
type DesiredVolumeData struct {
	kind    bounding.VolumeKind
	version uint64
}

// NewDesiredVolume wants k.
func NewDesiredVolume(k bounding.VolumeKind) DesiredVolumeData {
	return DesiredVolumeData{kind: k, version: 1}
}

// Kind returns the wanted volume kind.
func (d *DesiredVolumeData) Kind() bounding.VolumeKind { return d.kind }

// Set changes the wanted kind.
func (d *DesiredVolumeData) Set(k bounding.VolumeKind) {
	d.kind = k
	d.version++
}

// Version increases on every Set.
func (d *DesiredVolumeData) Version() uint64 { return d.version }

// CurrentVolumeData is the volume last computed for an entity and the
// versions of its inputs at that time.
type CurrentVolumeData struct {
	Volume bounding.Volume
	Valid  bool
	// Updates counts recomputations.
	Updates int

	transformVersion, shapeVersion, desiredVersion uint64
}

func (c *CurrentVolumeData) stale(t *gdan.Transform, s *ShapeData, d *DesiredVolumeData) bool {
	return !c.Valid ||
		c.transformVersion != t.Version() ||
		c.shapeVersion != s.Version() ||
		c.desiredVersion != d.Version()
}

// IntersectsData is the outcome of this frame's test against the probe.
type IntersectsData = bounding.Hit

// TestModeState is the active test mode and the probe built for it this
// frame.
type TestModeState struct {
	Mode  bounding.TestMode
	Probe bounding.Probe
}

var (
	Transform     = donburi.NewComponentType[gdan.Transform]()
	Shape         = donburi.NewComponentType[ShapeData]()
	DesiredVolume = donburi.NewComponentType[DesiredVolumeData]()
	CurrentVolume = donburi.NewComponentType[CurrentVolumeData]()
	Intersects    = donburi.NewComponentType[IntersectsData]()
	// TestMode is the TestModeState resource.
	TestMode = donburi.NewComponentType[TestModeState]()

	// Spin marks shapes that rotate.
	Spin = donburi.NewTag().SetName("Spin")
	// GameMenu tags everything the screen spawns.
	GameMenu = donburi.NewTag().SetName("GameMenu")
	summary  = donburi.NewTag().SetName("GameSummary")
)

// Placement describes one shape of the harness and where it starts.
type Placement struct {
	X, Y   float64
	Shape  bounding.Shape
	Volume bounding.VolumeKind
	Spin   bool
}

// Shapes lists the harness shapes: top row left to right, then bottom row.
func Shapes() []Placement {
	return []Placement{
		{-125, 75, bounding.Circle(45), bounding.VolumeAabb, false},
		{0, 75, bounding.Rectangle(80, 80), bounding.VolumeCircle, true},
		{125, 75, bounding.Triangle(
			mgl64.Vec2{-40, -40}, mgl64.Vec2{-20, 40}, mgl64.Vec2{40, 50}), bounding.VolumeAabb, true},
		{-125, -75, bounding.Segment(mgl64.Vec2{1, 0.3}, 90), bounding.VolumeCircle, true},
		{0, -75, bounding.Capsule(25, 50), bounding.VolumeAabb, true},
		{125, -75, bounding.RegularPolygon(50, 6), bounding.VolumeCircle, true},
	}
}

// Plugin registers the harness screen.
func Plugin(cfg Config) gdan.Plugin {
	return func(a *gdan.App) {
		in := gdan.InState(gdan.StateGameMenu)
		a.AddSystems(gdan.OnEnter(gdan.StateGameMenu), func(a *gdan.App) { setup(a, cfg) })
		a.AddSystems(gdan.Update,
			spin,
			updateVolumes,
			updateTestMode,
			intersect,
			drawShapes,
			drawVolumes,
			drawProbe,
			updateSummary,
		).RunIf(in)
		a.AddSystems(gdan.OnExit(gdan.StateGameMenu), gdan.Despawn(GameMenu), teardown)
	}
}

// SpawnShape creates a harness entity for s carrying the extra components.
func SpawnShape(w donburi.World, s Placement, extra ...donburi.IComponentType) donburi.Entity {
	comps := []donburi.IComponentType{Transform, Shape, DesiredVolume, CurrentVolume, Intersects}
	if s.Spin {
		comps = append(comps, Spin)
	}
	e := w.Create(append(comps, extra...)...)
	entry := w.Entry(e)
	Transform.SetValue(entry, gdan.NewTransform(s.X, s.Y))
	Shape.SetValue(entry, NewShape(s.Shape))
	DesiredVolume.SetValue(entry, NewDesiredVolume(s.Volume))
	return e
}

func setup(a *gdan.App, cfg Config) {
	gdan.Logf("game: setup, test mode %s", cfg.InitialMode)
	gdan.SetResource(a.World, TestMode, TestModeState{Mode: cfg.InitialMode})
	for _, s := range Shapes() {
		SpawnShape(a.World, s, GameMenu)
	}

	content := Summary(cfg.InitialMode)
	_, h := a.Font(summarySize).MeasureString(content)
	gdan.SpawnText(a.World, gdan.TextData{
		Anchor:  gdan.AnchorBottomLeft,
		OffsetX: summaryMargin,
		OffsetY: -h - summaryMargin,
		Content: content,
		Size:    summarySize,
	}, GameMenu, summary)
}

func teardown(a *gdan.App) {
	gdan.RemoveResource(a.World, TestMode)
}
