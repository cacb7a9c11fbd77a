// Package oper shows the primitive shapes, first as flat 2D meshes and then
// as lit 3D solids.
package oper

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
	"github.com/phanxgames/gdan/render3d"
)

const (
	extent2D = 600.0
	extent3D = 12.0

	action3D = "oper:3d"
)

// Cells is the marching cubes resolution of the sdf solids.
var Cells = render3d.DefaultCells

var (
	// OperMenu tags everything both oper screens spawn.
	OperMenu = donburi.NewTag().SetName("OperMenu")
	// Oper3D marks the spinning solids.
	Oper3D = donburi.NewTag().SetName("Oper3D")
)

// ShapeData is one flat shape of the 2D screen.
type ShapeData struct {
	Mesh      *gdan.Mesh
	Color     gdan.Color
	Transform gdan.Transform
}

// Shape marks the 2D shapes.
var Shape = donburi.NewComponentType[ShapeData]()

// Plugin registers OperMenu and Oper3D.
func Plugin(a *gdan.App) {
	a.AddSystems(gdan.Startup, subscribe)

	a.AddSystems(gdan.OnEnter(gdan.StateOperMenu), setup2D)
	a.AddSystems(gdan.OnExit(gdan.StateOperMenu), gdan.Despawn(OperMenu))
	a.AddRenderers(gdan.LayerWorld, drawShapes).RunIf(gdan.InState(gdan.StateOperMenu))

	a.AddSystems(gdan.OnEnter(gdan.StateOper3D), setup3D)
	a.AddSystems(gdan.Update, spin).RunIf(gdan.InState(gdan.StateOper3D))
	a.AddSystems(gdan.OnExit(gdan.StateOper3D), gdan.Despawn(OperMenu), removeView)
	a.AddRenderers(gdan.LayerWorld, render3d.Draw).RunIf(gdan.InState(gdan.StateOper3D))
}

func subscribe(a *gdan.App) {
	gdan.OnButton(a.World, action3D, func(donburi.World) {
		if !a.States.Is(gdan.StateOperMenu) {
			return
		}
		gdan.Logf("oper: 3D")
		a.States.SetNext(gdan.StateOper3D)
	})
}

// Meshes2D returns the flat shapes left to right.
func Meshes2D() []*gdan.Mesh {
	return []*gdan.Mesh{
		gdan.MeshFromShape(bounding.Circle(50), 0),
		gdan.EllipseMesh(mgl64.Vec2{25, 50}, 0),
		gdan.MeshFromShape(bounding.Capsule(25, 50), 0),
		gdan.MeshFromShape(bounding.Rectangle(50, 100), 0),
		gdan.MeshFromShape(bounding.RegularPolygon(50, 6), 0),
		gdan.MeshFromShape(bounding.Triangle(
			mgl64.Vec2{0, 50}, mgl64.Vec2{-50, -50}, mgl64.Vec2{50, -50}), 0),
	}
}

// spread returns the position of item i of n spread evenly over
// [-extent/2, extent/2].
func spread(i, n int, extent float64) float64 {
	return -extent/2 + float64(i)/float64(n-1)*extent
}

func setup2D(a *gdan.App) {
	gdan.Logf("oper: setup 2D")
	meshes := Meshes2D()
	for i, m := range meshes {
		e := a.World.Create(Shape, OperMenu)
		Shape.SetValue(a.World.Entry(e), ShapeData{
			Mesh:      m,
			Color:     gdan.HSL(360*float64(i)/float64(len(meshes)), 0.95, 0.7),
			Transform: gdan.NewTransform(spread(i, len(meshes), extent2D), 0),
		})
	}

	gdan.SpawnButton(a.World, gdan.ButtonData{
		Anchor:   gdan.AnchorBottom,
		OffsetY:  -25,
		Width:    120,
		Height:   50,
		Border:   5,
		Label:    "3D",
		FontSize: 40,
		Action:   action3D,
	}, OperMenu)
}

var shapeQuery = query.NewQuery(filter.Contains(Shape))

func drawShapes(a *gdan.App, screen *ebiten.Image) {
	shapeQuery.Each(a.World, func(e *donburi.Entry) {
		s := Shape.Get(e)
		gdan.DrawMesh(screen, s.Mesh, s.Transform.Matrix(), a.Camera, s.Color)
	})
}

// Solids builds the 3D primitives left to right. Solids that fail to
// tessellate are logged and left out.
func Solids(cells int) []*render3d.Mesh3D {
	type build func() (*render3d.Mesh3D, error)
	builders := []struct {
		name string
		fn   build
	}{
		{"cuboid", func() (*render3d.Mesh3D, error) { return render3d.Cuboid(mgl64.Vec3{1, 1, 1}, cells) }},
		{"capsule", func() (*render3d.Mesh3D, error) { return render3d.Capsule(0.5, 1, cells) }},
		{"torus", func() (*render3d.Mesh3D, error) { return render3d.Torus(0.25, 0.75, cells) }},
		{"cylinder", func() (*render3d.Mesh3D, error) { return render3d.Cylinder(0.5, 1, cells) }},
		{"ico sphere", func() (*render3d.Mesh3D, error) { return render3d.IcoSphere(0.5, 5), nil }},
		{"uv sphere", func() (*render3d.Mesh3D, error) { return render3d.UVSphere(0.5, 32, 18), nil }},
	}
	out := make([]*render3d.Mesh3D, 0, len(builders))
	for _, b := range builders {
		m, err := b.fn()
		if err != nil {
			gdan.Logf("oper: %s: %v", b.name, err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func setup3D(a *gdan.App) {
	gdan.Logf("oper: setup 3D")
	gdan.SetResource(a.World, render3d.View,
		render3d.NewView(render3d.NewCamera3D(mgl64.Vec3{0, 6, 12}, mgl64.Vec3{})))

	debug := render3d.Material{Texture: render3d.UVDebugTexture()}
	tilt := mgl64.QuatRotate(-math.Pi/4, mgl64.Vec3{1, 0, 0})
	solids := Solids(Cells)
	for i, m := range solids {
		o := render3d.NewObject(m, debug, mgl64.Vec3{spread(i, len(solids), extent3D), 2, 0})
		o.Rotation = tilt
		render3d.SpawnObject(a.World, o, Oper3D, OperMenu)
	}

	render3d.SpawnLight(a.World, render3d.DefaultPointLight(mgl64.Vec3{8, 16, 8}), OperMenu)
	render3d.SpawnObject(a.World,
		render3d.NewObject(render3d.Plane(50, 50, 10), render3d.Material{Color: gdan.ColorSilver}, mgl64.Vec3{}),
		OperMenu)
}

var spinQuery = query.NewQuery(filter.Contains(render3d.Object, Oper3D))

func spin(a *gdan.App) {
	angle := a.Time.Delta() / 2
	spinQuery.Each(a.World, func(e *donburi.Entry) {
		render3d.Object.Get(e).RotateWorld(mgl64.Vec3{0, 1, 0}, angle)
	})
}

func removeView(a *gdan.App) {
	gdan.RemoveResource(a.World, render3d.View)
}
