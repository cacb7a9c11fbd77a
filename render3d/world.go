package render3d

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
)

// ObjectData places a mesh in the 3D scene.
type ObjectData struct {
	Mesh     *Mesh3D
	Material Material
	Position mgl64.Vec3
	Rotation mgl64.Quat
	// Scale of zero is treated as one.
	Scale mgl64.Vec3
}

// NewObject returns an object at pos with no rotation.
func NewObject(m *Mesh3D, mat Material, pos mgl64.Vec3) ObjectData {
	return ObjectData{Mesh: m, Material: mat, Position: pos, Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// Model returns the object-to-world matrix: translate * rotate * scale.
func (o *ObjectData) Model() mgl64.Mat4 {
	s := o.Scale
	if s == (mgl64.Vec3{}) {
		s = mgl64.Vec3{1, 1, 1}
	}
	q := o.Rotation
	if q == (mgl64.Quat{}) {
		q = mgl64.QuatIdent()
	}
	return mgl64.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

// RotateWorld applies a rotation of angle radians about a world axis on top
// of the current orientation.
func (o *ObjectData) RotateWorld(axis mgl64.Vec3, angle float64) {
	q := o.Rotation
	if q == (mgl64.Quat{}) {
		q = mgl64.QuatIdent()
	}
	o.Rotation = mgl64.QuatRotate(angle, axis.Normalize()).Mul(q).Normalize()
}

// ViewData is the 3D view of a screen. Insert it with gdan.SetResource on
// enter and remove it on exit.
type ViewData struct {
	Camera   Camera3D
	renderer *Renderer
}

// NewView returns a view through cam.
func NewView(cam Camera3D) ViewData {
	return ViewData{Camera: cam, renderer: NewRenderer()}
}

// Renderer returns the renderer of the view, creating it on first use.
func (v *ViewData) Renderer() *Renderer {
	if v.renderer == nil {
		v.renderer = NewRenderer()
	}
	return v.renderer
}

var (
	// Object marks entities drawn by Draw.
	Object = donburi.NewComponentType[ObjectData]()
	// Light marks point lights.
	Light = donburi.NewComponentType[PointLight]()
	// View is the resource holding the active 3D camera.
	View = donburi.NewComponentType[ViewData]()
)

// SpawnObject creates an object entity carrying the extra components.
func SpawnObject(w donburi.World, o ObjectData, extra ...donburi.IComponentType) donburi.Entity {
	e := w.Create(append([]donburi.IComponentType{Object}, extra...)...)
	Object.SetValue(w.Entry(e), o)
	return e
}

// SpawnLight creates a point light entity carrying the extra components.
func SpawnLight(w donburi.World, l PointLight, extra ...donburi.IComponentType) donburi.Entity {
	e := w.Create(append([]donburi.IComponentType{Light}, extra...)...)
	Light.SetValue(w.Entry(e), l)
	return e
}

var (
	objectQuery = query.NewQuery(filter.Contains(Object))
	lightQuery  = query.NewQuery(filter.Contains(Light))
)

// Draw renders every Object through the View camera. It does nothing when no
// View is present. Register it on gdan.LayerWorld.
func Draw(a *gdan.App, screen *ebiten.Image) {
	v, ok := gdan.GetResource(a.World, View)
	if !ok {
		return
	}
	r := v.Renderer()
	b := screen.Bounds()
	r.Begin(v.Camera, float64(b.Dx()), float64(b.Dy()))
	r.Lights = r.Lights[:0]
	lightQuery.Each(a.World, func(e *donburi.Entry) {
		r.Lights = append(r.Lights, *Light.Get(e))
	})
	objectQuery.Each(a.World, func(e *donburi.Entry) {
		o := Object.Get(e)
		r.Submit(o.Mesh, o.Model(), o.Material)
	})
	r.Flush(screen)
}
