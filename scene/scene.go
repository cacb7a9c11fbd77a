// Package scene shows the city map as a textured quad in 3D.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/render3d"
	"github.com/phanxgames/gdan/tools"
)

// MapTexture is the picture laid on the quad.
const MapTexture = "wg/mlx/map/1-8819p-6299p.png"

// Quad size in world units, matching the picture's aspect.
const (
	QuadWidth  = 8.819
	QuadHeight = 6.299
)

// SceneMenu tags everything the screen spawns.
var SceneMenu = donburi.NewTag().SetName("SceneMenu")

// Plugin registers the scene screen with the orbit and zoom controls.
func Plugin(a *gdan.App) {
	in := gdan.InState(gdan.StateSceneMenu)
	a.AddSystems(gdan.OnEnter(gdan.StateSceneMenu), setup)
	a.AddPlugins(tools.Plugin(gdan.StateSceneMenu))
	a.AddSystems(gdan.OnExit(gdan.StateSceneMenu), gdan.Despawn(SceneMenu), teardown)
	a.AddRenderers(gdan.LayerWorld, render3d.Draw).RunIf(in)
}

func setup(a *gdan.App) {
	gdan.Logf("scene: show map")
	gdan.SetResource(a.World, render3d.View,
		render3d.NewView(render3d.NewCamera3D(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})))

	render3d.SpawnObject(a.World, render3d.NewObject(
		render3d.Quad(QuadWidth, QuadHeight),
		render3d.Material{Texture: mapTexture(a), Unlit: true},
		mgl64.Vec3{},
	), SceneMenu)
}

func mapTexture(a *gdan.App) *ebiten.Image {
	img, err := a.Assets.LoadImage(MapTexture)
	if err != nil {
		gdan.Logf("scene: %v (using uv debug texture)", err)
		return render3d.UVDebugTexture()
	}
	return img
}

func teardown(a *gdan.App) {
	gdan.RemoveResource(a.World, render3d.View)
}
