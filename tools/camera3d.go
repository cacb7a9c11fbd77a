// Package tools holds systems shared by the 3D screens.
package tools

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/render3d"
)

const (
	zoomStep = 1.1

	// Perspective field of view limits in radians.
	maxFOV = 2.0
	minFOV = 0.2

	// Orthographic half height limits in world units.
	maxOrthoScale = 50.0
	minOrthoScale = 0.5
)

// Plugin runs ProjectionZoom and OrbitCamera while state is active.
func Plugin(state gdan.State) gdan.Plugin {
	return func(a *gdan.App) {
		a.AddSystems(gdan.Update, ProjectionZoom, OrbitCamera).RunIf(gdan.InState(state))
	}
}

// ProjectionZoom widens the view on wheel up and narrows it on wheel down.
func ProjectionZoom(a *gdan.App) {
	v, ok := gdan.GetResource(a.World, render3d.View)
	if !ok {
		return
	}
	_, dy := a.Input.Wheel()
	Zoom(&v.Camera, dy)
}

// Zoom applies one wheel step of dy lines to cam. It reports whether the
// projection changed.
func Zoom(cam *render3d.Camera3D, dy float64) bool {
	if dy == 0 {
		return false
	}
	if cam.Projection == render3d.Orthographic {
		switch {
		case dy > 0 && cam.OrthoScale < maxOrthoScale:
			cam.OrthoScale *= zoomStep
		case dy < 0 && cam.OrthoScale > minOrthoScale:
			cam.OrthoScale /= zoomStep
		default:
			return false
		}
		gdan.Logf("camera3d: ortho scale %.4f", cam.OrthoScale)
		return true
	}
	switch {
	case dy > 0 && cam.FOV < maxFOV:
		cam.FOV *= zoomStep
	case dy < 0 && cam.FOV > minFOV:
		cam.FOV /= zoomStep
	default:
		return false
	}
	gdan.Logf("camera3d: fov %.4f", cam.FOV)
	return true
}

// OrbitCamera turns the camera about the world Z axis through the origin at
// half a radian per second. A left click nudges it one unit along +X.
func OrbitCamera(a *gdan.App) {
	v, ok := gdan.GetResource(a.World, render3d.View)
	if !ok {
		return
	}
	v.Camera.RotateAround(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, a.Time.Delta()/2)
	if a.Input.MouseJustPressed(gdan.MouseButtonLeft) {
		gdan.Logf("camera3d: left click, x + 1")
		v.Camera.Translate(mgl64.Vec3{1, 0, 0})
	}
}
