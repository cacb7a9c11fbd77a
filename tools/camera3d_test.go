package tools

import (
	"io"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/render3d"
)

const dt = 1.0 / 60

func newSceneApp(t *testing.T) *gdan.App {
	t.Helper()
	prev := gdan.SetLogOutput(io.Discard)
	t.Cleanup(func() { gdan.SetLogOutput(prev) })
	a := gdan.NewApp(gdan.RunConfig{Width: 800, Height: 600, InitialState: gdan.StateSceneMenu})
	a.Input.SetSource(gdan.IdleSource{})
	a.AddPlugins(Plugin(gdan.StateSceneMenu))
	gdan.SetResource(a.World, render3d.View, render3d.NewView(
		render3d.NewCamera3D(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})))
	return a
}

func camera(a *gdan.App) *render3d.Camera3D {
	return &gdan.MustResource(a.World, render3d.View).Camera
}

func TestZoomPerspectiveLimits(t *testing.T) {
	cam := render3d.NewCamera3D(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})
	start := cam.FOV
	require.True(t, Zoom(&cam, 1))
	require.InDelta(t, start*1.1, cam.FOV, 1e-12)
	require.True(t, Zoom(&cam, -1))
	require.InDelta(t, start, cam.FOV, 1e-12)
	require.False(t, Zoom(&cam, 0))

	for range 100 {
		Zoom(&cam, 1)
	}
	require.GreaterOrEqual(t, cam.FOV, maxFOV)
	require.Less(t, cam.FOV, maxFOV*1.1)

	for range 100 {
		Zoom(&cam, -1)
	}
	require.LessOrEqual(t, cam.FOV, minFOV)
	require.Greater(t, cam.FOV, minFOV/1.1)
}

func TestZoomOrthographic(t *testing.T) {
	cam := render3d.NewCamera3D(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{})
	cam.Projection = render3d.Orthographic
	fov := cam.FOV
	require.True(t, Zoom(&cam, -1))
	require.InDelta(t, 5/1.1, cam.OrthoScale, 1e-12)
	require.Equal(t, fov, cam.FOV)
}

func TestProjectionZoomReadsWheel(t *testing.T) {
	a := newSceneApp(t)
	start := camera(a).FOV
	a.Input.InjectWheel(1)
	require.NoError(t, a.Step(dt))
	require.InDelta(t, start*1.1, camera(a).FOV, 1e-12)
	require.NoError(t, a.Step(dt))
	require.InDelta(t, start*1.1, camera(a).FOV, 1e-12, "one step per wheel event")
}

func TestOrbitCamera(t *testing.T) {
	a := newSceneApp(t)
	for range 60 {
		require.NoError(t, a.Step(dt))
	}
	cam := camera(a)
	// The eye is on the axis, so only the roll changes: half a radian.
	require.InDelta(t, 0, cam.Eye[0], 1e-9)
	require.InDelta(t, 10, cam.Eye[2], 1e-9)
	require.InDelta(t, -math.Sin(0.5), cam.Up[0], 1e-9)
	require.InDelta(t, math.Cos(0.5), cam.Up[1], 1e-9)

	a.Input.InjectClick(400, 300)
	require.NoError(t, a.Step(dt))
	require.InDelta(t, 1, camera(a).Eye[0], 1e-9)
	require.InDelta(t, 1, camera(a).Target[0], 1e-9)
}

func TestSystemsIdleInOtherStates(t *testing.T) {
	a := newSceneApp(t)
	a.States.SetNext(gdan.StateMainMenu)
	require.NoError(t, a.Step(dt))
	require.NoError(t, a.Step(dt))
	up := camera(a).Up
	require.NoError(t, a.Step(dt))
	require.Equal(t, up, camera(a).Up)
}

func TestSystemsWithoutView(t *testing.T) {
	a := newSceneApp(t)
	gdan.RemoveResource(a.World, render3d.View)
	a.Input.InjectWheel(1)
	require.NotPanics(t, func() { _ = a.Step(dt) })
}
