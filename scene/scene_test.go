package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/render3d"
)

const dt = 1.0 / 60

func newSceneApp(t *testing.T, assets string, log io.Writer) *gdan.App {
	t.Helper()
	prev := gdan.SetLogOutput(log)
	t.Cleanup(func() { gdan.SetLogOutput(prev) })
	a := gdan.NewApp(gdan.RunConfig{
		Width:        1280,
		Height:       720,
		InitialState: gdan.StateSceneMenu,
		AssetsDir:    assets,
	})
	a.Input.SetSource(gdan.IdleSource{})
	a.AddPlugins(Plugin)
	return a
}

func steps(t *testing.T, a *gdan.App, n int) {
	t.Helper()
	for range n {
		require.NoError(t, a.Step(dt))
	}
}

func quadMaterial(t *testing.T, a *gdan.App) render3d.Material {
	t.Helper()
	e, ok := render3d.Object.First(a.World)
	require.True(t, ok)
	require.True(t, e.HasComponent(SceneMenu))
	return render3d.Object.Get(e).Material
}

func TestSetupWithoutPicture(t *testing.T) {
	var log bytes.Buffer
	a := newSceneApp(t, t.TempDir(), &log)
	steps(t, a, 1)
	require.Contains(t, log.String(), "using uv debug texture")

	mat := quadMaterial(t, a)
	require.True(t, mat.Unlit)
	require.Equal(t, 8, mat.Texture.Bounds().Dx())

	v := gdan.MustResource(a.World, render3d.View)
	require.Equal(t, mgl64.Vec3{0, 0, 10}, v.Camera.Eye)
}

func TestSetupLoadsPicture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, filepath.FromSlash(MapTexture))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	a := newSceneApp(t, dir, io.Discard)
	steps(t, a, 1)
	require.Equal(t, 32, quadMaterial(t, a).Texture.Bounds().Dx())
}

func TestQuadFillsView(t *testing.T) {
	a := newSceneApp(t, t.TempDir(), io.Discard)
	steps(t, a, 1)
	a.Draw(ebiten.NewImage(1280, 720))
	st := gdan.MustResource(a.World, render3d.View).Renderer().Stats()
	require.Equal(t, 2, st.Submitted)
	require.Equal(t, 2, st.Drawn)
}

func TestOrbitRunsOnScene(t *testing.T) {
	a := newSceneApp(t, t.TempDir(), io.Discard)
	steps(t, a, 30)
	up := gdan.MustResource(a.World, render3d.View).Camera.Up
	require.NotEqual(t, mgl64.Vec3{0, 1, 0}, up)
}

func TestExitCleansUp(t *testing.T) {
	a := newSceneApp(t, t.TempDir(), io.Discard)
	steps(t, a, 1)
	a.States.SetNext(gdan.StateMainMenu)
	steps(t, a, 1)
	require.Zero(t, gdan.Count(a.World, render3d.Object))
	_, ok := gdan.GetResource(a.World, render3d.View)
	require.False(t, ok)
}
