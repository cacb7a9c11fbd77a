package game

import (
	"bytes"
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
)

const dt = 1.0 / 60

func newGameApp(t *testing.T, cfg Config) *gdan.App {
	t.Helper()
	prev := gdan.SetLogOutput(io.Discard)
	t.Cleanup(func() { gdan.SetLogOutput(prev) })
	a := gdan.NewApp(gdan.RunConfig{Width: 1280, Height: 720, InitialState: gdan.StateGameMenu})
	a.Input.SetSource(gdan.IdleSource{})
	a.AddPlugins(Plugin(cfg))
	return a
}

func steps(t *testing.T, a *gdan.App, n int) {
	t.Helper()
	for range n {
		require.NoError(t, a.Step(dt))
	}
}

func mode(a *gdan.App) bounding.TestMode {
	return gdan.MustResource(a.World, TestMode).Mode
}

// still returns the entry of the one shape that does not spin.
func still(t *testing.T, a *gdan.App) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	volumeQuery.Each(a.World, func(e *donburi.Entry) {
		if !e.HasComponent(Spin) {
			found = e
		}
	})
	require.NotNil(t, found)
	return found
}

func TestShapesLayout(t *testing.T) {
	shapes := Shapes()
	require.Len(t, shapes, 6)
	spinning := 0
	for _, s := range shapes {
		if s.Spin {
			spinning++
		}
	}
	require.Equal(t, 5, spinning)
	require.Equal(t, bounding.KindCircle, shapes[0].Shape.Kind)
	require.Equal(t, bounding.VolumeAabb, shapes[0].Volume)
	require.Equal(t, bounding.KindRegularPolygon, shapes[5].Shape.Kind)
	require.Equal(t, bounding.VolumeCircle, shapes[5].Volume)
}

func TestSetup(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	require.Equal(t, 6, gdan.Count(a.World, Shape, GameMenu))
	require.Equal(t, 5, gdan.Count(a.World, Spin))
	require.Equal(t, 1, gdan.Count(a.World, gdan.Text, GameMenu))
	require.Equal(t, bounding.RayCast, mode(a))

	volumeQuery.Each(a.World, func(e *donburi.Entry) {
		require.True(t, CurrentVolume.Get(e).Valid)
	})
}

func TestCircleGetsTightAabb(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	cur := CurrentVolume.Get(still(t, a))
	require.Equal(t, bounding.VolumeAabb, cur.Volume.Kind)
	want := bounding.NewAabb2d(mgl64.Vec2{-125, 75}, mgl64.Vec2{45, 45})
	require.InDelta(t, want.Min[0], cur.Volume.Aabb.Min[0], 1e-9)
	require.InDelta(t, want.Min[1], cur.Volume.Aabb.Min[1], 1e-9)
	require.InDelta(t, want.Max[0], cur.Volume.Aabb.Max[0], 1e-9)
	require.InDelta(t, want.Max[1], cur.Volume.Aabb.Max[1], 1e-9)
}

func TestVolumesRecomputedOnlyOnChange(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 10)
	volumeQuery.Each(a.World, func(e *donburi.Entry) {
		want := 10
		if !e.HasComponent(Spin) {
			want = 1
		}
		require.Equal(t, want, CurrentVolume.Get(e).Updates)
	})

	e := still(t, a)
	Shape.Get(e).Set(bounding.Circle(20))
	steps(t, a, 1)
	cur := CurrentVolume.Get(still(t, a))
	require.Equal(t, 2, cur.Updates)
	require.InDelta(t, 20, cur.Volume.Aabb.HalfSize()[0], 1e-9)

	DesiredVolume.Get(still(t, a)).Set(bounding.VolumeCircle)
	steps(t, a, 1)
	cur = CurrentVolume.Get(still(t, a))
	require.Equal(t, 3, cur.Updates)
	require.Equal(t, bounding.VolumeCircle, cur.Volume.Kind)
	require.InDelta(t, 20, cur.Volume.Circle.Radius, 1e-9)

	steps(t, a, 5)
	require.Equal(t, 3, CurrentVolume.Get(still(t, a)).Updates)
}

func TestSpinRotatesShapes(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 60)
	spinQuery.Each(a.World, func(e *donburi.Entry) {
		require.InDelta(t, 0.2, Transform.Get(e).Rotation, 1e-9)
	})
	require.Zero(t, Transform.Get(still(t, a)).Rotation)
}

func TestSpaceCyclesModes(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	want := []bounding.TestMode{
		bounding.AabbCast, bounding.CircleCast, bounding.AabbSweep,
		bounding.CircleSweep, bounding.RayCast,
	}
	for _, m := range want {
		a.Input.InjectKey(ebiten.KeySpace)
		steps(t, a, 2)
		require.Equal(t, m, mode(a))
	}
}

func TestHoldingSpaceAdvancesOnce(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	a.Input.InjectKeyHold(ebiten.KeySpace, 30)
	steps(t, a, 31)
	require.Equal(t, bounding.AabbCast, mode(a))
}

func TestModeChangeIsLogged(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	var buf bytes.Buffer
	gdan.SetLogOutput(&buf)
	steps(t, a, 1)
	a.Input.InjectKey(ebiten.KeySpace)
	steps(t, a, 2)
	require.Contains(t, buf.String(), "game: test mode -> AabbCast")
}

func TestInitialModeFromConfig(t *testing.T) {
	a := newGameApp(t, Config{InitialMode: bounding.CircleSweep})
	steps(t, a, 1)
	require.Equal(t, bounding.CircleSweep, mode(a))
	require.Equal(t, bounding.CircleSweep, gdan.MustResource(a.World, TestMode).Probe.Mode)
}

func TestIntersectMatchesEvaluator(t *testing.T) {
	for _, m := range bounding.TestModes() {
		t.Run(m.String(), func(t *testing.T) {
			a := newGameApp(t, Config{InitialMode: m})
			for range 120 {
				steps(t, a, 1)
				probe := bounding.NewProbe(m, a.Time.Elapsed())
				hitQuery.Each(a.World, func(e *donburi.Entry) {
					want := probe.Evaluate(CurrentVolume.Get(e).Volume)
					require.Equal(t, want, *Intersects.Get(e))
				})
			}
		})
	}
}

func TestSummary(t *testing.T) {
	want := "Intersection test:\n" +
		"   AabbSweep  \n" +
		"   CircleSweep  \n" +
		" * RayCast *\n" +
		"   AabbCast  \n" +
		"   CircleCast  \n" +
		"\npress Space to cycle"
	require.Equal(t, want, Summary(bounding.RayCast))
}

func TestSummaryFollowsMode(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	a.Input.InjectKey(ebiten.KeySpace)
	steps(t, a, 2)
	e, ok := summary.First(a.World)
	require.True(t, ok)
	require.Equal(t, Summary(bounding.AabbCast), gdan.Text.Get(e).Content)
}

func TestGizmosPerMode(t *testing.T) {
	for _, m := range bounding.TestModes() {
		t.Run(m.String(), func(t *testing.T) {
			a := newGameApp(t, Config{InitialMode: m})
			steps(t, a, 1)
			require.Positive(t, a.Gizmos.Len())
			require.NotPanics(t, func() { a.Draw(ebiten.NewImage(1280, 720)) })
		})
	}
}

func TestExitCleansUp(t *testing.T) {
	a := newGameApp(t, DefaultConfig())
	steps(t, a, 1)
	a.States.SetNext(gdan.StateMainMenu)
	steps(t, a, 1)
	require.Zero(t, gdan.Count(a.World, GameMenu))
	require.Zero(t, gdan.Count(a.World, Shape))
	_, ok := gdan.GetResource(a.World, TestMode)
	require.False(t, ok)
}

func BenchmarkHarnessFrame(b *testing.B) {
	prev := gdan.SetLogOutput(io.Discard)
	defer gdan.SetLogOutput(prev)
	a := gdan.NewApp(gdan.RunConfig{Width: 1280, Height: 720, InitialState: gdan.StateGameMenu})
	a.Input.SetSource(gdan.IdleSource{})
	a.AddPlugins(Plugin(DefaultConfig()))
	b.ResetTimer()
	for range b.N {
		if err := a.Step(dt); err != nil {
			b.Fatal(err)
		}
	}
}
