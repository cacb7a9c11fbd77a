package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
)

// spinRate is the shape rotation speed in radians per second.
const spinRate = 1.0 / 5

var (
	spinQuery   = query.NewQuery(filter.Contains(Transform, Spin))
	volumeQuery = query.NewQuery(filter.Contains(Transform, Shape, DesiredVolume, CurrentVolume))
	hitQuery    = query.NewQuery(filter.Contains(CurrentVolume, Intersects))
)

func spin(a *gdan.App) {
	d := a.Time.Delta() * spinRate
	spinQuery.Each(a.World, func(e *donburi.Entry) {
		Transform.Get(e).Rotate(d)
	})
}

// Isometry returns the placement of t as a bounding isometry.
func Isometry(t *gdan.Transform) bounding.Isometry {
	return bounding.NewIsometry(t.X, t.Y, t.Rotation)
}

// updateVolumes recomputes the volume of every entity whose transform, shape
// or wanted kind moved since the last computation.
func updateVolumes(a *gdan.App) {
	volumeQuery.Each(a.World, func(e *donburi.Entry) {
		t := Transform.Get(e)
		s := Shape.Get(e)
		d := DesiredVolume.Get(e)
		cur := CurrentVolume.Get(e)
		if !cur.stale(t, s, d) {
			return
		}
		cur.Volume = bounding.Project(s.Shape(), Isometry(t), d.Kind())
		cur.Valid = true
		cur.Updates++
		cur.transformVersion = t.Version()
		cur.shapeVersion = s.Version()
		cur.desiredVersion = d.Version()
	})
}

func updateTestMode(a *gdan.App) {
	if !a.Input.JustPressed(ebiten.KeySpace) {
		return
	}
	st := gdan.MustResource(a.World, TestMode)
	st.Mode = st.Mode.Next()
	gdan.Logf("game: test mode -> %s", st.Mode)
}

// intersect builds this frame's probe and tests it against every volume.
func intersect(a *gdan.App) {
	st := gdan.MustResource(a.World, TestMode)
	st.Probe = bounding.NewProbe(st.Mode, a.Time.Elapsed())
	hitQuery.Each(a.World, func(e *donburi.Entry) {
		cur := CurrentVolume.Get(e)
		if !cur.Valid {
			*Intersects.Get(e) = IntersectsData{}
			return
		}
		*Intersects.Get(e) = st.Probe.Evaluate(cur.Volume)
	})
}
