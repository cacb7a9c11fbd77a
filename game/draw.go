package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
	"github.com/phanxgames/gdan/bounding"
)

// Gizmo colors.
var (
	shapeColor  = gdan.ColorGray
	hitColor    = gdan.ColorCyan
	missColor   = gdan.ColorOrangeRed
	probeColor  = gdan.ColorYellow
	rayColor    = gdan.ColorWhite
	originColor = gdan.ColorFuchsia
	impactColor = gdan.ColorGreen
)

var markerRadii = []float64{1, 2, 3}

var shapeQuery = query.NewQuery(filter.Contains(Transform, Shape))

func drawShapes(a *gdan.App) {
	shapeQuery.Each(a.World, func(e *donburi.Entry) {
		a.Gizmos.Primitive2D(Shape.Get(e).Shape(), Isometry(Transform.Get(e)), shapeColor)
	})
}

func drawVolume(g *gdan.Gizmos, v bounding.Volume, c gdan.Color) {
	if v.Kind == bounding.VolumeCircle {
		g.Circle2D(v.Circle.Center, v.Circle.Radius, c)
		return
	}
	g.Aabb2D(v.Aabb, c)
}

func rings(g *gdan.Gizmos, center mgl64.Vec2, c gdan.Color) {
	for _, r := range markerRadii {
		g.Circle2D(center, r, c)
	}
}

func drawVolumes(a *gdan.App) {
	hitQuery.Each(a.World, func(e *donburi.Entry) {
		cur := CurrentVolume.Get(e)
		if !cur.Valid {
			return
		}
		c := missColor
		if Intersects.Get(e).Intersects {
			c = hitColor
		}
		drawVolume(a.Gizmos, cur.Volume, c)
	})
}

// drawProbe draws the probe of the active mode and, for the cast modes, a
// ghost of it at every impact.
func drawProbe(a *gdan.App) {
	st := gdan.MustResource(a.World, TestMode)
	p := st.Probe
	g := a.Gizmos
	if !p.Mode.IsCast() {
		drawVolume(g, p.Volume(), probeColor)
		return
	}

	ray := p.Ray
	g.Line2D(ray.Ray.Origin, ray.End(), rayColor)
	rings(g, ray.Ray.Origin, originColor)

	hitQuery.Each(a.World, func(e *donburi.Entry) {
		hit := Intersects.Get(e)
		if !hit.HasTOI {
			return
		}
		ghost := p.GhostAt(hit.TOI)
		if p.Mode == bounding.RayCast {
			rings(g, ghost.Center(), impactColor)
			return
		}
		drawVolume(g, ghost, impactColor)
	})
}

// Summary is the harness help text with mode marked active.
func Summary(mode bounding.TestMode) string {
	var b strings.Builder
	b.WriteString("Intersection test:\n")
	for _, m := range bounding.TestModes() {
		s := " "
		if m == mode {
			s = "*"
		}
		fmt.Fprintf(&b, " %s %s %s\n", s, m, s)
	}
	b.WriteString("\npress Space to cycle")
	return b.String()
}

var summaryQuery = query.NewQuery(filter.Contains(summary, gdan.Text))

func updateSummary(a *gdan.App) {
	content := Summary(gdan.MustResource(a.World, TestMode).Mode)
	summaryQuery.Each(a.World, func(e *donburi.Entry) {
		gdan.Text.Get(e).Content = content
	})
}
