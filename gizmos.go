package gdan

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/gdan/bounding"
)

// gradientSteps is how many sub-segments a two-color line is split into.
const gradientSteps = 8

// GizmoConfig controls how a gizmo group strokes its lines.
type GizmoConfig struct {
	// LineWidth is the stroke width in screen pixels.
	LineWidth float32
	// CircleSegments is the default resolution of circles, ellipses and arcs.
	CircleSegments int
	// AntiAlias smooths stroke edges.
	AntiAlias bool
}

// DefaultGizmoConfig returns a 2 px antialiased config with 32 circle segments.
func DefaultGizmoConfig() GizmoConfig {
	return GizmoConfig{LineWidth: 2, CircleSegments: 32, AntiAlias: true}
}

type gizmoLine struct {
	a, b  mgl64.Vec2
	color Color
	width float32
	aa    bool
}

type gizmoBuffer struct {
	lines  []gizmoLine
	groups map[string]*Gizmos
}

// Gizmos collects world-space debug lines for the current frame. Lines are
// cleared at the start of every frame and drawn through the main camera
// between LayerWorld and LayerUI.
type Gizmos struct {
	Config GizmoConfig
	buf    *gizmoBuffer
}

// NewGizmos creates the default gizmo group.
func NewGizmos() *Gizmos {
	return &Gizmos{
		Config: DefaultGizmoConfig(),
		buf:    &gizmoBuffer{groups: make(map[string]*Gizmos)},
	}
}

// Group returns the named group, creating it with the default config on first
// use. Groups share one line buffer and differ only in config.
func (g *Gizmos) Group(name string) *Gizmos {
	if grp, ok := g.buf.groups[name]; ok {
		return grp
	}
	grp := &Gizmos{Config: DefaultGizmoConfig(), buf: g.buf}
	g.buf.groups[name] = grp
	return grp
}

// Len returns the number of line segments queued this frame.
func (g *Gizmos) Len() int { return len(g.buf.lines) }

func (g *Gizmos) clear() { g.buf.lines = g.buf.lines[:0] }

func (g *Gizmos) segments(n int) int {
	if n > 0 {
		return n
	}
	if g.Config.CircleSegments > 0 {
		return g.Config.CircleSegments
	}
	return 32
}

func (g *Gizmos) push(a, b mgl64.Vec2, c Color) {
	w := g.Config.LineWidth
	if w <= 0 {
		w = 1
	}
	g.buf.lines = append(g.buf.lines, gizmoLine{a: a, b: b, color: c, width: w, aa: g.Config.AntiAlias})
}

// Line2D draws a segment from a to b.
func (g *Gizmos) Line2D(a, b mgl64.Vec2, c Color) {
	g.push(a, b, c)
}

// LineGradient2D draws a segment whose color blends from ca to cb.
func (g *Gizmos) LineGradient2D(a, b mgl64.Vec2, ca, cb Color) {
	prev := a
	for i := 1; i <= gradientSteps; i++ {
		t := float64(i) / gradientSteps
		p := a.Add(b.Sub(a).Mul(t))
		mid := (float64(i) - 0.5) / gradientSteps
		g.push(prev, p, ca.Lerp(cb, mid))
		prev = p
	}
}

// Ray2D draws a segment from origin to origin+dir.
func (g *Gizmos) Ray2D(origin, dir mgl64.Vec2, c Color) {
	g.push(origin, origin.Add(dir), c)
}

// LineStrip2D connects consecutive points.
func (g *Gizmos) LineStrip2D(points []mgl64.Vec2, c Color) {
	for i := 1; i < len(points); i++ {
		g.push(points[i-1], points[i], c)
	}
}

// Polyline2D connects consecutive points and closes the loop when closed is
// true.
func (g *Gizmos) Polyline2D(points []mgl64.Vec2, closed bool, c Color) {
	g.LineStrip2D(points, c)
	if closed && len(points) > 2 {
		g.push(points[len(points)-1], points[0], c)
	}
}

// ColoredPoint is a vertex of a gradient line strip.
type ColoredPoint struct {
	P     mgl64.Vec2
	Color Color
}

// LineStripGradient2D connects consecutive points, blending each segment
// between its endpoint colors.
func (g *Gizmos) LineStripGradient2D(points []ColoredPoint) {
	for i := 1; i < len(points); i++ {
		g.LineGradient2D(points[i-1].P, points[i].P, points[i-1].Color, points[i].Color)
	}
}

// Rect2D draws a rectangle of the given size centered at center and rotated
// by rotation radians.
func (g *Gizmos) Rect2D(center mgl64.Vec2, rotation float64, size mgl64.Vec2, c Color) {
	h := size.Mul(0.5)
	rot := mgl64.Rotate2D(rotation)
	corners := []mgl64.Vec2{
		center.Add(rot.Mul2x1(mgl64.Vec2{-h[0], -h[1]})),
		center.Add(rot.Mul2x1(mgl64.Vec2{h[0], -h[1]})),
		center.Add(rot.Mul2x1(mgl64.Vec2{h[0], h[1]})),
		center.Add(rot.Mul2x1(mgl64.Vec2{-h[0], h[1]})),
	}
	g.Polyline2D(corners, true, c)
}

// Circle2D draws a circle with the group's default resolution.
func (g *Gizmos) Circle2D(center mgl64.Vec2, radius float64, c Color) {
	g.Ellipse2D(center, 0, mgl64.Vec2{radius, radius}, 0, c)
}

// CircleSegments2D draws a circle with an explicit number of segments.
func (g *Gizmos) CircleSegments2D(center mgl64.Vec2, radius float64, segments int, c Color) {
	g.Ellipse2D(center, 0, mgl64.Vec2{radius, radius}, segments, c)
}

// Ellipse2D draws an ellipse with the given half size, rotated by rotation
// radians. segments <= 0 uses the group's default.
func (g *Gizmos) Ellipse2D(center mgl64.Vec2, rotation float64, half mgl64.Vec2, segments int, c Color) {
	n := g.segments(segments)
	rot := mgl64.Rotate2D(rotation)
	pts := make([]mgl64.Vec2, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = center.Add(rot.Mul2x1(mgl64.Vec2{half[0] * math.Cos(a), half[1] * math.Sin(a)}))
	}
	g.Polyline2D(pts, true, c)
}

// Arc2D draws an arc of arcAngle radians centered on direction. Angles are
// measured clockwise from +Y, so direction 0 points up.
func (g *Gizmos) Arc2D(center mgl64.Vec2, direction, arcAngle, radius float64, c Color) {
	n := g.segments(0)
	start := direction - arcAngle/2
	pts := make([]mgl64.Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := start + arcAngle*float64(i)/float64(n)
		pts[i] = center.Add(mgl64.Vec2{math.Sin(a), math.Cos(a)}.Mul(radius))
	}
	g.LineStrip2D(pts, c)
}

// Arrow2D draws a line from start to end with a two-stroke tip one tenth of
// its length.
func (g *Gizmos) Arrow2D(start, end mgl64.Vec2, c Color) {
	g.push(start, end, c)
	d := end.Sub(start)
	if d.Len() == 0 {
		return
	}
	back := d.Mul(-0.1)
	g.push(end, end.Add(mgl64.Rotate2D(math.Pi/4).Mul2x1(back)), c)
	g.push(end, end.Add(mgl64.Rotate2D(-math.Pi/4).Mul2x1(back)), c)
}

// Primitive2D outlines a bounding shape placed at iso.
func (g *Gizmos) Primitive2D(s bounding.Shape, iso bounding.Isometry, c Color) {
	g.Polyline2D(s.Outline(iso, g.segments(0)), s.Closed(), c)
}

// Aabb2D outlines an axis-aligned box.
func (g *Gizmos) Aabb2D(b bounding.Aabb2d, c Color) {
	g.Rect2D(b.Center(), 0, b.Max.Sub(b.Min), c)
}

// flush strokes every queued line through cam.
func (g *Gizmos) flush(screen *ebiten.Image, cam *Camera) {
	for _, l := range g.buf.lines {
		x0, y0 := cam.WorldToScreen(l.a[0], l.a[1])
		x1, y1 := cam.WorldToScreen(l.b[0], l.b[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), l.width, l.color, l.aa)
	}
}
