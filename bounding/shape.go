package bounding

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is the vector type used for positions, extents and directions.
type Vec2 = mgl64.Vec2

// ShapeKind identifies which primitive a Shape holds.
type ShapeKind uint8

const (
	KindRectangle      ShapeKind = iota // axis-aligned box in local space
	KindCircle                          // disc around the local origin
	KindTriangle                        // three arbitrary local vertices
	KindSegment                         // line segment centered on the origin
	KindCapsule                         // segment along local +Y swept by a radius
	KindRegularPolygon                  // n-gon inscribed in a circle
)

var shapeKindNames = [...]string{
	KindRectangle:      "Rectangle",
	KindCircle:         "Circle",
	KindTriangle:       "Triangle",
	KindSegment:        "Segment",
	KindCapsule:        "Capsule",
	KindRegularPolygon: "RegularPolygon",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "ShapeKind(?)"
}

// Shape is one of the six supported primitives, centered on its local
// origin. Only the fields relevant to Kind are meaningful. Build shapes with
// the constructor functions; a Shape is a value and never changes once made.
type Shape struct {
	Kind ShapeKind

	// HalfSize holds the rectangle half extents.
	HalfSize Vec2
	// Radius is the circle radius, the capsule radius or the polygon
	// circumradius.
	Radius float64
	// HalfLength is half the segment length or half the straight part of a
	// capsule.
	HalfLength float64
	// Direction is the unit direction of a segment.
	Direction Vec2
	// Vertices holds the triangle corners.
	Vertices [3]Vec2
	// Sides is the regular polygon side count (at least 3).
	Sides int
}

// Rectangle returns a width x height rectangle.
func Rectangle(width, height float64) Shape {
	return Shape{Kind: KindRectangle, HalfSize: Vec2{math.Abs(width) / 2, math.Abs(height) / 2}}
}

// Circle returns a circle of the given radius.
func Circle(radius float64) Shape {
	return Shape{Kind: KindCircle, Radius: math.Abs(radius)}
}

// Triangle returns the triangle a, b, c.
func Triangle(a, b, c Vec2) Shape {
	return Shape{Kind: KindTriangle, Vertices: [3]Vec2{a, b, c}}
}

// Segment returns a segment of the given length along direction. The
// direction is normalized; a zero direction falls back to +X.
func Segment(direction Vec2, length float64) Shape {
	return Shape{Kind: KindSegment, Direction: unitOrX(direction), HalfLength: math.Abs(length) / 2}
}

// Capsule returns a capsule whose straight part has the given length.
func Capsule(radius, length float64) Shape {
	return Shape{Kind: KindCapsule, Radius: math.Abs(radius), HalfLength: math.Abs(length) / 2}
}

// RegularPolygon returns a regular polygon with the given circumradius.
// Fewer than three sides is treated as three.
func RegularPolygon(radius float64, sides int) Shape {
	if sides < 3 {
		sides = 3
	}
	return Shape{Kind: KindRegularPolygon, Radius: math.Abs(radius), Sides: sides}
}

func unitOrX(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{1, 0}
	}
	return v.Mul(1 / l)
}

// Isometry is a rotation followed by a translation.
type Isometry struct {
	Translation Vec2
	// Rotation in radians, counter-clockwise.
	Rotation float64
}

// NewIsometry returns the isometry that rotates by rotation and then moves
// to (x, y).
func NewIsometry(x, y, rotation float64) Isometry {
	return Isometry{Translation: Vec2{x, y}, Rotation: rotation}
}

// Transform maps a local point into world space.
func (iso Isometry) Transform(p Vec2) Vec2 {
	return iso.Rotate(p).Add(iso.Translation)
}

// Rotate applies only the rotational part.
func (iso Isometry) Rotate(v Vec2) Vec2 {
	if iso.Rotation == 0 {
		return v
	}
	return mgl64.Rotate2D(iso.Rotation).Mul2x1(v)
}

// polygonVertices returns the local corners of a regular polygon, the first
// one pointing along +Y.
func (s Shape) polygonVertices() []Vec2 {
	step := 2 * math.Pi / float64(s.Sides)
	pts := make([]Vec2, s.Sides)
	for i := range pts {
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*step)
		pts[i] = Vec2{cos * s.Radius, sin * s.Radius}
	}
	return pts
}

// Closed reports whether the outline of s encloses an area.
func (s Shape) Closed() bool {
	return s.Kind != KindSegment
}

// Outline returns the world-space boundary of s as a polyline. Closed shapes
// do not repeat the first point. Curved parts use the given number of
// segments per full turn.
func (s Shape) Outline(iso Isometry, segments int) []Vec2 {
	if segments < 4 {
		segments = 4
	}
	var local []Vec2
	switch s.Kind {
	case KindRectangle:
		hx, hy := s.HalfSize.X(), s.HalfSize.Y()
		local = []Vec2{{-hx, -hy}, {hx, -hy}, {hx, hy}, {-hx, hy}}
	case KindCircle:
		local = arcPoints(Vec2{}, s.Radius, 0, 2*math.Pi, segments, false)
	case KindTriangle:
		local = s.Vertices[:]
	case KindSegment:
		d := s.Direction.Mul(s.HalfLength)
		local = []Vec2{d.Mul(-1), d}
	case KindCapsule:
		half := segments / 2
		local = arcPoints(Vec2{0, s.HalfLength}, s.Radius, 0, math.Pi, half, true)
		local = append(local, arcPoints(Vec2{0, -s.HalfLength}, s.Radius, math.Pi, math.Pi, half, true)...)
	case KindRegularPolygon:
		local = s.polygonVertices()
	}
	out := make([]Vec2, len(local))
	for i, p := range local {
		out[i] = iso.Transform(p)
	}
	return out
}

// arcPoints samples an arc starting at angle start and sweeping by sweep.
// With inclusive set the end point is emitted as well.
func arcPoints(center Vec2, radius, start, sweep float64, segments int, inclusive bool) []Vec2 {
	n := segments
	if inclusive {
		n++
	}
	pts := make([]Vec2, n)
	for i := range pts {
		sin, cos := math.Sincos(start + sweep*float64(i)/float64(segments))
		pts[i] = Vec2{center.X() + cos*radius, center.Y() + sin*radius}
	}
	return pts
}
