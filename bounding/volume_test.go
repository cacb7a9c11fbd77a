package bounding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func testShapes() []Shape {
	return []Shape{
		Circle(45),
		Rectangle(80, 80),
		Rectangle(30, 70),
		Triangle(Vec2{-40, -40}, Vec2{-20, 40}, Vec2{40, 50}),
		Triangle(Vec2{-50, 0}, Vec2{50, 0}, Vec2{0, 10}),
		Segment(Vec2{1, 0.3}, 90),
		Capsule(25, 50),
		RegularPolygon(50, 6),
		RegularPolygon(30, 5),
	}
}

var testRotations = []float64{0, 0.3, math.Pi / 4, 1, math.Pi / 2, 2.5, math.Pi, -0.7, 5.9}

func TestCircleAabbHalfExtent(t *testing.T) {
	a := Circle(45).Aabb(NewIsometry(-125, 75, 0))
	require.InDelta(t, 45, a.HalfSize().X(), epsilon)
	require.InDelta(t, 45, a.HalfSize().Y(), epsilon)
	require.InDelta(t, -125, a.Center().X(), epsilon)
	require.InDelta(t, 75, a.Center().Y(), epsilon)
}

func TestRectangleAabbRotated(t *testing.T) {
	a := Rectangle(80, 80).Aabb(NewIsometry(0, 0, math.Pi/4))
	want := 40 * math.Sqrt2
	require.InDelta(t, want, a.HalfSize().X(), 1e-9)
	require.InDelta(t, want, a.HalfSize().Y(), 1e-9)

	b := Rectangle(30, 70).Aabb(NewIsometry(10, 20, math.Pi/2))
	require.InDelta(t, 35, b.HalfSize().X(), 1e-9)
	require.InDelta(t, 15, b.HalfSize().Y(), 1e-9)
	require.InDelta(t, 10, b.Center().X(), 1e-9)
	require.InDelta(t, 20, b.Center().Y(), 1e-9)
}

func TestSegmentVolumes(t *testing.T) {
	s := Segment(Vec2{1, 0}, 90)
	a := s.Aabb(NewIsometry(0, 0, math.Pi/2))
	require.InDelta(t, 0, a.HalfSize().X(), 1e-9)
	require.InDelta(t, 45, a.HalfSize().Y(), 1e-9)
	require.InDelta(t, 45, s.BoundingCircle(Isometry{}).Radius, epsilon)
}

func TestSegmentZeroDirection(t *testing.T) {
	s := Segment(Vec2{}, 10)
	require.Equal(t, Vec2{1, 0}, s.Direction)
}

func TestCapsuleVolumes(t *testing.T) {
	c := Capsule(25, 50)
	a := c.Aabb(Isometry{})
	require.InDelta(t, 25, a.HalfSize().X(), epsilon)
	require.InDelta(t, 50, a.HalfSize().Y(), epsilon)
	require.InDelta(t, 50, c.BoundingCircle(Isometry{}).Radius, epsilon)
}

func TestRegularPolygonAabb(t *testing.T) {
	// A hexagon with a vertex at +Y is 2*r tall and sqrt(3)*r wide.
	a := RegularPolygon(50, 6).Aabb(Isometry{})
	require.InDelta(t, 50, a.HalfSize().Y(), 1e-9)
	require.InDelta(t, 25*math.Sqrt(3), a.HalfSize().X(), 1e-9)
}

func TestRegularPolygonClampsSides(t *testing.T) {
	require.Equal(t, 3, RegularPolygon(10, 1).Sides)
}

func TestTriangleCircleObtuse(t *testing.T) {
	// Obtuse at (0,10): the long side is the diameter.
	c := Triangle(Vec2{-50, 0}, Vec2{50, 0}, Vec2{0, 10}).BoundingCircle(Isometry{})
	require.InDelta(t, 50, c.Radius, 1e-9)
	require.InDelta(t, 0, c.Center.X(), 1e-9)
	require.InDelta(t, 0, c.Center.Y(), 1e-9)
}

func TestTriangleCircleAcute(t *testing.T) {
	// Equilateral triangle with circumradius 10.
	var v [3]Vec2
	for i := range v {
		sin, cos := math.Sincos(math.Pi/2 + float64(i)*2*math.Pi/3)
		v[i] = Vec2{10 * cos, 10 * sin}
	}
	c := Triangle(v[0], v[1], v[2]).BoundingCircle(NewIsometry(5, -5, 1))
	require.InDelta(t, 10, c.Radius, 1e-9)
	require.InDelta(t, 5, c.Center.X(), 1e-9)
	require.InDelta(t, -5, c.Center.Y(), 1e-9)
}

func TestVolumesContainShape(t *testing.T) {
	const tol = 1e-6
	for _, s := range testShapes() {
		for _, rot := range testRotations {
			iso := NewIsometry(12, -7, rot)
			a := s.Aabb(iso).Grow(Vec2{tol, tol})
			c := s.BoundingCircle(iso)
			c.Radius += tol
			for _, p := range s.Outline(iso, 64) {
				require.True(t, a.ContainsPoint(p), "%v rot %v: aabb misses %v", s.Kind, rot, p)
				require.True(t, c.ContainsPoint(p), "%v rot %v: circle misses %v", s.Kind, rot, p)
			}
		}
	}
}

func TestAabbIsTightForPolygons(t *testing.T) {
	const tol = 1e-9
	for _, s := range testShapes() {
		if s.Kind == KindCircle || s.Kind == KindCapsule {
			continue
		}
		for _, rot := range testRotations {
			iso := NewIsometry(3, 4, rot)
			a := s.Aabb(iso)
			var touchMinX, touchMaxX, touchMinY, touchMaxY bool
			for _, p := range s.Outline(iso, 64) {
				touchMinX = touchMinX || math.Abs(p.X()-a.Min.X()) < tol
				touchMaxX = touchMaxX || math.Abs(p.X()-a.Max.X()) < tol
				touchMinY = touchMinY || math.Abs(p.Y()-a.Min.Y()) < tol
				touchMaxY = touchMaxY || math.Abs(p.Y()-a.Max.Y()) < tol
			}
			require.True(t, touchMinX && touchMaxX && touchMinY && touchMaxY,
				"%v rot %v: aabb %v is not tight", s.Kind, rot, a)
		}
	}
}

func TestBoundingCircleTouchesShape(t *testing.T) {
	const tol = 1e-6
	for _, s := range testShapes() {
		if s.Kind == KindCapsule {
			continue
		}
		iso := NewIsometry(-1, 2, 0.4)
		c := s.BoundingCircle(iso)
		touched := false
		for _, p := range s.Outline(iso, 64) {
			if math.Abs(p.Sub(c.Center).Len()-c.Radius) < tol {
				touched = true
				break
			}
		}
		require.True(t, touched, "%v: circle radius %v never touches the shape", s.Kind, c.Radius)
	}
}

func TestBoundingCircleRadii(t *testing.T) {
	const tol = 1e-6
	tests := []struct {
		shape    Shape
		radius   float64
		// diameter holds two local points of the shape 2*radius apart.
		// A centered circle through both cannot shrink.
		diameter []Vec2
	}{
		{Circle(45), 45, []Vec2{{-45, 0}, {45, 0}}},
		{Rectangle(80, 80), 40 * math.Sqrt2, []Vec2{{-40, -40}, {40, 40}}},
		{Rectangle(30, 70), math.Sqrt(15*15 + 35*35), []Vec2{{-15, 35}, {15, -35}}},
		{Segment(Vec2{1, 0}, 90), 45, []Vec2{{-45, 0}, {45, 0}}},
		{Segment(Vec2{1, 0.3}, 90), 45, nil},
		{Capsule(25, 50), 50, []Vec2{{0, -50}, {0, 50}}},
		{RegularPolygon(50, 6), 50, []Vec2{{0, 50}, {0, -50}}},
		// Without a stored diameter every outline point must lie on the
		// circle: the segment ends and the vertices of an odd polygon.
		{RegularPolygon(30, 5), 30, nil},
	}
	for _, tt := range tests {
		for _, rot := range testRotations {
			iso := NewIsometry(-1, 2, rot)
			c := tt.shape.BoundingCircle(iso)
			require.InDelta(t, tt.radius, c.Radius, tol, "%v rot %v", tt.shape.Kind, rot)
			require.InDelta(t, -1, c.Center.X(), tol)
			require.InDelta(t, 2, c.Center.Y(), tol)

			outline := tt.shape.Outline(iso, 64)
			onCircle := 0
			for _, p := range outline {
				d := p.Sub(c.Center).Len()
				require.LessOrEqual(t, d, c.Radius+tol, "%v rot %v: %v outside", tt.shape.Kind, rot, p)
				if math.Abs(d-c.Radius) < tol {
					onCircle++
				}
			}
			if tt.diameter != nil {
				p, q := iso.Transform(tt.diameter[0]), iso.Transform(tt.diameter[1])
				require.InDelta(t, 2*tt.radius, q.Sub(p).Len(), tol, "%v rot %v", tt.shape.Kind, rot)
				continue
			}
			require.Equal(t, len(outline), onCircle, "%v rot %v", tt.shape.Kind, rot)
		}
	}
}

func TestProjectSelectsKind(t *testing.T) {
	v := Project(Circle(45), NewIsometry(-125, 75, 0), VolumeAabb)
	require.Equal(t, VolumeAabb, v.Kind)
	require.InDelta(t, 45, v.Aabb.HalfSize().X(), epsilon)

	v = Project(Rectangle(80, 80), NewIsometry(0, 75, 0), VolumeCircle)
	require.Equal(t, VolumeCircle, v.Kind)
	require.InDelta(t, 40*math.Sqrt2, v.Circle.Radius, 1e-9)
	require.InDelta(t, 75, v.Center().Y(), epsilon)
}

func TestOverlapsDisjointBoxes(t *testing.T) {
	probe := AabbVolume(NewAabb2d(Vec2{0, 0}, Vec2{50, 50}))
	target := AabbVolume(NewAabb2d(Vec2{200, 200}, Vec2{10, 10}))
	require.False(t, Overlaps(probe, target))
	require.False(t, Overlaps(target, probe))
}

func TestOverlapsSymmetric(t *testing.T) {
	vols := []Volume{
		AabbVolume(NewAabb2d(Vec2{0, 0}, Vec2{50, 50})),
		AabbVolume(NewAabb2d(Vec2{100, 0}, Vec2{50, 10})),
		AabbVolume(NewAabb2d(Vec2{300, 300}, Vec2{5, 5})),
		CircleVolume(BoundingCircle{Center: Vec2{0, 70}, Radius: 20}),
		CircleVolume(BoundingCircle{Center: Vec2{64, 64}, Radius: 20}),
		CircleVolume(BoundingCircle{Center: Vec2{-90, 0}, Radius: 40}),
	}
	for i, a := range vols {
		for j, b := range vols {
			require.Equal(t, Overlaps(a, b), Overlaps(b, a), "pair %d,%d", i, j)
		}
	}
}

func TestOverlapsTouching(t *testing.T) {
	a := AabbVolume(NewAabb2d(Vec2{0, 0}, Vec2{10, 10}))
	b := AabbVolume(NewAabb2d(Vec2{20, 0}, Vec2{10, 10}))
	require.True(t, Overlaps(a, b))

	c := CircleVolume(BoundingCircle{Center: Vec2{30, 0}, Radius: 20})
	require.True(t, Overlaps(a, c))

	// Corner region: closest point is (10,10), distance sqrt(200) > 14.
	d := CircleVolume(BoundingCircle{Center: Vec2{20, 20}, Radius: 14})
	require.False(t, Overlaps(a, d))
}

func TestClosestPoint(t *testing.T) {
	a := NewAabb2d(Vec2{0, 0}, Vec2{10, 10})
	require.Equal(t, Vec2{10, -10}, a.ClosestPoint(Vec2{50, -30}))
	require.Equal(t, Vec2{1, 2}, a.ClosestPoint(Vec2{1, 2}))

	c := BoundingCircle{Center: Vec2{0, 0}, Radius: 10}
	p := c.ClosestPoint(Vec2{20, 0})
	require.InDelta(t, 10, p.X(), epsilon)
	require.InDelta(t, 0, p.Y(), epsilon)
}

func BenchmarkProject(b *testing.B) {
	shapes := testShapes()
	iso := NewIsometry(10, 10, 0.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := shapes[i%len(shapes)]
		_ = Project(s, iso, VolumeKind(i&1))
	}
}
