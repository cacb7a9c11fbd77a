package bounding

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Aabb2d is an axis-aligned bounding box. Min is component-wise <= Max.
type Aabb2d struct {
	Min, Max Vec2
}

// NewAabb2d returns the box centered on center with the given half extents.
func NewAabb2d(center, halfSize Vec2) Aabb2d {
	return Aabb2d{Min: center.Sub(halfSize), Max: center.Add(halfSize)}
}

// Center returns the midpoint of the box.
func (a Aabb2d) Center() Vec2 { return a.Min.Add(a.Max).Mul(0.5) }

// HalfSize returns the half extents of the box.
func (a Aabb2d) HalfSize() Vec2 { return a.Max.Sub(a.Min).Mul(0.5) }

// Grow expands the box by amount on every side.
func (a Aabb2d) Grow(amount Vec2) Aabb2d {
	return Aabb2d{Min: a.Min.Sub(amount), Max: a.Max.Add(amount)}
}

// ContainsPoint reports whether p lies inside or on the box.
func (a Aabb2d) ContainsPoint(p Vec2) bool {
	return p.X() >= a.Min.X() && p.X() <= a.Max.X() &&
		p.Y() >= a.Min.Y() && p.Y() <= a.Max.Y()
}

// ClosestPoint returns the point of the box nearest to p.
func (a Aabb2d) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		mgl64.Clamp(p.X(), a.Min.X(), a.Max.X()),
		mgl64.Clamp(p.Y(), a.Min.Y(), a.Max.Y()),
	}
}

// Intersects reports whether the two boxes overlap. Touching counts.
func (a Aabb2d) Intersects(b Aabb2d) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y()
}

// IntersectsCircle reports whether the box and the circle overlap.
func (a Aabb2d) IntersectsCircle(c BoundingCircle) bool {
	d := a.ClosestPoint(c.Center).Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// BoundingCircle is a circle used as a bounding volume.
type BoundingCircle struct {
	Center Vec2
	Radius float64
}

// ContainsPoint reports whether p lies inside or on the circle.
func (c BoundingCircle) ContainsPoint(p Vec2) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// ClosestPoint returns the point of the disc nearest to p.
func (c BoundingCircle) ClosestPoint(p Vec2) Vec2 {
	d := p.Sub(c.Center)
	l := d.Len()
	if l <= c.Radius {
		return p
	}
	return c.Center.Add(d.Mul(c.Radius / l))
}

// Intersects reports whether the two circles overlap. Touching counts.
func (c BoundingCircle) Intersects(o BoundingCircle) bool {
	d := o.Center.Sub(c.Center)
	r := c.Radius + o.Radius
	return d.Dot(d) <= r*r
}

// IntersectsAabb reports whether the circle and the box overlap.
func (c BoundingCircle) IntersectsAabb(a Aabb2d) bool {
	return a.IntersectsCircle(c)
}

// VolumeKind selects which bounding volume a shape wants.
type VolumeKind uint8

const (
	VolumeAabb   VolumeKind = iota // axis-aligned box
	VolumeCircle                   // enclosing circle
)

func (k VolumeKind) String() string {
	if k == VolumeCircle {
		return "Circle"
	}
	return "Aabb"
}

// Volume holds exactly one bounding volume, selected by Kind.
type Volume struct {
	Kind   VolumeKind
	Aabb   Aabb2d
	Circle BoundingCircle
}

// AabbVolume wraps a box.
func AabbVolume(a Aabb2d) Volume { return Volume{Kind: VolumeAabb, Aabb: a} }

// CircleVolume wraps a circle.
func CircleVolume(c BoundingCircle) Volume { return Volume{Kind: VolumeCircle, Circle: c} }

// Center returns the center of whichever volume is held.
func (v Volume) Center() Vec2 {
	if v.Kind == VolumeCircle {
		return v.Circle.Center
	}
	return v.Aabb.Center()
}

// Overlaps reports whether two volumes of any kind overlap. It is symmetric.
func Overlaps(a, b Volume) bool {
	switch {
	case a.Kind == VolumeAabb && b.Kind == VolumeAabb:
		return a.Aabb.Intersects(b.Aabb)
	case a.Kind == VolumeAabb:
		return a.Aabb.IntersectsCircle(b.Circle)
	case b.Kind == VolumeAabb:
		return b.Aabb.IntersectsCircle(a.Circle)
	default:
		return a.Circle.Intersects(b.Circle)
	}
}

// Project returns the tightest volume of the requested kind around s placed
// by iso.
func Project(s Shape, iso Isometry, kind VolumeKind) Volume {
	if kind == VolumeCircle {
		return CircleVolume(s.BoundingCircle(iso))
	}
	return AabbVolume(s.Aabb(iso))
}

// Aabb returns the tightest axis-aligned box around s placed by iso.
func (s Shape) Aabb(iso Isometry) Aabb2d {
	switch s.Kind {
	case KindRectangle:
		sin, cos := math.Sincos(iso.Rotation)
		sin, cos = math.Abs(sin), math.Abs(cos)
		hx, hy := s.HalfSize.X(), s.HalfSize.Y()
		return NewAabb2d(iso.Translation, Vec2{cos*hx + sin*hy, sin*hx + cos*hy})
	case KindCircle:
		return NewAabb2d(iso.Translation, Vec2{s.Radius, s.Radius})
	case KindTriangle:
		return aabbOfPoints(iso, s.Vertices[:])
	case KindSegment:
		return NewAabb2d(iso.Translation, absVec(iso.Rotate(s.Direction.Mul(s.HalfLength))))
	case KindCapsule:
		axis := absVec(iso.Rotate(Vec2{0, s.HalfLength}))
		return NewAabb2d(iso.Translation, axis.Add(Vec2{s.Radius, s.Radius}))
	case KindRegularPolygon:
		return aabbOfPoints(iso, s.polygonVertices())
	}
	return Aabb2d{Min: iso.Translation, Max: iso.Translation}
}

// BoundingCircle returns the smallest circle enclosing s placed by iso.
func (s Shape) BoundingCircle(iso Isometry) BoundingCircle {
	switch s.Kind {
	case KindRectangle:
		return BoundingCircle{Center: iso.Translation, Radius: s.HalfSize.Len()}
	case KindCircle, KindRegularPolygon:
		return BoundingCircle{Center: iso.Translation, Radius: s.Radius}
	case KindTriangle:
		c := triangleCircle(s.Vertices)
		c.Center = iso.Transform(c.Center)
		return c
	case KindSegment:
		return BoundingCircle{Center: iso.Translation, Radius: s.HalfLength}
	case KindCapsule:
		return BoundingCircle{Center: iso.Translation, Radius: s.Radius + s.HalfLength}
	}
	return BoundingCircle{Center: iso.Translation}
}

// triangleCircle returns the minimal enclosing circle of a triangle in local
// space. When one angle is right or obtuse the opposite side is a diameter;
// otherwise the circumcircle is minimal.
func triangleCircle(v [3]Vec2) BoundingCircle {
	a, b, c := v[0], v[1], v[2]
	var p, q Vec2
	switch {
	case b.Sub(a).Dot(c.Sub(a)) <= 0:
		p, q = b, c
	case c.Sub(b).Dot(a.Sub(b)) <= 0:
		p, q = c, a
	case a.Sub(c).Dot(b.Sub(c)) <= 0:
		p, q = a, b
	default:
		return circumcircle(a, b, c)
	}
	return BoundingCircle{Center: p.Add(q).Mul(0.5), Radius: q.Sub(p).Len() / 2}
}

// circumcircle assumes a, b, c are not collinear.
func circumcircle(a, b, c Vec2) BoundingCircle {
	ba := b.Sub(a)
	ca := c.Sub(a)
	d := 2 * (ba.X()*ca.Y() - ba.Y()*ca.X())
	lb := ba.Dot(ba)
	lc := ca.Dot(ca)
	u := Vec2{
		(ca.Y()*lb - ba.Y()*lc) / d,
		(ba.X()*lc - ca.X()*lb) / d,
	}
	return BoundingCircle{Center: a.Add(u), Radius: u.Len()}
}

func aabbOfPoints(iso Isometry, pts []Vec2) Aabb2d {
	lo := Vec2{math.Inf(1), math.Inf(1)}
	hi := Vec2{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		r := iso.Rotate(p)
		lo = Vec2{math.Min(lo.X(), r.X()), math.Min(lo.Y(), r.Y())}
		hi = Vec2{math.Max(hi.X(), r.X()), math.Max(hi.Y(), r.Y())}
	}
	return Aabb2d{Min: lo.Add(iso.Translation), Max: hi.Add(iso.Translation)}
}

func absVec(v Vec2) Vec2 {
	return Vec2{math.Abs(v.X()), math.Abs(v.Y())}
}
