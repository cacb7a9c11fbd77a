package bounding

import "math"

// Ray2d is a half-line. Direction is always unit length.
type Ray2d struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay2d normalizes direction. A zero direction falls back to +X.
func NewRay2d(origin, direction Vec2) Ray2d {
	return Ray2d{Origin: origin, Direction: unitOrX(direction)}
}

// PointAt returns the point at distance t along the ray.
func (r Ray2d) PointAt(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// RayCast2d is a ray limited to distances in [0, Max].
type RayCast2d struct {
	Ray Ray2d
	Max float64
}

// NewRayCast2d builds a ray cast from origin along direction up to max.
func NewRayCast2d(origin, direction Vec2, max float64) RayCast2d {
	return RayCast2d{Ray: NewRay2d(origin, direction), Max: max}
}

// End returns the far end of the cast.
func (rc RayCast2d) End() Vec2 {
	return rc.Ray.PointAt(rc.Max)
}

// AabbIntersectionAt returns the first distance at which the cast enters a,
// or 0 when the origin is already inside. ok is false when the box is not
// reached within [0, Max].
func (rc RayCast2d) AabbIntersectionAt(a Aabb2d) (toi float64, ok bool) {
	tmin, tmax := 0.0, rc.Max
	for i := 0; i < 2; i++ {
		o := rc.Ray.Origin[i]
		d := rc.Ray.Direction[i]
		lo, hi := a.Min[i], a.Max[i]
		if d == 0 {
			// Parallel to this slab: either always inside it or never.
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t0, t1 := (lo-o)*inv, (hi-o)*inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = math.Max(tmin, t0)
		tmax = math.Min(tmax, t1)
	}
	if tmin > tmax {
		return 0, false
	}
	return tmin, true
}

// CircleIntersectionAt returns the first distance at which the cast enters
// c, or 0 when the origin is already inside.
func (rc RayCast2d) CircleIntersectionAt(c BoundingCircle) (toi float64, ok bool) {
	offset := rc.Ray.Origin.Sub(c.Center)
	projected := offset.Dot(rc.Ray.Direction)
	closest := offset.Sub(rc.Ray.Direction.Mul(projected))
	inside := c.Radius*c.Radius - closest.Dot(closest)
	if inside < 0 {
		return 0, false
	}
	// Circle entirely behind the origin.
	if projected > 0 && projected*projected > inside {
		return 0, false
	}
	toi = -projected - math.Sqrt(inside)
	if toi > rc.Max {
		return 0, false
	}
	return math.Max(toi, 0), true
}

// AabbCast2d sweeps a box along a ray cast. The box is given relative to the
// ray origin.
type AabbCast2d struct {
	Ray  RayCast2d
	Aabb Aabb2d
}

// NewAabbCast2d builds a box cast.
func NewAabbCast2d(aabb Aabb2d, origin, direction Vec2, max float64) AabbCast2d {
	return AabbCast2d{Ray: NewRayCast2d(origin, direction, max), Aabb: aabb}
}

// AabbCollisionAt returns the distance at which the swept box first touches
// target.
func (c AabbCast2d) AabbCollisionAt(target Aabb2d) (toi float64, ok bool) {
	grown := Aabb2d{
		Min: target.Min.Sub(c.Aabb.Max),
		Max: target.Max.Sub(c.Aabb.Min),
	}
	return c.Ray.AabbIntersectionAt(grown)
}

// At returns the swept box at distance toi in world space.
func (c AabbCast2d) At(toi float64) Aabb2d {
	return NewAabb2d(c.Ray.Ray.PointAt(toi).Add(c.Aabb.Center()), c.Aabb.HalfSize())
}

// CircleCast2d sweeps a circle along a ray cast. The circle is given
// relative to the ray origin.
type CircleCast2d struct {
	Ray    RayCast2d
	Circle BoundingCircle
}

// NewCircleCast2d builds a circle cast.
func NewCircleCast2d(circle BoundingCircle, origin, direction Vec2, max float64) CircleCast2d {
	return CircleCast2d{Ray: NewRayCast2d(origin, direction, max), Circle: circle}
}

// CircleCollisionAt returns the distance at which the swept circle first
// touches target.
func (c CircleCast2d) CircleCollisionAt(target BoundingCircle) (toi float64, ok bool) {
	grown := BoundingCircle{
		Center: target.Center.Sub(c.Circle.Center),
		Radius: target.Radius + c.Circle.Radius,
	}
	return c.Ray.CircleIntersectionAt(grown)
}

// At returns the swept circle at distance toi in world space.
func (c CircleCast2d) At(toi float64) BoundingCircle {
	return BoundingCircle{Center: c.Ray.Ray.PointAt(toi).Add(c.Circle.Center), Radius: c.Circle.Radius}
}
