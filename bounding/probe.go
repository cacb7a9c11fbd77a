package bounding

import "math"

// Probe geometry.
const (
	SweepHalfExtent = 50.0
	SweepRadius     = 50.0
	CastHalfExtent  = 15.0
	CastRadius      = 15.0

	rayOrbit     = 250.0
	rayBaseReach = 150.0
	raySwing     = 500.0
	rayShortfall = 20.0
)

// SweepCenter is where the sweep probes sit after t seconds.
func SweepCenter(t float64) Vec2 {
	return Vec2{250 * math.Cos(0.8*t), 100 * math.Sin(0.4*t)}
}

// ProbeRay is the ray used by the cast modes after t seconds. It starts on a
// circle of radius 250 and points back at the origin.
func ProbeRay(t float64) RayCast2d {
	sin, cos := math.Sincos(t)
	d := Vec2{cos, sin}
	reach := rayBaseReach + raySwing*math.Abs(math.Sin(0.5*t))
	return RayCast2d{
		Ray: Ray2d{Origin: d.Mul(rayOrbit), Direction: d.Mul(-1)},
		Max: reach - rayShortfall,
	}
}

// Probe is the moving test object of one mode. Only the field matching Mode
// is set; Ray is also set for every cast mode.
type Probe struct {
	Mode TestMode

	Aabb       Aabb2d
	Circle     BoundingCircle
	Ray        RayCast2d
	AabbCast   AabbCast2d
	CircleCast CircleCast2d
}

// NewProbe builds the probe for mode after t seconds. It is a pure function
// of its arguments.
func NewProbe(mode TestMode, t float64) Probe {
	p := Probe{Mode: mode}
	switch mode {
	case AabbSweep:
		p.Aabb = NewAabb2d(SweepCenter(t), Vec2{SweepHalfExtent, SweepHalfExtent})
	case CircleSweep:
		p.Circle = BoundingCircle{Center: SweepCenter(t), Radius: SweepRadius}
	case RayCast:
		p.Ray = ProbeRay(t)
	case AabbCast:
		p.Ray = ProbeRay(t)
		p.AabbCast = AabbCast2d{Ray: p.Ray, Aabb: NewAabb2d(Vec2{}, Vec2{CastHalfExtent, CastHalfExtent})}
	case CircleCast:
		p.Ray = ProbeRay(t)
		p.CircleCast = CircleCast2d{Ray: p.Ray, Circle: BoundingCircle{Radius: CastRadius}}
	}
	return p
}

// Hit is the outcome of testing a probe against one volume.
type Hit struct {
	Intersects bool
	// TOI is the distance along the probe ray; valid when HasTOI is set.
	TOI    float64
	HasTOI bool
}

func castHit(toi float64, ok bool) Hit {
	return Hit{Intersects: ok, TOI: toi, HasTOI: ok}
}

// Evaluate tests the probe against v. Box casts only hit boxes and circle
// casts only hit circles; the other pairing never reports an impact.
func (p Probe) Evaluate(v Volume) Hit {
	switch p.Mode {
	case AabbSweep:
		return Hit{Intersects: Overlaps(AabbVolume(p.Aabb), v)}
	case CircleSweep:
		return Hit{Intersects: Overlaps(CircleVolume(p.Circle), v)}
	case RayCast:
		if v.Kind == VolumeAabb {
			return castHit(p.Ray.AabbIntersectionAt(v.Aabb))
		}
		return castHit(p.Ray.CircleIntersectionAt(v.Circle))
	case AabbCast:
		if v.Kind != VolumeAabb {
			return Hit{}
		}
		return castHit(p.AabbCast.AabbCollisionAt(v.Aabb))
	case CircleCast:
		if v.Kind != VolumeCircle {
			return Hit{}
		}
		return castHit(p.CircleCast.CircleCollisionAt(v.Circle))
	}
	return Hit{}
}

// Volume returns the probe's own volume for the sweep modes. For the cast
// modes it returns the swept shape at the ray origin, and for RayCast a
// zero-radius circle at the origin.
func (p Probe) Volume() Volume {
	switch p.Mode {
	case AabbSweep:
		return AabbVolume(p.Aabb)
	case CircleSweep:
		return CircleVolume(p.Circle)
	case AabbCast:
		return AabbVolume(p.AabbCast.At(0))
	case CircleCast:
		return CircleVolume(p.CircleCast.At(0))
	}
	return CircleVolume(BoundingCircle{Center: p.Ray.Ray.Origin})
}

// GhostAt returns the probe's swept volume at distance toi: the box or
// circle for the shape casts and the impact point for RayCast.
func (p Probe) GhostAt(toi float64) Volume {
	switch p.Mode {
	case AabbCast:
		return AabbVolume(p.AabbCast.At(toi))
	case CircleCast:
		return CircleVolume(p.CircleCast.At(toi))
	}
	return CircleVolume(BoundingCircle{Center: p.Ray.Ray.PointAt(toi)})
}
