// Package bounding computes bounding volumes for 2D primitive shapes and
// tests them against moving probes.
//
// A [Shape] placed with an [Isometry] projects to either an [Aabb2d] or a
// [BoundingCircle], wrapped in a [Volume]. Probes come in five flavors, one
// per [TestMode]:
//
//   - AabbSweep and CircleSweep test plain overlap with [Overlaps].
//   - RayCast reports the time of impact of a [RayCast2d].
//   - AabbCast and CircleCast sweep a small volume along a ray and report
//     the first contact with a volume of the same kind.
//
// [NewProbe] builds the probe for a mode as a pure function of elapsed time,
// and [Probe.Evaluate] runs it against one volume.
//
// World space is y-up and rotations are counter-clockwise radians. Vectors
// are [mgl64.Vec2] values. Nothing in this package allocates per call except
// [Shape.Outline].
package bounding
