package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection selects how a Camera3D maps view space to the screen.
type Projection uint8

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "Orthographic"
	}
	return "Perspective"
}

// DefaultFOV is the vertical field of view of a new camera, in radians.
const DefaultFOV = math.Pi / 4

// Camera3D is a look-at camera. Eye, Target and Up are in world space, which
// is right-handed and y-up.
type Camera3D struct {
	Eye, Target, Up mgl64.Vec3

	Projection Projection
	// FOV is the vertical field of view in radians for Perspective.
	FOV float64
	// OrthoScale is half the visible height in world units for Orthographic.
	OrthoScale float64
	Near, Far  float64
}

// NewCamera3D returns a perspective camera at eye looking at target with +Y
// up.
func NewCamera3D(eye, target mgl64.Vec3) Camera3D {
	return Camera3D{
		Eye:        eye,
		Target:     target,
		Up:         mgl64.Vec3{0, 1, 0},
		FOV:        DefaultFOV,
		OrthoScale: 5,
		Near:       0.1,
		Far:        1000,
	}
}

// View returns the world-to-view matrix.
func (c *Camera3D) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the view-to-clip matrix for the given aspect ratio
// (width / height).
func (c *Camera3D) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	if c.Projection == Orthographic {
		s := c.OrthoScale
		return mgl64.Ortho(-s*aspect, s*aspect, -s, s, c.Near, c.Far)
	}
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera3D) ViewProjection(aspect float64) mgl64.Mat4 {
	return c.ProjectionMatrix(aspect).Mul4(c.View())
}

// Forward returns the unit direction the camera looks along.
func (c *Camera3D) Forward() mgl64.Vec3 {
	d := c.Target.Sub(c.Eye)
	if d.Len() == 0 {
		return mgl64.Vec3{0, 0, -1}
	}
	return d.Normalize()
}

// Translate moves the camera without changing where it looks.
func (c *Camera3D) Translate(d mgl64.Vec3) {
	c.Eye = c.Eye.Add(d)
	c.Target = c.Target.Add(d)
}

// RotateAround rotates the camera and its orientation by angle radians about
// the axis through center.
func (c *Camera3D) RotateAround(center, axis mgl64.Vec3, angle float64) {
	q := mgl64.QuatRotate(angle, axis.Normalize())
	c.Eye = center.Add(q.Rotate(c.Eye.Sub(center)))
	c.Target = center.Add(q.Rotate(c.Target.Sub(center)))
	c.Up = q.Rotate(c.Up)
}

// Project maps a world point onto a w x h screen. depth is the NDC depth in
// [-1, 1]; ok is false for points behind the near plane.
func (c *Camera3D) Project(p mgl64.Vec3, w, h float64) (x, y, depth float64, ok bool) {
	clip := c.ViewProjection(w / h).Mul4x1(p.Vec4(1))
	if clip[3] <= 0 || clip[2] < -clip[3] {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	x, y = toScreen(ndc[0], ndc[1], w, h)
	return x, y, ndc[2], true
}

// toScreen maps NDC x and y onto a y-down w x h screen.
func toScreen(nx, ny, w, h float64) (float64, float64) {
	return (nx + 1) / 2 * w, (1 - ny) / 2 * h
}
