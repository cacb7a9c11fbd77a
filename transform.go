package gdan

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the 2D placement of an entity in world space (y-up).
// Mutate it through the setters so Version moves on every change; systems
// that cache derived data compare versions instead of values.
type Transform struct {
	X, Y     float64
	Rotation float64 // radians, counter-clockwise
	ScaleX   float64
	ScaleY   float64

	version uint64
}

// NewTransform returns a transform at (x, y) with unit scale.
func NewTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1, version: 1}
}

// Version increases every time the transform changes.
func (t *Transform) Version() uint64 { return t.version }

// SetPosition moves the transform.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
	t.version++
}

// Translate moves the transform by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.SetPosition(t.X+dx, t.Y+dy)
}

// SetRotation sets the rotation in radians.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
	t.version++
}

// Rotate adds delta radians to the rotation, keeping it in [0, 2π).
func (t *Transform) Rotate(delta float64) {
	r := math.Mod(t.Rotation+delta, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	t.SetRotation(r)
}

// SetScale sets both scale factors.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
	t.version++
}

// MarkDirty bumps the version after fields were written directly.
func (t *Transform) MarkDirty() {
	t.version++
}

// Matrix returns the local-to-world affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func (t *Transform) Matrix() [6]float64 {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}
	sin, cos := math.Sincos(t.Rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, t.X, t.Y}
}

// Apply maps a local point to world space.
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(), x, y)
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
