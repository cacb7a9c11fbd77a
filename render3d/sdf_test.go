package render3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

const testCells = 16

// requireBounds checks mesh bounds against the solid within one cell.
func requireBounds(t *testing.T, m *Mesh3D, half mgl64.Vec3) {
	t.Helper()
	lo, hi := m.Bounds()
	tol := 2 * half.Len() / testCells
	for k := 0; k < 3; k++ {
		require.InDelta(t, -half[k], lo[k], tol, "min axis %d", k)
		require.InDelta(t, half[k], hi[k], tol, "max axis %d", k)
	}
}

func requireUnitNormals(t *testing.T, m *Mesh3D) {
	t.Helper()
	for _, n := range m.Normals {
		require.InDelta(t, 1, n.Len(), 1e-3)
	}
}

func TestCuboid(t *testing.T) {
	m, err := Cuboid(mgl64.Vec3{1, 2, 0.5}, testCells)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Positive(t, m.Triangles())
	requireBounds(t, m, mgl64.Vec3{0.5, 1, 0.25})
	requireOutward(t, m)
	requireUnitNormals(t, m)
}

func TestCylinderAlongY(t *testing.T) {
	m, err := Cylinder(0.5, 1, testCells)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	requireBounds(t, m, mgl64.Vec3{0.5, 0.5, 0.5})
	requireOutward(t, m)
}

func TestCapsule(t *testing.T) {
	m, err := Capsule(0.5, 1, testCells)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	requireBounds(t, m, mgl64.Vec3{0.5, 1, 0.5})
	requireOutward(t, m)
	requireUnitNormals(t, m)
}

func TestTorusInXZPlane(t *testing.T) {
	m, err := Torus(0.25, 0.75, testCells)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	requireBounds(t, m, mgl64.Vec3{1, 0.25, 1})
	// The hole stays empty.
	for _, p := range m.Positions {
		require.Greater(t, mgl64.Vec2{p[0], p[2]}.Len(), 0.4)
	}
}
