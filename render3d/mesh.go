package render3d

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh3D is an indexed triangle list. Triangles wind counter-clockwise when
// seen from outside. Normals and UVs, when present, have one entry per
// position. UV (0, 0) is the top-left of a texture.
type Mesh3D struct {
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Indices   []uint32
}

// Triangles returns the triangle count.
func (m *Mesh3D) Triangles() int { return len(m.Indices) / 3 }

// Validate checks that the attribute slices and indices agree.
func (m *Mesh3D) Validate() error {
	n := len(m.Positions)
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("render3d: %d indices is not a multiple of 3", len(m.Indices))
	}
	if m.Normals != nil && len(m.Normals) != n {
		return fmt.Errorf("render3d: %d normals for %d positions", len(m.Normals), n)
	}
	if m.UVs != nil && len(m.UVs) != n {
		return fmt.Errorf("render3d: %d uvs for %d positions", len(m.UVs), n)
	}
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("render3d: index %d at %d out of range", idx, i)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounds of the positions.
func (m *Mesh3D) Bounds() (lo, hi mgl64.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

var errEmptyMesh = errors.New("render3d: empty mesh")

// append adds a vertex and returns its index.
func (m *Mesh3D) append(p, n mgl64.Vec3, uv mgl64.Vec2) uint32 {
	m.Positions = append(m.Positions, p)
	m.Normals = append(m.Normals, n)
	m.UVs = append(m.UVs, uv)
	return uint32(len(m.Positions) - 1)
}

// sphericalUV maps a direction onto equirectangular texture coordinates.
func sphericalUV(d mgl64.Vec3) mgl64.Vec2 {
	u := 0.5 + math.Atan2(d[2], d[0])/(2*math.Pi)
	v := 0.5 - math.Asin(mgl64.Clamp(d[1], -1, 1))/math.Pi
	return mgl64.Vec2{u, v}
}
