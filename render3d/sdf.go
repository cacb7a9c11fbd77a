package render3d

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCells is the marching cubes resolution along the longest side of a
// solid when a builder is given cells <= 0.
const DefaultCells = 32

// Cuboid tessellates a box of the given size centered on the origin.
func Cuboid(size mgl64.Vec3, cells int) (*Mesh3D, error) {
	s, err := sdf.Box3D(v3.Vec{X: size[0], Y: size[2], Z: size[1]}, 0)
	if err != nil {
		return nil, fmt.Errorf("render3d: cuboid: %w", err)
	}
	return Tessellate(s, cells)
}

// Cylinder tessellates a cylinder along the Y axis centered on the origin.
func Cylinder(radius, height float64, cells int) (*Mesh3D, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("render3d: cylinder: %w", err)
	}
	return Tessellate(s, cells)
}

// Capsule tessellates a capsule along the Y axis. length is the straight part
// between the two hemispheres.
func Capsule(radius, length float64, cells int) (*Mesh3D, error) {
	body, err := sdf.Cylinder3D(length, radius, 0)
	if err != nil {
		return nil, fmt.Errorf("render3d: capsule: %w", err)
	}
	cap0, err := sdf.Sphere3D(radius)
	if err != nil {
		return nil, fmt.Errorf("render3d: capsule: %w", err)
	}
	top := sdf.Transform3D(cap0, sdf.Translate3d(v3.Vec{Z: length / 2}))
	bottom := sdf.Transform3D(cap0, sdf.Translate3d(v3.Vec{Z: -length / 2}))
	return Tessellate(sdf.Union3D(body, top, bottom), cells)
}

// Torus tessellates a ring lying in the XZ plane. major is the distance from
// the center to the middle of the tube, minor the tube radius.
func Torus(minor, major float64, cells int) (*Mesh3D, error) {
	tube, err := sdf.Circle2D(minor)
	if err != nil {
		return nil, fmt.Errorf("render3d: torus: %w", err)
	}
	s, err := sdf.Revolve3D(sdf.Transform2D(tube, sdf.Translate2d(v2.Vec{X: major})))
	if err != nil {
		return nil, fmt.Errorf("render3d: torus: %w", err)
	}
	return Tessellate(s, cells)
}

// Tessellate turns a Z-up signed distance field into a Y-up mesh with
// gradient normals and spherical UVs.
func Tessellate(s sdf.SDF3, cells int) (*Mesh3D, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(tris) == 0 {
		return nil, errEmptyMesh
	}
	h := s.BoundingBox().Size().MaxComponent() * 1e-4

	m := &Mesh3D{
		Positions: make([]mgl64.Vec3, 0, 3*len(tris)),
		Normals:   make([]mgl64.Vec3, 0, 3*len(tris)),
		UVs:       make([]mgl64.Vec2, 0, 3*len(tris)),
		Indices:   make([]uint32, 0, 3*len(tris)),
	}
	for _, t := range tris {
		src := [3]v3.Vec{t[0], t[1], t[2]}
		var pos, nrm [3]mgl64.Vec3
		for k, v := range src {
			pos[k] = yUp(v)
			nrm[k] = yUp(gradient(s, v, h))
		}
		face := pos[1].Sub(pos[0]).Cross(pos[2].Sub(pos[0]))
		if face.Len() == 0 {
			continue
		}
		// Marching cubes winding is not guaranteed; face outward.
		if face.Dot(nrm[0].Add(nrm[1]).Add(nrm[2])) < 0 {
			pos[1], pos[2] = pos[2], pos[1]
			nrm[1], nrm[2] = nrm[2], nrm[1]
		}
		for k := range pos {
			n := nrm[k]
			if n.Len() > 0 {
				n = n.Normalize()
			}
			m.Indices = append(m.Indices, m.append(pos[k], n, uvFor(pos[k])))
		}
	}
	if len(m.Indices) == 0 {
		return nil, errEmptyMesh
	}
	return m, nil
}

// yUp maps a Z-up point onto Y-up axes.
func yUp(v v3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Z, -v.Y}
}

func gradient(s sdf.SDF3, p v3.Vec, h float64) v3.Vec {
	return v3.Vec{
		X: s.Evaluate(v3.Vec{X: p.X + h, Y: p.Y, Z: p.Z}) - s.Evaluate(v3.Vec{X: p.X - h, Y: p.Y, Z: p.Z}),
		Y: s.Evaluate(v3.Vec{X: p.X, Y: p.Y + h, Z: p.Z}) - s.Evaluate(v3.Vec{X: p.X, Y: p.Y - h, Z: p.Z}),
		Z: s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z + h}) - s.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z - h}),
	}
}

func uvFor(p mgl64.Vec3) mgl64.Vec2 {
	if p.Len() == 0 {
		return mgl64.Vec2{0.5, 0.5}
	}
	return sphericalUV(p.Normalize())
}
