package render3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UVSphere builds a latitude/longitude sphere centered on the origin.
// UV u runs around the equator, v from the north pole to the south pole.
func UVSphere(radius float64, sectors, stacks int) *Mesh3D {
	sectors = max(sectors, 3)
	stacks = max(stacks, 2)
	m := &Mesh3D{}
	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= sectors; j++ {
			phi := 2 * math.Pi * float64(j) / float64(sectors)
			n := mgl64.Vec3{math.Sin(theta) * math.Cos(phi), math.Cos(theta), math.Sin(theta) * math.Sin(phi)}
			m.append(n.Mul(radius), n, mgl64.Vec2{float64(j) / float64(sectors), float64(i) / float64(stacks)})
		}
	}
	row := uint32(sectors + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			a := uint32(i)*row + uint32(j)
			b, c, d := a+row, a+row+1, a+1
			if i != stacks-1 {
				m.Indices = append(m.Indices, a, c, b)
			}
			if i != 0 {
				m.Indices = append(m.Indices, a, d, c)
			}
		}
	}
	return m
}

var (
	icoT     = (1 + math.Sqrt(5)) / 2
	icoVerts = [12]mgl64.Vec3{
		{-1, icoT, 0}, {1, icoT, 0}, {-1, -icoT, 0}, {1, -icoT, 0},
		{0, -1, icoT}, {0, 1, icoT}, {0, -1, -icoT}, {0, 1, -icoT},
		{icoT, 0, -1}, {icoT, 0, 1}, {-icoT, 0, -1}, {-icoT, 0, 1},
	}
	icoFaces = [20][3]uint32{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// IcoSphere builds a sphere by splitting every face of an icosahedron into
// four, subdivisions times. It has 20 * 4^subdivisions triangles.
func IcoSphere(radius float64, subdivisions int) *Mesh3D {
	dirs := make([]mgl64.Vec3, 0, 12)
	for _, v := range icoVerts {
		dirs = append(dirs, v.Normalize())
	}
	faces := icoFaces[:]
	for range max(subdivisions, 0) {
		mids := make(map[uint64]uint32)
		midpoint := func(a, b uint32) uint32 {
			key := uint64(min(a, b))<<32 | uint64(max(a, b))
			if i, ok := mids[key]; ok {
				return i
			}
			dirs = append(dirs, dirs[a].Add(dirs[b]).Normalize())
			i := uint32(len(dirs) - 1)
			mids[key] = i
			return i
		}
		next := make([][3]uint32, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]uint32{f[0], ab, ca},
				[3]uint32{f[1], bc, ab},
				[3]uint32{f[2], ca, bc},
				[3]uint32{ab, bc, ca},
			)
		}
		faces = next
	}
	m := &Mesh3D{}
	for _, d := range dirs {
		m.append(d.Mul(radius), d, sphericalUV(d))
	}
	for _, f := range faces {
		m.Indices = append(m.Indices, f[0], f[1], f[2])
	}
	return m
}

// Plane builds a width x depth grid in the XZ plane facing +Y, split into
// subdivisions x subdivisions cells.
func Plane(width, depth float64, subdivisions int) *Mesh3D {
	n := max(subdivisions, 1)
	m := &Mesh3D{}
	up := mgl64.Vec3{0, 1, 0}
	for i := 0; i <= n; i++ {
		fz := float64(i) / float64(n)
		for j := 0; j <= n; j++ {
			fx := float64(j) / float64(n)
			m.append(mgl64.Vec3{-width/2 + width*fx, 0, -depth/2 + depth*fz}, up, mgl64.Vec2{fx, fz})
		}
	}
	row := uint32(n + 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := uint32(i)*row + uint32(j)
			b, c, d := a+row, a+row+1, a+1
			m.Indices = append(m.Indices, a, b, c, a, c, d)
		}
	}
	return m
}

// Quad builds a width x height rectangle in the XY plane facing +Z with the
// texture upright.
func Quad(width, height float64) *Mesh3D {
	hw, hh := width/2, height/2
	n := mgl64.Vec3{0, 0, 1}
	m := &Mesh3D{}
	tl := m.append(mgl64.Vec3{-hw, hh, 0}, n, mgl64.Vec2{0, 0})
	tr := m.append(mgl64.Vec3{hw, hh, 0}, n, mgl64.Vec2{1, 0})
	br := m.append(mgl64.Vec3{hw, -hh, 0}, n, mgl64.Vec2{1, 1})
	bl := m.append(mgl64.Vec3{-hw, -hh, 0}, n, mgl64.Vec2{0, 1})
	m.Indices = []uint32{tl, bl, br, tl, br, tr}
	return m
}
