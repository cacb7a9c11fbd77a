package gdan

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gdan/bounding"
)

// DefaultMeshSegments is the curve resolution used by MeshFromShape when
// segments <= 0.
const DefaultMeshSegments = 64

// NewPolygonMesh creates an untextured mesh from a convex outline.
func NewPolygonMesh(points []mgl64.Vec2) *Mesh {
	verts, inds := buildPolygonFan(points, false, nil)
	return NewMesh(verts, inds, nil)
}

// NewPolygonMeshTextured creates a textured polygon mesh. UVs are mapped to
// the bounding box of the points with the image top at the highest y.
func NewPolygonMeshTextured(img *ebiten.Image, points []mgl64.Vec2) *Mesh {
	verts, inds := buildPolygonFan(points, true, img)
	return NewMesh(verts, inds, img)
}

// MeshFromShape builds a filled mesh of s around the local origin. Segments
// without area produce an empty mesh.
func MeshFromShape(s bounding.Shape, segments int) *Mesh {
	if segments <= 0 {
		segments = DefaultMeshSegments
	}
	if !s.Closed() {
		return NewMesh(nil, nil, nil)
	}
	return NewPolygonMesh(s.Outline(bounding.Isometry{}, segments))
}

// EllipseMesh builds a filled ellipse with the given half size.
func EllipseMesh(half mgl64.Vec2, segments int) *Mesh {
	if segments <= 0 {
		segments = DefaultMeshSegments
	}
	pts := bounding.Circle(1).Outline(bounding.Isometry{}, segments)
	for i := range pts {
		pts[i] = mgl64.Vec2{pts[i][0] * half[0], pts[i][1] * half[1]}
	}
	return NewPolygonMesh(pts)
}

// buildPolygonFan generates vertices and indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices.
func buildPolygonFan(points []mgl64.Vec2, textured bool, img *ebiten.Image) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	var minX, minY, maxX, maxY float64
	var imgW, imgH float64
	if textured && img != nil {
		minX, minY = points[0][0], points[0][1]
		maxX, maxY = minX, minY
		for _, p := range points[1:] {
			minX, maxX = min(minX, p[0]), max(maxX, p[0])
			minY, maxY = min(minY, p[1]), max(maxY, p[1])
		}
		b := img.Bounds()
		imgW = float64(b.Dx())
		imgH = float64(b.Dy())
	}

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p[0])
		v.DstY = float32(p[1])
		v.ColorR = 1
		v.ColorG = 1
		v.ColorB = 1
		v.ColorA = 1

		if textured && img != nil {
			var u, vv float64
			if bbW := maxX - minX; bbW > 0 {
				u = (p[0] - minX) / bbW * imgW
			}
			if bbH := maxY - minY; bbH > 0 {
				vv = (maxY - p[1]) / bbH * imgH
			}
			v.SrcX = float32(u)
			v.SrcY = float32(vv)
		} else {
			// Untextured: map to center of white pixel (0.5, 0.5)
			v.SrcX = 0.5
			v.SrcY = 0.5
		}
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}
