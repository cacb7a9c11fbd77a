package gdan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Mesh is a triangle mesh in local world units. Vertex DstX/DstY hold the
// local position; SrcX/SrcY address Image, which defaults to a white pixel.
type Mesh struct {
	Vertices []ebiten.Vertex
	Indices  []uint16
	Image    *ebiten.Image

	aabb        Rect
	aabbDirty   bool
	transformed []ebiten.Vertex
}

// NewMesh wraps vertices and indices. A nil img draws untextured.
func NewMesh(verts []ebiten.Vertex, inds []uint16, img *ebiten.Image) *Mesh {
	return &Mesh{Vertices: verts, Indices: inds, Image: img, aabbDirty: true}
}

// Invalidate marks the cached bounds stale. Call it after editing Vertices.
func (m *Mesh) Invalidate() { m.aabbDirty = true }

// Bounds returns the local-space bounding rect of the vertices.
func (m *Mesh) Bounds() Rect {
	if m.aabbDirty {
		m.aabb = computeMeshAABB(m.Vertices)
		m.aabbDirty = false
	}
	return m.aabb
}

// DrawMesh draws m placed by the world matrix, through cam, multiplied by
// tint. Meshes whose bounds fall outside the camera are skipped. It reports
// whether anything was drawn.
func DrawMesh(dst *ebiten.Image, m *Mesh, world [6]float64, cam *Camera, tint Color) bool {
	if m == nil || len(m.Indices) == 0 {
		return false
	}
	if cam != nil && !cam.IsVisible(transformRect(world, m.Bounds())) {
		return false
	}
	full := world
	if cam != nil {
		full = multiplyAffine(cam.ViewMatrix(), world)
	}
	if cap(m.transformed) < len(m.Vertices) {
		m.transformed = make([]ebiten.Vertex, len(m.Vertices))
	}
	m.transformed = m.transformed[:len(m.Vertices)]
	transformVertices(m.Vertices, m.transformed, full, tint)

	img := m.Image
	if img == nil {
		img = ensureWhitePixel()
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(m.transformed, m.Indices, img, op)
	return true
}

// DrawImage draws img with its bottom-left corner at the origin of the world
// matrix, one pixel per world unit, keeping the picture upright under the
// y-up camera.
func DrawImage(dst, img *ebiten.Image, world [6]float64, cam *Camera) {
	h := float64(img.Bounds().Dy())
	// Pixel rows grow downward, world y grows upward.
	flip := [6]float64{1, 0, 0, -1, 0, h}
	m := multiplyAffine(world, flip)
	if cam != nil {
		m = multiplyAffine(cam.ViewMatrix(), m)
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])
	dst.DrawImage(img, op)
}

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Colors are premultiplied by the tint alpha.
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// transformRect maps the four corners of r through m and returns their
// bounding rect.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X, r.Y+r.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
