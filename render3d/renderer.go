package render3d

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gdan"
)

// maxBatchVertices keeps a DrawTriangles call within uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

// Material describes how a mesh is shaded.
type Material struct {
	// Color multiplies the texture. The zero value is treated as white.
	Color gdan.Color
	// Texture is sampled with the mesh UVs. Nil draws flat color.
	Texture *ebiten.Image
	// Unlit skips lighting.
	Unlit bool
}

// PointLight lights surfaces facing it, fading out linearly to zero at Range.
type PointLight struct {
	Position  mgl64.Vec3
	Color     gdan.Color
	Intensity float64
	Range     float64
}

// DefaultPointLight is a white light reaching 100 units.
func DefaultPointLight(pos mgl64.Vec3) PointLight {
	return PointLight{Position: pos, Color: gdan.ColorWhite, Intensity: 1, Range: 100}
}

// Stats counts the triangles of the last frame.
type Stats struct {
	Submitted, BackFacing, Clipped, Drawn, Batches int
}

// Renderer projects meshes onto the screen with the painter's algorithm:
// triangles are collected between Begin and Flush, sorted far to near and
// drawn in as few DrawTriangles calls as texture changes allow.
type Renderer struct {
	// Ambient is the light every surface receives.
	Ambient float64
	Lights  []PointLight

	cam      Camera3D
	viewProj mgl64.Mat4
	w, h     float64
	faces    []face
	verts    []ebiten.Vertex
	inds     []uint16
	stats    Stats
}

type face struct {
	v     [3]ebiten.Vertex
	depth float64
	img   *ebiten.Image
}

type clipVertex struct {
	pos   mgl64.Vec4
	uv    mgl64.Vec2
	color [4]float32
}

// NewRenderer returns a renderer with ambient light 0.25.
func NewRenderer() *Renderer {
	return &Renderer{Ambient: 0.25}
}

// Begin starts a frame seen through cam on a w x h target.
func (r *Renderer) Begin(cam Camera3D, w, h float64) {
	r.cam = cam
	r.w, r.h = w, h
	r.viewProj = cam.ViewProjection(w / h)
	r.faces = r.faces[:0]
	r.stats = Stats{}
}

// Stats returns the counters of the current frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Submit queues mesh m placed by model.
func (r *Renderer) Submit(m *Mesh3D, model mgl64.Mat4, mat Material) {
	if m == nil || len(m.Indices) < 3 {
		return
	}
	base := mat.Color
	if base == (gdan.Color{}) {
		base = gdan.ColorWhite
	}
	img := mat.Texture
	if img == nil {
		img = gdan.WhitePixel()
	}
	normalMat := model.Mat3()
	hasNormals := len(m.Normals) == len(m.Positions)
	hasUVs := len(m.UVs) == len(m.Positions)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		r.stats.Submitted++
		idx := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		var world [3]mgl64.Vec3
		for k, j := range idx {
			world[k] = model.Mul4x1(m.Positions[j].Vec4(1)).Vec3()
		}
		fn := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if fn.Len() == 0 || !r.facesCamera(fn, world[0]) {
			r.stats.BackFacing++
			continue
		}
		fn = fn.Normalize()

		var poly [3]clipVertex
		for k, j := range idx {
			n := fn
			if hasNormals {
				if vn := normalMat.Mul3x1(m.Normals[j]); vn.Len() > 0 {
					n = vn.Normalize()
				}
			}
			var uv mgl64.Vec2
			if hasUVs {
				uv = m.UVs[j]
			}
			poly[k] = clipVertex{
				pos:   r.viewProj.Mul4x1(world[k].Vec4(1)),
				uv:    uv,
				color: r.shade(base, world[k], n, mat.Unlit),
			}
		}
		r.addClipped(poly, img)
	}
}

func (r *Renderer) facesCamera(n, p mgl64.Vec3) bool {
	if r.cam.Projection == Orthographic {
		return n.Dot(r.cam.Forward()) < 0
	}
	return n.Dot(r.cam.Eye.Sub(p)) > 0
}

// shade returns the premultiplied vertex color of a surface point.
func (r *Renderer) shade(base gdan.Color, p, n mgl64.Vec3, unlit bool) [4]float32 {
	lr, lg, lb := 1.0, 1.0, 1.0
	if !unlit {
		lr, lg, lb = r.Ambient, r.Ambient, r.Ambient
		for _, l := range r.Lights {
			d := l.Position.Sub(p)
			dist := d.Len()
			if dist == 0 || (l.Range > 0 && dist >= l.Range) {
				continue
			}
			lambert := n.Dot(d.Mul(1 / dist))
			if lambert <= 0 {
				continue
			}
			k := lambert * l.Intensity
			if l.Range > 0 {
				k *= 1 - dist/l.Range
			}
			lr += k * l.Color.R
			lg += k * l.Color.G
			lb += k * l.Color.B
		}
	}
	a := base.A
	return [4]float32{
		float32(math.Min(base.R*lr, 1) * a),
		float32(math.Min(base.G*lg, 1) * a),
		float32(math.Min(base.B*lb, 1) * a),
		float32(a),
	}
}

// addClipped clips a triangle against the near plane and queues the pieces
// that survive. Triangles entirely outside one side of the frustum are
// dropped.
func (r *Renderer) addClipped(tri [3]clipVertex, img *ebiten.Image) {
	if outsideFrustum(tri) {
		r.stats.Clipped++
		return
	}
	poly := clipNear(tri[:])
	if len(poly) < 3 {
		r.stats.Clipped++
		return
	}
	b := img.Bounds()
	tw, th := float64(b.Dx()), float64(b.Dy())
	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	white := img == gdan.WhitePixel()

	var sv [4]ebiten.Vertex
	var depth [4]float64
	for k, cv := range poly {
		ndc := cv.pos.Vec3().Mul(1 / cv.pos[3])
		x, y := toScreen(ndc[0], ndc[1], r.w, r.h)
		sx, sy := ox+cv.uv[0]*tw, oy+cv.uv[1]*th
		if white {
			sx, sy = ox+0.5, oy+0.5
		}
		sv[k] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: float32(sx), SrcY: float32(sy),
			ColorR: cv.color[0], ColorG: cv.color[1], ColorB: cv.color[2], ColorA: cv.color[3],
		}
		depth[k] = ndc[2]
	}
	for k := 1; k+1 < len(poly); k++ {
		r.faces = append(r.faces, face{
			v:     [3]ebiten.Vertex{sv[0], sv[k], sv[k+1]},
			depth: (depth[0] + depth[k] + depth[k+1]) / 3,
			img:   img,
		})
	}
}

func outsideFrustum(tri [3]clipVertex) bool {
	for axis := 0; axis < 3; axis++ {
		below, above := 0, 0
		for _, v := range tri {
			if v.pos[axis] < -v.pos[3] {
				below++
			}
			if v.pos[axis] > v.pos[3] {
				above++
			}
		}
		if below == 3 || above == 3 {
			return true
		}
	}
	return false
}

// clipNear keeps the part of the polygon with z >= -w. A triangle yields at
// most four vertices.
func clipNear(in []clipVertex) []clipVertex {
	inside := func(v clipVertex) bool { return v.pos[2] >= -v.pos[3] }
	out := make([]clipVertex, 0, 4)
	for i, cur := range in {
		prev := in[(i+len(in)-1)%len(in)]
		ci, pi := inside(cur), inside(prev)
		if ci != pi {
			dp := prev.pos[2] + prev.pos[3]
			dc := cur.pos[2] + cur.pos[3]
			out = append(out, lerpClip(prev, cur, dp/(dp-dc)))
		}
		if ci {
			out = append(out, cur)
		}
	}
	return out
}

func lerpClip(a, b clipVertex, t float64) clipVertex {
	var c [4]float32
	for k := range c {
		c[k] = a.color[k] + (b.color[k]-a.color[k])*float32(t)
	}
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		uv:    a.uv.Add(b.uv.Sub(a.uv).Mul(t)),
		color: c,
	}
}

// Flush draws the queued triangles onto dst, farthest first.
func (r *Renderer) Flush(dst *ebiten.Image) {
	slices.SortStableFunc(r.faces, func(a, b face) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	r.verts, r.inds = r.verts[:0], r.inds[:0]
	var cur *ebiten.Image
	for i := range r.faces {
		f := &r.faces[i]
		if f.img != cur || len(r.verts)+3 > maxBatchVertices {
			r.drawBatch(dst, cur)
			cur = f.img
		}
		n := uint16(len(r.verts))
		r.verts = append(r.verts, f.v[0], f.v[1], f.v[2])
		r.inds = append(r.inds, n, n+1, n+2)
	}
	r.drawBatch(dst, cur)
	r.stats.Drawn = len(r.faces)
}

func (r *Renderer) drawBatch(dst, img *ebiten.Image) {
	if len(r.inds) == 0 || img == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Filter:         ebiten.FilterNearest,
		AntiAlias:      true,
	}
	dst.DrawTriangles(r.verts, r.inds, img, op)
	r.stats.Batches++
	r.verts, r.inds = r.verts[:0], r.inds[:0]
}
