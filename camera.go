package gdan

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X, Y and zoom.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	tweenZ *gween.Tween
	doneX  bool
	doneY  bool
	doneZ  bool
}

// Camera controls the 2D view into the world: position, zoom, rotation, and
// viewport. World space is y-up; the camera flips it onto the y-down screen.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (counter-clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// MinZoom and MaxZoom bound SetZoom. Zero disables the bound.
	MinZoom, MaxZoom float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle (X, Y is the minimum corner) the
	// camera is clamped to when BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Reset puts the camera back at the world origin with zoom 1 and no bounds.
// The viewport is kept.
func (c *Camera) Reset() {
	*c = Camera{Zoom: 1, Viewport: c.Viewport, dirty: true}
}

// SetViewport changes the screen rectangle the camera renders into.
func (c *Camera) SetViewport(vp Rect) {
	if c.Viewport != vp {
		c.Viewport = vp
		c.dirty = true
	}
}

// SetPosition centers the camera on (x, y).
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.ClampToBounds()
	c.dirty = true
}

// SetZoom sets the zoom, honoring MinZoom and MaxZoom.
func (c *Camera) SetZoom(z float64) {
	if c.MinZoom > 0 && z < c.MinZoom {
		z = c.MinZoom
	}
	if c.MaxZoom > 0 && z > c.MaxZoom {
		z = c.MaxZoom
	}
	if z <= 0 {
		return
	}
	c.Zoom = z
	c.ClampToBounds()
	c.dirty = true
}

// Pan moves the camera so the world under the cursor follows a screen-space
// drag of (dx, dy) pixels.
func (c *Camera) Pan(dx, dy float64) {
	x0, y0 := c.ScreenToWorld(0, 0)
	x1, y1 := c.ScreenToWorld(dx, dy)
	c.SetPosition(c.X-(x1-x0), c.Y-(y1-y0))
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
		doneZ:  true,
	}
}

// ScrollZoomTo animates position and zoom together.
func (c *Camera) ScrollZoomTo(x, y, zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.ScrollTo(x, y, duration, easeFn)
	c.scrollTween.tweenZ = gween.New(float32(c.Zoom), float32(zoom), duration, easeFn)
	c.scrollTween.doneZ = false
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// update advances scroll animation and bounds clamping. Called once per frame
// by the App.
func (c *Camera) update(dt float32) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	if c.scrollTween != nil {
		st := c.scrollTween
		if !st.doneX {
			val, done := st.tweenX.Update(dt)
			c.X = float64(val)
			st.doneX = done
		}
		if !st.doneY {
			val, done := st.tweenY.Update(dt)
			c.Y = float64(val)
			st.doneY = done
		}
		if !st.doneZ {
			val, done := st.tweenZ.Update(dt)
			c.Zoom = float64(val)
			st.doneZ = done
		}
		if st.doneX && st.doneY && st.doneZ {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom, -zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center. The negative Y scale turns y-up world
// coordinates into y-down screen coordinates.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	// [a c tx]   [ z*cos  -z*sin  cx + z*(-cos*X + sin*Y)]
	// [b d ty] = [-z*sin  -z*cos  cy + z*( sin*X + cos*Y)]
	a := z * cos
	b := -z * sin
	cc := -z * sin
	d := -z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(sin*c.X+cos*c.Y)

	c.viewMatrix = [6]float64{a, b, cc, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// ViewMatrix returns the world-to-screen affine matrix.
func (c *Camera) ViewMatrix() [6]float64 {
	return c.computeViewMatrix()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space. X, Y is the minimum corner.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// IsVisible reports whether a world-space rect overlaps the visible area.
func (c *Camera) IsVisible(r Rect) bool {
	return c.VisibleBounds().Intersects(r)
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
