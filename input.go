package gdan

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const defaultDragDeadZone = 4.0 // pixels

// InputSource is where the Input state polls raw device state from once per
// frame.
type InputSource interface {
	// AppendPressedKeys appends every key currently held down.
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	MouseButtonPressed(b MouseButton) bool
	CursorPosition() (x, y float64)
	// Wheel returns the scroll delta of this frame in lines.
	Wheel() (dx, dy float64)
}

// ebitenSource reads the real keyboard and mouse.
type ebitenSource struct{}

func (ebitenSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (ebitenSource) MouseButtonPressed(b MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b.ebiten())
}

func (ebitenSource) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// IdleSource reports no keys, no buttons, no wheel and a cursor at the
// origin. It lets an App run without a window; drive it with the Inject
// methods.
type IdleSource struct{}

func (IdleSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key { return keys }
func (IdleSource) MouseButtonPressed(MouseButton) bool              { return false }
func (IdleSource) CursorPosition() (float64, float64)               { return 0, 0 }
func (IdleSource) Wheel() (float64, float64)                        { return 0, 0 }

// HitRect is an axis-aligned rectangular hit area in screen coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// dragState tracks the primary button from press to release.
type dragState struct {
	down     bool
	startX   float64
	startY   float64
	dragging bool
}

// Input is the per-frame snapshot of keyboard and mouse state. Edge queries
// (JustPressed, JustReleased) compare this frame against the previous one,
// so holding a key reports exactly one press.
type Input struct {
	source InputSource

	keys     [ebiten.KeyMax + 1]bool
	prevKeys [ebiten.KeyMax + 1]bool
	keyBuf   []ebiten.Key

	buttons     [mouseButtonCount]bool
	prevButtons [mouseButtonCount]bool

	cursorX, cursorY         float64
	prevCursorX, prevCursorY float64
	wheelX, wheelY           float64

	drag         dragState
	dragDeadZone float64

	injectQueue []syntheticFrame
	injected    syntheticFrame
	primed      bool
}

// NewInput creates an Input reading from src. A nil src reads Ebitengine.
func NewInput(src InputSource) *Input {
	if src == nil {
		src = ebitenSource{}
	}
	return &Input{source: src, dragDeadZone: defaultDragDeadZone}
}

// SetSource replaces the device the input is polled from.
func (in *Input) SetSource(src InputSource) {
	in.source = src
}

// SetDragDeadZone sets the distance in pixels the cursor must travel with
// the left button held before Dragging reports true.
func (in *Input) SetDragDeadZone(pixels float64) {
	in.dragDeadZone = pixels
}

// poll captures the device state for a new frame. Injected frames take
// priority over the source; each one lasts exactly one frame.
func (in *Input) poll() {
	in.prevKeys = in.keys
	in.prevButtons = in.buttons
	in.prevCursorX, in.prevCursorY = in.cursorX, in.cursorY

	var src InputSource = in.source
	if len(in.injectQueue) > 0 {
		in.injected = in.injectQueue[0]
		copy(in.injectQueue, in.injectQueue[1:])
		in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
		src = &in.injected
	}

	in.keys = [ebiten.KeyMax + 1]bool{}
	in.keyBuf = src.AppendPressedKeys(in.keyBuf[:0])
	for _, k := range in.keyBuf {
		if k >= 0 && int(k) < len(in.keys) {
			in.keys[k] = true
		}
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		in.buttons[b] = src.MouseButtonPressed(b)
	}
	in.cursorX, in.cursorY = src.CursorPosition()
	in.wheelX, in.wheelY = src.Wheel()

	if !in.primed {
		// No movement or edges on the very first frame.
		in.prevCursorX, in.prevCursorY = in.cursorX, in.cursorY
		in.primed = true
	}

	in.updateDrag()
}

func (in *Input) updateDrag() {
	d := &in.drag
	switch {
	case in.buttons[MouseButtonLeft] && !d.down:
		d.down = true
		d.startX, d.startY = in.cursorX, in.cursorY
		d.dragging = false
	case !in.buttons[MouseButtonLeft] && d.down:
		d.down = false
		d.dragging = false
	case d.down && !d.dragging:
		dx := in.cursorX - d.startX
		dy := in.cursorY - d.startY
		if math.Sqrt(dx*dx+dy*dy) > in.dragDeadZone {
			d.dragging = true
		}
	}
}

// Pressed reports whether k is held this frame.
func (in *Input) Pressed(k ebiten.Key) bool {
	return k >= 0 && int(k) < len(in.keys) && in.keys[k]
}

// JustPressed reports whether k went down this frame.
func (in *Input) JustPressed(k ebiten.Key) bool {
	return in.Pressed(k) && !in.prevKeys[k]
}

// JustReleased reports whether k went up this frame.
func (in *Input) JustReleased(k ebiten.Key) bool {
	return k >= 0 && int(k) < len(in.keys) && !in.keys[k] && in.prevKeys[k]
}

// AnyPressed reports whether any of keys is held.
func (in *Input) AnyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.Pressed(k) {
			return true
		}
	}
	return false
}

// MousePressed reports whether b is held this frame.
func (in *Input) MousePressed(b MouseButton) bool {
	return b < mouseButtonCount && in.buttons[b]
}

// MouseJustPressed reports whether b went down this frame.
func (in *Input) MouseJustPressed(b MouseButton) bool {
	return b < mouseButtonCount && in.buttons[b] && !in.prevButtons[b]
}

// MouseJustReleased reports whether b went up this frame.
func (in *Input) MouseJustReleased(b MouseButton) bool {
	return b < mouseButtonCount && !in.buttons[b] && in.prevButtons[b]
}

// Cursor returns the cursor position in screen pixels.
func (in *Input) Cursor() (x, y float64) {
	return in.cursorX, in.cursorY
}

// CursorDelta returns how far the cursor moved since the previous frame.
func (in *Input) CursorDelta() (dx, dy float64) {
	return in.cursorX - in.prevCursorX, in.cursorY - in.prevCursorY
}

// Wheel returns this frame's scroll delta in lines.
func (in *Input) Wheel() (dx, dy float64) {
	return in.wheelX, in.wheelY
}

// Dragging reports whether the left button is held and the cursor has left
// the drag dead zone since the press.
func (in *Input) Dragging() bool {
	return in.drag.dragging
}

// DragStart returns where the current left-button press began.
func (in *Input) DragStart() (x, y float64) {
	return in.drag.startX, in.drag.startY
}

// Modifiers reads the modifier keys from the current key state.
func (in *Input) Modifiers() KeyModifiers {
	var mods KeyModifiers
	if in.AnyPressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if in.AnyPressed(ebiten.KeyControlLeft, ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if in.AnyPressed(ebiten.KeyAltLeft, ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if in.AnyPressed(ebiten.KeyMetaLeft, ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
