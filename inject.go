package gdan

import "github.com/hajimehoshi/ebiten/v2"

// syntheticFrame is the complete device state for one injected frame.
// Screen coordinates are used, matching what a tester sees in screenshots.
type syntheticFrame struct {
	keys    []ebiten.Key
	buttons [mouseButtonCount]bool
	x, y    float64
	wheelY  float64
}

func (f *syntheticFrame) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *syntheticFrame) MouseButtonPressed(b MouseButton) bool {
	return b < mouseButtonCount && f.buttons[b]
}

func (f *syntheticFrame) CursorPosition() (float64, float64) { return f.x, f.y }

func (f *syntheticFrame) Wheel() (float64, float64) { return 0, f.wheelY }

// pending returns the state the next injected frame starts from: the cursor
// stays where the last queued frame left it, and nothing is held.
func (in *Input) pending() syntheticFrame {
	if n := len(in.injectQueue); n > 0 {
		last := in.injectQueue[n-1]
		return syntheticFrame{x: last.x, y: last.y}
	}
	return syntheticFrame{x: in.cursorX, y: in.cursorY}
}

// Injecting reports whether synthetic frames are still queued.
func (in *Input) Injecting() bool {
	return len(in.injectQueue) > 0
}

// InjectKey queues a press of key that is held for one frame and released on
// the next. Consumes two frames.
func (in *Input) InjectKey(key ebiten.Key) {
	in.InjectKeyHold(key, 1)
}

// InjectKeyHold queues key held down for frames frames, then one frame with
// it released.
func (in *Input) InjectKeyHold(key ebiten.Key, frames int) {
	in.InjectChord(frames, key)
}

// InjectChord queues keys held down together for frames frames, then one
// frame with all of them released.
func (in *Input) InjectChord(frames int, keys ...ebiten.Key) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		f := in.pending()
		f.keys = append([]ebiten.Key(nil), keys...)
		in.injectQueue = append(in.injectQueue, f)
	}
	in.injectQueue = append(in.injectQueue, in.pending())
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed on the next frame's poll.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticFrame{
		x: x, y: y,
		buttons: [mouseButtonCount]bool{MouseButtonLeft: true},
	})
}

// InjectMove queues a pointer move with the left button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.InjectPress(x, y)
}

// InjectHover queues a pointer move with every button up.
func (in *Input) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticFrame{x: x, y: y})
}

// InjectRelease queues a frame with every button up at the given screen
// coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticFrame{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// InjectWheel queues one frame scrolling dy lines (positive is up).
func (in *Input) InjectWheel(dy float64) {
	f := in.pending()
	f.wheelY = dy
	in.injectQueue = append(in.injectQueue, f)
}

// InjectWait queues frames idle frames that keep the cursor in place.
func (in *Input) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		in.injectQueue = append(in.injectQueue, in.pending())
	}
}
