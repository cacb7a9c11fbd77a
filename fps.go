package gdan

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS in the top-right corner.
// The text is re-rendered every ~0.5 seconds.
type fpsOverlay struct {
	img   *ebiten.Image
	timer Timer
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{
		img:   ebiten.NewImage(100, 32),
		timer: NewTimer(0.5, TimerRepeating),
	}
	o.redraw()
	return o
}

func (o *fpsOverlay) redraw() {
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image, dt float64) {
	if o.timer.Tick(dt).JustFinished() {
		o.redraw()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-o.img.Bounds().Dx()-4), 4)
	screen.DrawImage(o.img, op)
}
