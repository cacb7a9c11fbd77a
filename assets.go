package gdan

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	placeholderSize = 64
	placeholderCell = 8
)

// Assets loads images relative to a root directory and caches them by path.
type Assets struct {
	Dir string

	images      map[string]*ebiten.Image
	failed      map[string]bool
	placeholder *ebiten.Image
}

// NewAssets creates a loader rooted at dir.
func NewAssets(dir string) *Assets {
	return &Assets{
		Dir:    dir,
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]bool),
	}
}

// LoadImage loads and caches the image at rel, a slash-separated path below
// Dir.
func (a *Assets) LoadImage(rel string) (*ebiten.Image, error) {
	if img, ok := a.images[rel]; ok {
		return img, nil
	}
	path := filepath.Join(a.Dir, filepath.FromSlash(rel))
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("gdan: load image %s: %w", path, err)
	}
	a.images[rel] = img
	return img, nil
}

// Image returns the image at rel, or a checkerboard placeholder when it cannot
// be loaded. The failure is logged once per path.
func (a *Assets) Image(rel string) *ebiten.Image {
	if a.failed[rel] {
		return a.Placeholder()
	}
	img, err := a.LoadImage(rel)
	if err != nil {
		a.failed[rel] = true
		Logf("warning: %v (using placeholder)", err)
		return a.Placeholder()
	}
	return img
}

// Placeholder returns the magenta and black checkerboard used for missing
// images.
func (a *Assets) Placeholder() *ebiten.Image {
	if a.placeholder == nil {
		a.placeholder = Checkerboard(placeholderSize, placeholderCell, ColorFuchsia, ColorBlack)
	}
	return a.placeholder
}

// Checkerboard builds a size x size image of alternating cell x cell squares.
func Checkerboard(size, cell int, c0, c1 Color) *ebiten.Image {
	if cell <= 0 {
		cell = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, 4*size*size)
	p0, p1 := c0.toRGBA(), c1.toRGBA()
	for y := range size {
		for x := range size {
			p := p0
			if (x/cell+y/cell)%2 == 1 {
				p = p1
			}
			i := 4 * (y*size + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = p.R, p.G, p.B, p.A
		}
	}
	img.WritePixels(pix)
	return img
}
