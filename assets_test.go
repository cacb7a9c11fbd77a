package gdan

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadImageCaches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "wg"), 0o755))
	f, err := os.Create(filepath.Join(dir, "wg", "tile.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 4, 3))))
	require.NoError(t, f.Close())

	a := NewAssets(dir)
	img, err := a.LoadImage("wg/tile.png")
	require.NoError(t, err)
	require.Equal(t, 4, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())

	again, err := a.LoadImage("wg/tile.png")
	require.NoError(t, err)
	require.Same(t, img, again)
	require.Same(t, img, a.Image("wg/tile.png"))
}

func TestMissingImageUsesPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	prev := SetLogOutput(&buf)
	defer SetLogOutput(prev)

	a := NewAssets(t.TempDir())
	_, err := a.LoadImage("nope.png")
	require.Error(t, err)

	img := a.Image("nope.png")
	require.Same(t, a.Placeholder(), img)
	require.Equal(t, placeholderSize, img.Bounds().Dx())
	require.True(t, a.failed["nope.png"])
	require.Same(t, img, a.Image("nope.png"))
	require.Equal(t, 1, strings.Count(buf.String(), "using placeholder"))
}

func TestCheckerboardSize(t *testing.T) {
	img := Checkerboard(16, 4, ColorWhite, ColorBlack)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())

	// A zero cell size falls back to single pixels.
	require.NotPanics(t, func() { Checkerboard(2, 0, ColorWhite, ColorBlack) })
}
