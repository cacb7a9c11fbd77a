package render3d

import "github.com/hajimehoshi/ebiten/v2"

const debugTextureSize = 8

var debugPalette = [debugTextureSize][4]byte{
	{255, 102, 159, 255}, {255, 159, 102, 255}, {236, 255, 102, 255}, {121, 255, 102, 255},
	{102, 255, 198, 255}, {102, 198, 255, 255}, {121, 102, 255, 255}, {236, 102, 255, 255},
}

// uvDebugPixels returns the RGBA bytes of the debug pattern: each row is the
// palette rotated one step further right than the row above.
func uvDebugPixels() []byte {
	pix := make([]byte, 0, 4*debugTextureSize*debugTextureSize)
	for y := 0; y < debugTextureSize; y++ {
		for x := 0; x < debugTextureSize; x++ {
			c := debugPalette[(x-y+debugTextureSize*debugTextureSize)%debugTextureSize]
			pix = append(pix, c[:]...)
		}
	}
	return pix
}

// UVDebugTexture returns an 8x8 rainbow test pattern that makes UV seams and
// stretching visible.
func UVDebugTexture() *ebiten.Image {
	img := ebiten.NewImage(debugTextureSize, debugTextureSize)
	img.WritePixels(uvDebugPixels())
	return img
}
