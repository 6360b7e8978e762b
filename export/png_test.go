package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticImage struct{ img *image.RGBA }

func (s staticImage) Image() *image.RGBA { return s.img }

func halfCovered() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	// One opaque red pixel, one half-transparent blue pixel, the rest empty.
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 128, A: 128})
	return img
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestPNGTransparent(t *testing.T) {
	data, err := PNG(staticImage{halfCovered()}, true)
	require.NoError(t, err)
	img := decode(t, data)

	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	_, _, _, a := img.At(3, 1).RGBA()
	assert.Zero(t, a)
	r, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(1, 0).RGBA()
	assert.InDelta(t, 0x8080, a, 0x101)
}

func TestPNGOpaqueOverWhite(t *testing.T) {
	data, err := PNG(staticImage{halfCovered()}, false)
	require.NoError(t, err)
	img := decode(t, data)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			assert.Equal(t, uint32(0xffff), a, "pixel %d,%d", x, y)
		}
	}
	r, g, b, _ := img.At(3, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
	r, g, _, _ = img.At(1, 0).RGBA()
	// Half blue over white is a light blue.
	assert.InDelta(t, 0x7f7f, r, 0x202)
	assert.InDelta(t, 0x7f7f, g, 0x202)
}

func TestPNGNoSurface(t *testing.T) {
	_, err := PNG(nil, false)
	assert.ErrorIs(t, err, ErrNoSurface)

	_, err = PNG(staticImage{}, false)
	assert.ErrorIs(t, err, ErrNoSurface)
}
