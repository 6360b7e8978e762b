package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"
)

// ImageSource provides the pixels of a rendered surface.
// *raster.Canvas implements it.
type ImageSource interface {
	Image() *image.RGBA
}

// PNG encodes the pixels of src. With transparent set the pixels are
// copied as is; otherwise they are composited over white.
func PNG(src ImageSource, transparent bool) ([]byte, error) {
	if src == nil {
		return nil, ErrNoSurface
	}
	img := src.Image()
	if img == nil {
		return nil, ErrNoSurface
	}

	out := image.NewRGBA(img.Bounds())
	if transparent {
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("export: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
