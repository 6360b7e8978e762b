package raster

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/fonts"
)

// Canvas is a Surface backed by a gg software context.
//
// Text is drawn from glyph outlines so it can be both filled and stroked.
// Layers are rendered into an offscreen context and composited onto the
// main context as a Gaussian-blurred copy followed by the sharp copy.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dc    *gg.Context
	layer *gg.Context
	blur  float64

	faces     FaceSource
	ownsFaces bool
	extractor *text.OutlineExtractor
	layouts   map[layoutKey]*textLayout
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of w×h pixels.
func NewCanvas(w, h int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		dc:        gg.NewContext(max(w, 1), max(h, 1)),
		faces:     o.faces,
		extractor: text.NewOutlineExtractor(),
		layouts:   make(map[layoutKey]*textLayout),
	}
	if c.faces == nil {
		c.faces = fonts.NewResolver()
		c.ownsFaces = true
	}
	return c
}

// Size implements Surface.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// Image returns a snapshot of the canvas pixels.
func (c *Canvas) Image() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// Close releases the gg contexts and, if the canvas created it, the font
// resolver.
func (c *Canvas) Close() error {
	if c.layer != nil {
		_ = c.layer.Close()
		c.layer = nil
	}
	err := c.dc.Close()
	if closer, ok := c.faces.(interface{ Close() error }); ok && c.ownsFaces {
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// MeasureText implements Measurer. Text whose font cannot be resolved
// measures as zero.
func (c *Canvas) MeasureText(s string, f Font) TextMetrics {
	l, ok := c.layout(s, f)
	if !ok {
		return TextMetrics{}
	}
	return l.metrics
}

// FillText implements Surface.
func (c *Canvas) FillText(s string, x, y float64, f Font, p Paint) {
	l, ok := c.layout(s, f)
	if !ok {
		return
	}
	dc := c.target()
	if !setPaint(dc, p) {
		return
	}
	l.appendPath(dc, x, y)
	if err := dc.Fill(); err != nil {
		cloudfont.Logger().Warn("raster: fill text", "err", err)
	}
}

// StrokeText implements Surface.
func (c *Canvas) StrokeText(s string, x, y float64, f Font, p Paint) {
	l, ok := c.layout(s, f)
	if !ok || p.LineWidth <= 0 {
		return
	}
	dc := c.target()
	if !setPaint(dc, p) {
		return
	}
	l.appendPath(dc, x, y)
	if err := dc.Stroke(); err != nil {
		cloudfont.Logger().Warn("raster: stroke text", "err", err)
	}
}

// StrokeLine implements Surface.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, p Paint) {
	if p.LineWidth <= 0 {
		return
	}
	dc := c.target()
	if !setPaint(dc, p) {
		return
	}
	dc.MoveTo(x0, y0)
	dc.LineTo(x1, y1)
	if err := dc.Stroke(); err != nil {
		cloudfont.Logger().Warn("raster: stroke line", "err", err)
	}
}

// BeginLayer implements Surface. An unfinished layer is composited first.
func (c *Canvas) BeginLayer(blur float64) {
	if c.layer != nil {
		c.EndLayer()
	}
	c.layer = gg.NewContext(c.dc.Width(), c.dc.Height())
	c.blur = blur
}

// EndLayer implements Surface.
func (c *Canvas) EndLayer() {
	if c.layer == nil {
		return
	}
	sharp := c.layer.Image()
	if c.blur >= 0.5 {
		c.dc.DrawImage(gg.ImageBufFromImage(blur.Gaussian(sharp, c.blur)), 0, 0)
	}
	c.dc.DrawImage(gg.ImageBufFromImage(sharp), 0, 0)
	_ = c.layer.Close()
	c.layer = nil
}

func (c *Canvas) target() *gg.Context {
	if c.layer != nil {
		return c.layer
	}
	return c.dc
}

func (c *Canvas) layout(s string, f Font) (*textLayout, bool) {
	key := layoutKey{font: f, text: s}
	if l, ok := c.layouts[key]; ok {
		return l, true
	}
	face, err := c.faces.Face(fonts.Request{
		Family: f.Family,
		Weight: f.Weight,
		Size:   f.Size,
		Sample: s,
	})
	if err != nil {
		cloudfont.Logger().Warn("raster: resolve font", "family", f.Family, "err", err)
		return nil, false
	}
	l := layoutText(c.extractor, face, s)
	c.layouts[key] = l
	return l, true
}

func setPaint(dc *gg.Context, p Paint) bool {
	col, err := cloudfont.ParseColor(p.Color)
	if err != nil {
		cloudfont.Logger().Warn("raster: paint color", "err", err)
		return false
	}
	dc.SetRGBA(col.R, col.G, col.B, clampAlpha(p.Alpha))
	dc.SetLineWidth(p.LineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)
	return true
}

func clampAlpha(a float64) float64 {
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}
