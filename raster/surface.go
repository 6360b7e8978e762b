package raster

import cloudfont "github.com/clemente0731/cloud-font-generator"

// Font selects the face used to draw a string.
type Font struct {
	Family string
	Weight cloudfont.FontWeight
	Size   float64
}

// FontOf returns the font described by ts.
func FontOf(ts cloudfont.TextSpec) Font {
	return Font{Family: ts.FontFamily, Weight: ts.FontWeight, Size: ts.FontSize}
}

// Paint is the style of one drawing call.
type Paint struct {
	// Color is a #RGB or #RRGGBB hex colour.
	Color string
	// Alpha multiplies the colour's opacity, 0 to 1.
	Alpha float64
	// LineWidth is used by stroke calls.
	LineWidth float64
}

// TextMetrics describes the extent of a laid out string.
type TextMetrics struct {
	Width float64
	// Ascent and Descent are positive distances from the baseline.
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (m TextMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// Measurer measures text without drawing it.
type Measurer interface {
	MeasureText(s string, f Font) TextMetrics
}

// Surface is the drawing target of a Renderer.
//
// Text calls position the string by its center: x is the horizontal
// middle of the advance and y the vertical middle between ascent and
// descent. Strokes use round joins and caps.
type Surface interface {
	Measurer

	// Size returns the drawable width and height in pixels.
	Size() (w, h float64)

	FillText(s string, x, y float64, f Font, p Paint)
	StrokeText(s string, x, y float64, f Font, p Paint)
	StrokeLine(x0, y0, x1, y1 float64, p Paint)

	// BeginLayer starts an offscreen layer. Everything drawn until the
	// matching EndLayer is composited with a soft glow of the given blur
	// radius underneath. Layers do not nest.
	BeginLayer(blur float64)
	EndLayer()
}
