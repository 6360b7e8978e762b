package export

import (
	"math"
	"strings"

	"github.com/gogpu/gg"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/outline"
	"github.com/clemente0731/cloud-font-generator/raster"
)

// SVG layout constants.
const (
	// MinSVGPadding is the smallest frame padding around the text.
	MinSVGPadding = 20
	// MiddleScale shrinks the outer ring into the middle ring.
	MiddleScale = 0.85
	// OuterStrokeShade and MiddleStrokeShade darken the path strokes.
	OuterStrokeShade  = -20
	MiddleStrokeShade = -10
)

// SVGPadding returns the frame padding for cloud strength.
func SVGPadding(strength float64) float64 {
	return math.Max(MinSVGPadding, math.Floor(strength/3))
}

// SVG renders cfg as a standalone SVG document. The outline is an
// elliptical cloud around the text box rather than a trace of the raster
// stamps. Text width is measured with m, or estimated when m is nil.
func SVG(cfg cloudfont.RenderConfig, m raster.Measurer) []byte {
	font := raster.FontOf(cfg.Text)
	fs := cfg.Text.FontSize
	outer, middle, inner := cfg.Outer(), cfg.Middle(), cfg.Inner()
	strength := outer.CloudStrength

	tw := textWidth(m, cfg.Text.Content, font)
	pad := SVGPadding(strength)
	w, h := tw+4*pad, fs+4*pad
	center := gg.Pt(w/2, h/2)

	ring := outline.Smooth(outline.GenerateEllipse(center, w/3, h/3, strength, fs))

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	attr(&b, "width", num(w))
	attr(&b, "height", num(h))
	attr(&b, "viewBox", "0 0 "+num(w)+" "+num(h))
	b.WriteString(">")

	if !cfg.TransparentBackground {
		b.WriteString("<rect")
		attr(&b, "width", num(w))
		attr(&b, "height", num(h))
		attr(&b, "fill", "#FFFFFF")
		b.WriteString(" />")
	}

	writePath(&b, outline.Fit(ring), outer.Color, cloudfont.AdjustColor(outer.Color, OuterStrokeShade), outer.StrokeWidth)
	writePath(&b, outline.Fit(ring.Scale(center, MiddleScale)), middle.Color, cloudfont.AdjustColor(middle.Color, MiddleStrokeShade), middle.StrokeWidth)

	b.WriteString("<text")
	attr(&b, "x", num(center.X))
	attr(&b, "y", num(center.Y))
	attr(&b, "font-family", cfg.Text.FontFamily)
	attr(&b, "font-size", num(fs))
	attr(&b, "font-weight", num(float64(cfg.Text.FontWeight)))
	attr(&b, "fill", inner.Color)
	attr(&b, "text-anchor", "middle")
	attr(&b, "dominant-baseline", "middle")
	b.WriteString(">")
	b.WriteString(escapeXML(cfg.Text.Content))
	b.WriteString("</text>")

	if inner.Underline {
		y := center.Y + fs/2 + raster.UnderlineGap
		b.WriteString("<line")
		attr(&b, "x1", num(center.X-tw/2))
		attr(&b, "y1", num(y))
		attr(&b, "x2", num(center.X+tw/2))
		attr(&b, "y2", num(y))
		attr(&b, "stroke", inner.Color)
		attr(&b, "stroke-width", num(cloudfont.UnderlineWidth(fs)))
		attr(&b, "stroke-linecap", "round")
		b.WriteString(" />")
	}

	b.WriteString("</svg>")
	cloudfont.Logger().Debug("export: svg", "width", w, "height", h, "segments", len(ring)-1)
	return []byte(b.String())
}

func writePath(b *strings.Builder, p outline.Path, fill, stroke string, width float64) {
	b.WriteString("<path")
	attr(b, "d", p.SVGData())
	attr(b, "fill", fill)
	attr(b, "stroke", stroke)
	attr(b, "stroke-width", num(width))
	attr(b, "stroke-linejoin", "round")
	b.WriteString(" />")
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(escapeXML(value))
	b.WriteByte('"')
}
