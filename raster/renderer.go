package raster

import (
	"github.com/gogpu/gg"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/outline"
)

// Stamp parameters of the outline layers.
const (
	// LayerBlurFactor scales the layer stroke width into its glow radius.
	LayerBlurFactor = 0.5
	// EdgeAlpha is the opacity of the edge softening pass.
	EdgeAlpha = 0.7
	// EdgeWidthFactor scales the layer stroke width for the softening pass.
	EdgeWidthFactor = 0.3
	// UnderlineGap is the space between the text box and the underline.
	UnderlineGap = 2
)

// Renderer draws a RenderConfig onto a Surface.
//
// The outline layers are produced by stamping the whole string at each
// point of the layer's smoothed ring, outermost layer first. The inner
// text is then drawn once at the center of the surface.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws cfg onto s. It does not clear s first. Empty or
// whitespace-only text draws nothing.
func (r *Renderer) Render(s Surface, cfg cloudfont.RenderConfig) {
	if !cfg.HasText() {
		return
	}

	w, h := s.Size()
	center := gg.Pt(w/2, h/2)
	txt := cfg.Text.Content
	font := FontOf(cfg.Text)

	for _, l := range outline.Plan(cfg) {
		ring := l.Ring(center)
		cloudfont.Logger().Debug("raster: stamping layer",
			"role", l.Role, "points", len(ring), "width", l.Width)

		s.BeginLayer(l.Width * LayerBlurFactor)
		solid := Paint{Color: l.Color, Alpha: 1, LineWidth: l.Width}
		for _, p := range ring {
			s.FillText(txt, p.X, p.Y, font, solid)
			s.StrokeText(txt, p.X, p.Y, font, solid)
		}
		edge := Paint{Color: l.Color, Alpha: EdgeAlpha, LineWidth: l.Width * EdgeWidthFactor}
		for i := 0; i < len(ring); i += 2 {
			s.StrokeText(txt, ring[i].X, ring[i].Y, font, edge)
		}
		s.EndLayer()
	}

	inner := cfg.Inner()
	s.FillText(txt, center.X, center.Y, font, Paint{Color: inner.Color, Alpha: 1})

	if inner.Underline {
		m := s.MeasureText(txt, font)
		y := center.Y + m.Height()/2 + UnderlineGap
		s.StrokeLine(center.X-m.Width/2, y, center.X+m.Width/2, y, Paint{
			Color:     inner.Color,
			Alpha:     1,
			LineWidth: cloudfont.UnderlineWidth(cfg.Text.FontSize),
		})
	}
}
