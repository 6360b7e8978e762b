package raster

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// textLayout is a string converted to outline segments relative to the
// start of its baseline.
type textLayout struct {
	segments []text.OutlineSegment
	metrics  TextMetrics
}

type layoutKey struct {
	font Font
	text string
}

func layoutText(ex *text.OutlineExtractor, face text.Face, s string) *textLayout {
	m := face.Metrics()
	l := &textLayout{
		metrics: TextMetrics{
			Width:   face.Advance(s),
			Ascent:  m.Ascent,
			Descent: m.Descent,
		},
	}
	parsed := face.Source().Parsed()
	for g := range face.Glyphs(s) {
		o, err := ex.ExtractOutline(parsed, g.GID, face.Size())
		if err != nil {
			cloudfont.Logger().Warn("raster: glyph outline", "rune", string(g.Rune), "err", err)
			continue
		}
		if o == nil || o.IsEmpty() {
			continue
		}
		o = o.Translate(float32(g.X), float32(g.Y))
		l.segments = append(l.segments, o.Segments...)
	}
	return l
}

// appendPath adds the layout to dc's current path with its center at (x, y).
func (l *textLayout) appendPath(dc *gg.Context, x, y float64) {
	ox := x - l.metrics.Width/2
	oy := y + (l.metrics.Ascent-l.metrics.Descent)/2
	pt := func(p text.OutlinePoint) (float64, float64) {
		return ox + float64(p.X), oy + float64(p.Y)
	}

	open := false
	for _, seg := range l.segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.MoveTo(pt(seg.Points[0]))
			open = true
		case text.OutlineOpLineTo:
			dc.LineTo(pt(seg.Points[0]))
		case text.OutlineOpQuadTo:
			cx, cy := pt(seg.Points[0])
			px, py := pt(seg.Points[1])
			dc.QuadraticTo(cx, cy, px, py)
		case text.OutlineOpCubicTo:
			c1x, c1y := pt(seg.Points[0])
			c2x, c2y := pt(seg.Points[1])
			px, py := pt(seg.Points[2])
			dc.CubicTo(c1x, c1y, c2x, c2y, px, py)
		}
	}
	if open {
		dc.ClosePath()
	}
}
