package raster

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/outline"
)

type call struct {
	op   string
	text string
	x, y float64
	x1   float64
	font Font
	p    Paint
	blur float64
}

// recorder is a Surface that records every call.
type recorder struct {
	w, h    float64
	metrics TextMetrics
	calls   []call
}

func newRecorder() *recorder {
	return &recorder{w: 400, h: 200, metrics: TextMetrics{Width: 192, Ascent: 40, Descent: 10}}
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) MeasureText(s string, f Font) TextMetrics {
	r.calls = append(r.calls, call{op: "measure", text: s, font: f})
	return r.metrics
}

func (r *recorder) FillText(s string, x, y float64, f Font, p Paint) {
	r.calls = append(r.calls, call{op: "fill", text: s, x: x, y: y, font: f, p: p})
}

func (r *recorder) StrokeText(s string, x, y float64, f Font, p Paint) {
	r.calls = append(r.calls, call{op: "stroke", text: s, x: x, y: y, font: f, p: p})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1 float64, p Paint) {
	r.calls = append(r.calls, call{op: "line", x: x0, y: y0, x1: x1, p: p})
}

func (r *recorder) BeginLayer(blur float64) {
	r.calls = append(r.calls, call{op: "begin", blur: blur})
}

func (r *recorder) EndLayer() {
	r.calls = append(r.calls, call{op: "end"})
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

func count(ops []string, op string) int {
	n := 0
	for _, o := range ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestRenderEmptyTextDrawsNothing(t *testing.T) {
	for _, content := range []string{"", " ", "\t\n  "} {
		cfg := cloudfont.DefaultConfig()
		cfg.Text.Content = content
		rec := newRecorder()
		NewRenderer().Render(rec, cfg)
		assert.Empty(t, rec.calls, "content %q", content)
	}
}

func TestRenderLayerStructure(t *testing.T) {
	cfg := cloudfont.DefaultConfig()
	rec := newRecorder()
	NewRenderer().Render(rec, cfg)

	layers := outline.Plan(cfg)
	require.Len(t, layers, 2)
	ringLen := outline.SegmentCount(30, 48) + 1
	edge := (ringLen + 1) / 2

	ops := rec.ops()
	assert.Equal(t, 2, count(ops, "begin"))
	assert.Equal(t, 2, count(ops, "end"))
	assert.Equal(t, 2*ringLen+1, count(ops, "fill"))
	assert.Equal(t, 2*(ringLen+edge), count(ops, "stroke"))
	assert.Zero(t, count(ops, "line"))
	assert.Zero(t, count(ops, "measure"))

	// Outer layer first, with a glow of half its width.
	first := rec.calls[0]
	assert.Equal(t, "begin", first.op)
	assert.InDelta(t, layers[0].Width*0.5, first.blur, 1e-9)

	outerFill := rec.calls[1]
	assert.Equal(t, "fill", outerFill.op)
	assert.Equal(t, "#F0F0F0", outerFill.p.Color)
	assert.Equal(t, 1.0, outerFill.p.Alpha)
	assert.Equal(t, "云朵字体", outerFill.text)
	assert.Equal(t, Font{Family: "Arial", Weight: 400, Size: 48}, outerFill.font)

	outerStroke := rec.calls[2]
	assert.Equal(t, "stroke", outerStroke.op)
	assert.InDelta(t, 8.0, outerStroke.p.LineWidth, 1e-9)

	// First edge softening stroke follows the 2·ringLen stamp calls.
	soft := rec.calls[1+2*ringLen]
	assert.Equal(t, "stroke", soft.op)
	assert.Equal(t, 0.7, soft.p.Alpha)
	assert.InDelta(t, 8*0.3, soft.p.LineWidth, 1e-9)

	// The inner text is last, at the center.
	last := rec.calls[len(rec.calls)-1]
	assert.Equal(t, "fill", last.op)
	assert.Equal(t, "#333333", last.p.Color)
	assert.Equal(t, 200.0, last.x)
	assert.Equal(t, 100.0, last.y)
}

func TestRenderStampsAtRingPoints(t *testing.T) {
	cfg := cloudfont.DefaultConfig()
	rec := newRecorder()
	NewRenderer().Render(rec, cfg)

	layers := outline.Plan(cfg)
	ring := layers[0].Ring(gg.Pt(200, 100))
	for i, p := range ring {
		c := rec.calls[1+2*i]
		assert.InDelta(t, p.X, c.x, 1e-9)
		assert.InDelta(t, p.Y, c.y, 1e-9)
	}
}

func TestRenderUnderline(t *testing.T) {
	tests := []struct {
		fontSize float64
		width    float64
	}{
		{48, 2},
		{24, 1},
		{150, 100.0/24 + 50.0/40},
	}
	for _, tt := range tests {
		cfg := cloudfont.DefaultConfig()
		cfg.Text.FontSize = tt.fontSize
		cfg = cfg.WithLayer(cloudfont.LayerSpec{Role: cloudfont.RoleInner, Color: "#112233", Underline: true})

		rec := newRecorder()
		NewRenderer().Render(rec, cfg)

		last := rec.calls[len(rec.calls)-1]
		require.Equal(t, "line", last.op)
		assert.InDelta(t, tt.width, last.p.LineWidth, 1e-9, "fontSize %v", tt.fontSize)
		assert.Equal(t, "#112233", last.p.Color)
		assert.InDelta(t, 200-96.0, last.x, 1e-9)
		assert.InDelta(t, 200+96.0, last.x1, 1e-9)
		assert.InDelta(t, 100+25+2.0, last.y, 1e-9)
	}
}

func TestRenderStrokeScalesWithFontSize(t *testing.T) {
	cfg := cloudfont.DefaultConfig()
	cfg.Text.FontSize = 250
	rec := newRecorder()
	NewRenderer().Render(rec, cfg)

	stroke := rec.calls[2]
	require.Equal(t, "stroke", stroke.op)
	assert.InDelta(t, 8*(250.0/48)*0.7, stroke.p.LineWidth, 1e-9)
}
