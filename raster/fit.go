package raster

import (
	"math"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/outline"
)

// FitSize returns a canvas size that holds every layer of cfg around text
// with metrics m, including glow and frame padding.
func FitSize(cfg cloudfont.RenderConfig, m TextMetrics) (w, h int) {
	var reach float64
	for _, l := range outline.Plan(cfg) {
		r := l.Offset*(1+l.Intensity/100) + l.Width*(0.5+LayerBlurFactor*2)
		reach = math.Max(reach, r)
	}
	fs := cfg.Text.FontSize
	pad := outline.Padding(cfg.Outer().CloudStrength, fs)
	textH := math.Max(fs, m.Height())
	if cfg.Inner().Underline {
		textH += 2 * (UnderlineGap + cloudfont.UnderlineWidth(fs))
	}
	w = int(math.Ceil(m.Width + 2*(reach+pad)))
	h = int(math.Ceil(textH + 2*(reach+pad)))
	return max(w, 1), max(h, 1)
}
