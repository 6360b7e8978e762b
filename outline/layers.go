package outline

import (
	"math"

	"github.com/gogpu/gg"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// Layer is the resolved geometry of one outline layer.
type Layer struct {
	Role  cloudfont.Role
	Color string

	// Width is the stroke width after font-size scaling.
	Width float64
	// Offset is the base ring radius around the text center.
	Offset float64
	// Intensity is the jitter intensity passed to Generate.
	Intensity float64
	// FontSize is the text size the layer was planned for.
	FontSize float64
}

// Ring generates and smooths the layer's ring around center.
func (l Layer) Ring(center gg.Point) Ring {
	return Smooth(Generate(center, l.Offset, l.Intensity, l.FontSize))
}

// Plan resolves the outer and middle layers of cfg, outermost first.
// It returns nil when the text is empty or whitespace.
func Plan(cfg cloudfont.RenderConfig) []Layer {
	if !cfg.HasText() {
		return nil
	}
	fs := cfg.Text.FontSize
	ratio := cloudfont.FontSizeRatio(fs)
	outer, middle := cfg.Outer(), cfg.Middle()
	strength := outer.CloudStrength

	outerWidth := cloudfont.LayerStrokeWidth(outer.StrokeWidth, fs)
	middleWidth := cloudfont.LayerStrokeWidth(middle.StrokeWidth, fs)

	layers := []Layer{
		{
			Role:      cloudfont.RoleOuter,
			Color:     outer.Color,
			Width:     outerWidth,
			Offset:    outerWidth + (strength/10)*ratio,
			Intensity: strength,
			FontSize:  fs,
		},
		{
			Role:      cloudfont.RoleMiddle,
			Color:     middle.Color,
			Width:     middleWidth,
			Offset:    middleWidth / 2 * ratio,
			Intensity: strength / 2,
			FontSize:  fs,
		},
	}
	cloudfont.Logger().Debug("outline: planned layers",
		"fontSize", fs, "outerWidth", outerWidth, "middleWidth", middleWidth,
		"segments", SegmentCount(strength, fs))
	return layers
}

// Rings returns the smoothed ring of every planned layer around center.
func Rings(cfg cloudfont.RenderConfig, center gg.Point) []Ring {
	layers := Plan(cfg)
	if len(layers) == 0 {
		return nil
	}
	rings := make([]Ring, len(layers))
	for i, l := range layers {
		rings[i] = l.Ring(center)
	}
	return rings
}

// Padding returns the space left around the text on each side of the
// preview frame.
func Padding(strength, fontSize float64) float64 {
	return math.Max(5, math.Floor(strength/10)) * cloudfont.FontSizeRatio(fontSize)
}
