// Package shadow approximates the cloud outline with a ring of CSS
// text-shadow offsets, one ring per outline layer.
package shadow

import (
	"math"
	"strconv"
	"strings"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// Term is one text-shadow entry.
type Term struct {
	DX, DY float64
	Blur   float64
	Color  string
}

// CSS formats t as "dxpx dypx blurpx color" with one decimal.
func (t Term) CSS() string {
	var b strings.Builder
	writePx(&b, t.DX)
	b.WriteByte(' ')
	writePx(&b, t.DY)
	b.WriteByte(' ')
	writePx(&b, t.Blur)
	b.WriteByte(' ')
	b.WriteString(t.Color)
	return b.String()
}

func writePx(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'f', 1, 64))
	b.WriteString("px")
}

// Params shapes the shadow ring of one layer.
type Params struct {
	// MinCount is the least number of terms emitted.
	MinCount int
	// Divisor converts cloud strength into a term count.
	Divisor float64
	// Distance and Blur are multiples of the layer width.
	Distance float64
	Blur     float64
	// Variation is the amplitude of the sin(3θ) modulation applied to both.
	Variation float64
}

// Layer parameters matching the raster outer and middle rings.
var (
	OuterParams  = Params{MinCount: 20, Divisor: 2, Distance: 0.8, Blur: 1.0, Variation: 0.2}
	MiddleParams = Params{MinCount: 10, Divisor: 3, Distance: 0.5, Blur: 0.8, Variation: 0.1}
)

// Count returns the number of terms for strength.
func (p Params) Count(strength float64) int {
	return max(p.MinCount, int(math.Floor(strength/p.Divisor)))
}

// Ring returns Count(strength) terms spread at equal angles around the text.
func (p Params) Ring(width, strength float64, color string) []Term {
	n := p.Count(strength)
	terms := make([]Term, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * 2 * math.Pi
		v := math.Sin(3*angle) * p.Variation
		d := width * (p.Distance + v)
		terms = append(terms, Term{
			DX:    math.Cos(angle) * d,
			DY:    math.Sin(angle) * d,
			Blur:  width * (p.Blur + v),
			Color: color,
		})
	}
	return terms
}

// Approximate returns the outer ring followed by the middle ring for cfg.
// Widths are the configured widths, not font-size scaled: CSS shadows are
// laid out relative to the rendered font.
func Approximate(cfg cloudfont.RenderConfig) []Term {
	outer, middle := cfg.Outer(), cfg.Middle()
	strength := outer.CloudStrength
	terms := OuterParams.Ring(outer.StrokeWidth, strength, outer.Color)
	return append(terms, MiddleParams.Ring(middle.StrokeWidth, strength, middle.Color)...)
}

// CSS joins terms into a text-shadow value.
func CSS(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.CSS()
	}
	return strings.Join(parts, ", ")
}
