package export

import (
	"golang.org/x/text/width"

	"github.com/clemente0731/cloud-font-generator/raster"
)

// Advance factors used when no Measurer is available.
const (
	wideAdvance   = 1.0
	narrowAdvance = 0.55
)

// textWidth measures s with m, or estimates it from the East Asian width
// of each rune when m is nil.
func textWidth(m raster.Measurer, s string, f raster.Font) float64 {
	if m != nil {
		return m.MeasureText(s, f).Width
	}
	return estimateWidth(s, f.Size)
}

func estimateWidth(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += wideAdvance * size
		default:
			w += narrowAdvance * size
		}
	}
	return w
}
