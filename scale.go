package cloudfont

import "math"

// Font-size tier breakpoints. Derived geometry grows more slowly above
// each of them so very large text does not turn into a solid blob.
const (
	TierSmall  = 100
	TierMedium = 200
)

// FontSizeRatio returns fontSize relative to BaseFontSize.
func FontSizeRatio(fontSize float64) float64 {
	return fontSize / BaseFontSize
}

// StrokeScale returns the factor applied to configured stroke widths.
// Above TierMedium the ratio is reduced to 70%.
func StrokeScale(fontSize float64) float64 {
	ratio := FontSizeRatio(fontSize)
	if fontSize > TierMedium {
		return ratio * 0.7
	}
	return ratio
}

// LayerStrokeWidth scales a configured stroke width to fontSize, never
// going below one pixel.
func LayerStrokeWidth(base, fontSize float64) float64 {
	return math.Max(1, base*StrokeScale(fontSize))
}

// UnderlineWidth returns the underline thickness for fontSize:
// fontSize/24 up to 100px, then 1/40 per pixel up to 200px, then 1/60.
func UnderlineWidth(fontSize float64) float64 {
	const (
		small  = float64(TierSmall) / 24
		medium = float64(TierMedium-TierSmall) / 40
	)
	switch {
	case fontSize <= TierSmall:
		return math.Max(1, fontSize/24)
	case fontSize <= TierMedium:
		return math.Max(1, small+(fontSize-TierSmall)/40)
	default:
		return math.Max(1, small+medium+(fontSize-TierMedium)/60)
	}
}

// SegmentMultiplier returns the ring density factor for fontSize.
func SegmentMultiplier(fontSize float64) float64 {
	switch {
	case fontSize > TierMedium:
		return 2.0
	case fontSize > TierSmall:
		return 1.5
	default:
		return 1.0
	}
}
