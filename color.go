package cloudfont

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#RGB" or "#RRGGBB" hex colour.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// AdjustColor adds amount (-255..255) to each 8-bit channel of a hex colour,
// clamping at 0 and 255. Unparseable colours are returned unchanged.
func AdjustColor(hex string, amount int) string {
	c, err := ParseColor(hex)
	if err != nil {
		return hex
	}
	r, g, b := c.RGB255()
	shift := func(v uint8) float64 {
		n := int(v) + amount
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return float64(n) / 255
	}
	return colorful.Color{R: shift(r), G: shift(g), B: shift(b)}.Hex()
}
