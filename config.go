package cloudfont

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Input ranges accepted by the editor and enforced by Normalize.
const (
	MinFontSize      = 8
	MaxFontSize      = 360
	MaxOuterStroke   = 20
	MaxMiddleStroke  = 10
	MaxCloudStrength = 100

	// BaseFontSize is the size at which stroke widths are used unscaled.
	BaseFontSize = 48
)

// FontWeight is a CSS numeric font weight, 100 to 900 in steps of 100.
type FontWeight int

// Named font weights.
const (
	WeightThin       FontWeight = 100
	WeightExtraLight FontWeight = 200
	WeightLight      FontWeight = 300
	WeightNormal     FontWeight = 400
	WeightMedium     FontWeight = 500
	WeightSemiBold   FontWeight = 600
	WeightBold       FontWeight = 700
	WeightExtraBold  FontWeight = 800
	WeightBlack      FontWeight = 900
)

// Valid reports whether w is one of the nine CSS weights.
func (w FontWeight) Valid() bool {
	return w >= WeightThin && w <= WeightBlack && w%100 == 0
}

// Snap rounds w to the nearest valid weight.
func (w FontWeight) Snap() FontWeight {
	if w < WeightThin {
		return WeightThin
	}
	if w > WeightBlack {
		return WeightBlack
	}
	return FontWeight(int(math.Round(float64(w)/100)) * 100)
}

// Role identifies a visual layer of the cloud effect.
type Role int

const (
	// RoleOuter is the wide halo drawn first.
	RoleOuter Role = iota
	// RoleMiddle is the thinner ring drawn over the halo.
	RoleMiddle
	// RoleInner is the text itself.
	RoleInner
)

var roleNames = [...]string{"outer", "middle", "inner"}

// String returns the lower-case role name.
func (r Role) String() string {
	if r < RoleOuter || r > RoleInner {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if r < RoleOuter || r > RoleInner {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(roleNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
	role, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// ParseRole parses "outer", "middle" or "inner" (case-insensitive).
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// TextSpec describes the text and its font.
type TextSpec struct {
	Content    string     `json:"content" toml:"content" yaml:"content"`
	FontFamily string     `json:"fontFamily" toml:"font_family" yaml:"fontFamily"`
	FontWeight FontWeight `json:"fontWeight" toml:"font_weight" yaml:"fontWeight"`
	FontSize   float64    `json:"fontSize" toml:"font_size" yaml:"fontSize"`
}

// LayerSpec describes one visual layer.
//
// CloudStrength is only read from the outer layer and Underline only from
// the inner layer.
type LayerSpec struct {
	Role          Role    `json:"role" toml:"role" yaml:"role"`
	Color         string  `json:"color" toml:"color" yaml:"color"`
	StrokeWidth   float64 `json:"strokeWidth" toml:"stroke_width" yaml:"strokeWidth"`
	CloudStrength float64 `json:"cloudStrength,omitempty" toml:"cloud_strength,omitempty" yaml:"cloudStrength,omitempty"`
	Underline     bool    `json:"underline,omitempty" toml:"underline,omitempty" yaml:"underline,omitempty"`
}

// RenderConfig is the complete parameter set for one render pass.
// It is a plain value: copy it, never share it.
type RenderConfig struct {
	Text                  TextSpec    `json:"text" toml:"text" yaml:"text"`
	Layers                []LayerSpec `json:"layers" toml:"layers" yaml:"layers"`
	TransparentBackground bool        `json:"transparentBackground" toml:"transparent_background" yaml:"transparentBackground"`
}

// DefaultConfig returns the configuration the application starts with.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Text: TextSpec{
			Content:    "云朵字体",
			FontFamily: "Arial",
			FontWeight: WeightNormal,
			FontSize:   BaseFontSize,
		},
		Layers: defaultLayers(),
	}
}

func defaultLayers() []LayerSpec {
	return []LayerSpec{
		{Role: RoleOuter, Color: "#F0F0F0", StrokeWidth: 8, CloudStrength: 30},
		{Role: RoleMiddle, Color: "#FFFFFF", StrokeWidth: 2},
		{Role: RoleInner, Color: "#333333"},
	}
}

// HasText reports whether the content has anything besides whitespace.
func (c RenderConfig) HasText() bool {
	return strings.TrimSpace(c.Text.Content) != ""
}

// Layer returns the first layer with the given role.
func (c RenderConfig) Layer(role Role) (LayerSpec, bool) {
	for _, l := range c.Layers {
		if l.Role == role {
			return l, true
		}
	}
	return LayerSpec{}, false
}

// Outer returns the outer layer, or the default outer layer if absent.
func (c RenderConfig) Outer() LayerSpec { return c.layerOrDefault(RoleOuter) }

// Middle returns the middle layer, or the default middle layer if absent.
func (c RenderConfig) Middle() LayerSpec { return c.layerOrDefault(RoleMiddle) }

// Inner returns the inner layer, or the default inner layer if absent.
func (c RenderConfig) Inner() LayerSpec { return c.layerOrDefault(RoleInner) }

func (c RenderConfig) layerOrDefault(role Role) LayerSpec {
	if l, ok := c.Layer(role); ok {
		return l
	}
	return defaultLayers()[role]
}

// WithLayer returns a copy of c with the layer of l.Role replaced by l.
// The layer is appended if c has none with that role.
func (c RenderConfig) WithLayer(l LayerSpec) RenderConfig {
	out := c.Clone()
	for i := range out.Layers {
		if out.Layers[i].Role == l.Role {
			out.Layers[i] = l
			return out
		}
	}
	out.Layers = append(out.Layers, l)
	return out
}

// Clone returns a deep copy of c.
func (c RenderConfig) Clone() RenderConfig {
	out := c
	if c.Layers != nil {
		out.Layers = make([]LayerSpec, len(c.Layers))
		copy(out.Layers, c.Layers)
	}
	return out
}

// Normalize returns a copy of c with every value inside its documented
// range: exactly one outer, middle and inner layer in that order, clamped
// sizes and strengths, snapped weight, valid colours and NFC text.
func (c RenderConfig) Normalize() RenderConfig {
	def := DefaultConfig()
	out := RenderConfig{TransparentBackground: c.TransparentBackground}

	out.Text.Content = norm.NFC.String(c.Text.Content)
	out.Text.FontFamily = strings.TrimSpace(c.Text.FontFamily)
	if out.Text.FontFamily == "" {
		out.Text.FontFamily = def.Text.FontFamily
	}
	out.Text.FontWeight = c.Text.FontWeight
	if out.Text.FontWeight == 0 {
		out.Text.FontWeight = def.Text.FontWeight
	}
	out.Text.FontWeight = out.Text.FontWeight.Snap()
	out.Text.FontSize = clamp(c.Text.FontSize, MinFontSize, MaxFontSize)

	out.Layers = make([]LayerSpec, 0, 3)
	for _, role := range []Role{RoleOuter, RoleMiddle, RoleInner} {
		l := c.layerOrDefault(role)
		if _, err := ParseColor(l.Color); err != nil {
			l.Color = defaultLayers()[role].Color
		}
		switch role {
		case RoleOuter:
			l.StrokeWidth = clamp(l.StrokeWidth, 0, MaxOuterStroke)
			l.CloudStrength = clamp(l.CloudStrength, 0, MaxCloudStrength)
			l.Underline = false
		case RoleMiddle:
			l.StrokeWidth = clamp(l.StrokeWidth, 0, MaxMiddleStroke)
			l.CloudStrength = 0
			l.Underline = false
		case RoleInner:
			l.StrokeWidth = math.Max(0, l.StrokeWidth)
			l.CloudStrength = 0
		}
		out.Layers = append(out.Layers, l)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
