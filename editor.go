package cloudfont

import (
	"math"
	"strconv"
	"strings"
)

// Field names one user-editable parameter. The names match the keys of the
// flat configuration document written by earlier versions of the app.
type Field string

// Editable fields.
const (
	FieldText          Field = "text"
	FieldFontFamily    Field = "fontFamily"
	FieldFontSize      Field = "fontSize"
	FieldFontWeight    Field = "fontWeight"
	FieldOuterColor    Field = "outerColor"
	FieldOuterWidth    Field = "outerWidth"
	FieldCloudStrength Field = "cloudStrength"
	FieldMiddleColor   Field = "middleColor"
	FieldMiddleWidth   Field = "middleWidth"
	FieldInnerColor    Field = "innerColor"
	FieldUnderline     Field = "underline"
	FieldTransparent   Field = "transparentBackground"
)

// Fields returns all editable fields in display order.
func Fields() []Field {
	return []Field{
		FieldText, FieldFontFamily, FieldFontSize, FieldFontWeight,
		FieldOuterColor, FieldOuterWidth, FieldCloudStrength,
		FieldMiddleColor, FieldMiddleWidth,
		FieldInnerColor, FieldUnderline, FieldTransparent,
	}
}

// ParseField matches s against the field names, ignoring case.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields() {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, true
		}
	}
	return "", false
}

// Editor holds the current parameter set and applies raw user input to it.
//
// Input that does not parse or is out of range is ignored and the previous
// value is kept; Set never returns an error. Snapshot hands out immutable
// copies for rendering.
type Editor struct {
	cfg RenderConfig
}

// NewEditor returns an editor starting from the normalized cfg.
func NewEditor(cfg RenderConfig) *Editor {
	return &Editor{cfg: cfg.Normalize()}
}

// Snapshot returns a copy of the current configuration.
func (e *Editor) Snapshot() RenderConfig {
	return e.cfg.Clone()
}

// Set applies raw to field f and reports whether the value was accepted.
func (e *Editor) Set(f Field, raw string) bool {
	switch f {
	case FieldText:
		e.cfg.Text.Content = raw
		return true
	case FieldFontFamily:
		family := strings.TrimSpace(raw)
		if family == "" {
			return false
		}
		e.cfg.Text.FontFamily = family
		return true
	case FieldFontSize:
		v, ok := parseInRange(raw, MinFontSize, MaxFontSize)
		if ok {
			e.cfg.Text.FontSize = v
		}
		return ok
	case FieldFontWeight:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || !FontWeight(n).Valid() {
			return false
		}
		e.cfg.Text.FontWeight = FontWeight(n)
		return true
	case FieldOuterColor:
		return e.setColor(RoleOuter, raw)
	case FieldMiddleColor:
		return e.setColor(RoleMiddle, raw)
	case FieldInnerColor:
		return e.setColor(RoleInner, raw)
	case FieldOuterWidth:
		return e.setWidth(RoleOuter, raw, MaxOuterStroke)
	case FieldMiddleWidth:
		return e.setWidth(RoleMiddle, raw, MaxMiddleStroke)
	case FieldCloudStrength:
		v, ok := parseInRange(raw, 0, MaxCloudStrength)
		if !ok {
			return false
		}
		l := e.cfg.Outer()
		l.CloudStrength = v
		e.cfg = e.cfg.WithLayer(l)
		return true
	case FieldUnderline:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		l := e.cfg.Inner()
		l.Underline = b
		e.cfg = e.cfg.WithLayer(l)
		return true
	case FieldTransparent:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false
		}
		e.cfg.TransparentBackground = b
		return true
	}
	return false
}

func (e *Editor) setColor(role Role, raw string) bool {
	raw = strings.TrimSpace(raw)
	if _, err := ParseColor(raw); err != nil {
		return false
	}
	l := e.cfg.layerOrDefault(role)
	l.Color = raw
	e.cfg = e.cfg.WithLayer(l)
	return true
}

func (e *Editor) setWidth(role Role, raw string, max float64) bool {
	v, ok := parseInRange(raw, 0, max)
	if !ok {
		return false
	}
	l := e.cfg.layerOrDefault(role)
	l.StrokeWidth = v
	e.cfg = e.cfg.WithLayer(l)
	return true
}

func parseInRange(raw string, lo, hi float64) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || v < lo || v > hi {
		return 0, false
	}
	return v, true
}
