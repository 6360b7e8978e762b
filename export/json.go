package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// JSON encodes cfg with two-space indentation.
func JSON(cfg cloudfont.RenderConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode json: %w", err)
	}
	return data, nil
}

// flatConfig is the single-level document written by the desktop app.
type flatConfig struct {
	Text                  string  `json:"text"`
	FontFamily            string  `json:"fontFamily"`
	FontSize              float64 `json:"fontSize"`
	FontWeight            int     `json:"fontWeight"`
	OuterColor            string  `json:"outerColor"`
	OuterWidth            float64 `json:"outerWidth"`
	CloudStrength         float64 `json:"cloudStrength"`
	MiddleColor           string  `json:"middleColor"`
	MiddleWidth           float64 `json:"middleWidth"`
	InnerColor            string  `json:"innerColor"`
	Underline             bool    `json:"underline"`
	TransparentBackground bool    `json:"transparentBackground"`
}

func (f flatConfig) config() cloudfont.RenderConfig {
	return cloudfont.RenderConfig{
		Text: cloudfont.TextSpec{
			Content:    f.Text,
			FontFamily: f.FontFamily,
			FontWeight: cloudfont.FontWeight(f.FontWeight),
			FontSize:   f.FontSize,
		},
		Layers: []cloudfont.LayerSpec{
			{Role: cloudfont.RoleOuter, Color: f.OuterColor, StrokeWidth: f.OuterWidth, CloudStrength: f.CloudStrength},
			{Role: cloudfont.RoleMiddle, Color: f.MiddleColor, StrokeWidth: f.MiddleWidth},
			{Role: cloudfont.RoleInner, Color: f.InnerColor, Underline: f.Underline},
		},
		TransparentBackground: f.TransparentBackground,
	}
}

// ParseJSON decodes a document produced by JSON. It also accepts the flat
// document of the desktop app, whose "text" member is a string.
// Missing values are not filled in; call Normalize for that.
func ParseJSON(data []byte) (cloudfont.RenderConfig, error) {
	var probe struct {
		Text json.RawMessage `json:"text"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return cloudfont.RenderConfig{}, fmt.Errorf("export: decode json: %w", err)
	}

	if t := bytes.TrimSpace(probe.Text); len(t) > 0 && t[0] == '"' {
		var flat flatConfig
		if err := json.Unmarshal(data, &flat); err != nil {
			return cloudfont.RenderConfig{}, fmt.Errorf("export: decode legacy json: %w", err)
		}
		return flat.config(), nil
	}

	var cfg cloudfont.RenderConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cloudfont.RenderConfig{}, fmt.Errorf("export: decode json: %w", err)
	}
	return cfg, nil
}
