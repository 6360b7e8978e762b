package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cloudfont.RenderConfig)
	}{
		{"default", func(*cloudfont.RenderConfig) {}},
		{"transparent", func(c *cloudfont.RenderConfig) { c.TransparentBackground = true }},
		{"underline and weight", func(c *cloudfont.RenderConfig) {
			*c = c.WithLayer(cloudfont.LayerSpec{Role: cloudfont.RoleInner, Color: "#000", Underline: true})
			c.Text.FontWeight = cloudfont.WeightBlack
		}},
		{"special text", func(c *cloudfont.RenderConfig) { c.Text.Content = "<a href=\"x\">&\n☁</a>" }},
		{"fractional", func(c *cloudfont.RenderConfig) { c.Text.FontSize = 72.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cloudfont.DefaultConfig()
			tt.mutate(&cfg)

			data, err := JSON(cfg)
			require.NoError(t, err)
			got, err := ParseJSON(data)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestJSONIndent(t *testing.T) {
	data, err := JSON(cloudfont.DefaultConfig())
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "{", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `  "text": {`))
	assert.Contains(t, string(data), `"transparentBackground": false`)
	assert.True(t, json.Valid(data))
}

func TestParseJSONLegacy(t *testing.T) {
	doc := `{
  "text": "云朵字体",
  "fontFamily": "Arial",
  "fontSize": 64,
  "outerColor": "#F0F0F0",
  "outerWidth": 10,
  "cloudStrength": 45,
  "middleColor": "#FFFFFF",
  "middleWidth": 3,
  "innerColor": "#333333",
  "fontWeight": 700,
  "underline": true,
  "transparentBackground": true
}`
	cfg, err := ParseJSON([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "云朵字体", cfg.Text.Content)
	assert.Equal(t, 64.0, cfg.Text.FontSize)
	assert.Equal(t, cloudfont.WeightBold, cfg.Text.FontWeight)
	assert.Equal(t, 10.0, cfg.Outer().StrokeWidth)
	assert.Equal(t, 45.0, cfg.Outer().CloudStrength)
	assert.Equal(t, 3.0, cfg.Middle().StrokeWidth)
	assert.True(t, cfg.Inner().Underline)
	assert.True(t, cfg.TransparentBackground)
}

func TestParseJSONErrors(t *testing.T) {
	_, err := ParseJSON([]byte("not json"))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{"text": {"content": 5}}`))
	assert.Error(t, err)

	_, err = ParseJSON([]byte(`{"layers": [{"role": "shadow"}]}`))
	assert.ErrorIs(t, err, cloudfont.ErrUnknownRole)
}
