package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

func sample() cloudfont.RenderConfig {
	cfg := cloudfont.DefaultConfig()
	cfg.Text.Content = "Hello ☁"
	cfg.Text.FontWeight = cloudfont.WeightBold
	cfg.Text.FontSize = 72.5
	cfg.TransparentBackground = true
	return cfg.WithLayer(cloudfont.LayerSpec{Role: cloudfont.RoleInner, Color: "#123456", Underline: true})
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"p.json", "p.toml", "p.yaml", "p.YML"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := sample()

			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeTOML(t *testing.T) {
	doc := `
transparent_background = false

[text]
content = "云朵"
font_family = "Noto Sans"
font_weight = 500
font_size = 64.0

[[layers]]
role = "outer"
color = "#EEEEEE"
stroke_width = 12.0
cloud_strength = 60.0

[[layers]]
role = "inner"
color = "#000000"
stroke_width = 0.0
`
	cfg, err := Decode(CodecTOML, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "云朵", cfg.Text.Content)
	assert.Equal(t, cloudfont.WeightMedium, cfg.Text.FontWeight)
	assert.Equal(t, 60.0, cfg.Outer().CloudStrength)
	// Missing middle layer falls back to the default.
	assert.Equal(t, "#FFFFFF", cfg.Middle().Color)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
text:
  content: cloud
  fontFamily: Arial
  fontWeight: 300
  fontSize: 30
layers:
  - role: middle
    color: "#ABCDEF"
    strokeWidth: 4
`
	cfg, err := Decode(CodecYAML, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "cloud", cfg.Text.Content)
	assert.Equal(t, 30.0, cfg.Text.FontSize)
	assert.Equal(t, "#ABCDEF", cfg.Middle().Color)
	assert.Equal(t, 4.0, cfg.Middle().StrokeWidth)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(CodecYAML, []byte("layers:\n  - role: halo\n"))
	assert.ErrorIs(t, err, cloudfont.ErrUnknownRole)

	_, err = Decode(CodecYAML, []byte("colour: red\n"))
	assert.Error(t, err)

	_, err = Decode(CodecTOML, []byte("unknown = 1\n"))
	assert.Error(t, err)

	_, err = Decode(Codec("ini"), nil)
	assert.ErrorIs(t, err, ErrUnknownExtension)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("preset.ini")
	assert.ErrorIs(t, err, ErrUnknownExtension)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.ErrorIs(t, Save("preset.txt", sample()), ErrUnknownExtension)
}

func TestLoadLegacyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text":"hi","fontSize":40,"outerWidth":5}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", cfg.Text.Content)
	assert.Equal(t, 5.0, cfg.Outer().StrokeWidth)
}
