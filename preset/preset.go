// Package preset loads and stores RenderConfig files.
//
// The format follows the file extension: .json (including the flat
// document of the desktop app), .toml, or .yaml and .yml. Values are
// stored as written; callers normalize after loading.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/export"
)

// ErrUnknownExtension is returned for files that are not JSON, TOML or YAML.
var ErrUnknownExtension = errors.New("preset: unknown file extension")

// Codec names a preset file format.
type Codec string

// Supported codecs.
const (
	CodecJSON Codec = "json"
	CodecTOML Codec = "toml"
	CodecYAML Codec = "yaml"
)

// CodecFor returns the codec of path's extension.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return CodecJSON, nil
	case ".toml":
		return CodecTOML, nil
	case ".yaml", ".yml":
		return CodecYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExtension, path)
}

// Decode parses data in codec c.
func Decode(c Codec, data []byte) (cloudfont.RenderConfig, error) {
	var cfg cloudfont.RenderConfig
	switch c {
	case CodecJSON:
		return export.ParseJSON(data)
	case CodecTOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		if err := d.Decode(&cfg); err != nil {
			return cloudfont.RenderConfig{}, fmt.Errorf("preset: decode toml: %w", err)
		}
	case CodecYAML:
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		if err := d.Decode(&cfg); err != nil {
			return cloudfont.RenderConfig{}, fmt.Errorf("preset: decode yaml: %w", err)
		}
	default:
		return cloudfont.RenderConfig{}, fmt.Errorf("%w: codec %q", ErrUnknownExtension, string(c))
	}
	return cfg, nil
}

// Encode serializes cfg in codec c.
func Encode(c Codec, cfg cloudfont.RenderConfig) ([]byte, error) {
	switch c {
	case CodecJSON:
		return export.JSON(cfg)
	case CodecTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("preset: encode toml: %w", err)
		}
		return data, nil
	case CodecYAML:
		var buf bytes.Buffer
		e := yaml.NewEncoder(&buf)
		e.SetIndent(2)
		if err := e.Encode(cfg); err != nil {
			return nil, fmt.Errorf("preset: encode yaml: %w", err)
		}
		if err := e.Close(); err != nil {
			return nil, fmt.Errorf("preset: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: codec %q", ErrUnknownExtension, string(c))
}

// Load reads the preset at path.
func Load(path string) (cloudfont.RenderConfig, error) {
	c, err := CodecFor(path)
	if err != nil {
		return cloudfont.RenderConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cloudfont.RenderConfig{}, fmt.Errorf("preset: %w", err)
	}
	cfg, err := Decode(c, data)
	if err != nil {
		return cloudfont.RenderConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	cloudfont.Logger().Debug("preset: loaded", "path", path, "codec", string(c))
	return cfg, nil
}

// Save writes cfg to path in the format of its extension.
func Save(path string, cfg cloudfont.RenderConfig) error {
	c, err := CodecFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(c, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: %w", err)
	}
	return nil
}
