package export

import (
	"context"
	"encoding/base64"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/raster"
)

// DefaultBaseName is the file name stem of exported artifacts.
const DefaultBaseName = "cloud_text"

// Artifact is the result of one export.
type Artifact struct {
	Format   Format
	Data     []byte
	Filename string
}

// Text returns the data as a string. It is only meaningful for text formats.
func (a Artifact) Text() string {
	return string(a.Data)
}

// DataURL returns the data as a base64 data URL.
func (a Artifact) DataURL() string {
	return "data:" + a.Format.MediaType() + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithSurface sets the pixel source of PNG exports. If src also
// implements raster.Measurer it is used to measure SVG text unless
// WithMeasurer is given.
func WithSurface(src ImageSource) Option {
	return func(e *Exporter) {
		e.surface = src
	}
}

// WithMeasurer sets the text measurer of SVG exports.
func WithMeasurer(m raster.Measurer) Option {
	return func(e *Exporter) {
		e.measurer = m
	}
}

// WithBaseName sets the file name stem of artifacts.
func WithBaseName(name string) Option {
	return func(e *Exporter) {
		if name != "" {
			e.baseName = name
		}
	}
}

// Exporter converts a RenderConfig into artifacts.
type Exporter struct {
	surface  ImageSource
	measurer raster.Measurer
	baseName string
}

// NewExporter creates an exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{baseName: DefaultBaseName}
	for _, opt := range opts {
		opt(e)
	}
	if e.measurer == nil {
		if m, ok := e.surface.(raster.Measurer); ok {
			e.measurer = m
		}
	}
	return e
}

// Export produces the artifact of format for cfg. SVG and CSS read the
// normalized config; JSON encodes cfg unchanged; PNG encodes the current
// pixels of the surface, which the caller must have rendered from cfg.
func (e *Exporter) Export(ctx context.Context, format Format, cfg cloudfont.RenderConfig) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return Artifact{}, err
	}

	var data []byte
	switch format {
	case FormatPNG:
		data, err = PNG(e.surface, cfg.TransparentBackground)
	case FormatSVG:
		data = SVG(cfg.Normalize(), e.measurer)
	case FormatCSS:
		data = CSS(cfg.Normalize())
	case FormatJSON:
		data, err = JSON(cfg)
	}
	if err != nil {
		return Artifact{}, err
	}

	cloudfont.Logger().Debug("export: artifact", "format", string(format), "bytes", len(data))
	return Artifact{Format: format, Data: data, Filename: e.baseName + format.Ext()}, nil
}
