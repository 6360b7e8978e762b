// Package cloudfont renders "cloud-outline" decorative text and exports it
// as PNG, SVG, CSS or JSON.
//
// # Overview
//
// A cloud effect is a stack of soft outline layers drawn around a piece of
// text. The outer layer is a wide, slightly wobbly halo; the middle layer is
// a thinner ring inside it; the inner layer is the text itself, optionally
// underlined. Everything is described by a single [RenderConfig] value that
// is passed by value into every renderer and exporter.
//
// # Quick Start
//
//	import (
//	    cloudfont "github.com/clemente0731/cloud-font-generator"
//	    "github.com/clemente0731/cloud-font-generator/export"
//	    "github.com/clemente0731/cloud-font-generator/raster"
//	)
//
//	cfg := cloudfont.DefaultConfig()
//	cfg.Text.Content = "Hello"
//
//	canvas := raster.NewCanvas(800, 400)
//	defer canvas.Close()
//	raster.NewRenderer().Render(canvas, cfg)
//
//	ex := export.NewExporter(export.WithSurface(canvas))
//	art, err := ex.Export(ctx, export.FormatSVG, cfg)
//
// # Architecture
//
// The module is organized into:
//   - cloudfont: data model, font-size scaling, input validation, logging
//   - outline: ring generation, smoothing and Bezier fitting
//   - shadow: text-shadow approximation of the outline layers
//   - raster: drawing-surface abstraction, layer renderer, gg canvas
//   - fonts: family/weight to font face resolution
//   - export: SVG, CSS, PNG and JSON serializers
//   - save, clipboard: the I/O boundaries
//   - preset: configuration files for the command line tool
//
// # Determinism
//
// Outline jitter is a fixed frequency-3 sinusoid rather than random noise, so
// every exporter produces byte-identical output for the same configuration.
package cloudfont
