package main

import (
	"context"
	"fmt"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/export"
	"github.com/clemente0731/cloud-font-generator/fonts"
	"github.com/clemente0731/cloud-font-generator/raster"
)

// render draws cfg on a canvas sized to fit it. The caller closes the
// canvas.
func render(cfg cloudfont.RenderConfig, faces *fonts.Resolver) *raster.Canvas {
	probe := raster.NewCanvas(1, 1, raster.WithFaces(faces))
	m := probe.MeasureText(cfg.Text.Content, raster.FontOf(cfg.Text))
	_ = probe.Close()

	w, h := raster.FitSize(cfg, m)
	canvas := raster.NewCanvas(w, h, raster.WithFaces(faces))
	raster.NewRenderer().Render(canvas, cfg)
	cloudfont.Logger().Debug("cloudfont: rendered", "width", w, "height", h)
	return canvas
}

// produce renders cfg when needed and exports it in format.
func (o *rootOptions) produce(ctx context.Context, format export.Format, cfg cloudfont.RenderConfig) (export.Artifact, error) {
	faces := o.resolver(cfg)
	defer faces.Close()
	if format == export.FormatPNG || format == export.FormatSVG {
		if _, err := faces.Face(fonts.RequestFor(cfg.Text)); err != nil {
			return export.Artifact{}, err
		}
	}

	var opts []export.Option
	switch format {
	case export.FormatPNG:
		canvas := render(cfg, faces)
		defer canvas.Close()
		opts = append(opts, export.WithSurface(canvas))
	case export.FormatSVG:
		probe := raster.NewCanvas(1, 1, raster.WithFaces(faces))
		defer probe.Close()
		opts = append(opts, export.WithMeasurer(probe))
	}

	a, err := export.NewExporter(opts...).Export(ctx, format, cfg)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("export %s: %w", format, err)
	}
	return a, nil
}
