// Package raster draws the cloud text effect.
//
// Renderer issues drawing calls against the Surface interface. Canvas is
// the Surface implementation backed by a gogpu/gg context; tests and other
// front ends can supply their own.
//
// Basic usage:
//
//	canvas := raster.NewCanvas(400, 200)
//	defer canvas.Close()
//	raster.NewRenderer().Render(canvas, cfg.Normalize())
//	img := canvas.Image()
package raster
