package raster

import (
	"github.com/gogpu/gg/text"

	"github.com/clemente0731/cloud-font-generator/fonts"
)

// FaceSource supplies font faces to a Canvas. *fonts.Resolver implements it.
type FaceSource interface {
	Face(req fonts.Request) (text.Face, error)
}

// CanvasOption configures a Canvas.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	faces FaceSource
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{}
}

// WithFaces sets the face source. The caller keeps ownership of it.
// Without this option the canvas creates a fonts.Resolver with system
// fonts enabled and closes it in Close.
func WithFaces(src FaceSource) CanvasOption {
	return func(o *canvasOptions) {
		o.faces = src
	}
}
