//go:build !nogpu

package raster

// Glyph outlines at large font sizes are paths with many curves. The
// adaptive tile filler rasterizes them in 4x4 or 16x16 tiles on the CPU.
import _ "github.com/gogpu/gg/raster"
