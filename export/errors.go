package export

import "errors"

var (
	// ErrUnsupportedFormat is returned for an unknown export format.
	ErrUnsupportedFormat = errors.New("export: unsupported format")

	// ErrNoSurface is returned when a PNG export has no raster surface to
	// read pixels from.
	ErrNoSurface = errors.New("export: no drawing surface")
)
