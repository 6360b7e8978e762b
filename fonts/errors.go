package fonts

import "errors"

var (
	// ErrNoFont is returned when no candidate font could be loaded.
	ErrNoFont = errors.New("fonts: no usable font")

	// ErrUnsupportedFile is returned for font files gg cannot parse.
	ErrUnsupportedFile = errors.New("fonts: unsupported font file")
)
