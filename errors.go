package cloudfont

import "errors"

// Sentinel errors for the cloudfont package.
var (
	// ErrUnknownRole is returned when a layer role name is not recognized.
	ErrUnknownRole = errors.New("cloudfont: unknown layer role")

	// ErrInvalidColor is returned when a colour is not a #RGB or #RRGGBB hex string.
	ErrInvalidColor = errors.New("cloudfont: invalid hex color")
)
