package export

import (
	"fmt"
	"strings"
)

// Format is an export target.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
)

// Formats returns the supported formats in menu order.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatCSS, FormatJSON}
}

// ParseFormat parses a format name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	switch f {
	case FormatPNG, FormatSVG, FormatCSS, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// MediaType returns the MIME type of the format.
func (f Format) MediaType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatCSS:
		return "text/css"
	case FormatJSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Binary reports whether the format's data is not text.
func (f Format) Binary() bool {
	return f == FormatPNG
}
