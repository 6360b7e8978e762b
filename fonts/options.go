package fonts

import (
	"github.com/go-text/typesetting/fontscan"

	cloudfont "github.com/clemente0731/cloud-font-generator"
)

// Option configures a Resolver.
type Option func(*options)

type options struct {
	systemFonts bool
	cacheDir    string
	files       []fileEntry

	// footprints replaces the system scan when non-nil.
	footprints []fontscan.Footprint
}

type fileEntry struct {
	family string
	weight cloudfont.FontWeight
	path   string
}

func defaultOptions() options {
	return options{systemFonts: true}
}

// WithSystemFonts enables or disables the system font index.
// Enabled by default. The first scan of a machine can take a few seconds;
// later runs read the cached index.
func WithSystemFonts(enabled bool) Option {
	return func(o *options) {
		o.systemFonts = enabled
	}
}

// WithCacheDir sets the directory for the fontscan index.
// Empty selects the user cache directory.
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithFontFile registers a TTF/OTF file as the given family and weight.
// Registered files take precedence over system fonts.
func WithFontFile(family string, weight cloudfont.FontWeight, path string) Option {
	return func(o *options) {
		o.files = append(o.files, fileEntry{family: family, weight: weight.Snap(), path: path})
	}
}
