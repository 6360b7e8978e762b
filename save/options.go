package save

import (
	"io/fs"

	"github.com/clemente0731/cloud-font-generator/export"
)

// Option configures a Writer.
type Option func(*Writer)

// WithPerm sets the permission bits of written files. Default 0o644.
func WithPerm(perm fs.FileMode) Option {
	return func(w *Writer) {
		w.perm = perm
	}
}

// WithOverwrite controls whether an existing file is replaced.
// Enabled by default.
func WithOverwrite(enabled bool) Option {
	return func(w *Writer) {
		w.overwrite = enabled
	}
}

// WithDefaultName sets the name used for artifacts without a file name.
func WithDefaultName(name string) Option {
	return func(w *Writer) {
		if name != "" {
			w.defaultName = name
		}
	}
}

func (w *Writer) suggestedName(a export.Artifact) string {
	if a.Filename == "" {
		return SanitizeFilename(w.defaultName + a.Format.Ext())
	}
	return SanitizeFilename(a.Filename)
}
