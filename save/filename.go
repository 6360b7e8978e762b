package save

import (
	"path/filepath"
	"regexp"

	"github.com/clemente0731/cloud-font-generator/export"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_\-.]`)

// SanitizeFilename reduces name to its last path element and replaces
// every character outside [A-Za-z0-9_.-] with an underscore.
// Names that would refer to a directory become the default base name.
func SanitizeFilename(name string) string {
	base := unsafeChars.ReplaceAllString(filepath.Base(filepath.ToSlash(name)), "_")
	switch base {
	case "", ".", "..":
		return export.DefaultBaseName
	}
	return base
}
