// Package clipboard places exported artifacts on the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/export"
)

// ErrUnsupported is returned when no clipboard tool is available for the
// requested content.
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// Clipboard accepts text and PNG images.
type Clipboard interface {
	WriteText(ctx context.Context, s string) error
	WriteImage(ctx context.Context, png []byte) error
}

// Copy places a on cb: PNG artifacts as an image, the text formats as text.
func Copy(ctx context.Context, cb Clipboard, a export.Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	switch a.Format {
	case export.FormatPNG:
		err = cb.WriteImage(ctx, a.Data)
	case export.FormatSVG, export.FormatCSS, export.FormatJSON:
		err = cb.WriteText(ctx, a.Text())
	default:
		return fmt.Errorf("%w: %q", export.ErrUnsupportedFormat, string(a.Format))
	}
	if err != nil {
		return fmt.Errorf("clipboard: copy %s: %w", a.Format, err)
	}

	cloudfont.Logger().Info("clipboard: copied", "format", string(a.Format), "bytes", len(a.Data))
	return nil
}
