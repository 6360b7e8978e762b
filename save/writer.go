package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/export"
)

// Result is the outcome of one save.
// Exactly one of Success, Cancelled or a non-nil Err holds.
type Result struct {
	Success   bool
	Path      string
	Cancelled bool
	Err       error
}

// Writer saves artifacts to a Destination.
type Writer struct {
	dest        Destination
	perm        fs.FileMode
	overwrite   bool
	defaultName string
}

// NewWriter creates a writer for dest.
func NewWriter(dest Destination, opts ...Option) *Writer {
	w := &Writer{
		dest:        dest,
		perm:        0o644,
		overwrite:   true,
		defaultName: export.DefaultBaseName,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Save writes a to the path chosen by the destination.
func (w *Writer) Save(ctx context.Context, a export.Artifact) Result {
	if len(a.Data) == 0 {
		return Result{Err: ErrNoData}
	}
	path, err := w.dest.Path(ctx, w.suggestedName(a))
	if errors.Is(err, ErrCancelled) {
		cloudfont.Logger().Info("save: cancelled", "format", string(a.Format))
		return Result{Cancelled: true}
	}
	if err != nil {
		return Result{Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{Err: err}
	}

	if !w.overwrite {
		if _, err := os.Stat(path); err == nil {
			return Result{Err: &WriteError{Path: path, Err: fs.ErrExist}}
		}
	}
	if err := writeAtomic(path, a.Data, w.perm); err != nil {
		return Result{Err: &WriteError{Path: path, Err: err}}
	}

	cloudfont.Logger().Info("save: wrote", "path", path, "bytes", len(a.Data))
	return Result{Success: true, Path: path}
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place.
func writeAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
