package save

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned by a Destination when the user dismisses it.
	ErrCancelled = errors.New("save: cancelled")

	// ErrNoData is reported for artifacts without content.
	ErrNoData = errors.New("save: no data to export")
)

// WriteError reports a failed write of Path.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
