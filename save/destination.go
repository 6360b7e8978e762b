package save

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Destination chooses where an artifact is written.
// Path receives the sanitized suggested file name and returns the final
// path, or ErrCancelled.
type Destination interface {
	Path(ctx context.Context, suggested string) (string, error)
}

// FixedPath is a destination given up front, such as a command-line flag.
// A leading ~ is expanded. If the path is an existing directory, or ends
// in a separator, the suggested name is joined to it. An empty FixedPath
// means the suggested name in the working directory.
type FixedPath string

// Path implements Destination.
func (p FixedPath) Path(ctx context.Context, suggested string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return resolve(string(p), suggested)
}

func resolve(raw, suggested string) (string, error) {
	if raw == "" {
		return suggested, nil
	}
	path, err := homedir.Expand(raw)
	if err != nil {
		return "", fmt.Errorf("save: expand %q: %w", raw, err)
	}
	if strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, string(filepath.Separator)) {
		return filepath.Join(path, suggested), nil
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return filepath.Join(path, suggested), nil
	}
	return path, nil
}

// Prompt asks for the path on a terminal. An empty answer accepts the
// suggested name in Dir; end of input cancels.
type Prompt struct {
	In  io.Reader
	Out io.Writer
	Dir string
}

// Path implements Destination. When ctx can be cancelled the answer is
// read on a separate goroutine; after a cancellation that goroutine stays
// blocked until In yields a line or fails.
func (p Prompt) Path(ctx context.Context, suggested string) (string, error) {
	def := suggested
	if p.Dir != "" {
		def = filepath.Join(p.Dir, suggested)
	}
	if p.Out != nil {
		fmt.Fprintf(p.Out, "Save as [%s]: ", def)
	}

	var a answer
	if ctx.Done() == nil {
		a = readAnswer(p.In)
	} else {
		ch := make(chan answer, 1)
		go func() { ch <- readAnswer(p.In) }()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case a = <-ch:
		}
	}

	line := strings.TrimSpace(a.line)
	if a.err != nil {
		if !errors.Is(a.err, io.EOF) {
			return "", fmt.Errorf("save: read answer: %w", a.err)
		}
		if line == "" {
			return "", ErrCancelled
		}
	}
	if line == "" {
		return def, nil
	}
	return resolve(line, suggested)
}

type answer struct {
	line string
	err  error
}

func readAnswer(r io.Reader) answer {
	line, err := bufio.NewReader(r).ReadString('\n')
	return answer{line, err}
}
