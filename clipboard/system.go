package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// command is an external program that reads an image from stdin, or from
// the file named by its argument template when fromFile is set.
type command struct {
	name     string
	args     []string
	fromFile bool
}

// System is the clipboard of the running desktop session.
// Text goes through github.com/atotto/clipboard; images need wl-copy or
// xclip on Linux and osascript on macOS.
type System struct {
	goos     string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewSystem returns the system clipboard.
func NewSystem() *System {
	return &System{goos: runtime.GOOS, getenv: os.Getenv, lookPath: exec.LookPath}
}

var _ Clipboard = (*System)(nil)

// WriteText implements Clipboard.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// WriteImage implements Clipboard.
func (s *System) WriteImage(ctx context.Context, png []byte) error {
	cmd, ok := s.imageCommand()
	if !ok {
		return ErrUnsupported
	}
	if !cmd.fromFile {
		c := exec.CommandContext(ctx, cmd.name, cmd.args...)
		c.Stdin = bytes.NewReader(png)
		return run(c)
	}

	f, err := os.CreateTemp("", "cloudfont-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(png); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	args := make([]string, len(cmd.args))
	for i, a := range cmd.args {
		args[i] = fmt.Sprintf(a, f.Name())
	}
	return run(exec.CommandContext(ctx, cmd.name, args...))
}

func (s *System) imageCommand() (command, bool) {
	has := func(name string) bool {
		_, err := s.lookPath(name)
		return err == nil
	}

	switch s.goos {
	case "darwin":
		if has("osascript") {
			return command{
				name:     "osascript",
				args:     []string{"-e", `set the clipboard to (read (POSIX file %q) as «class PNGf»)`},
				fromFile: true,
			}, true
		}
	case "windows", "plan9", "js", "wasip1", "ios", "android":
	default:
		if s.getenv("WAYLAND_DISPLAY") != "" && has("wl-copy") {
			return command{name: "wl-copy", args: []string{"--type", "image/png"}}, true
		}
		if has("xclip") {
			return command{name: "xclip", args: []string{"-selection", "clipboard", "-t", "image/png", "-i"}}, true
		}
	}
	return command{}, false
}

func run(c *exec.Cmd) error {
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", c.Args[0], err, msg)
		}
		return fmt.Errorf("%s: %w", c.Args[0], err)
	}
	return nil
}
