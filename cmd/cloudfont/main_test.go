package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clemente0731/cloud-font-generator/export"
)

type recordingClipboard struct {
	text  []string
	image [][]byte
}

func (r *recordingClipboard) WriteText(_ context.Context, s string) error {
	r.text = append(r.text, s)
	return nil
}

func (r *recordingClipboard) WriteImage(_ context.Context, png []byte) error {
	r.image = append(r.image, png)
	return nil
}

func run(t *testing.T, cb *recordingClipboard, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if cb == nil {
		cb = &recordingClipboard{}
	}
	cmd := newRootCmd(cb)
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append(args, "--system-fonts=false"))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errb.String(), err
}

func TestExportSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi.svg")

	_, stderr, err := run(t, nil, "export", "--text", "Hi", "--format", "svg", "--out", path)
	require.NoError(t, err, stderr)
	assert.Contains(t, stderr, "saved "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<svg"))
	assert.Contains(t, string(data), ">Hi</text>")
}

func TestExportDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, stderr, err := run(t, nil, "export", "--format", "css")
	require.NoError(t, err, stderr)
	_, err = os.Stat(filepath.Join(dir, "cloud_text.css"))
	assert.NoError(t, err)
}

func TestExportJSONStdout(t *testing.T) {
	stdout, stderr, err := run(t, nil, "export", "-f", "json", "--stdout",
		"--font-size", "9999", "--set", "fontSize=72", "--underline")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ignored --font-size=9999")

	cfg, err := export.ParseJSON([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, 72.0, cfg.Text.FontSize)
	assert.True(t, cfg.Inner().Underline)
}

func TestExportPNGStdout(t *testing.T) {
	stdout, stderr, err := run(t, nil, "export", "--text", "A", "--stdout")
	require.NoError(t, err, stderr)
	assert.True(t, strings.HasPrefix(stdout, "data:image/png;base64,"))
}

func TestExportErrors(t *testing.T) {
	_, stderr, err := run(t, nil, "export", "--format", "gif", "--stdout")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
	assert.Contains(t, stderr, "gif")

	_, _, err = run(t, nil, "export", "--set", "bogus=1", "--stdout")
	assert.ErrorContains(t, err, "unknown field")

	_, _, err = run(t, nil, "export", "--set", "fontSize", "--stdout")
	assert.ErrorContains(t, err, "key=value")

	_, _, err = run(t, nil, "export", "--config", filepath.Join(t.TempDir(), "none.toml"), "--stdout")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopy(t *testing.T) {
	var cb recordingClipboard
	_, stderr, err := run(t, &cb, "copy", "--format", "css", "--text", "Hey")
	require.NoError(t, err, stderr)
	require.Len(t, cb.text, 1)
	assert.Contains(t, cb.text[0], ".cloud-text")
	assert.Contains(t, stderr, "copied css")

	_, stderr, err = run(t, &cb, "copy", "--text", "Hey")
	require.NoError(t, err, stderr)
	require.Len(t, cb.image, 1)
	assert.True(t, bytes.HasPrefix(cb.image[0], []byte("\x89PNG")))
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.toml")

	_, stderr, err := run(t, nil, "config", path, "--text", "Saved", "--cloud-strength", "77", "--transparent")
	require.NoError(t, err, stderr)

	stdout, stderr, err := run(t, nil, "export", "--config", path, "--format", "json", "--stdout")
	require.NoError(t, err, stderr)
	cfg, err := export.ParseJSON([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "Saved", cfg.Text.Content)
	assert.Equal(t, 77.0, cfg.Outer().CloudStrength)
	assert.True(t, cfg.TransparentBackground)
}
