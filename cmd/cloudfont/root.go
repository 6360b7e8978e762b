package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cloudfont "github.com/clemente0731/cloud-font-generator"
	"github.com/clemente0731/cloud-font-generator/clipboard"
	"github.com/clemente0731/cloud-font-generator/fonts"
	"github.com/clemente0731/cloud-font-generator/preset"
)

// fieldFlag binds a command-line flag to an editor field.
type fieldFlag struct {
	name   string
	field  cloudfont.Field
	usage  string
	isBool bool
}

var fieldFlags = []fieldFlag{
	{"text", cloudfont.FieldText, "text content", false},
	{"font-family", cloudfont.FieldFontFamily, "font family name", false},
	{"font-size", cloudfont.FieldFontSize, "font size in pixels (8-360)", false},
	{"font-weight", cloudfont.FieldFontWeight, "font weight (100-900, step 100)", false},
	{"outer-color", cloudfont.FieldOuterColor, "outer layer colour (#RGB or #RRGGBB)", false},
	{"outer-width", cloudfont.FieldOuterWidth, "outer stroke width (0-20)", false},
	{"cloud-strength", cloudfont.FieldCloudStrength, "cloud strength (0-100)", false},
	{"middle-color", cloudfont.FieldMiddleColor, "middle layer colour", false},
	{"middle-width", cloudfont.FieldMiddleWidth, "middle stroke width (0-10)", false},
	{"inner-color", cloudfont.FieldInnerColor, "text colour", false},
	{"underline", cloudfont.FieldUnderline, "underline the text", true},
	{"transparent", cloudfont.FieldTransparent, "transparent background", true},
}

type rootOptions struct {
	config      string
	sets        []string
	verbose     bool
	fontFiles   []string
	systemFonts bool
	fontCache   string
	clipboard   clipboard.Clipboard

	values map[cloudfont.Field]*string
	bools  map[cloudfont.Field]*bool
}

func newRootCmd(cb clipboard.Clipboard) *cobra.Command {
	o := &rootOptions{
		values:    make(map[cloudfont.Field]*string),
		bools:     make(map[cloudfont.Field]*bool),
		clipboard: cb,
	}

	cmd := &cobra.Command{
		Use:           "cloudfont",
		Short:         "Render text with a cloud-shaped outline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if o.verbose {
				level = slog.LevelDebug
			}
			cloudfont.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.config, "config", "c", "", "load settings from a .json, .toml or .yaml preset")
	pf.StringArrayVar(&o.sets, "set", nil, "set a field as key=value, e.g. fontSize=72 (repeatable)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")
	pf.StringArrayVar(&o.fontFiles, "font-file", nil, "font file to use for the configured family (repeatable)")
	pf.BoolVar(&o.systemFonts, "system-fonts", true, "search installed fonts")
	pf.StringVar(&o.fontCache, "font-cache", "", "directory for the system font index")
	for _, f := range fieldFlags {
		if f.isBool {
			o.bools[f.field] = pf.Bool(f.name, false, f.usage)
		} else {
			o.values[f.field] = pf.String(f.name, "", f.usage)
		}
	}

	cmd.AddCommand(newExportCmd(o), newCopyCmd(o), newConfigCmd(o))
	return cmd
}

// snapshot builds the configuration from the preset, the field flags and
// the --set pairs, in that order. Rejected values are reported on w and
// leave the previous value in place.
func (o *rootOptions) snapshot(cmd *cobra.Command, w io.Writer) (cloudfont.RenderConfig, error) {
	cfg := cloudfont.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = preset.Load(o.config); err != nil {
			return cloudfont.RenderConfig{}, err
		}
	}
	ed := cloudfont.NewEditor(cfg)

	flags := cmd.Flags()
	for _, f := range fieldFlags {
		if !flags.Changed(f.name) {
			continue
		}
		var raw string
		if f.isBool {
			raw = strconv.FormatBool(*o.bools[f.field])
		} else {
			raw = *o.values[f.field]
		}
		if !ed.Set(f.field, raw) {
			warnf(w, "ignored --%s=%s", f.name, raw)
		}
	}

	for _, kv := range o.sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return cloudfont.RenderConfig{}, fmt.Errorf("--set %q: want key=value", kv)
		}
		field, ok := cloudfont.ParseField(key)
		if !ok {
			return cloudfont.RenderConfig{}, fmt.Errorf("--set %q: unknown field %q", kv, key)
		}
		if !ed.Set(field, value) {
			warnf(w, "ignored --set %s", kv)
		}
	}
	return ed.Snapshot(), nil
}

func (o *rootOptions) resolver(cfg cloudfont.RenderConfig) *fonts.Resolver {
	opts := []fonts.Option{fonts.WithSystemFonts(o.systemFonts)}
	if o.fontCache != "" {
		opts = append(opts, fonts.WithCacheDir(o.fontCache))
	}
	for _, path := range o.fontFiles {
		opts = append(opts, fonts.WithFontFile(cfg.Text.FontFamily, cfg.Text.FontWeight, path))
	}
	return fonts.NewResolver(opts...)
}
