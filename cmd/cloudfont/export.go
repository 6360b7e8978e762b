package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/clemente0731/cloud-font-generator/export"
	"github.com/clemente0731/cloud-font-generator/save"
)

func newExportCmd(o *rootOptions) *cobra.Command {
	var (
		format string
		out    string
		stdout bool
		keep   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render and save as png, svg, css or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errw := cmd.ErrOrStderr()
			f, err := export.ParseFormat(format)
			if err != nil {
				return fail(errw, err)
			}
			cfg, err := o.snapshot(cmd, errw)
			if err != nil {
				return fail(errw, err)
			}
			a, err := o.produce(cmd.Context(), f, cfg)
			if err != nil {
				return fail(errw, err)
			}

			if stdout {
				text := a.Text()
				if f.Binary() {
					text = a.DataURL()
				}
				_, err := cmd.OutOrStdout().Write([]byte(text + "\n"))
				return err
			}

			var dest save.Destination = save.FixedPath(out)
			if out == "" && isTerminal(cmd) {
				dest = save.Prompt{In: cmd.InOrStdin(), Out: errw}
			}
			res := save.NewWriter(dest, save.WithOverwrite(!keep)).Save(cmd.Context(), a)
			switch {
			case res.Cancelled:
				infof(errw, "export cancelled")
				return nil
			case res.Err != nil:
				return fail(errw, res.Err)
			}
			successf(errw, "saved %s", res.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPNG), "png, svg, css or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file or directory (default: prompt, or ./cloud_text.<format>)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to stdout instead of a file (png as a data URL)")
	cmd.Flags().BoolVar(&keep, "no-clobber", false, "fail instead of replacing an existing file")
	return cmd
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
