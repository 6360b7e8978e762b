package main

import (
	"github.com/spf13/cobra"

	"github.com/clemente0731/cloud-font-generator/clipboard"
	"github.com/clemente0731/cloud-font-generator/export"
)

func newCopyCmd(o *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Render and copy to the clipboard",
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
			if err := clipboard.Copy(cmd.Context(), o.clipboard, a); err != nil {
				return fail(errw, err)
			}
			successf(errw, "copied %s to clipboard", f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatPNG), "png, svg, css or json")
	return cmd
}
