package main

import (
	"github.com/spf13/cobra"

	"github.com/clemente0731/cloud-font-generator/preset"
)

func newConfigCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config FILE",
		Short: "Write the effective settings to a .json, .toml or .yaml preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errw := cmd.ErrOrStderr()
			cfg, err := o.snapshot(cmd, errw)
			if err != nil {
				return fail(errw, err)
			}
			if err := preset.Save(args[0], cfg); err != nil {
				return fail(errw, err)
			}
			successf(errw, "saved %s", args[0])
			return nil
		},
	}
}
