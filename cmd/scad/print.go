package main

import (
	"github.com/spf13/cobra"

	"github.com/woozymasta/scad"
)

func newPrintCmd(g *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "print <scene.toml>",
		Short: "Write the OpenSCAD script of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd, g)
			if err != nil {
				return err
			}

			_, m, err := loadScene(args[0])
			if err != nil {
				return err
			}

			opt := formatOptions(p, newLogger(cmd.ErrOrStderr(), g.verbose), args[0], g.verbose)
			if output != "" {
				return scad.EncodeFile(output, &m, opt)
			}
			return scad.Encode(cmd.OutOrStdout(), &m, opt)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
