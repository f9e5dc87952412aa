package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCmd(g *globalOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}
	cmd.PersistentFlags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.openCache()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Dir())
				return err
			},
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Remove every cached artifact",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := newPrinter(cmd, g)
				if err != nil {
					return err
				}
				c, err := opts.openCache()
				if err != nil {
					return err
				}
				if err := c.DropAll(); err != nil {
					return err
				}
				p.done("cleaned %s", c.Dir())
				return nil
			},
		},
	)

	return cmd
}
