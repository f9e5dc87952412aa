package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/scad"
)

type lintOptions struct {
	strict       bool
	noRenderable bool
	noEmpty      bool
	noFontPath   bool
}

func newLintCmd(g *globalOptions) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint <scene.toml>...",
		Short: "Check scenes for problems without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, g, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.strict, "strict", false, "fail on warnings")
	f.BoolVar(&opts.noRenderable, "no-renderable-check", false, "skip warnings for shapes that render nothing")
	f.BoolVar(&opts.noEmpty, "no-empty-check", false, "skip warnings for nodes without children")
	f.BoolVar(&opts.noFontPath, "no-font-check", false, "skip errors for fonts without a path")

	return cmd
}

func runLint(cmd *cobra.Command, g *globalOptions, opts *lintOptions, paths []string) error {
	p, err := newPrinter(cmd, g)
	if err != nil {
		return err
	}

	vopt := &scad.ValidateOptions{
		DisableRenderabilityCheck: opts.noRenderable,
		DisableEmptyCheck:         opts.noEmpty,
		DisableFontCheck:          opts.noFontPath,
	}

	var errs, warns int
	for _, path := range paths {
		_, m, err := loadScene(path)
		if err != nil {
			p.issue("", scad.Issue{Level: scad.IssueError, Code: "load", Message: err.Error()})
			errs++
			continue
		}

		issues := scad.Validate(&m, vopt)
		for _, i := range issues {
			p.issue(path, i)
			if i.Level == scad.IssueError {
				errs++
			} else {
				warns++
			}
		}
		if len(issues) == 0 {
			p.done("%s", path)
		}
	}

	if errs > 0 || (opts.strict && warns > 0) {
		return fmt.Errorf("lint failed: %d error(s), %d warning(s)", errs, warns)
	}

	return nil
}
