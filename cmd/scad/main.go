// Command scad builds OpenSCAD scripts from TOML scene files and exports them
// through the openscad binary.
package main

import (
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	color   string
	quiet   bool
	verbose bool
	jobs    int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "scad",
		Short:        "OpenSCAD scene builder",
		Long:         `scad converts TOML scene descriptions into OpenSCAD scripts and renders them to STL, PNG and other formats`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&opts.quiet, "quiet", false, "suppress non-essential output")
	flags.BoolVar(&opts.verbose, "verbose", false, "log engine commands, cache activity and render warnings")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "targets rendered in parallel (0 = GOMAXPROCS)")

	root.AddCommand(
		newRenderCmd(opts),
		newPrintCmd(opts),
		newLintCmd(opts),
		newCacheCmd(opts),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	fd, err := safecast.Conv[int](f.Fd())
	return err == nil && term.IsTerminal(fd)
}
