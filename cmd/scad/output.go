package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/woozymasta/scad"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// shouldColor decides whether output written to w is colored.
func shouldColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	}

	f, ok := w.(*os.File)
	return ok && os.Getenv("NO_COLOR") == "" && isTerminal(f)
}

// printer writes status lines and issues. It is safe for concurrent use.
type printer struct {
	mu    sync.Mutex
	out   io.Writer
	err   io.Writer
	quiet bool

	warn *color.Color
	fail *color.Color
	ok   *color.Color
}

func newPrinter(cmd *cobra.Command, opts *globalOptions) (*printer, error) {
	mode, err := readColorMode(opts.color)
	if err != nil {
		return nil, err
	}

	p := &printer{
		out:   cmd.OutOrStdout(),
		err:   cmd.ErrOrStderr(),
		quiet: opts.quiet,
		warn:  color.New(color.FgYellow),
		fail:  color.New(color.FgRed, color.Bold),
		ok:    color.New(color.FgGreen),
	}

	enabled := shouldColor(mode, p.err)
	for _, c := range []*color.Color{p.warn, p.fail, p.ok} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p, nil
}

// issue prints one issue to the error stream, prefixed with source when set.
func (p *printer) issue(source string, i scad.Issue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	c := p.warn
	if i.Level == scad.IssueError {
		c = p.fail
	}
	if source != "" {
		_, _ = fmt.Fprintf(p.err, "%s: ", source)
	}
	_, _ = c.Fprint(p.err, string(i.Level))
	_, _ = fmt.Fprintln(p.err, strings.TrimPrefix(i.String(), string(i.Level)))
}

// done prints a success line unless quiet.
func (p *printer) done(format string, args ...any) {
	if p.quiet {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = p.ok.Fprint(p.out, "ok")
	_, _ = fmt.Fprintf(p.out, " "+format+"\n", args...)
}

// newLogger returns a debug text logger on w when verbose, else a discarding one.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// formatOptions routes render warnings to the logger when verbose and to the
// printer otherwise.
func formatOptions(p *printer, logger *slog.Logger, source string, verbose bool) *scad.FormatOptions {
	opt := &scad.FormatOptions{Logger: logger}
	if !verbose {
		opt.OnIssue = func(i scad.Issue) { p.issue(source, i) }
	}
	return opt
}
