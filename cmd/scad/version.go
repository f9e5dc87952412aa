package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Build metadata, overridden with -ldflags "-X main.version=...".
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionPayload{
				Tool:      "scad",
				Version:   valueOr(version, "dev"),
				GoVersion: runtime.Version(),
				GitCommit: strings.TrimSpace(gitCommit),
				BuildDate: strings.TrimSpace(buildDate),
			}

			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout(), info)
				return nil
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")

	return cmd
}

func renderVersionPretty(out io.Writer, info versionPayload) {
	name := color.New(color.FgCyan, color.Bold)
	_, _ = name.Fprint(out, info.Tool)
	_, _ = fmt.Fprintf(out, " %s (%s)\n", info.Version, info.GoVersion)
	if info.GitCommit != "" {
		_, _ = fmt.Fprintf(out, "commit: %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		_, _ = fmt.Fprintf(out, "built:  %s\n", info.BuildDate)
	}
}

func valueOr(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
