package scad

import "log/slog"

// FormatOptions controls document rendering.
type FormatOptions struct {
	// Logger receives render warnings (default discards them).
	Logger *slog.Logger
	// OnIssue, if set, is called for every render warning.
	OnIssue func(Issue)
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableRenderabilityCheck disables warnings for shapes that render nothing.
	DisableRenderabilityCheck bool
	// DisableEmptyCheck disables warnings for combinations and transforms without children.
	DisableEmptyCheck bool
	// DisableFontCheck disables errors for fonts without a path.
	DisableFontCheck bool
}

// BinaryOptions controls the engine invocation of BinaryRenderer.
type BinaryOptions struct {
	// Binary is the engine command. Empty looks up "openscad" on PATH and falls
	// back to the flatpak package.
	Binary []string
	// Env is appended to the process environment.
	Env []string
	// WorkDir is the process working directory (default current).
	WorkDir string
	// Logger receives the command line before execution (default discards).
	Logger *slog.Logger
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{}
	}

	return *o
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}

// normalize normalizes the BinaryOptions.
func (o *BinaryOptions) normalize() BinaryOptions {
	if o == nil {
		return BinaryOptions{Logger: slog.New(slog.DiscardHandler)}
	}

	out := *o
	if out.Logger == nil {
		out.Logger = slog.New(slog.DiscardHandler)
	}

	return out
}
