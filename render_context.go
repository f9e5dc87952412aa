package scad

import (
	"context"
	"log/slog"
)

// RenderContext collects soft warnings raised while rendering a tree.
//
// A nil *RenderContext is valid; warnings then go to slog.Default.
type RenderContext struct {
	logger  *slog.Logger
	issues  []Issue
	onIssue func(Issue)
}

// NewRenderContext creates a context logging to logger (nil discards).
func NewRenderContext(logger *slog.Logger) *RenderContext {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RenderContext{logger: logger}
}

// Warn records a warning issue.
func (rc *RenderContext) Warn(code, message, path string) {
	issue := Issue{Level: IssueWarning, Code: code, Message: message, Path: path}

	logger := slog.Default()
	if rc != nil {
		rc.issues = append(rc.issues, issue)
		logger = rc.logger
		if rc.onIssue != nil {
			rc.onIssue(issue)
		}
	}

	logger.LogAttrs(context.Background(), slog.LevelWarn, message,
		slog.String("code", code),
		slog.String("path", path),
	)
}

// Issues returns the warnings recorded so far.
func (rc *RenderContext) Issues() []Issue {
	if rc == nil {
		return nil
	}
	return rc.issues
}
