package scad

import (
	"fmt"
	"strconv"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected node
}

// String returns a one-line form of the issue.
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(string(i.Level))
	if i.Code != "" {
		b.WriteString(" [" + i.Code + "]")
	}
	b.WriteString(": " + i.Message)
	if i.Path != "" {
		b.WriteString(" (" + i.Path + ")")
	}
	return b.String()
}

// conditional is implemented by shapes that may render nothing.
type conditional interface {
	renderable() bool
}

// linter is implemented by nodes with soft argument checks.
type linter interface {
	lint() []Issue
}

// Validate checks a model without rendering it and returns issues.
func Validate(m *Model, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	if m == nil {
		return nil
	}

	var out []Issue

	if !vopt.DisableFontCheck {
		for i, f := range m.fonts {
			if _, err := f.Path(); err != nil {
				out = append(out, Issue{Level: IssueError, Code: "font_path", Message: "font without path", Path: "fonts[" + strconv.Itoa(i) + "]"})
			}
		}
	}

	seen := make(map[string]struct{}, len(m.variables))
	for _, v := range m.variables {
		if _, ok := seen[v.Name()]; ok {
			out = append(out, Issue{Level: IssueError, Code: "duplicate_variable", Message: "duplicate variable name", Path: v.Name()})
			continue
		}
		seen[v.Name()] = struct{}{}
	}

	for i, r := range m.renderables {
		out = append(out, validateNode(r, "renderables["+strconv.Itoa(i)+"]", vopt)...)
	}

	return out
}

// validateNode checks r and its children.
func validateNode(r Renderable, path string, opt ValidateOptions) []Issue {
	if r == nil {
		return []Issue{{Level: IssueError, Code: "nil_node", Message: "nil renderable", Path: path}}
	}

	path += "." + nodeName(r)

	var out []Issue
	if l, ok := r.(linter); ok {
		for _, issue := range l.lint() {
			out = append(out, withNodeContext(issue, path))
		}
	}

	if c, ok := r.(conditional); ok && !opt.DisableRenderabilityCheck && !c.renderable() {
		out = append(out, Issue{Level: IssueWarning, Code: "not_renderable", Message: "shape renders nothing", Path: path})
	}

	c, ok := r.(Container)
	if !ok {
		return out
	}

	children := c.Children()
	if len(children) == 0 && !opt.DisableEmptyCheck {
		out = append(out, Issue{Level: IssueWarning, Code: "empty_node", Message: "node without children renders nothing", Path: path})
	}
	for i, child := range children {
		out = append(out, validateNode(child, path+"["+strconv.Itoa(i)+"]", opt)...)
	}

	return out
}

// nodeName returns the lower-case type name of r.
func nodeName(r Renderable) string {
	name := fmt.Sprintf("%T", r)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// withNodeContext adds node context to an issue.
func withNodeContext(issue Issue, node string) Issue {
	if issue.Path == "" {
		issue.Path = node
		return issue
	}

	issue.Path = node + ": " + issue.Path
	return issue
}
