package scad

// Statement is raw script text placed into the document as a renderable,
// e.g. a call to a user module.
type Statement struct {
	placement
	text    string
	modules []Module
}

// NewStatement creates a statement from text. modules are hoisted to the
// document top like the helper modules of built-in shapes.
func NewStatement(text string, modules ...Module) Statement {
	return Statement{text: text, modules: modules}
}

// NewExpressionStatement creates a statement from an expression, dropping the
// parentheses an Expression renders with.
func NewExpressionStatement(e Expression, modules ...Module) Statement {
	return NewStatement(string(e), modules...)
}

// Text returns the statement text.
func (s Statement) Text() string { return s.text }

// Modules implements HasModules.
func (s Statement) Modules() []Module { return s.modules }

// WithPosition implements Renderable.
func (s Statement) WithPosition(c Coordinate) Renderable { s.position = c; return s }

// WithColor implements Renderable.
func (s Statement) WithColor(c Color) Renderable { s.color = c; return s }

// Wrappers implements HasWrappers.
func (s Statement) Wrappers() []WrapperConfig { return DefaultWrappers(s) }

// Render implements Renderable.
func (s Statement) Render(*RenderContext) string {
	return s.text
}
