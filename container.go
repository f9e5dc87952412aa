package scad

// ColorChange colors its children.
type ColorChange struct {
	nodes
}

// NewColorChange creates a color() block around children. A nil color renders
// the children without a color block.
func NewColorChange(c Color, children ...Renderable) ColorChange {
	return ColorChange{nodes: nodes{placement: placement{color: c}, renderables: children}}
}

// WithPosition implements Renderable.
func (c ColorChange) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c ColorChange) WithColor(col Color) Renderable { c.color = col; return c }

// WithChild returns a copy with r appended to the children.
func (c ColorChange) WithChild(r Renderable) ColorChange {
	c.renderables = c.appended(r)
	return c
}

// Wrappers implements HasWrappers. Only the position is applied; the color is
// this node's own output.
func (c ColorChange) Wrappers() []WrapperConfig {
	return []WrapperConfig{TranslateWrapper(c.Position())}
}

// Render implements Renderable.
func (c ColorChange) Render(rc *RenderContext) string {
	head := ""
	if c.color != nil {
		head = "color(" + c.color.Scad() + ")"
	}
	return block(head, c.renderUnwrapped(rc))
}

// RenderableContainer groups renderables without emitting any syntax of its own.
type RenderableContainer struct {
	nodes
}

// NewRenderableContainer creates a container of children.
func NewRenderableContainer(children ...Renderable) RenderableContainer {
	return RenderableContainer{nodes: nodes{renderables: children}}
}

// WithPosition implements Renderable.
func (c RenderableContainer) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c RenderableContainer) WithColor(col Color) Renderable { c.color = col; return c }

// WithChild returns a copy with r appended to the children.
func (c RenderableContainer) WithChild(r Renderable) RenderableContainer {
	c.renderables = c.appended(r)
	return c
}

// Wrappers implements HasWrappers.
func (c RenderableContainer) Wrappers() []WrapperConfig { return DefaultWrappers(c) }

// Render implements Renderable.
func (c RenderableContainer) Render(rc *RenderContext) string {
	if !c.hasChildren() {
		return ""
	}
	return c.renderChildren(rc)
}

// Comment prefixes a renderable with a block comment.
type Comment struct {
	nodes
	text      string
	unwrapped bool // child is already being wrapped
}

// NewComment creates a commented renderable.
func NewComment(text string, r Renderable) Comment {
	return Comment{nodes: nodes{renderables: []Renderable{r}}, text: text}
}

// Text returns the comment text.
func (c Comment) Text() string { return c.text }

// WithPosition implements Renderable.
func (c Comment) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c Comment) WithColor(col Color) Renderable { c.color = col; return c }

// Wrappers implements HasWrappers.
func (c Comment) Wrappers() []WrapperConfig { return DefaultWrappers(c) }

// Render implements Renderable.
func (c Comment) Render(rc *RenderContext) string {
	if c.unwrapped {
		return "/* " + c.text + " */ " + c.renderUnwrapped(rc)
	}
	return "/* " + c.text + " */ " + c.renderChildren(rc)
}

// CommentWrapper returns a config wrapping nodes in a Comment.
func CommentWrapper(text string) WrapperConfig {
	return WrapperConfig{
		Name: "comment",
		Wrap: func(inner Renderable) Renderable {
			c := NewComment(text, inner)
			c.unwrapped = true
			return c
		},
	}
}
