package scad

// Union joins its children into one solid.
type Union struct {
	nodes
}

// NewUnion creates a union of children.
func NewUnion(children ...Renderable) Union {
	return Union{nodes: nodes{renderables: children}}
}

// WithPosition implements Renderable.
func (u Union) WithPosition(c Coordinate) Renderable { u.position = c; return u }

// WithColor implements Renderable.
func (u Union) WithColor(c Color) Renderable { u.color = c; return u }

// WithChild returns a copy with r appended to the children.
func (u Union) WithChild(r Renderable) Union {
	u.renderables = u.appended(r)
	return u
}

// Wrappers implements HasWrappers.
func (u Union) Wrappers() []WrapperConfig { return DefaultWrappers(u) }

// Render implements Renderable.
func (u Union) Render(rc *RenderContext) string {
	return u.renderOp("union", rc)
}

// Difference subtracts every child after the first from the first.
type Difference struct {
	nodes
}

// NewDifference creates a difference with base as the first child.
func NewDifference(children ...Renderable) Difference {
	return Difference{nodes: nodes{renderables: children}}
}

// WithPosition implements Renderable.
func (d Difference) WithPosition(c Coordinate) Renderable { d.position = c; return d }

// WithColor implements Renderable.
func (d Difference) WithColor(c Color) Renderable { d.color = c; return d }

// WithChild returns a copy with r appended to the children.
func (d Difference) WithChild(r Renderable) Difference {
	d.renderables = d.appended(r)
	return d
}

// Wrappers implements HasWrappers.
func (d Difference) Wrappers() []WrapperConfig { return DefaultWrappers(d) }

// Render implements Renderable.
func (d Difference) Render(rc *RenderContext) string {
	return d.renderOp("difference", rc)
}

// Intersection keeps the volume common to all children.
type Intersection struct {
	nodes
}

// NewIntersection creates an intersection of children.
func NewIntersection(children ...Renderable) Intersection {
	return Intersection{nodes: nodes{renderables: children}}
}

// WithPosition implements Renderable.
func (i Intersection) WithPosition(c Coordinate) Renderable { i.position = c; return i }

// WithColor implements Renderable.
func (i Intersection) WithColor(c Color) Renderable { i.color = c; return i }

// WithChild returns a copy with r appended to the children.
func (i Intersection) WithChild(r Renderable) Intersection {
	i.renderables = i.appended(r)
	return i
}

// Wrappers implements HasWrappers.
func (i Intersection) Wrappers() []WrapperConfig { return DefaultWrappers(i) }

// Render implements Renderable.
func (i Intersection) Render(rc *RenderContext) string {
	return i.renderOp("intersection", rc)
}

// renderOp renders op() { children } or nothing without children.
func (n nodes) renderOp(op string, rc *RenderContext) string {
	if !n.hasChildren() {
		return ""
	}
	return block(op+"()", n.renderChildren(rc))
}
