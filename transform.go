package scad

// Translate moves its children by its own position.
//
// Translate is the end of every wrapper chain: it declares no wrappers and
// renders its children as they are.
type Translate struct {
	nodes
}

// NewTranslate creates a translation of children by offset.
func NewTranslate(offset Coordinate, children ...Renderable) Translate {
	return Translate{nodes: nodes{placement: placement{position: offset}, renderables: children}}
}

// WithPosition implements Renderable.
func (t Translate) WithPosition(c Coordinate) Renderable { t.position = c; return t }

// WithColor implements Renderable.
func (t Translate) WithColor(c Color) Renderable { t.color = c; return t }

// WithChild returns a copy with r appended to the children.
func (t Translate) WithChild(r Renderable) Translate {
	t.renderables = t.appended(r)
	return t
}

// Wrappers implements HasWrappers.
func (Translate) Wrappers() []WrapperConfig { return nil }

// Render implements Renderable.
func (t Translate) Render(rc *RenderContext) string {
	if !t.hasChildren() {
		return ""
	}

	offset := t.Position()
	head := ""
	if !isOrigin(offset) {
		head = "translate([" + offset.X().Scad() + ", " + offset.Y().Scad() + ", " + offset.Z().Scad() + "])"
	}

	return block(head, t.renderUnwrapped(rc))
}

// Scale scales its children along each axis.
type Scale struct {
	nodes
	x, y, z Value
}

// NewScale creates a scale of children by factors x, y and z.
func NewScale(x, y, z any, children ...Renderable) Scale {
	return Scale{
		nodes: nodes{renderables: children},
		x:     MustConvert(x),
		y:     MustConvert(y),
		z:     MustConvert(z),
	}
}

// WithPosition implements Renderable.
func (s Scale) WithPosition(c Coordinate) Renderable { s.position = c; return s }

// WithColor implements Renderable.
func (s Scale) WithColor(c Color) Renderable { s.color = c; return s }

// WithChild returns a copy with r appended to the children.
func (s Scale) WithChild(r Renderable) Scale {
	s.renderables = s.appended(r)
	return s
}

// Wrappers implements HasWrappers.
func (s Scale) Wrappers() []WrapperConfig { return DefaultWrappers(s) }

// Render implements Renderable.
func (s Scale) Render(rc *RenderContext) string {
	if !s.hasChildren() {
		return ""
	}

	head := ""
	if !isIdentity(s.x, s.y, s.z) {
		head = "scale([" + scadOf(s.x) + ", " + scadOf(s.y) + ", " + scadOf(s.z) + "])"
	}

	return block(head, s.renderChildren(rc))
}

// Mirror mirrors its children on the plane with the given normal.
type Mirror struct {
	nodes
	x, y, z Value
}

// NewMirror creates a mirror of children across the plane with normal (x, y, z).
func NewMirror(x, y, z any, children ...Renderable) Mirror {
	return Mirror{
		nodes: nodes{renderables: children},
		x:     MustConvert(x),
		y:     MustConvert(y),
		z:     MustConvert(z),
	}
}

// WithPosition implements Renderable.
func (m Mirror) WithPosition(c Coordinate) Renderable { m.position = c; return m }

// WithColor implements Renderable.
func (m Mirror) WithColor(c Color) Renderable { m.color = c; return m }

// WithChild returns a copy with r appended to the children.
func (m Mirror) WithChild(r Renderable) Mirror {
	m.renderables = m.appended(r)
	return m
}

// Wrappers implements HasWrappers.
func (m Mirror) Wrappers() []WrapperConfig { return DefaultWrappers(m) }

// Render implements Renderable.
func (m Mirror) Render(rc *RenderContext) string {
	if !m.hasChildren() {
		return ""
	}

	head := ""
	if !isIdentity(m.x, m.y, m.z) {
		head = "mirror([" + scadOf(m.x) + ", " + scadOf(m.y) + ", " + scadOf(m.z) + "])"
	}

	return block(head, m.renderChildren(rc))
}

// Resize resizes its children to absolute dimensions.
type Resize struct {
	nodes
	width, depth, height Value
	auto                 Value
}

// NewResize creates a resize of children. A zero dimension keeps the original size.
func NewResize(width, depth, height any, children ...Renderable) Resize {
	return Resize{
		nodes:  nodes{renderables: children},
		width:  MustConvert(width),
		depth:  MustConvert(depth),
		height: MustConvert(height),
		auto:   Null{},
	}
}

// WithAutoscale returns a copy with the auto argument set to a bool, Autoscale,
// vector or reference.
func (r Resize) WithAutoscale(auto any) Resize {
	r.auto = MustConvert(auto)
	return r
}

// WithPosition implements Renderable.
func (r Resize) WithPosition(c Coordinate) Renderable { r.position = c; return r }

// WithColor implements Renderable.
func (r Resize) WithColor(c Color) Renderable { r.color = c; return r }

// WithChild returns a copy with child appended to the children.
func (r Resize) WithChild(child Renderable) Resize {
	r.renderables = r.appended(child)
	return r
}

// Wrappers implements HasWrappers.
func (r Resize) Wrappers() []WrapperConfig { return DefaultWrappers(r) }

// Render implements Renderable.
func (r Resize) Render(rc *RenderContext) string {
	if !r.hasChildren() {
		return ""
	}

	head := ""
	if !(literalEquals(r.width, 0) && literalEquals(r.depth, 0) && literalEquals(r.height, 0)) {
		head = "resize(newsize = [" + scadOf(r.width) + ", " + scadOf(r.depth) + ", " + scadOf(r.height) + "]"
		if !isNull(r.auto) {
			head += ", auto = " + r.auto.Scad()
		}
		head += ")"
	}

	return block(head, r.renderChildren(rc))
}

// Rotate rotates its children.
type Rotate struct {
	nodes
	rotation Value
	axis     Value
}

// NewRotate creates a rotation of children. rotation is an angle in degrees or
// an [x, y, z] vector of angles; axis is nil or the vector to rotate around.
func NewRotate(rotation, axis any, children ...Renderable) Rotate {
	return Rotate{
		nodes:    nodes{renderables: children},
		rotation: MustConvert(rotation),
		axis:     MustConvert(axis),
	}
}

// WithRotation returns a copy with a different rotation.
func (r Rotate) WithRotation(rotation any) Rotate {
	r.rotation = MustConvert(rotation)
	return r
}

// WithAxis returns a copy with a different rotation axis.
func (r Rotate) WithAxis(axis any) Rotate {
	r.axis = MustConvert(axis)
	return r
}

// WithPosition implements Renderable.
func (r Rotate) WithPosition(c Coordinate) Renderable { r.position = c; return r }

// WithColor implements Renderable.
func (r Rotate) WithColor(c Color) Renderable { r.color = c; return r }

// WithChild returns a copy with child appended to the children.
func (r Rotate) WithChild(child Renderable) Rotate {
	r.renderables = r.appended(child)
	return r
}

// Wrappers implements HasWrappers.
func (r Rotate) Wrappers() []WrapperConfig { return DefaultWrappers(r) }

// Render implements Renderable.
func (r Rotate) Render(rc *RenderContext) string {
	if !r.hasChildren() {
		return ""
	}

	for _, issue := range r.lint() {
		rc.Warn(issue.Code, issue.Message, issue.Path)
	}

	return block("rotate(a = "+scadOf(r.rotation)+", v = "+scadOf(r.axis)+")", r.renderChildren(rc))
}

// lint reports an axis that the engine ignores.
func (r Rotate) lint() []Issue {
	if !isVectorValue(r.rotation) || isNull(r.axis) {
		return nil
	}
	return []Issue{{
		Level:   IssueWarning,
		Code:    "rotate_axis_ignored",
		Message: "rotation axis is ignored when the rotation is a vector",
		Path:    r.axis.Scad(),
	}}
}

// isIdentity reports whether all three factors are literally 1.
func isIdentity(x, y, z Value) bool {
	return literalEquals(x, 1) && literalEquals(y, 1) && literalEquals(z, 1)
}

// isVectorValue reports whether v is a vector-shaped literal.
func isVectorValue(v Value) bool {
	switch v.(type) {
	case Vector, Point:
		return true
	default:
		return false
	}
}
