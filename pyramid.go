package scad

// Pyramid is a four-sided pyramid over a width x depth base, with its apex above
// the base center. It renders as a Polyhedron.
type Pyramid struct {
	placement
	width, depth, height Value
}

// NewPyramid creates a pyramid.
func NewPyramid(width, depth, height any) Pyramid {
	return Pyramid{
		width:  MustConvert(width),
		depth:  MustConvert(depth),
		height: MustConvert(height),
	}
}

// Width returns the base X size.
func (p Pyramid) Width() Value { return orNull(p.width) }

// Depth returns the base Y size.
func (p Pyramid) Depth() Value { return orNull(p.depth) }

// Height returns the apex height.
func (p Pyramid) Height() Value { return orNull(p.height) }

// WithWidth returns a copy with a different base X size.
func (p Pyramid) WithWidth(v any) Pyramid { p.width = MustConvert(v); return p }

// WithDepth returns a copy with a different base Y size.
func (p Pyramid) WithDepth(v any) Pyramid { p.depth = MustConvert(v); return p }

// WithHeight returns a copy with a different apex height.
func (p Pyramid) WithHeight(v any) Pyramid { p.height = MustConvert(v); return p }

// WithPosition implements Renderable.
func (p Pyramid) WithPosition(c Coordinate) Renderable { p.position = c; return p }

// WithColor implements Renderable.
func (p Pyramid) WithColor(c Color) Renderable { p.color = c; return p }

// Wrappers implements HasWrappers.
func (p Pyramid) Wrappers() []WrapperConfig { return DefaultWrappers(p) }

// Children implements Container.
func (p Pyramid) Children() []Renderable { return []Renderable{p.Polyhedron()} }

// Polyhedron returns the polyhedron the pyramid renders as.
func (p Pyramid) Polyhedron() Polyhedron {
	w, d, h := p.Width(), p.Depth(), p.Height()

	apex := Point{x: Div(w, Int(2)), y: Div(d, Int(2)), z: h}
	bottomLeft := Point{x: Int(0), y: Int(0), z: Int(0)}
	topLeft := Point{x: Int(0), y: d, z: Int(0)}
	topRight := Point{x: w, y: d, z: Int(0)}
	bottomRight := Point{x: w, y: Int(0), z: Int(0)}

	return NewPolyhedron(PointVector{}, FaceVector{
		MustFace(topRight, bottomRight, apex),
		MustFace(bottomRight, bottomLeft, apex),
		MustFace(bottomLeft, topLeft, apex),
		MustFace(topLeft, topRight, apex),
		MustFace(topRight, topLeft, bottomLeft, bottomRight),
	})
}

// Render implements Renderable.
func (p Pyramid) Render(rc *RenderContext) string {
	return Wrap(p.Polyhedron()).Render(rc)
}
