package scad

import "strings"

// LinearExtrude extrudes flat shapes along Z.
type LinearExtrude struct {
	placement
	height    Value
	center    Value
	convexity Value
	twist     Value
	slices    Value
	scale     Value
	facets    *Facets
	shapes    []Shape2D
}

// NewLinearExtrude creates an extrusion of shapes to height.
func NewLinearExtrude(height any, shapes ...Shape2D) LinearExtrude {
	return LinearExtrude{
		height:    MustConvert(height),
		center:    Bool(false),
		convexity: Null{},
		twist:     Int(0),
		slices:    Null{},
		scale:     Int(1),
		shapes:    shapes,
	}
}

// Extruded returns s extruded to height.
func Extruded(s Shape2D, height any) LinearExtrude {
	return NewLinearExtrude(height, s)
}

// WithCentered returns a copy with a different center flag.
func (e LinearExtrude) WithCentered(v any) LinearExtrude { e.center = MustConvert(v); return e }

// WithConvexity returns a copy with a convexity hint, nil to omit it.
func (e LinearExtrude) WithConvexity(v any) LinearExtrude { e.convexity = MustConvert(v); return e }

// WithTwist returns a copy with a twist angle in degrees.
func (e LinearExtrude) WithTwist(v any) LinearExtrude { e.twist = MustConvert(v); return e }

// WithSlices returns a copy with a slice count, nil to omit it.
func (e LinearExtrude) WithSlices(v any) LinearExtrude { e.slices = MustConvert(v); return e }

// WithScale returns a copy with a top scale factor.
func (e LinearExtrude) WithScale(v any) LinearExtrude { e.scale = MustConvert(v); return e }

// WithFacets returns a copy with a facets configuration.
func (e LinearExtrude) WithFacets(f *Facets) LinearExtrude { e.facets = f; return e }

// WithShape returns a copy with s appended to the extruded shapes.
func (e LinearExtrude) WithShape(s Shape2D) LinearExtrude {
	e.shapes = append(e.shapes[:len(e.shapes):len(e.shapes)], s)
	return e
}

// Facets implements HasFacets.
func (e LinearExtrude) Facets() *Facets { return e.facets }

// Children implements Container.
func (e LinearExtrude) Children() []Renderable {
	out := make([]Renderable, len(e.shapes))
	for i, s := range e.shapes {
		out[i] = s
	}
	return out
}

// Modules implements HasModules.
func (e LinearExtrude) Modules() []Module { return modulesOf(e.Children()) }

// WithPosition implements Renderable.
func (e LinearExtrude) WithPosition(c Coordinate) Renderable { e.position = c; return e }

// WithColor implements Renderable.
func (e LinearExtrude) WithColor(c Color) Renderable { e.color = c; return e }

// Wrappers implements HasWrappers.
func (e LinearExtrude) Wrappers() []WrapperConfig { return DefaultWrappers(e) }

func (e LinearExtrude) renderable() bool {
	return len(e.shapes) > 0 && !literalNonPositive(e.height)
}

// Render implements Renderable.
func (e LinearExtrude) Render(rc *RenderContext) string {
	if !e.renderable() {
		return ""
	}

	args := []string{"height = " + scadOf(e.height), "center = " + scadOf(e.center)}
	if !isNull(e.convexity) {
		args = append(args, "convexity = "+e.convexity.Scad())
	}
	args = append(args, "twist = "+scadOf(e.twist))
	if !isNull(e.slices) {
		args = append(args, "slices = "+e.slices.Scad())
	}
	args = append(args, "scale = "+scadOf(e.scale))

	var body strings.Builder
	for _, s := range e.shapes {
		body.WriteString(Wrap(s).Render(rc))
	}

	return block("linear_extrude("+withFacets(strings.Join(args, ", "), e.facets)+")", body.String())
}

// Projection flattens solids onto the XY plane.
type Projection struct {
	nodes
	cut Value
}

// NewProjection creates a projection of children. With cut set only the
// slice at Z = 0 is kept.
func NewProjection(cut any, children ...Renderable) Projection {
	return Projection{nodes: nodes{renderables: children}, cut: MustConvert(cut)}
}

func (Projection) shape2D() {}

// WithChild returns a copy with r appended to the children.
func (p Projection) WithChild(r Renderable) Projection {
	p.renderables = p.appended(r)
	return p
}

// WithPosition implements Renderable.
func (p Projection) WithPosition(c Coordinate) Renderable { p.position = c; return p }

// WithColor implements Renderable.
func (p Projection) WithColor(c Color) Renderable { p.color = c; return p }

// Wrappers implements HasWrappers.
func (p Projection) Wrappers() []WrapperConfig { return DefaultWrappers(p) }

// Render implements Renderable.
func (p Projection) Render(rc *RenderContext) string {
	if !p.hasChildren() {
		return ""
	}
	return block("projection(cut = "+scadOf(p.cut)+")", p.renderChildren(rc))
}
