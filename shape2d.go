package scad

import "fmt"

// Shape2D is a flat shape that can be extruded into a solid.
type Shape2D interface {
	Renderable
	shape2D()
}

// Square is a rectangle on the XY plane.
type Square struct {
	placement
	width, height Value
	center        Value
}

// NewSquare creates a rectangle that is not centered on the origin.
func NewSquare(width, height any) Square {
	return Square{width: MustConvert(width), height: MustConvert(height), center: Bool(false)}
}

func (Square) shape2D() {}

// Width returns the X size.
func (s Square) Width() Value { return orNull(s.width) }

// Height returns the Y size.
func (s Square) Height() Value { return orNull(s.height) }

// WithWidth returns a copy with a different X size.
func (s Square) WithWidth(v any) Square { s.width = MustConvert(v); return s }

// WithHeight returns a copy with a different Y size.
func (s Square) WithHeight(v any) Square { s.height = MustConvert(v); return s }

// WithCentered returns a copy with a different center flag.
func (s Square) WithCentered(v any) Square { s.center = MustConvert(v); return s }

// WithPosition implements Renderable.
func (s Square) WithPosition(c Coordinate) Renderable { s.position = c; return s }

// WithColor implements Renderable.
func (s Square) WithColor(c Color) Renderable { s.color = c; return s }

// Wrappers implements HasWrappers.
func (s Square) Wrappers() []WrapperConfig { return DefaultWrappers(s) }

func (s Square) renderable() bool {
	return !(literalNonPositive(s.width) && literalNonPositive(s.height))
}

// Render implements Renderable.
func (s Square) Render(*RenderContext) string {
	if !s.renderable() {
		return ""
	}
	return fmt.Sprintf("square(size = [%s, %s], center = %s);", scadOf(s.width), scadOf(s.height), scadOf(s.center))
}

// Circle is a circle on the XY plane given by radius or diameter.
type Circle struct {
	placement
	radius   Value
	diameter Value
	facets   *Facets
}

// NewCircle creates a circle with radius r.
func NewCircle(r any) Circle {
	return Circle{radius: MustConvert(r), diameter: Null{}}
}

// NewCircleDiameter creates a circle with diameter d.
func NewCircleDiameter(d any) Circle {
	return Circle{radius: Null{}, diameter: MustConvert(d)}
}

func (Circle) shape2D() {}

// Facets implements HasFacets.
func (c Circle) Facets() *Facets { return c.facets }

// WithFacets returns a copy with a facets configuration.
func (c Circle) WithFacets(f *Facets) Circle { c.facets = f; return c }

// WithPosition implements Renderable.
func (c Circle) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c Circle) WithColor(col Color) Renderable { c.color = col; return c }

// Wrappers implements HasWrappers.
func (c Circle) Wrappers() []WrapperConfig { return DefaultWrappers(c) }

func (c Circle) renderable() bool {
	return !(literalNonPositive(c.radius) && literalNonPositive(c.diameter))
}

// Render implements Renderable.
func (c Circle) Render(*RenderContext) string {
	if !c.renderable() {
		return ""
	}

	args := "d = " + scadOf(c.diameter)
	if !isNull(c.radius) {
		args = "r = " + c.radius.Scad()
	}

	return "circle(" + withFacets(args, c.facets) + ");"
}
