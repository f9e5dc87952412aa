package scad

import "fmt"

// Cube is a rectangular box.
type Cube struct {
	placement
	width, depth, height Value
	center               Value
}

// NewCube creates a cube that is not centered on the origin.
func NewCube(width, depth, height any) Cube {
	return Cube{
		width:  MustConvert(width),
		depth:  MustConvert(depth),
		height: MustConvert(height),
		center: Bool(false),
	}
}

// Width returns the X size.
func (c Cube) Width() Value { return orNull(c.width) }

// Depth returns the Y size.
func (c Cube) Depth() Value { return orNull(c.depth) }

// Height returns the Z size.
func (c Cube) Height() Value { return orNull(c.height) }

// Centered returns the center flag.
func (c Cube) Centered() Value { return orNull(c.center) }

// WithWidth returns a copy with a different X size.
func (c Cube) WithWidth(v any) Cube { c.width = MustConvert(v); return c }

// WithDepth returns a copy with a different Y size.
func (c Cube) WithDepth(v any) Cube { c.depth = MustConvert(v); return c }

// WithHeight returns a copy with a different Z size.
func (c Cube) WithHeight(v any) Cube { c.height = MustConvert(v); return c }

// WithCentered returns a copy with a different center flag.
func (c Cube) WithCentered(v any) Cube { c.center = MustConvert(v); return c }

// WithPosition implements Renderable.
func (c Cube) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c Cube) WithColor(col Color) Renderable { c.color = col; return c }

// Wrappers implements HasWrappers.
func (c Cube) Wrappers() []WrapperConfig { return DefaultWrappers(c) }

// renderable reports whether the cube may have a volume.
func (c Cube) renderable() bool {
	return !(literalNonPositive(c.width) && literalNonPositive(c.depth) && literalNonPositive(c.height))
}

// Render implements Renderable.
func (c Cube) Render(*RenderContext) string {
	if !c.renderable() {
		return ""
	}
	return fmt.Sprintf("cube([%s, %s, %s], center = %s);",
		scadOf(c.width), scadOf(c.depth), scadOf(c.height), c.Centered().Scad())
}
