package scad

import "fmt"

// Renderable is a scene node that renders to script text.
//
// Nodes are immutable values; WithPosition and WithColor return modified copies
// of the same concrete type.
type Renderable interface {
	// Position returns the node position, Zero when never set.
	Position() Coordinate
	// WithPosition returns a copy placed at c.
	WithPosition(c Coordinate) Renderable
	// Color returns the node color, nil when unset.
	Color() Color
	// WithColor returns a copy with color c.
	WithColor(c Color) Renderable
	// Render returns the script text, or "" when the node produces no geometry.
	Render(rc *RenderContext) string
}

// HasWrappers is implemented by nodes that are wrapped before rendering.
type HasWrappers interface {
	// Wrappers returns the wrappers to apply, innermost first.
	Wrappers() []WrapperConfig
}

// HasModules is implemented by nodes that depend on module definitions.
type HasModules interface {
	Modules() []Module
}

// HasFacets is implemented by nodes with a facets configuration.
type HasFacets interface {
	Facets() *Facets
}

// Container is implemented by nodes that hold child nodes.
type Container interface {
	Children() []Renderable
}

// placement holds the position and color shared by all nodes.
type placement struct {
	position Coordinate // Position, nil means origin
	color    Color      // Color, nil means none
}

// Position implements Renderable.
func (p placement) Position() Coordinate {
	if p.position == nil {
		return Zero{}
	}
	return p.position
}

// Color implements Renderable.
func (p placement) Color() Color {
	return p.color
}

// MovedBy returns r moved by delta.
//
// T must be the type WithPosition returns. A type embedding a node gets the
// embedded node back; move it with T = Renderable. MovedBy panics with
// ErrUnsupportedType otherwise.
func MovedBy[T Renderable](r T, delta Coordinate) T {
	return asNode[T](r, r.WithPosition(r.Position().Add(delta)), "WithPosition")
}

// MovedRight returns r moved along +X.
func MovedRight[T Renderable](r T, mm any) T {
	return MovedBy(r, OnX(mm))
}

// MovedLeft returns r moved along -X.
func MovedLeft[T Renderable](r T, mm any) T {
	return MovedBy(r, AxisX{v: Neg(MustConvert(mm))})
}

// MovedUp returns r moved along +Y.
func MovedUp[T Renderable](r T, mm any) T {
	return MovedBy(r, OnY(mm))
}

// MovedDown returns r moved along -Y.
func MovedDown[T Renderable](r T, mm any) T {
	return MovedBy(r, AxisY{v: Neg(MustConvert(mm))})
}

// MovedUpOnZ returns r moved along +Z.
func MovedUpOnZ[T Renderable](r T, mm any) T {
	return MovedBy(r, OnZ(mm))
}

// MovedDownOnZ returns r moved along -Z.
func MovedDownOnZ[T Renderable](r T, mm any) T {
	return MovedBy(r, AxisZ{v: Neg(MustConvert(mm))})
}

// Colored returns r with color c. T follows the same rule as in MovedBy.
func Colored[T Renderable](r T, c Color) T {
	return asNode[T](r, r.WithColor(c), "WithColor")
}

// asNode asserts that the result of a wither on orig kept type T.
func asNode[T Renderable](orig T, got Renderable, method string) T {
	out, ok := got.(T)
	if !ok {
		panic(fmt.Errorf("%w: %T.%s returns %T", ErrUnsupportedType, orig, method, got))
	}
	return out
}

// JoinedWith returns the union of r and others.
func JoinedWith(r Renderable, others ...Renderable) Union {
	return NewUnion(append([]Renderable{r}, others...)...)
}

// SubtractedWith returns r with others subtracted.
func SubtractedWith(r Renderable, others ...Renderable) Difference {
	return NewDifference(append([]Renderable{r}, others...)...)
}

// IntersectedWith returns the intersection of r and others.
func IntersectedWith(r Renderable, others ...Renderable) Intersection {
	return NewIntersection(append([]Renderable{r}, others...)...)
}

// modulesOf collects module definitions declared by nodes.
func modulesOf(nodes []Renderable) []Module {
	var out []Module
	for _, n := range nodes {
		if hm, ok := n.(HasModules); ok {
			out = append(out, hm.Modules()...)
		}
	}
	return out
}
