package scad

import "fmt"

// Polyhedron is a solid defined by points and faces.
//
// Faces may reference vertices by index into the point list or by Point; point
// vertices are added to the emitted point list on first use and deduplicated by
// their script text.
type Polyhedron struct {
	placement
	points    Value // PointVector or reference
	faces     Value // FaceVector or reference
	convexity Value
}

// NewPolyhedron creates a polyhedron. points and faces accept PointVector and
// FaceVector values, slices convertible to them, or references.
func NewPolyhedron(points, faces any) Polyhedron {
	return Polyhedron{
		points:    listValue(points, KindPointVector),
		faces:     listValue(faces, KindFaceVector),
		convexity: Int(1),
	}
}

// Points returns the declared point list.
func (p Polyhedron) Points() Value { return orNull(p.points) }

// Faces returns the declared faces.
func (p Polyhedron) Faces() Value { return orNull(p.faces) }

// Convexity returns the convexity hint.
func (p Polyhedron) Convexity() Value { return orNull(p.convexity) }

// WithPoints returns a copy with a different point list.
func (p Polyhedron) WithPoints(v any) Polyhedron {
	p.points = listValue(v, KindPointVector)
	return p
}

// WithFaces returns a copy with different faces.
func (p Polyhedron) WithFaces(v any) Polyhedron {
	p.faces = listValue(v, KindFaceVector)
	return p
}

// WithConvexity returns a copy with a different convexity hint.
func (p Polyhedron) WithConvexity(v any) Polyhedron {
	p.convexity = MustConvert(v)
	return p
}

// WithPosition implements Renderable.
func (p Polyhedron) WithPosition(c Coordinate) Renderable { p.position = c; return p }

// WithColor implements Renderable.
func (p Polyhedron) WithColor(c Color) Renderable { p.color = c; return p }

// Wrappers implements HasWrappers.
func (p Polyhedron) Wrappers() []WrapperConfig { return DefaultWrappers(p) }

// lint reports point vertices that cannot be appended to a symbolic point list.
func (p Polyhedron) lint() []Issue {
	fv, ok := p.faces.(FaceVector)
	if !ok || !fv.hasPoints() {
		return nil
	}
	if _, ok := p.points.(PointVector); ok {
		return nil
	}
	return []Issue{{
		Level:   IssueWarning,
		Code:    "polyhedron_symbolic_points",
		Message: "faces use point vertices but the point list is not literal",
		Path:    scadOf(p.points),
	}}
}

// Render implements Renderable.
func (p Polyhedron) Render(rc *RenderContext) string {
	for _, issue := range p.lint() {
		rc.Warn(issue.Code, issue.Message, issue.Path)
	}

	points := scadOf(p.points)
	faces := scadOf(p.faces)
	if fv, ok := p.faces.(FaceVector); ok {
		if pv, ok := p.points.(PointVector); ok {
			ix := NewPointIndex(pv)
			faces = fv.ScadIndexed(ix)
			points = ix.Points().Scad()
		} else {
			faces = fv.ScadIndexed(NewPointIndex(nil))
		}
	}

	return fmt.Sprintf("polyhedron(faces = %s, points = %s, convexity = %s);", faces, points, scadOf(p.convexity))
}

// listValue converts a point or face list; nil yields an empty list of hint kind.
func listValue(raw any, hint Kind) Value {
	if raw == nil {
		return emptyVector(hint)
	}
	return mustConvertHint(raw, hint)
}
