package scad

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Point is a 3D point whose axes may be literal or symbolic.
type Point struct {
	x, y, z Value
}

// NewPoint creates a point; each axis is converted with MustConvert.
func NewPoint(x, y, z any) Point {
	return Point{x: MustConvert(x), y: MustConvert(y), z: MustConvert(z)}
}

func (Point) value() {}

// X returns the X axis value.
func (p Point) X() Value { return orNull(p.x) }

// Y returns the Y axis value.
func (p Point) Y() Value { return orNull(p.y) }

// Z returns the Z axis value.
func (p Point) Z() Value { return orNull(p.z) }

// Scad implements Value.
func (p Point) Scad() string {
	return "[" + scadOf(p.x) + ", " + scadOf(p.y) + ", " + scadOf(p.z) + "]"
}

// IsLiteral implements Value. A point is literal only if all axes are.
func (p Point) IsLiteral() bool {
	return p.X().IsLiteral() && p.Y().IsLiteral() && p.Z().IsLiteral()
}

// Literal implements Value.
func (p Point) Literal() any { return []Value{p.X(), p.Y(), p.Z()} }

// Kind implements Value.
func (Point) Kind() Kind { return KindPoint }

// PointVector is an ordered list of points.
type PointVector []Point

func (PointVector) value() {}

// Scad implements Value.
func (v PointVector) Scad() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Scad())
	}
	b.WriteByte(']')
	return b.String()
}

// IsLiteral implements Value.
func (PointVector) IsLiteral() bool { return true }

// Literal implements Value.
func (v PointVector) Literal() any { return []Point(v) }

// Kind implements Value.
func (PointVector) Kind() Kind { return KindPointVector }

// WithPoint returns a copy of the vector with p appended.
func (v PointVector) WithPoint(p Point) PointVector {
	out := make(PointVector, len(v), len(v)+1)
	copy(out, v)
	return append(out, p)
}

// PointIndex assigns stable indices to points while faces are rendered.
//
// Two points are the same if their script text is byte-identical. The first
// occurrence of a text keeps its index. An index belongs to a single render
// pass and must not be shared between goroutines.
type PointIndex struct {
	points PointVector    // Known points in index order
	byText map[string]int // First index of each point text
}

// NewPointIndex creates an index seeded with the given points.
func NewPointIndex(seed PointVector) *PointIndex {
	ix := &PointIndex{
		points: make(PointVector, 0, len(seed)),
		byText: make(map[string]int, len(seed)),
	}
	for _, p := range seed {
		ix.add(p)
	}
	return ix
}

// IndexOf returns the index of p, appending it when unknown.
func (ix *PointIndex) IndexOf(p Point) int {
	if i, ok := ix.byText[p.Scad()]; ok {
		return i
	}
	return ix.add(p)
}

// Points returns the accumulated point list.
func (ix *PointIndex) Points() PointVector {
	return ix.points
}

// Len returns the number of accumulated points.
func (ix *PointIndex) Len() int {
	return len(ix.points)
}

// add appends p and records its text unless already known.
func (ix *PointIndex) add(p Point) int {
	i := len(ix.points)
	ix.points = append(ix.points, p)
	text := p.Scad()
	if _, ok := ix.byText[text]; !ok {
		ix.byText[text] = i
	}
	return i
}

// faceEntry is a face vertex given either by index or by point.
type faceEntry struct {
	point   Point // Vertex point when isPoint is set
	index   int   // Vertex index otherwise
	isPoint bool  // Whether point is used
}

// Face is a polyhedron face of at least 3 vertices.
type Face struct {
	entries []faceEntry
}

// NewFace creates a face from integer indices and Points.
func NewFace(vertices ...any) (Face, error) {
	if len(vertices) < 3 {
		return Face{}, fmt.Errorf("%w: a polyhedron face must have at least 3 points, got %d", ErrInvalidFace, len(vertices))
	}

	entries := make([]faceEntry, 0, len(vertices))
	for i, v := range vertices {
		if p, ok := v.(Point); ok {
			entries = append(entries, faceEntry{point: p, isPoint: true})
			continue
		}
		n, err := Convert(v, KindNull)
		if err != nil {
			return Face{}, fmt.Errorf("%w: vertex %d: %w", ErrInvalidFace, i, err)
		}
		idx, ok := n.(Int)
		if !ok {
			return Face{}, fmt.Errorf("%w: vertex %d must be an index or a Point, got %s", ErrInvalidFace, i, n.Kind())
		}
		pos, err := safecast.Conv[int](int64(idx))
		if err != nil {
			return Face{}, fmt.Errorf("%w: vertex %d: %w", ErrInvalidFace, i, err)
		}
		entries = append(entries, faceEntry{index: pos})
	}

	return Face{entries: entries}, nil
}

// MustFace is like NewFace but panics on error.
func MustFace(vertices ...any) Face {
	f, err := NewFace(vertices...)
	if err != nil {
		panic(err)
	}
	return f
}

func (Face) value() {}

// Len returns the number of vertices.
func (f Face) Len() int { return len(f.entries) }

// Scad implements Value. Point vertices are indexed against an empty list.
func (f Face) Scad() string {
	return f.ScadIndexed(NewPointIndex(nil))
}

// ScadIndexed renders the face resolving point vertices through ix.
func (f Face) ScadIndexed(ix *PointIndex) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range f.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		idx := e.index
		if e.isPoint {
			idx = ix.IndexOf(e.point)
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte(']')
	return b.String()
}

// IsLiteral implements Value.
func (Face) IsLiteral() bool { return true }

// Literal implements Value. Entries are int indices or Points.
func (f Face) Literal() any {
	out := make([]any, len(f.entries))
	for i, e := range f.entries {
		if e.isPoint {
			out[i] = e.point
		} else {
			out[i] = e.index
		}
	}
	return out
}

// Kind implements Value.
func (Face) Kind() Kind { return KindFace }

// hasPoints reports whether any vertex is given as a Point.
func (f Face) hasPoints() bool {
	for _, e := range f.entries {
		if e.isPoint {
			return true
		}
	}
	return false
}

// FaceVector is an ordered list of faces sharing one point list.
type FaceVector []Face

func (FaceVector) value() {}

// Scad implements Value.
func (v FaceVector) Scad() string {
	return v.ScadIndexed(NewPointIndex(nil))
}

// ScadIndexed renders all faces against one shared point index.
func (v FaceVector) ScadIndexed(ix *PointIndex) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(f.ScadIndexed(ix))
	}
	b.WriteByte(']')
	return b.String()
}

// IsLiteral implements Value.
func (FaceVector) IsLiteral() bool { return true }

// Literal implements Value.
func (v FaceVector) Literal() any { return []Face(v) }

// Kind implements Value.
func (FaceVector) Kind() Kind { return KindFaceVector }

// hasPoints reports whether any face has Point vertices.
func (v FaceVector) hasPoints() bool {
	for _, f := range v {
		if f.hasPoints() {
			return true
		}
	}
	return false
}
