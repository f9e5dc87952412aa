package scad

import (
	"errors"
	"testing"
)

func TestPointIndexDeduplicates(t *testing.T) {
	ix := NewPointIndex(nil)

	p1 := NewPoint(0, 0, 0)
	p2 := NewPoint(0, 0, 0)
	p3 := NewPoint(0.0, 0, 0)

	if i := ix.IndexOf(p1); i != 0 {
		t.Fatalf("p1 index: %d", i)
	}
	if i := ix.IndexOf(p2); i != 0 {
		t.Fatalf("p2 index: %d", i)
	}
	// Same text from a different literal kind.
	if i := ix.IndexOf(p3); i != 0 {
		t.Fatalf("p3 index: %d", i)
	}
	if i := ix.IndexOf(NewPoint(1, 0, 0)); i != 1 {
		t.Fatalf("new point index: %d", i)
	}
	if ix.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", ix.Len())
	}
}

func TestPointIndexSeedKeepsFirstOccurrence(t *testing.T) {
	ix := NewPointIndex(PointVector{NewPoint(1, 1, 1), NewPoint(2, 2, 2), NewPoint(1, 1, 1)})
	if ix.Len() != 3 {
		t.Fatalf("seed points must be kept as given, got %d", ix.Len())
	}
	if i := ix.IndexOf(NewPoint(1, 1, 1)); i != 0 {
		t.Fatalf("expected first occurrence, got %d", i)
	}
}

func TestPointIndexSymbolicPoints(t *testing.T) {
	ix := NewPointIndex(nil)
	a := ix.IndexOf(NewPoint(Variable("w"), 0, 0))
	b := ix.IndexOf(NewPoint(Variable("w"), 0, 0))
	c := ix.IndexOf(NewPoint(Variable("h"), 0, 0))
	if a != b || a == c {
		t.Fatalf("unexpected indices %d %d %d", a, b, c)
	}
}

func TestNewFace(t *testing.T) {
	if _, err := NewFace(0, 1); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("expected ErrInvalidFace for 2 vertices, got %v", err)
	}
	if _, err := NewFace(0, 1, "x"); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("expected ErrInvalidFace for string vertex, got %v", err)
	}
	if _, err := NewFace(0, 1, 2.5); !errors.Is(err, ErrInvalidFace) {
		t.Fatalf("expected ErrInvalidFace for float vertex, got %v", err)
	}

	f, err := NewFace(0, uint8(1), NewPoint(1, 2, 3))
	if err != nil {
		t.Fatalf("new face: %v", err)
	}
	if f.Len() != 3 {
		t.Fatalf("face len: %d", f.Len())
	}
	if got := f.Scad(); got != "[0,1,0]" {
		t.Fatalf("face scad: %q", got)
	}
}

func TestFaceVectorSharesIndex(t *testing.T) {
	faces := FaceVector{
		MustFace(NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0)),
		MustFace(NewPoint(0, 0, 0), NewPoint(0, 1, 0), NewPoint(0, 0, 1)),
	}

	ix := NewPointIndex(nil)
	if got := faces.ScadIndexed(ix); got != "[[0,1,2],[0,2,3]]" {
		t.Fatalf("faces: %q", got)
	}
	if got := ix.Points().Scad(); got != "[[0, 0, 0],[1, 0, 0],[0, 1, 0],[0, 0, 1]]" {
		t.Fatalf("points: %q", got)
	}
}

func TestPolyhedronRender(t *testing.T) {
	p := NewPolyhedron(
		PointVector{NewPoint(0, 0, 0), NewPoint(1, 0, 0), NewPoint(0, 1, 0)},
		FaceVector{
			MustFace(0, 1, NewPoint(0, 1, 0)),
			MustFace(NewPoint(0.0, 0, 0), 1, NewPoint(0, 0, 1)),
		},
	)

	want := "polyhedron(faces = [[0,1,2],[0,1,3]], points = [[0, 0, 0],[1, 0, 0],[0, 1, 0],[0, 0, 1]], convexity = 1);"
	if got := p.Render(nil); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	// Rendering must not leak points into the declared list.
	if got := p.Points().Scad(); got != "[[0, 0, 0],[1, 0, 0],[0, 1, 0]]" {
		t.Fatalf("declared points changed: %q", got)
	}
}

func TestPolyhedronDefaults(t *testing.T) {
	p := NewPolyhedron(nil, nil).WithConvexity(3)
	if p.Points().Kind() != KindPointVector || p.Faces().Kind() != KindFaceVector {
		t.Fatalf("unexpected kinds %s %s", p.Points().Kind(), p.Faces().Kind())
	}
	if got := p.Render(nil); got != "polyhedron(faces = [], points = [], convexity = 3);" {
		t.Fatalf("got %q", got)
	}
}

func TestPolyhedronSymbolicPointsWarns(t *testing.T) {
	p := NewPolyhedron(Variable("pts"), FaceVector{MustFace(NewPoint(0, 0, 0), 1, 2)})

	rc := NewRenderContext(nil)
	got := p.Render(rc)
	if got != "polyhedron(faces = [[0,1,2]], points = $pts, convexity = 1);" {
		t.Fatalf("got %q", got)
	}
	issues := rc.Issues()
	if len(issues) != 1 || issues[0].Code != "polyhedron_symbolic_points" {
		t.Fatalf("unexpected issues: %+v", issues)
	}
}
