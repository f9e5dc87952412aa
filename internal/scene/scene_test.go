package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/scad"
)

const boxScene = `
[model]
generator = false

[[variables]]
name = "width"
value = 20
max = 100
description = "Box width"

[[shapes]]
type = "difference"
move = [0, 0, 5]
color = [255, 0, 0]

  [[shapes.children]]
  type = "cube"
  size = ["$width", 10, 10]

  [[shapes.children]]
  type = "cylinder"
  h = 12
  r = 2
  move = [5, 5, -1]
`

func build(t *testing.T, data string) scad.Model {
	t.Helper()
	s, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, err := s.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return m
}

func renderFirst(t *testing.T, m scad.Model) string {
	t.Helper()
	if len(m.Renderables()) == 0 {
		t.Fatalf("no renderables")
	}
	return scad.Wrap(m.Renderables()[0]).Render(nil)
}

func TestBuildBoxScene(t *testing.T) {
	m := build(t, boxScene)

	want := "color(c = [1, 0, 0], alpha = 1) {translate([0, 0, 5]) {difference() {" +
		"cube([$width, 10, 10], center = false);" +
		"translate([5, 5, -1]) {ScadGo_NonCenterableCylinder(h = 12, center = false, centerXY = true, r = 2);}" +
		"}}}"
	if got := renderFirst(t, m); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	content, err := m.Content(nil)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if !strings.HasPrefix(content, "// Box width\n$width = 20; // [100]\nmodule __Customizer_End() {}\n") {
		t.Fatalf("unexpected document head:\n%s", content)
	}
}

func TestBuildShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape string
		want  string
	}{
		{"sphere diameter", `type = "sphere"
d = 4
center = false
facets = { fn = 32 }`, "ScadGo_NonCenterableSphere(d = 4, center = false, $fn = 32);"},
		{"sphere radius", `type = "sphere"
r = "$r"`, "ScadGo_NonCenterableSphere(r = $r, center = true);"},
		{"expression", `type = "cube"
size = ["$w / 2", 1, 1.5]`, "cube([($w / 2), 1, 1.5], center = false);"},
		{"square", `type = "square"
size = [2, 3]
center = true`, "square(size = [2, 3], center = true);"},
		{"circle", `type = "circle"
r = 1`, "circle(r = 1);"},
		{"polyhedron", `type = "polyhedron"
points = [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
faces = [[0, 1, 2]]`, "polyhedron(faces = [[0,1,2]], points = [[0, 0, 0],[1, 0, 0],[0, 1, 0]], convexity = 1);"},
		{"statement", `type = "statement"
text = "logo();"`, "logo();"},
		{"hex color", `type = "cube"
size = [1, 1, 1]
color = "#00ff00"`, `color(c = "#00ff00", alpha = 1) {cube([1, 1, 1], center = false);}`},
		{"rgba color", `type = "cube"
size = [1, 1, 1]
color = [0, 0, 255, 2.0]`, "color(c = [0, 0, 1], alpha = 1) {cube([1, 1, 1], center = false);}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := build(t, "[[shapes]]\n"+tt.shape+"\n")
			if got := renderFirst(t, m); got != tt.want {
				t.Fatalf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestBuildNestedTransforms(t *testing.T) {
	m := build(t, `
[[shapes]]
type = "rotate"
a = 90
v = [0, 0, 1]

  [[shapes.children]]
  type = "linear_extrude"
  h = 5

    [[shapes.children.children]]
    type = "square"
    size = [2, 3]

[[shapes]]
type = "comment"
text = "base"

  [[shapes.children]]
  type = "scale"
  size = [2, 1, 1]

    [[shapes.children.children]]
    type = "cube"
    size = [1, 1, 1]
`)

	if got := renderFirst(t, m); got != "rotate(a = 90, v = [0,0,1]) {linear_extrude(height = 5, center = false, twist = 0, scale = 1) {square(size = [2, 3], center = false);}}" {
		t.Fatalf("rotate: %q", got)
	}
	if got := scad.Wrap(m.Renderables()[1]).Render(nil); got != "/* base */ scale([2, 1, 1]) {cube([1, 1, 1], center = false);}" {
		t.Fatalf("comment: %q", got)
	}
}

func TestBuildModelSettings(t *testing.T) {
	m := build(t, `
[model]
configurable_facets = true
facets = { fa = 12, fs = 2 }

[[fonts]]
path = "fonts/a.ttf"
name = "A"

[[variables]]
name = "part"
value = "lid"
options = ["base", "lid"]
labels = ["Base"]

[[variables]]
name = "holes"
value = 3

[[shapes]]
type = "cube"
size = [1, 1, 1]
`)

	got, err := m.Content(nil)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	want := scad.Generator + "use <fonts/a.ttf>\n$fa = 12;\n$fs = 2;\n" +
		"$part = \"lid\"; // [base:Base, lid]\n$holes = 3;\n" +
		"module __Customizer_End() {}\ncube([1, 1, 1], center = false);"
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown key", "[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\nsise = 3\n", ErrUndecodedKeys},
		{"unknown shape", "[[shapes]]\ntype = \"torus\"\n", ErrUnknownShape},
		{"missing type", "[[shapes]]\nsize = [1, 1, 1]\n", ErrInvalidShape},
		{"bad size", "[[shapes]]\ntype = \"cube\"\nsize = [1, 1]\n", ErrInvalidShape},
		{"missing radius", "[[shapes]]\ntype = \"sphere\"\n", ErrInvalidShape},
		{"leaf with children", "[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\n[[shapes.children]]\ntype = \"cube\"\nsize = [1, 1, 1]\n", ErrInvalidShape},
		{"extrude solid", "[[shapes]]\ntype = \"linear_extrude\"\nh = 1\n[[shapes.children]]\ntype = \"cube\"\nsize = [1, 1, 1]\n", ErrInvalidShape},
		{"short face", "[[shapes]]\ntype = \"polyhedron\"\npoints = []\nfaces = [[0, 1]]\n", ErrInvalidShape},
		{"bad color", "[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\ncolor = [1, 2]\n", ErrInvalidShape},
		{"dropdown mismatch", "[[variables]]\nname = \"n\"\nvalue = \"a\"\noptions = [1, 2]\n[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\n", ErrInvalidVariable},
		{"slider text", "[[variables]]\nname = \"n\"\nvalue = \"a\"\nmax = 3\n[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\n", ErrInvalidVariable},
		{"unnamed variable", "[[variables]]\nvalue = 1\n[[shapes]]\ntype = \"cube\"\nsize = [1, 1, 1]\n", ErrInvalidVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(tt.data)
			if err == nil {
				_, err = s.Build()
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSceneWithoutShapes(t *testing.T) {
	if _, err := Decode("[model]\ngenerator = true\n"); err == nil || !strings.Contains(err.Error(), "missing [[shapes]]") {
		t.Fatalf("expected missing shapes error, got %v", err)
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "undef"},
		{int64(3), "3"},
		{"$w", "$w"},
		{"$w + 1", "($w + 1)"},
		{"sin(30)", "(sin(30))"},
		{[]any{int64(1), "$a"}, "[1,$a]"},
		{[]any{int64(1), int64(2), int64(3)}, "[1,2,3]"},
	}

	for _, tt := range tests {
		v, err := Value(tt.in)
		if err != nil {
			t.Fatalf("value %v: %v", tt.in, err)
		}
		if v.Scad() != tt.want {
			t.Fatalf("value %v: got %q want %q", tt.in, v.Scad(), tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "box.toml")
	data := boxScene + `
[[targets]]
path = "out/box.stl"

[[targets]]
path = "/abs/box.png"
width = 320
height = 200
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Targets) != 2 {
		t.Fatalf("targets: %+v", s.Targets)
	}
	if got := s.TargetPath(s.Targets[0]); got != filepath.Join(dir, "out", "box.stl") {
		t.Fatalf("relative target: %q", got)
	}
	if got := s.TargetPath(s.Targets[1]); got != "/abs/box.png" {
		t.Fatalf("absolute target: %q", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
