package scene

import (
	"fmt"
	"strings"

	"github.com/woozymasta/scad"
)

// ShapeConfig describes one scene node. Which fields apply depends on Type.
type ShapeConfig struct {
	Type string `toml:"type"`

	Size     []any `toml:"size"` // cube, pyramid, square, scale, mirror, resize
	R        any   `toml:"r"`
	R1       any   `toml:"r1"`
	R2       any   `toml:"r2"`
	D        any   `toml:"d"`
	D1       any   `toml:"d1"`
	D2       any   `toml:"d2"`
	H        any   `toml:"h"`
	Center   any   `toml:"center"`
	CenterXY any   `toml:"center_xy"`

	Angle any `toml:"a"` // rotate
	Axis  any `toml:"v"` // rotate
	Auto  any `toml:"auto"`
	Cut   any `toml:"cut"`

	Twist     any `toml:"twist"`
	Slices    any `toml:"slices"`
	Scale     any `toml:"scale"`
	Convexity any `toml:"convexity"`

	Points []any     `toml:"points"` // polyhedron, [[x, y, z], ...]
	Faces  [][]int64 `toml:"faces"`  // polyhedron, indices into points

	Text   string        `toml:"text"` // comment, statement
	Facets *FacetsConfig `toml:"facets"`

	Move     []any         `toml:"move"`  // [x, y, z] position
	Color    any           `toml:"color"` // "#hex", "$var" or [r, g, b(, a)] in 0..255
	Children []ShapeConfig `toml:"children"`
}

// containers lists the node types that take children.
var containers = map[string]bool{
	"union": true, "difference": true, "intersection": true, "group": true,
	"scale": true, "mirror": true, "resize": true, "rotate": true,
	"color": true, "comment": true, "linear_extrude": true, "projection": true,
}

// fields converts shape fields, keeping the first error.
type fields struct {
	path string
	err  error
}

func (f *fields) fail(format string, args ...any) {
	if f.err == nil {
		f.err = fmt.Errorf("%s: %w: %s", f.path, ErrInvalidShape, fmt.Sprintf(format, args...))
	}
}

func (f *fields) value(name string, raw any) scad.Value {
	if f.err != nil {
		return scad.Null{}
	}
	v, err := Value(raw)
	if err != nil {
		f.err = fmt.Errorf("%s.%s: %w", f.path, name, err)
		return scad.Null{}
	}
	return v
}

func (f *fields) valueOr(name string, raw any, def scad.Value) scad.Value {
	if raw == nil {
		return def
	}
	return f.value(name, raw)
}

func (f *fields) required(name string, raw any) scad.Value {
	if raw == nil {
		f.fail("missing %s", name)
		return scad.Null{}
	}
	return f.value(name, raw)
}

func (f *fields) size(name string, raw []any, n int) []scad.Value {
	out := make([]scad.Value, n)
	for i := range out {
		out[i] = scad.Null{}
	}
	if len(raw) != n {
		f.fail("%s needs %d values, got %d", name, n, len(raw))
		return out
	}
	for i, item := range raw {
		out[i] = f.value(fmt.Sprintf("%s[%d]", name, i), item)
	}
	return out
}

func (f *fields) color(raw any) scad.Color {
	switch t := raw.(type) {
	case string:
		if strings.HasPrefix(t, "$") {
			return scad.NewHex(reference(t))
		}
		return scad.NewHex(t)
	case []any:
		if len(t) != 3 && len(t) != 4 {
			f.fail("color needs 3 or 4 values, got %d", len(t))
			return nil
		}
		c := f.size("color", t[:3], 3)
		rgb := scad.NewRGB(c[0], c[1], c[2])
		if len(t) == 4 {
			if n, ok := number(t[3]); ok {
				return rgb.WithAlpha(scad.Clamp01(n))
			}
			return rgb.WithAlpha(f.value("color[3]", t[3]))
		}
		return rgb
	default:
		f.fail("unsupported color %T", raw)
		return nil
	}
}

// buildShape converts a shape config and its children.
func buildShape(c ShapeConfig, path string) (scad.Renderable, error) {
	kind := strings.ToLower(strings.TrimSpace(c.Type))
	if kind == "" {
		return nil, fmt.Errorf("%s: %w: missing type", path, ErrInvalidShape)
	}
	path += "." + kind

	if len(c.Children) > 0 && !containers[kind] {
		return nil, fmt.Errorf("%s: %w: %s takes no children", path, ErrInvalidShape, kind)
	}
	children := make([]scad.Renderable, len(c.Children))
	for i, child := range c.Children {
		r, err := buildShape(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children[i] = r
	}

	f := &fields{path: path}
	r := f.node(kind, c, children)
	if f.err != nil {
		return nil, f.err
	}
	if r == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownShape)
	}

	if c.Move != nil {
		mv := f.size("move", c.Move, 3)
		r = scad.MovedBy(r, scad.At(mv[0], mv[1], mv[2]))
	}
	if c.Color != nil && kind != "color" {
		r = r.WithColor(f.color(c.Color))
	}
	if f.err != nil {
		return nil, f.err
	}

	return r, nil
}

// node builds the renderable for kind, nil when kind is unknown.
func (f *fields) node(kind string, c ShapeConfig, children []scad.Renderable) scad.Renderable {
	facets := c.Facets.facets()

	switch kind {
	case "cube":
		s := f.size("size", c.Size, 3)
		return scad.NewCube(s[0], s[1], s[2]).WithCentered(f.valueOr("center", c.Center, scad.Bool(false)))

	case "sphere":
		var s scad.Sphere
		if c.D != nil {
			s = scad.NewSphereDiameter(f.value("d", c.D))
		} else {
			s = scad.NewSphere(f.required("r", c.R))
		}
		return s.WithCentered(f.valueOr("center", c.Center, scad.Bool(true))).WithFacets(facets)

	case "cylinder":
		return scad.NewCylinder(f.required("h", c.H), f.value("r", c.R)).
			WithBottomRadius(f.value("r1", c.R1)).
			WithTopRadius(f.value("r2", c.R2)).
			WithDiameter(f.value("d", c.D)).
			WithBottomDiameter(f.value("d1", c.D1)).
			WithTopDiameter(f.value("d2", c.D2)).
			WithCenterOnZ(f.valueOr("center", c.Center, scad.Bool(false))).
			WithCenterOnXY(f.valueOr("center_xy", c.CenterXY, scad.Bool(true))).
			WithFacets(facets)

	case "polyhedron":
		return scad.NewPolyhedron(f.points(c.Points), f.faces(c.Faces)).
			WithConvexity(f.valueOr("convexity", c.Convexity, scad.Int(1)))

	case "pyramid":
		s := f.size("size", c.Size, 3)
		return scad.NewPyramid(s[0], s[1], s[2])

	case "square":
		s := f.size("size", c.Size, 2)
		return scad.NewSquare(s[0], s[1]).WithCentered(f.valueOr("center", c.Center, scad.Bool(false)))

	case "circle":
		var s scad.Circle
		if c.D != nil {
			s = scad.NewCircleDiameter(f.value("d", c.D))
		} else {
			s = scad.NewCircle(f.required("r", c.R))
		}
		return s.WithFacets(facets)

	case "linear_extrude":
		shapes := make([]scad.Shape2D, 0, len(children))
		for i, child := range children {
			s, ok := child.(scad.Shape2D)
			if !ok {
				f.fail("children[%d] is not a 2D shape", i)
				return nil
			}
			shapes = append(shapes, s)
		}
		return scad.NewLinearExtrude(f.required("h", c.H), shapes...).
			WithCentered(f.valueOr("center", c.Center, scad.Bool(false))).
			WithConvexity(f.value("convexity", c.Convexity)).
			WithTwist(f.valueOr("twist", c.Twist, scad.Int(0))).
			WithSlices(f.value("slices", c.Slices)).
			WithScale(f.valueOr("scale", c.Scale, scad.Int(1))).
			WithFacets(facets)

	case "projection":
		return scad.NewProjection(f.valueOr("cut", c.Cut, scad.Bool(false)), children...)

	case "union":
		return scad.NewUnion(children...)
	case "difference":
		return scad.NewDifference(children...)
	case "intersection":
		return scad.NewIntersection(children...)
	case "group":
		return scad.NewRenderableContainer(children...)

	case "scale":
		s := f.size("size", c.Size, 3)
		return scad.NewScale(s[0], s[1], s[2], children...)
	case "mirror":
		s := f.size("size", c.Size, 3)
		return scad.NewMirror(s[0], s[1], s[2], children...)
	case "resize":
		s := f.size("size", c.Size, 3)
		return scad.NewResize(s[0], s[1], s[2], children...).WithAutoscale(f.value("auto", c.Auto))
	case "rotate":
		return scad.NewRotate(f.required("a", c.Angle), f.value("v", c.Axis), children...)

	case "color":
		if c.Color == nil {
			f.fail("missing color")
			return nil
		}
		return scad.NewColorChange(f.color(c.Color), children...)

	case "comment":
		if len(children) != 1 {
			f.fail("comment needs exactly one child, got %d", len(children))
			return nil
		}
		return scad.NewComment(c.Text, children[0])

	case "statement":
		if strings.TrimSpace(c.Text) == "" {
			f.fail("missing text")
			return nil
		}
		return scad.NewStatement(c.Text)

	default:
		return nil
	}
}

// points converts [[x, y, z], ...] into a point list.
func (f *fields) points(raw []any) scad.PointVector {
	out := make(scad.PointVector, 0, len(raw))
	for i, item := range raw {
		xyz, ok := item.([]any)
		if !ok {
			f.fail("points[%d] is not an array", i)
			return out
		}
		p := f.size(fmt.Sprintf("points[%d]", i), xyz, 3)
		out = append(out, scad.NewPoint(p[0], p[1], p[2]))
	}
	return out
}

// faces converts index lists into faces.
func (f *fields) faces(raw [][]int64) scad.FaceVector {
	out := make(scad.FaceVector, 0, len(raw))
	for i, idx := range raw {
		vertices := make([]any, len(idx))
		for j, n := range idx {
			vertices[j] = n
		}
		face, err := scad.NewFace(vertices...)
		if err != nil {
			f.fail("faces[%d]: %v", i, err)
			return out
		}
		out = append(out, face)
	}
	return out
}
