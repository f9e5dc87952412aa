package scad

import (
	"slices"
	"testing"
)

func TestShapeRender(t *testing.T) {
	tests := []struct {
		name string
		r    Renderable
		want string
	}{
		{"cube", NewCube(10, 10, 10), "cube([10, 10, 10], center = false);"},
		{"cube centered", NewCube(1, 2, 3).WithCentered(true), "cube([1, 2, 3], center = true);"},
		{"cube symbolic", NewCube(Variable("w"), 1, Expression("$w / 2")), "cube([$w, 1, ($w / 2)], center = false);"},
		{"cube symbolic flat", NewCube(Variable("w"), 0, 0), "cube([$w, 0, 0], center = false);"},
		{"cube flat", NewCube(0, 0, 0), ""},
		{"cube negative", NewCube(-1, 0, -2.5), ""},
		{"cube one side", NewCube(0, 0, 1), "cube([0, 0, 1], center = false);"},

		{"sphere", NewSphere(3), "ScadGo_NonCenterableSphere(r = 3, center = true);"},
		{"sphere diameter", NewSphereDiameter(4).WithCentered(false).WithFacets(FacetsNumber(32)), "ScadGo_NonCenterableSphere(d = 4, center = false, $fn = 32);"},
		{"sphere empty", NewSphere(0), ""},

		{"cylinder", NewCylinder(10, 2), "ScadGo_NonCenterableCylinder(h = 10, center = false, centerXY = true, r = 2);"},
		{
			"cone",
			NewCone(10, 2, 1).WithFacets(FacetsAngleAndSize(12, 2)),
			"ScadGo_NonCenterableCylinder(h = 10, center = false, centerXY = true, r1 = 2, r2 = 1, $fa = 12,$fs = 2);",
		},
		{
			"cylinder diameter",
			newCylinder(5).WithDiameter(4).WithCenterOnZ(true).WithCenterOnXY(false),
			"ScadGo_NonCenterableCylinder(h = 5, center = true, centerXY = false, d = 4);",
		},
		{"cylinder empty", NewCylinder(0, 0), ""},

		{"square", NewSquare(2, 3), "square(size = [2, 3], center = false);"},
		{"square centered", NewSquare(2, 3).WithCentered(true), "square(size = [2, 3], center = true);"},
		{"circle", NewCircle(1).WithFacets(FacetsNumber(16)), "circle(r = 1, $fn = 16);"},
		{"circle diameter", NewCircleDiameter(2), "circle(d = 2);"},

		{
			"extrude",
			Extruded(NewSquare(2, 3), 5),
			"linear_extrude(height = 5, center = false, twist = 0, scale = 1) {square(size = [2, 3], center = false);}",
		},
		{
			"extrude options",
			NewLinearExtrude(5, NewCircle(1)).WithConvexity(10).WithSlices(20).WithTwist(90).WithScale(0.5).WithCentered(true),
			"linear_extrude(height = 5, center = true, convexity = 10, twist = 90, slices = 20, scale = 0.5) {circle(r = 1);}",
		},
		{
			"extrude moved shape",
			Extruded(MovedRight(NewSquare(1, 1), 2), 1),
			"linear_extrude(height = 1, center = false, twist = 0, scale = 1) {translate([2, 0, 0]) {square(size = [1, 1], center = false);}}",
		},
		{"extrude empty", NewLinearExtrude(5), ""},
		{"extrude flat", Extruded(NewSquare(1, 1), 0), ""},

		{"projection", NewProjection(true, NewCube(1, 1, 1)), "projection(cut = true) {cube([1, 1, 1], center = false);}"},
		{"statement", NewStatement("my_part(3);"), "my_part(3);"},
		{"expression statement", NewExpressionStatement(Expression("my_part($n)")), "my_part($n)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Render(nil); got != tt.want {
				t.Fatalf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestPyramid(t *testing.T) {
	p := NewPyramid(10, 10, 5)
	want := "polyhedron(faces = [[0,1,2],[1,3,2],[3,4,2],[4,0,2],[0,4,3,1]], " +
		"points = [[10, 10, 0],[10, 0, 0],[5, 5, 5],[0, 0, 0],[0, 10, 0]], convexity = 1);"

	if got := Wrap(p).Render(nil); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	sym := NewPyramid(Variable("w"), 4, 2).Polyhedron()
	if got := sym.Render(nil); got != "polyhedron(faces = [[0,1,2],[1,3,2],[3,4,2],[4,0,2],[0,4,3,1]], "+
		"points = [[$w, 4, 0],[$w, 0, 0],[($w / 2), 2, 2],[0, 0, 0],[0, 4, 0]], convexity = 1);" {
		t.Fatalf("symbolic pyramid: %q", got)
	}
}

func TestCylinderWarnings(t *testing.T) {
	tests := []struct {
		name string
		c    Cylinder
		want []string
	}{
		{"plain", NewCylinder(1, 1), nil},
		{"radius conflict", NewCylinder(1, 1).WithTopRadius(2), []string{"cylinder_radius_conflict"}},
		{"diameter conflict", newCylinder(1).WithDiameter(1).WithBottomDiameter(2), []string{"cylinder_diameter_conflict"}},
		{
			"mixed",
			NewCylinder(1, 1).WithBottomRadius(1).WithDiameter(3),
			[]string{"cylinder_radius_conflict", "cylinder_radius_and_diameter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRenderContext(nil)
			if tt.c.Render(rc) == "" {
				t.Fatalf("cylinder must still render")
			}

			var codes []string
			for _, issue := range rc.Issues() {
				codes = append(codes, issue.Code)
			}
			if !slices.Equal(codes, tt.want) {
				t.Fatalf("got %v want %v", codes, tt.want)
			}
		})
	}
}

func TestRenderContextOnIssue(t *testing.T) {
	var seen []Issue
	rc := NewRenderContext(nil)
	rc.onIssue = func(i Issue) { seen = append(seen, i) }

	rc.Warn("code", "message", "path")
	if len(seen) != 1 || seen[0].Level != IssueWarning || seen[0].Path != "path" {
		t.Fatalf("unexpected issues: %+v", seen)
	}

	var nilContext *RenderContext
	nilContext.Warn("code", "message", "")
	if nilContext.Issues() != nil {
		t.Fatalf("nil context must not record issues")
	}
}

func TestShapeModules(t *testing.T) {
	if m := NewSphere(1).Modules(); len(m) != 1 || m[0].Name() != "ScadGo_NonCenterableSphere" {
		t.Fatalf("sphere modules: %v", m)
	}
	if m := NewCylinder(1, 1).Modules(); len(m) != 1 || m[0].Name() != "ScadGo_NonCenterableCylinder" {
		t.Fatalf("cylinder modules: %v", m)
	}

	u := NewUnion(NewSphere(1), NewDifference(NewCylinder(1, 1), NewCube(1, 1, 1)))
	var names []string
	for _, m := range u.Modules() {
		names = append(names, m.Name())
	}
	if !slices.Equal(names, []string{"ScadGo_NonCenterableSphere", "ScadGo_NonCenterableCylinder"}) {
		t.Fatalf("union modules: %v", names)
	}

	custom := NewModule("part", "module part() {}")
	if m := NewLinearExtrude(1, NewProjection(false, NewStatement("part();", custom))).Modules(); len(m) != 1 || m[0].Name() != "part" {
		t.Fatalf("extrude modules: %v", m)
	}
}

func TestFacets(t *testing.T) {
	if got := FacetsAngleAndSize(12, 2).parameters(); got != "$fa = 12,$fs = 2" {
		t.Fatalf("parameters: %q", got)
	}
	if got := FacetsAngleAndSize(12, 0).statements(); got != "$fa = 12;\n" {
		t.Fatalf("statements: %q", got)
	}
	var none *Facets
	if none.parameters() != "" || none.statements() != "" {
		t.Fatalf("nil facets must render nothing")
	}
}
