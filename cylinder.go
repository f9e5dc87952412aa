package scad

import "strings"

// Cylinder is a cylinder or cone given by radii or diameters.
type Cylinder struct {
	placement
	height Value

	radius, bottomRadius, topRadius       Value
	diameter, bottomDiameter, topDiameter Value

	centerZ  Value
	centerXY Value
	facets   *Facets
}

// NewCylinder creates a cylinder of height h and radius r, centered on the XY plane.
func NewCylinder(h, r any) Cylinder {
	return newCylinder(h).WithRadius(r)
}

// NewCone creates a cone of height h from bottom radius r1 to top radius r2.
func NewCone(h, r1, r2 any) Cylinder {
	return newCylinder(h).WithBottomRadius(r1).WithTopRadius(r2)
}

func newCylinder(h any) Cylinder {
	return Cylinder{
		height:         MustConvert(h),
		radius:         Null{},
		bottomRadius:   Null{},
		topRadius:      Null{},
		diameter:       Null{},
		bottomDiameter: Null{},
		topDiameter:    Null{},
		centerZ:        Bool(false),
		centerXY:       Bool(true),
	}
}

// Height returns the Z size.
func (c Cylinder) Height() Value { return orNull(c.height) }

// Facets implements HasFacets.
func (c Cylinder) Facets() *Facets { return c.facets }

// WithHeight returns a copy with a different height.
func (c Cylinder) WithHeight(v any) Cylinder { c.height = MustConvert(v); return c }

// WithRadius returns a copy with a different radius.
func (c Cylinder) WithRadius(v any) Cylinder { c.radius = MustConvert(v); return c }

// WithBottomRadius returns a copy with a different bottom radius.
func (c Cylinder) WithBottomRadius(v any) Cylinder { c.bottomRadius = MustConvert(v); return c }

// WithTopRadius returns a copy with a different top radius.
func (c Cylinder) WithTopRadius(v any) Cylinder { c.topRadius = MustConvert(v); return c }

// WithDiameter returns a copy with a different diameter.
func (c Cylinder) WithDiameter(v any) Cylinder { c.diameter = MustConvert(v); return c }

// WithBottomDiameter returns a copy with a different bottom diameter.
func (c Cylinder) WithBottomDiameter(v any) Cylinder { c.bottomDiameter = MustConvert(v); return c }

// WithTopDiameter returns a copy with a different top diameter.
func (c Cylinder) WithTopDiameter(v any) Cylinder { c.topDiameter = MustConvert(v); return c }

// WithCenterOnZ returns a copy centered (or not) on the Z axis.
func (c Cylinder) WithCenterOnZ(v any) Cylinder { c.centerZ = MustConvert(v); return c }

// WithCenterOnXY returns a copy centered (or not) on the XY plane.
func (c Cylinder) WithCenterOnXY(v any) Cylinder { c.centerXY = MustConvert(v); return c }

// WithFacets returns a copy with a facets configuration.
func (c Cylinder) WithFacets(f *Facets) Cylinder { c.facets = f; return c }

// WithPosition implements Renderable.
func (c Cylinder) WithPosition(p Coordinate) Renderable { c.position = p; return c }

// WithColor implements Renderable.
func (c Cylinder) WithColor(col Color) Renderable { c.color = col; return c }

// Wrappers implements HasWrappers.
func (c Cylinder) Wrappers() []WrapperConfig { return DefaultWrappers(c) }

// Modules implements HasModules.
func (Cylinder) Modules() []Module { return []Module{CylinderModule} }

func (c Cylinder) renderable() bool {
	for _, v := range []Value{c.height, c.radius, c.bottomRadius, c.topRadius, c.diameter, c.bottomDiameter, c.topDiameter} {
		if !literalNonPositive(v) {
			return true
		}
	}
	return false
}

// lint returns the soft warnings for conflicting size arguments.
func (c Cylinder) lint() []Issue {
	var out []Issue
	if !isNull(c.radius) && (!isNull(c.bottomRadius) || !isNull(c.topRadius)) {
		out = append(out, Issue{Level: IssueWarning, Code: "cylinder_radius_conflict",
			Message: "bottom or top radius should not be set together with radius"})
	}
	if !isNull(c.diameter) && (!isNull(c.bottomDiameter) || !isNull(c.topDiameter)) {
		out = append(out, Issue{Level: IssueWarning, Code: "cylinder_diameter_conflict",
			Message: "bottom or top diameter should not be set together with diameter"})
	}

	usesRadius := !isNull(c.radius) || !isNull(c.bottomRadius) || !isNull(c.topRadius)
	usesDiameter := !isNull(c.diameter) || !isNull(c.bottomDiameter) || !isNull(c.topDiameter)
	if usesRadius && usesDiameter {
		out = append(out, Issue{Level: IssueWarning, Code: "cylinder_radius_and_diameter",
			Message: "radius and diameter should not both be set"})
	}

	return out
}

// Render implements Renderable.
func (c Cylinder) Render(rc *RenderContext) string {
	if !c.renderable() {
		return ""
	}
	for _, issue := range c.lint() {
		rc.Warn(issue.Code, issue.Message, "")
	}

	args := []string{
		"h = " + c.Height().Scad(),
		"center = " + scadOf(c.centerZ),
		"centerXY = " + scadOf(c.centerXY),
	}
	sizes := []struct {
		name string
		v    Value
	}{
		{"r", c.radius},
		{"r1", c.bottomRadius},
		{"r2", c.topRadius},
		{"d", c.diameter},
		{"d1", c.bottomDiameter},
		{"d2", c.topDiameter},
	}
	for _, s := range sizes {
		if !isNull(s.v) {
			args = append(args, s.name+" = "+s.v.Scad())
		}
	}

	return cylinderModuleName + "(" + withFacets(strings.Join(args, ", "), c.facets) + ");"
}
