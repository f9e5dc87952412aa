package scad

// Sphere is a ball given by radius or diameter.
//
// Unlike the engine's own sphere it can be placed by its bounding box corner,
// so it renders through SphereModule.
type Sphere struct {
	placement
	radius   Value
	diameter Value
	center   Value
	facets   *Facets
}

// NewSphere creates a centered sphere with radius r.
func NewSphere(r any) Sphere {
	return Sphere{radius: MustConvert(r), diameter: Null{}, center: Bool(true)}
}

// NewSphereDiameter creates a centered sphere with diameter d.
func NewSphereDiameter(d any) Sphere {
	return Sphere{radius: Null{}, diameter: MustConvert(d), center: Bool(true)}
}

// Radius returns the radius, undef when the diameter is used.
func (s Sphere) Radius() Value { return orNull(s.radius) }

// Diameter returns the diameter, undef when the radius is used.
func (s Sphere) Diameter() Value { return orNull(s.diameter) }

// Centered returns the center flag.
func (s Sphere) Centered() Value { return orNull(s.center) }

// Facets implements HasFacets.
func (s Sphere) Facets() *Facets { return s.facets }

// WithRadius returns a copy with a different radius.
func (s Sphere) WithRadius(v any) Sphere { s.radius = MustConvert(v); return s }

// WithDiameter returns a copy with a different diameter.
func (s Sphere) WithDiameter(v any) Sphere { s.diameter = MustConvert(v); return s }

// WithCentered returns a copy with a different center flag.
func (s Sphere) WithCentered(v any) Sphere { s.center = MustConvert(v); return s }

// WithFacets returns a copy with a facets configuration.
func (s Sphere) WithFacets(f *Facets) Sphere { s.facets = f; return s }

// WithPosition implements Renderable.
func (s Sphere) WithPosition(p Coordinate) Renderable { s.position = p; return s }

// WithColor implements Renderable.
func (s Sphere) WithColor(c Color) Renderable { s.color = c; return s }

// Wrappers implements HasWrappers.
func (s Sphere) Wrappers() []WrapperConfig { return DefaultWrappers(s) }

// Modules implements HasModules.
func (Sphere) Modules() []Module { return []Module{SphereModule} }

func (s Sphere) renderable() bool {
	return !(literalNonPositive(s.radius) && literalNonPositive(s.diameter))
}

// Render implements Renderable.
func (s Sphere) Render(*RenderContext) string {
	if !s.renderable() {
		return ""
	}

	args := "d = " + s.Diameter().Scad()
	if !isNull(s.radius) {
		args = "r = " + s.radius.Scad()
	}
	args += ", center = " + s.Centered().Scad()

	return sphereModuleName + "(" + withFacets(args, s.facets) + ");"
}
