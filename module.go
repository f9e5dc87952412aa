package scad

// Module is a reusable script module definition hoisted to the top of a document.
type Module interface {
	// Name returns the module name, used for deduplication.
	Name() string
	// Definition returns the full module text.
	Definition() string
}

// NewModule creates a module from its name and definition text.
func NewModule(name, definition string) Module {
	return module{name: name, definition: definition}
}

type module struct {
	name       string
	definition string
}

func (m module) Name() string       { return m.name }
func (m module) Definition() string { return m.definition }

// CustomizerEndModule is the empty module that ends the customizer section.
// Variables declared after the first module are hidden from the customizer UI.
var CustomizerEndModule = NewModule("__Customizer_End", "module __Customizer_End() {}")

// SphereModule positions a sphere by its bounding box corner when not centered.
var SphereModule = NewModule(sphereModuleName, `module `+sphereModuleName+`(r = undef, d = undef, center = true) {
    move = center ? 0 : r != undef ? r : d != undef ? d / 2 : 0;
    translate([move, move, move])
    sphere(r = r, d = d);
}`)

// CylinderModule allows a cylinder that is not centered on the XY plane.
var CylinderModule = NewModule(cylinderModuleName, `module `+cylinderModuleName+`(h = undef, r = undef, r1 = undef, r2 = undef, d = undef, d1 = undef, d2 = undef, center = false, centerXY = true) {
    radii = [
        r == undef ? 0 : r,
        r1 == undef ? 0 : r1,
        r2 == undef ? 0 : r2,
        d == undef ? 0 : d / 2,
        d1 == undef ? 0 : d1 / 2,
        d2 == undef ? 0 : d2 / 2,
    ];
    move = centerXY ? 0 : max(radii);
    translate([move, move])
    cylinder(h = h, r = r, r1 = r1, r2 = r2, d = d, d1 = d1, d2 = d2, center = center);
}`)

const (
	sphereModuleName   = "ScadGo_NonCenterableSphere"
	cylinderModuleName = "ScadGo_NonCenterableCylinder"
)

// moduleSet keeps modules unique by name in first-seen order, letting later
// definitions replace earlier ones.
type moduleSet struct {
	order []string
	byKey map[string]Module
}

func newModuleSet() *moduleSet {
	return &moduleSet{byKey: make(map[string]Module)}
}

// add inserts or replaces m.
func (s *moduleSet) add(m Module) {
	if _, ok := s.byKey[m.Name()]; !ok {
		s.order = append(s.order, m.Name())
	}
	s.byKey[m.Name()] = m
}

// list returns the modules in order.
func (s *moduleSet) list() []Module {
	out := make([]Module, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byKey[name])
	}
	return out
}
