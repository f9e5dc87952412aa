package scad

import (
	"context"
	"fmt"
)

// Model is a complete script document.
//
// Models are immutable; the With methods return modified copies.
type Model struct {
	renderables        []Renderable         // Top-level nodes in order
	modules            []Module             // Explicit module definitions
	variables          []CustomizerVariable // Customizer variables
	fonts              []Font               // Imported fonts
	facets             *Facets              // Document facets
	renderer           Renderer             // Output renderer
	configurableFacets bool                 // Emit facets before variables
	hideGenerator      bool                 // Omit the generator comment
}

// NewModel creates an empty model rendering to a .scad file.
func NewModel() Model {
	return Model{}
}

// WithRenderable returns a copy with r appended to the top-level nodes.
func (m Model) WithRenderable(r ...Renderable) Model {
	m.renderables = appendCopy(m.renderables, r...)
	return m
}

// WithModule returns a copy with an explicit module definition.
func (m Model) WithModule(mod ...Module) Model {
	m.modules = appendCopy(m.modules, mod...)
	return m
}

// WithVariable returns a copy with customizer variables appended.
func (m Model) WithVariable(v ...CustomizerVariable) Model {
	m.variables = appendCopy(m.variables, v...)
	return m
}

// WithFont returns a copy with fonts appended.
func (m Model) WithFont(f ...Font) Model {
	m.fonts = appendCopy(m.fonts, f...)
	return m
}

// WithFacets returns a copy with document facets.
func (m Model) WithFacets(f *Facets) Model {
	m.facets = f
	return m
}

// WithConfigurableFacets returns a copy that emits facets before the customizer
// variables, making them editable in the customizer.
func (m Model) WithConfigurableFacets(enabled bool) Model {
	m.configurableFacets = enabled
	return m
}

// WithGenerator returns a copy with the generator comment enabled or disabled.
func (m Model) WithGenerator(enabled bool) Model {
	m.hideGenerator = !enabled
	return m
}

// WithRenderer returns a copy using r for Render.
func (m Model) WithRenderer(r Renderer) Model {
	m.renderer = r
	return m
}

// Renderables returns the top-level nodes.
func (m Model) Renderables() []Renderable { return m.renderables }

// Variables returns the customizer variables.
func (m Model) Variables() []CustomizerVariable { return m.variables }

// Fonts returns the imported fonts.
func (m Model) Fonts() []Font { return m.fonts }

// Content renders the document text.
func (m Model) Content(opt *FormatOptions) (string, error) {
	b, err := Format(&m, opt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Render writes the document through the model renderer to outputPath.
func (m Model) Render(ctx context.Context, outputPath string, opt *FormatOptions) error {
	b, err := Format(&m, opt)
	if err != nil {
		return err
	}

	r := m.renderer
	if r == nil {
		r = FileRenderer{}
	}
	if err := r.Render(ctx, outputPath, b); err != nil {
		return fmt.Errorf("render %s: %w", outputPath, err)
	}

	return nil
}

// collectModules returns the document modules: the customizer end sentinel,
// explicit modules, then modules declared by top-level nodes.
func (m *Model) collectModules() []Module {
	set := newModuleSet()
	set.add(CustomizerEndModule)
	for _, mod := range m.modules {
		set.add(mod)
	}
	for _, mod := range modulesOf(m.renderables) {
		set.add(mod)
	}
	return set.list()
}

// appendCopy appends to a copy of s so withers never share backing arrays.
func appendCopy[T any](s []T, items ...T) []T {
	out := make([]T, 0, len(s)+len(items))
	out = append(out, s...)
	return append(out, items...)
}
